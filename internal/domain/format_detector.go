package domain

import (
	"log/slog"

	"dotcov.dev/pkg/dotcov/internal/adapter"
)

// versionAttr is set on the root element of every dotCover XML report.
const versionAttr = "DotCoverVersion"

// FormatDetector decides whether a report can be handled by the dotCover parser.
type FormatDetector interface {
	// IsCompatible reports whether the root element carries the dotCover
	// version marker. Any value is accepted.
	IsCompatible(root adapter.Cursor) bool
	// Version returns the version marker of the root element, if present.
	Version(root adapter.Cursor) (string, bool)
}

type dotCoverDetector struct{}

// NewDotCoverDetector returns the FormatDetector for dotCover reports.
func NewDotCoverDetector() FormatDetector {
	return &dotCoverDetector{}
}

func (d *dotCoverDetector) IsCompatible(root adapter.Cursor) bool {
	version, ok := d.Version(root)
	if !ok {
		return false
	}

	slog.Info("dotCover format detected", "version", version)

	return true
}

func (d *dotCoverDetector) Version(root adapter.Cursor) (string, bool) {
	return root.Attr(versionAttr)
}
