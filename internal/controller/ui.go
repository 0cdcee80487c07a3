// Package controller provides output adapters for displaying converted coverage.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "dotcov.dev/pkg/dotcov/internal/model"
)

// Detection is the outcome of sniffing one report file.
type Detection struct {
	Report     m.Path
	Compatible bool
	Version    string
	Err        error
}

// UI defines how conversion and detection results are shown.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayDetection(ctx context.Context, detections []Detection) error
	DisplayCoverage(ctx context.Context, reports []m.Report, files []m.FileCoverage) error
	DisplaySaved(ctx context.Context, path m.Path, summary m.Summary)
}

// NewUI returns the interactive TUI or the plain table output.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
