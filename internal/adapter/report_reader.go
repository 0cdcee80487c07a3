package adapter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	m "dotcov.dev/pkg/dotcov/internal/model"
)

// CursorMode selects how report documents are navigated.
type CursorMode string

const (
	// ModeStream reads the report token by token in a single forward pass.
	ModeStream CursorMode = "stream"
	// ModeDOM loads the whole report into memory before walking it.
	ModeDOM CursorMode = "dom"
)

// ParseCursorMode converts a configuration value to a CursorMode.
func ParseCursorMode(value string) (CursorMode, error) {
	switch CursorMode(value) {
	case ModeStream, "":
		return ModeStream, nil
	case ModeDOM:
		return ModeDOM, nil
	}

	return "", fmt.Errorf("unknown cursor mode %q (expected %q or %q)", value, ModeStream, ModeDOM)
}

// OpenReport is a report file positioned on its root element.
type OpenReport struct {
	Root   Cursor
	closer io.Closer
}

// Close releases the underlying file.
func (r *OpenReport) Close() error {
	if r.closer == nil {
		return nil
	}

	return r.closer.Close()
}

// ReportReader opens coverage report files for navigation.
type ReportReader interface {
	Open(ctx context.Context, path m.Path) (*OpenReport, error)
}

// LocalReportReader reads reports from the local filesystem.
type LocalReportReader struct {
	mode CursorMode
}

// NewLocalReportReader constructs a LocalReportReader using the given mode.
func NewLocalReportReader(mode CursorMode) *LocalReportReader {
	if mode == "" {
		mode = ModeStream
	}

	return &LocalReportReader{mode: mode}
}

// Open opens the report at path and positions a cursor on its root element.
func (r *LocalReportReader) Open(ctx context.Context, path m.Path) (*OpenReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - report path is provided by the user on purpose
	file, err := os.Open(string(path))
	if err != nil {
		slog.Error("Failed to open report", "path", path, "error", err)
		return nil, fmt.Errorf("open report %s: %w", path, err)
	}

	root, err := r.newCursor(bufio.NewReader(file))
	if err != nil {
		_ = file.Close()

		slog.Error("Failed to read report root", "path", path, "mode", r.mode, "error", err)

		return nil, fmt.Errorf("read report %s: %w", path, err)
	}

	slog.Debug("Opened report", "path", path, "mode", r.mode)

	return &OpenReport{Root: root, closer: file}, nil
}

func (r *LocalReportReader) newCursor(reader io.Reader) (Cursor, error) {
	if r.mode == ModeDOM {
		return NewNodeCursor(reader)
	}

	return NewStreamCursor(reader)
}
