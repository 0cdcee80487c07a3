package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "dotcov.dev/pkg/dotcov/internal/model"
)

const (
	resultsBaseName      = "coverage"
	storedResultsVersion = 1
)

// StoreFormat is the encoding used for stored results.
type StoreFormat string

const (
	// FormatYAML stores results as YAML.
	FormatYAML StoreFormat = "yaml"
	// FormatJSON stores results as indented JSON.
	FormatJSON StoreFormat = "json"
)

// ParseStoreFormat converts a configuration value to a StoreFormat.
func ParseStoreFormat(value string) (StoreFormat, error) {
	switch StoreFormat(value) {
	case FormatYAML, "", "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	}

	return "", fmt.Errorf("unknown output format %q (expected %q or %q)", value, FormatYAML, FormatJSON)
}

// ErrNoResults is returned by LoadResults when the directory holds no stored results.
var ErrNoResults = errors.New("no stored coverage results")

// StoredResults is the on-disk document written by ReportStore.
type StoredResults struct {
	Version int              `yaml:"version" json:"version"`
	Reports []m.Report       `yaml:"reports" json:"reports"`
	Files   []m.FileCoverage `yaml:"files" json:"files"`
}

// ReportStore persists converted coverage results.
type ReportStore interface {
	SaveResults(ctx context.Context, dir m.Path, format StoreFormat, results StoredResults) (m.Path, error)
	LoadResults(ctx context.Context, dir m.Path) (StoredResults, error)
}

// LocalReportStore keeps results in a directory on the local filesystem.
type LocalReportStore struct{}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveResults writes results into dir and returns the written file path.
// Results stored in the other format are removed so LoadResults stays unambiguous.
func (s *LocalReportStore) SaveResults(ctx context.Context, dir m.Path, format StoreFormat, results StoredResults) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	results.Version = storedResultsVersion

	data, err := encodeResults(format, results)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		slog.Error("Failed to create output directory", "dir", dir, "error", err)
		return "", fmt.Errorf("create output directory: %w", err)
	}

	target := resultsPath(dir, format)
	if err := os.WriteFile(target, data, 0o600); err != nil {
		slog.Error("Failed to write results", "path", target, "error", err)
		return "", fmt.Errorf("write results: %w", err)
	}

	for _, other := range []StoreFormat{FormatYAML, FormatJSON} {
		if other == format {
			continue
		}

		if err := os.Remove(resultsPath(dir, other)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Failed to remove stale results", "path", resultsPath(dir, other), "error", err)
		}
	}

	slog.Debug("Saved results", "path", target, "files", len(results.Files))

	return m.Path(target), nil
}

// LoadResults reads results previously written by SaveResults.
func (s *LocalReportStore) LoadResults(ctx context.Context, dir m.Path) (StoredResults, error) {
	if err := ctx.Err(); err != nil {
		return StoredResults{}, err
	}

	for _, format := range []StoreFormat{FormatYAML, FormatJSON} {
		path := resultsPath(dir, format)

		// #nosec G304 - path is built from the configured output directory
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			slog.Error("Failed to read results", "path", path, "error", err)
			return StoredResults{}, fmt.Errorf("read results: %w", err)
		}

		results, err := decodeResults(format, data)
		if err != nil {
			slog.Error("Failed to decode results", "path", path, "error", err)
			return StoredResults{}, fmt.Errorf("decode results %s: %w", path, err)
		}

		return results, nil
	}

	return StoredResults{}, fmt.Errorf("%w in %s", ErrNoResults, dir)
}

func resultsPath(dir m.Path, format StoreFormat) string {
	return filepath.Join(string(dir), resultsBaseName+"."+string(format))
}

func encodeResults(format StoreFormat, results StoredResults) ([]byte, error) {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(results)
		if err != nil {
			return nil, fmt.Errorf("encode yaml results: %w", err)
		}

		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json results: %w", err)
		}

		return append(data, '\n'), nil
	}

	return nil, fmt.Errorf("unknown output format %q", format)
}

func decodeResults(format StoreFormat, data []byte) (StoredResults, error) {
	var results StoredResults

	var err error
	if format == FormatJSON {
		err = json.Unmarshal(data, &results)
	} else {
		err = yaml.Unmarshal(data, &results)
	}

	if err != nil {
		return StoredResults{}, err
	}

	if results.Version != storedResultsVersion {
		return StoredResults{}, fmt.Errorf("unsupported results version %d", results.Version)
	}

	return results, nil
}
