package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "dotcov.dev/pkg/dotcov/internal/model"
)

func newBufferedCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return cmd, &buf
}

func sampleFiles() []m.FileCoverage {
	return []m.FileCoverage{
		{Path: "/src/Calculator.cs", Points: []m.CoveragePoint{
			{StartLine: 5, EndLine: 5, Visits: 1},
			{StartLine: 8, EndLine: 9, Visits: 1},
			{StartLine: 13, EndLine: 15, Visits: 0},
		}},
		{Path: "/src/Parser.cs", Points: []m.CoveragePoint{
			{StartLine: 7, EndLine: 7, Visits: 0},
		}},
	}
}

func TestSimpleUI_DisplayCoverage(t *testing.T) {
	tests := []struct {
		name         string
		reports      []m.Report
		files        []m.FileCoverage
		wantContains []string
	}{
		{
			name:         "no files",
			reports:      []m.Report{{Path: "empty.xml", Version: "2023.3.1"}},
			wantContains: []string{"Report empty.xml (dotCover 2023.3.1)", "No covered source files."},
		},
		{
			name:    "files with totals",
			reports: []m.Report{{Path: "a.xml", Version: "1"}, {Path: "b.xml", Version: "2"}},
			files:   sampleFiles(),
			wantContains: []string{
				"Report a.xml (dotCover 1)",
				"Report b.xml (dotCover 2)",
				"Path", "Points", "Covered", "Lines", "Coverage",
				"/src/Calculator.cs", "50.00%",
				"/src/Parser.cs", "0.00%",
				"Total Files 2", "42.86%",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, buf := newBufferedCommand()

			err := NewSimpleUI(cmd).DisplayCoverage(context.Background(), tt.reports, tt.files)
			if err != nil {
				t.Fatalf("DisplayCoverage() error = %v", err)
			}

			got := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("DisplayCoverage() output missing %q, got:\n%s", want, got)
				}
			}
		})
	}
}

func TestSimpleUI_DisplayCoverageCancelled(t *testing.T) {
	cmd, buf := newBufferedCommand()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewSimpleUI(cmd).DisplayCoverage(ctx, nil, sampleFiles()); !errors.Is(err, context.Canceled) {
		t.Fatalf("DisplayCoverage() error = %v, want context.Canceled", err)
	}

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestSimpleUI_DisplayDetection(t *testing.T) {
	cmd, buf := newBufferedCommand()

	detections := []Detection{
		{Report: "good.xml", Compatible: true, Version: "2023.3.1"},
		{Report: "cobertura.xml"},
		{Report: "gone.xml", Err: errors.New("no such file")},
	}

	if err := NewSimpleUI(cmd).DisplayDetection(context.Background(), detections); err != nil {
		t.Fatalf("DisplayDetection() error = %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	wantRows := [][]string{
		{"good.xml", "dotCover", "2023.3.1"},
		{"cobertura.xml", "unsupported", "-"},
		{"gone.xml", "error", "no such file"},
	}

	for _, want := range wantRows {
		if !hasLineWith(lines, want...) {
			t.Errorf("DisplayDetection() missing row %v, got:\n%s", want, buf.String())
		}
	}
}

func TestSimpleUI_DisplaySaved(t *testing.T) {
	cmd, buf := newBufferedCommand()

	NewSimpleUI(cmd).DisplaySaved(context.Background(), "out/coverage.yaml", m.Summarize(sampleFiles()))

	want := "Saved 2 file(s), 4 coverage point(s) to out/coverage.yaml\n"
	if buf.String() != want {
		t.Errorf("DisplaySaved() = %q, want %q", buf.String(), want)
	}
}

func TestFormatRate(t *testing.T) {
	tests := map[float64]string{
		0:       "0.00%",
		0.5:     "50.00%",
		1:       "100.00%",
		1.0 / 3: "33.33%",
	}

	for rate, want := range tests {
		if got := formatRate(rate); got != want {
			t.Errorf("formatRate(%v) = %q, want %q", rate, got, want)
		}
	}
}

func TestCoverageRows(t *testing.T) {
	rows := coverageRows(sampleFiles())

	want := [][]string{
		{"/src/Calculator.cs", "3", "2", "6", "50.00%"},
		{"/src/Parser.cs", "1", "0", "1", "0.00%"},
	}

	if len(rows) != len(want) {
		t.Fatalf("coverageRows() returned %d rows, want %d", len(rows), len(want))
	}

	for i := range want {
		if strings.Join(rows[i], "|") != strings.Join(want[i], "|") {
			t.Errorf("row %d = %v, want %v", i, rows[i], want[i])
		}
	}
}

func hasLineWith(lines []string, parts ...string) bool {
	for _, line := range lines {
		matched := true

		for _, part := range parts {
			if !strings.Contains(line, part) {
				matched = false
				break
			}
		}

		if matched {
			return true
		}
	}

	return false
}
