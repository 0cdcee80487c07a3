package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "dotcov.dev/pkg/dotcov/internal/model"
)

const (
	compatibleLabel   = "dotCover"
	incompatibleLabel = "unsupported"
	errorLabel        = "error"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayDetection prints one row per sniffed report.
func (s *SimpleUI) DisplayDetection(ctx context.Context, detections []Detection) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderDetectionTable(detections))

	return nil
}

// DisplayCoverage prints the per-file coverage table.
func (s *SimpleUI) DisplayCoverage(ctx context.Context, reports []m.Report, files []m.FileCoverage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, report := range reports {
		s.printf("Report %s (dotCover %s)\n", report.Path, report.Version)
	}

	if len(files) == 0 {
		s.printf("No covered source files.\n")
		return nil
	}

	s.printf("\n%s", renderCoverageTable(files))

	return nil
}

// DisplaySaved tells where the results were written.
func (s *SimpleUI) DisplaySaved(ctx context.Context, path m.Path, summary m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Saved %d file(s), %d coverage point(s) to %s\n", summary.Files, summary.Points, path)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderDetectionTable(detections []Detection) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Report", "Format", "Version"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)

	for _, detection := range detections {
		table.Append(detectionRow(detection))
	}

	table.Render()

	return tableBuffer.String()
}

func detectionRow(detection Detection) []string {
	switch {
	case detection.Err != nil:
		return []string{string(detection.Report), errorLabel, detection.Err.Error()}
	case detection.Compatible:
		return []string{string(detection.Report), compatibleLabel, detection.Version}
	default:
		return []string{string(detection.Report), incompatibleLabel, "-"}
	}
}

func renderCoverageTable(files []m.FileCoverage) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Points", "Covered", "Lines", "Coverage"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, row := range coverageRows(files) {
		table.Append(row)
	}

	summary := m.Summarize(files)
	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", summary.Files),
		fmt.Sprintf("%d", summary.Points),
		fmt.Sprintf("%d", summary.CoveredPoints),
		fmt.Sprintf("%d", summary.Lines),
		formatRate(summary.LineRate()),
	})

	table.Render()

	return tableBuffer.String()
}

func coverageRows(files []m.FileCoverage) [][]string {
	rows := make([][]string, 0, len(files))

	for _, file := range files {
		lines, _ := file.LineCounts()

		rows = append(rows, []string{
			string(file.Path),
			fmt.Sprintf("%d", len(file.Points)),
			fmt.Sprintf("%d", file.CoveredPoints()),
			fmt.Sprintf("%d", lines),
			formatRate(file.LineRate()),
		})
	}

	return rows
}

func formatRate(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}
