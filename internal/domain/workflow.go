// Package domain converts dotCover reports into per-file coverage.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"dotcov.dev/pkg/dotcov/internal/adapter"
	"dotcov.dev/pkg/dotcov/internal/controller"
	m "dotcov.dev/pkg/dotcov/internal/model"
)

// ConvertArgs contains the arguments for converting reports.
type ConvertArgs struct {
	Reports []m.Path
	Output  m.Path
	Format  adapter.StoreFormat
	Threads int
}

// DetectArgs contains the arguments for sniffing reports.
type DetectArgs struct {
	Reports []m.Path
}

// ViewArgs contains the arguments for viewing stored results.
type ViewArgs struct {
	Output m.Path
}

// Workflow defines the user-facing operations of dotcov.
type Workflow interface {
	Convert(ctx context.Context, args ConvertArgs) error
	Detect(ctx context.Context, args DetectArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.ReportReader
	adapter.ReportStore
	adapter.SourceFSAdapter
	controller.UI
	FormatDetector
	CoverageParser
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	reportReader adapter.ReportReader,
	reportStore adapter.ReportStore,
	fsAdapter adapter.SourceFSAdapter,
	ui controller.UI,
	detector FormatDetector,
	parser CoverageParser,
) Workflow {
	return &workflow{
		ReportReader:    reportReader,
		ReportStore:     reportStore,
		SourceFSAdapter: fsAdapter,
		UI:              ui,
		FormatDetector:  detector,
		CoverageParser:  parser,
	}
}

// Convert parses every report, merges their files by path and stores the
// result. A single failing report aborts the conversion and nothing is stored.
func (w *workflow) Convert(ctx context.Context, args ConvertArgs) error {
	if len(args.Reports) == 0 {
		return errors.New("no reports to convert")
	}

	if args.Format == "" {
		args.Format = adapter.FormatYAML
	}

	reports := make([]m.Report, len(args.Reports))
	perReport := make([][]m.FileCoverage, len(args.Reports))

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Threads > 0 {
		group.SetLimit(args.Threads)
	}

	for i, path := range args.Reports {
		group.Go(func() error {
			report, files, err := w.convertReport(groupCtx, path)
			if err != nil {
				return err
			}

			reports[i] = report
			perReport[i] = files

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	var all []m.FileCoverage
	for _, files := range perReport {
		all = append(all, files...)
	}

	files := m.MergeByPath(all)

	saved, err := w.SaveResults(ctx, args.Output, args.Format, adapter.StoredResults{
		Reports: reports,
		Files:   files,
	})
	if err != nil {
		slog.Error("Failed to save results", "output", args.Output, "error", err)
		return fmt.Errorf("save results: %w", err)
	}

	if err := w.DisplayCoverage(ctx, reports, files); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.DisplaySaved(ctx, saved, m.Summarize(files))

	return nil
}

func (w *workflow) convertReport(ctx context.Context, path m.Path) (m.Report, []m.FileCoverage, error) {
	if err := ctx.Err(); err != nil {
		return m.Report{}, nil, err
	}

	if err := w.checkReportFile(path); err != nil {
		return m.Report{}, nil, err
	}

	doc, err := w.Open(ctx, path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return m.Report{}, nil, ctxErr
		}

		return m.Report{}, nil, fmt.Errorf("convert %s: %w", path, streamError(err))
	}

	defer closeReport(doc, path)

	if !w.IsCompatible(doc.Root) {
		slog.Error("Report is not a dotCover report", "path", path, "root", doc.Root.Name())
		return m.Report{}, nil, fmt.Errorf("%w: %s has no %s attribute on <%s>", ErrIncompatibleFormat, path, versionAttr, doc.Root.Name())
	}

	version, _ := w.Version(doc.Root)

	files, err := w.Parse(doc.Root)
	if err != nil {
		slog.Error("Failed to parse report", "path", path, "error", err)
		return m.Report{}, nil, fmt.Errorf("convert %s: %w", path, err)
	}

	slog.Info("Converted report", "path", path, "version", version, "files", len(files))

	return m.Report{Path: path, Version: version}, files, nil
}

func (w *workflow) checkReportFile(path m.Path) error {
	info, err := w.FileInfo(path)
	if err != nil {
		slog.Error("Report not accessible", "path", path, "error", err)
		return fmt.Errorf("report %s: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("report %s is a directory", path)
	}

	return nil
}

// Detect reports, for every file, whether it is a dotCover report.
func (w *workflow) Detect(ctx context.Context, args DetectArgs) error {
	if len(args.Reports) == 0 {
		return errors.New("no reports to inspect")
	}

	detections := make([]controller.Detection, 0, len(args.Reports))
	failed := 0

	for _, path := range args.Reports {
		if err := ctx.Err(); err != nil {
			return err
		}

		detection := w.detect(ctx, path)
		if detection.Err != nil {
			failed++
		}

		detections = append(detections, detection)
	}

	if err := w.DisplayDetection(ctx, detections); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d report(s) could not be read", failed, len(args.Reports))
	}

	return nil
}

func (w *workflow) detect(ctx context.Context, path m.Path) controller.Detection {
	detection := controller.Detection{Report: path}

	if err := w.checkReportFile(path); err != nil {
		detection.Err = err
		return detection
	}

	doc, err := w.Open(ctx, path)
	if err != nil {
		detection.Err = err
		return detection
	}

	defer closeReport(doc, path)

	detection.Compatible = w.IsCompatible(doc.Root)
	if detection.Compatible {
		detection.Version, _ = w.Version(doc.Root)
	}

	return detection
}

// View shows results stored by a previous Convert.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	results, err := w.LoadResults(ctx, args.Output)
	if err != nil {
		return fmt.Errorf("load results: %w", err)
	}

	if err := w.DisplayCoverage(ctx, results.Reports, results.Files); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func closeReport(doc *adapter.OpenReport, path m.Path) {
	if err := doc.Close(); err != nil {
		slog.Error("Failed to close report", "path", path, "error", err)
	}
}
