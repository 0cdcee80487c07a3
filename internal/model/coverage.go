package model

import (
	"cmp"
	"math"
	"slices"
)

// CoveragePoint is one statement span of a source file.
type CoveragePoint struct {
	StartLine int `yaml:"start_line" json:"start_line"`
	EndLine   int `yaml:"end_line" json:"end_line"`
	// Visits is 1 for a covered statement and 0 otherwise. dotCover does not
	// expose real hit counts.
	Visits int `yaml:"visits" json:"visits"`
}

// Covered reports whether the statement was exercised.
func (p CoveragePoint) Covered() bool {
	return p.Visits > 0
}

// FileCoverage holds the coverage points of a single source file, in the
// order they were encountered in the report.
type FileCoverage struct {
	Path   Path            `yaml:"path" json:"path"`
	Points []CoveragePoint `yaml:"points" json:"points"`
}

// AddPoint appends a point to the file.
func (f *FileCoverage) AddPoint(point CoveragePoint) {
	f.Points = append(f.Points, point)
}

// CoveredPoints counts points with at least one visit.
func (f FileCoverage) CoveredPoints() int {
	covered := 0

	for _, point := range f.Points {
		if point.Covered() {
			covered++
		}
	}

	return covered
}

// span is the closed line range of a point.
type span struct {
	start, end int
}

// LineCounts returns how many distinct lines the points span and how many of
// those are touched by a covered point. An inverted span counts only its start
// line. The counts come from merged ranges, so the cost depends on the number
// of points, not on the span widths.
func (f FileCoverage) LineCounts() (lines, covered int) {
	all := make([]span, 0, len(f.Points))
	hit := make([]span, 0, len(f.Points))

	for _, point := range f.Points {
		s := span{start: point.StartLine, end: max(point.EndLine, point.StartLine)}

		all = append(all, s)
		if point.Covered() {
			hit = append(hit, s)
		}
	}

	return unionLength(all), unionLength(hit)
}

// unionLength counts the integers covered by spans, saturating at math.MaxInt.
func unionLength(spans []span) int {
	if len(spans) == 0 {
		return 0
	}

	slices.SortFunc(spans, func(a, b span) int { return cmp.Compare(a.start, b.start) })

	var total uint64

	current := spans[0]
	for _, s := range spans[1:] {
		if s.start <= current.end {
			current.end = max(current.end, s.end)
			continue
		}

		total = addSaturating(total, spanLength(current))
		current = s
	}

	total = addSaturating(total, spanLength(current))

	return int(min(total, math.MaxInt))
}

// spanLength is end-start+1 computed without signed overflow.
func spanLength(s span) uint64 {
	return addSaturating(uint64(s.end)-uint64(s.start), 1)
}

func addSaturating(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}

	return a + b
}

// LineRate returns the ratio of covered lines to coverable lines, or 0 for a
// file without points.
func (f FileCoverage) LineRate() float64 {
	lines, covered := f.LineCounts()
	if lines == 0 {
		return 0
	}

	return float64(covered) / float64(lines)
}

// Summary aggregates coverage counts over a set of files.
type Summary struct {
	Files         int
	Points        int
	CoveredPoints int
	Lines         int
	CoveredLines  int
}

// Summarize computes the totals of the given files.
func Summarize(files []FileCoverage) Summary {
	summary := Summary{Files: len(files)}

	for _, file := range files {
		summary.Points += len(file.Points)
		summary.CoveredPoints += file.CoveredPoints()

		lines, covered := file.LineCounts()
		summary.Lines = saturatingSum(summary.Lines, lines)
		summary.CoveredLines = saturatingSum(summary.CoveredLines, covered)
	}

	return summary
}

func saturatingSum(a, b int) int {
	return int(min(addSaturating(uint64(a), uint64(b)), math.MaxInt))
}

// LineRate returns the covered line ratio, 0 when nothing is coverable.
func (s Summary) LineRate() float64 {
	if s.Lines == 0 {
		return 0
	}

	return float64(s.CoveredLines) / float64(s.Lines)
}

// MergeByPath combines files sharing a path. The first occurrence fixes the
// position of a path in the result; later points are appended after earlier ones.
func MergeByPath(files []FileCoverage) []FileCoverage {
	merged := make([]FileCoverage, 0, len(files))
	positions := make(map[Path]int, len(files))

	for _, file := range files {
		pos, ok := positions[file.Path]
		if !ok {
			positions[file.Path] = len(merged)
			merged = append(merged, FileCoverage{
				Path:   file.Path,
				Points: append([]CoveragePoint(nil), file.Points...),
			})

			continue
		}

		merged[pos].Points = append(merged[pos].Points, file.Points...)
	}

	return merged
}
