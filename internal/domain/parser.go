package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"dotcov.dev/pkg/dotcov/internal/adapter"
	m "dotcov.dev/pkg/dotcov/internal/model"
)

const (
	fileElement     = "File"
	assemblyElement = "Assembly"
	memberElement   = "Member"

	indexAttr     = "Index"
	nameAttr      = "Name"
	lineAttr      = "Line"
	endLineAttr   = "EndLine"
	coveredAttr   = "Covered"
	fileIndexAttr = "FileIndex"

	// coveredValue is compared case-sensitively.
	coveredValue = "True"
)

var errMissingAttribute = errors.New("attribute missing")

// ParseOptions tunes how source file names are resolved.
type ParseOptions struct {
	// BaseDir anchors relative File names. Empty means the working directory.
	BaseDir m.Path
	// RequireSources fails the parse when a declared source file is missing on disk.
	RequireSources bool
}

// CoverageParser turns a report document into per-file coverage.
type CoverageParser interface {
	// Parse consumes root, which must be positioned on the report's root
	// element. The cursor cannot be reused afterwards. Every failure is a
	// *ReportParseError and no partial result is returned.
	Parse(root adapter.Cursor) ([]m.FileCoverage, error)
}

// fileRegistry maps File indices to canonical paths. A later File element
// with the same index replaces the earlier path.
type fileRegistry map[int]m.Path

// pointRegistry collects coverage points per file index, remembering the
// order in which indices were first referenced.
type pointRegistry struct {
	order  []int
	points map[int][]m.CoveragePoint
}

func newPointRegistry() *pointRegistry {
	return &pointRegistry{points: make(map[int][]m.CoveragePoint)}
}

func (r *pointRegistry) add(fileIndex int, point m.CoveragePoint) {
	if _, ok := r.points[fileIndex]; !ok {
		r.order = append(r.order, fileIndex)
	}

	r.points[fileIndex] = append(r.points[fileIndex], point)
}

func (r *pointRegistry) count() int {
	total := 0
	for _, points := range r.points {
		total += len(points)
	}

	return total
}

type dotCoverParser struct {
	fsAdapter adapter.SourceFSAdapter
	options   ParseOptions
}

// NewDotCoverParser constructs the CoverageParser for dotCover XML reports.
// The parser keeps no state between calls and may be shared by goroutines.
func NewDotCoverParser(fsAdapter adapter.SourceFSAdapter, options ParseOptions) CoverageParser {
	return &dotCoverParser{
		fsAdapter: fsAdapter,
		options:   options,
	}
}

func (p *dotCoverParser) Parse(root adapter.Cursor) ([]m.FileCoverage, error) {
	files := fileRegistry{}
	points := newPointRegistry()

	children, err := root.Children()
	if err != nil {
		return nil, streamError(err)
	}

	for {
		ok, err := children.Next()
		if err != nil {
			return nil, streamError(err)
		}

		if !ok {
			break
		}

		switch children.Name() {
		case fileElement:
			err = p.parseFile(children, files)
		case assemblyElement:
			err = p.searchMembers(children, points)
		default:
			slog.Debug("Skipping report element", "element", children.Name())
		}

		if err != nil {
			return nil, err
		}
	}

	results, err := materialize(files, points)
	if err != nil {
		return nil, err
	}

	slog.Debug("Parsed dotCover report", "declaredFiles", len(files), "files", len(results), "points", points.count())

	return results, nil
}

func (p *dotCoverParser) parseFile(cursor adapter.Cursor, files fileRegistry) error {
	index, err := intAttr(cursor, indexAttr)
	if err != nil {
		return err
	}

	name, ok := cursor.Attr(nameAttr)
	if !ok {
		return malformedAttribute(cursor.Name(), nameAttr, errMissingAttribute)
	}

	path, err := p.fsAdapter.CanonicalPath(p.options.BaseDir, name)
	if err != nil {
		return &ReportParseError{
			Kind:   ErrUnresolvableSourceFile,
			Detail: fmt.Sprintf("file %d %q", index, name),
			Err:    err,
		}
	}

	if p.options.RequireSources {
		exists, err := p.fsAdapter.Exists(path)
		if err == nil && !exists {
			err = fmt.Errorf("%s does not exist", path)
		}

		if err != nil {
			return &ReportParseError{
				Kind:   ErrUnresolvableSourceFile,
				Detail: fmt.Sprintf("file %d %q", index, name),
				Err:    err,
			}
		}
	}

	if previous, ok := files[index]; ok && previous != path {
		slog.Debug("File index declared twice", "index", index, "previous", previous, "path", path)
	}

	files[index] = path

	return nil
}

// searchMembers finds every Member below an Assembly, whatever grouping
// elements sit in between. The stack holds one cursor per open level; members
// are reached in document order.
func (p *dotCoverParser) searchMembers(assembly adapter.Cursor, points *pointRegistry) error {
	children, err := assembly.Children()
	if err != nil {
		return streamError(err)
	}

	stack := []adapter.Cursor{children}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		ok, err := top.Next()
		if err != nil {
			return streamError(err)
		}

		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}

		if top.Name() == memberElement {
			if err := parseMember(top, points); err != nil {
				return err
			}

			continue
		}

		grandchildren, err := top.Children()
		if err != nil {
			return streamError(err)
		}

		stack = append(stack, grandchildren)
	}

	return nil
}

// parseMember reads the statement spans of one member.
func parseMember(member adapter.Cursor, points *pointRegistry) error {
	statements, err := member.Children()
	if err != nil {
		return streamError(err)
	}

	for {
		ok, err := statements.Next()
		if err != nil {
			return streamError(err)
		}

		if !ok {
			return nil
		}

		startLine, err := intAttr(statements, lineAttr)
		if err != nil {
			return err
		}

		endLine, err := intAttr(statements, endLineAttr)
		if err != nil {
			return err
		}

		// dotCover only says whether a statement ran, not how often.
		visits := 0
		if covered, _ := statements.Attr(coveredAttr); covered == coveredValue {
			visits = 1
		}

		fileIndex, err := intAttr(statements, fileIndexAttr)
		if err != nil {
			return err
		}

		points.add(fileIndex, m.CoveragePoint{
			StartLine: startLine,
			EndLine:   endLine,
			Visits:    visits,
		})
	}
}

func materialize(files fileRegistry, points *pointRegistry) ([]m.FileCoverage, error) {
	results := make([]m.FileCoverage, 0, len(points.order))

	for _, index := range points.order {
		path, ok := files[index]
		if !ok {
			return nil, &ReportParseError{
				Kind:   ErrUnknownFileIndex,
				Detail: fmt.Sprintf("statements reference file index %d but no File element declares it", index),
			}
		}

		results = append(results, m.FileCoverage{
			Path:   path,
			Points: points.points[index],
		})
	}

	return results, nil
}

func intAttr(cursor adapter.Cursor, name string) (int, error) {
	value, ok := cursor.Attr(name)
	if !ok {
		return 0, malformedAttribute(cursor.Name(), name, errMissingAttribute)
	}

	number, err := strconv.Atoi(value)
	if err != nil {
		return 0, malformedAttribute(cursor.Name(), name, err)
	}

	return number, nil
}
