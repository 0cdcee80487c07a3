package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatibleFormat marks a report that is not a dotCover report.
	ErrIncompatibleFormat = errors.New("incompatible report format")
	// ErrUnresolvableSourceFile marks a File element whose Name cannot be canonicalized.
	ErrUnresolvableSourceFile = errors.New("unresolvable source file")
	// ErrStreamRead marks a failure of the underlying XML reader.
	ErrStreamRead = errors.New("report stream read failed")
	// ErrMalformedAttribute marks a required attribute that is missing or not numeric.
	ErrMalformedAttribute = errors.New("malformed attribute")
	// ErrUnknownFileIndex marks a statement whose FileIndex has no File element.
	ErrUnknownFileIndex = errors.New("unknown file index")
)

// ReportParseError is returned for every failed parse. Kind is one of the
// Err* sentinels of this package; Err is the underlying cause, if any.
// errors.Is matches both.
type ReportParseError struct {
	Kind   error
	Detail string
	Err    error
}

func (e *ReportParseError) Error() string {
	msg := "parse dotCover report: " + e.Kind.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *ReportParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

func streamError(err error) error {
	var parseErr *ReportParseError
	if errors.As(err, &parseErr) {
		return err
	}

	return &ReportParseError{Kind: ErrStreamRead, Err: err}
}

func malformedAttribute(element, attr string, err error) error {
	return &ReportParseError{
		Kind:   ErrMalformedAttribute,
		Detail: fmt.Sprintf("attribute %s of <%s>", attr, element),
		Err:    err,
	}
}
