// Package adapter contains XML, filesystem and storage adapters for dotcov.
package adapter

import "errors"

// ErrNoElement is returned when a cursor is asked about an element before
// Next has positioned it on one.
var ErrNoElement = errors.New("cursor is not positioned on an element")

// Cursor walks the direct child elements of one parent, left to right.
//
// A cursor is positioned on an element only after Next returned true. Moving
// a cursor forward discards whatever is left of the current element's subtree,
// including cursors obtained from Children. Cursors are single-pass: they
// cannot be rewound.
type Cursor interface {
	// Next advances to the next sibling element. It returns false once the
	// siblings are exhausted.
	Next() (bool, error)

	// Name returns the local name of the current element.
	Name() string

	// Attr looks up an attribute of the current element by local name.
	Attr(name string) (string, bool)

	// Children returns a cursor over the current element's direct children.
	// The returned cursor is empty for leaf elements.
	Children() (Cursor, error)
}
