package adapter

import (
	"errors"
	"fmt"
	"io"

	"github.com/antchfx/xmlquery"
)

// nodeCursor walks an in-memory xmlquery tree. It costs the whole document in
// memory but tolerates any navigation order.
type nodeCursor struct {
	first   *xmlquery.Node
	current *xmlquery.Node
	started bool
}

// NewNodeCursor parses the whole document from r and returns a cursor
// positioned on its root element.
func NewNodeCursor(r io.Reader) (Cursor, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse xml document: %w", err)
	}

	root := &nodeCursor{first: doc.FirstChild}

	ok, err := root.Next()
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, errors.New("xml document has no root element")
	}

	return root, nil
}

func (c *nodeCursor) Next() (bool, error) {
	var node *xmlquery.Node

	switch {
	case !c.started:
		c.started = true
		node = c.first
	case c.current != nil:
		node = c.current.NextSibling
	default:
		return false, nil
	}

	for node != nil && node.Type != xmlquery.ElementNode {
		node = node.NextSibling
	}

	c.current = node

	return node != nil, nil
}

func (c *nodeCursor) Name() string {
	if c.current == nil {
		return ""
	}

	return c.current.Data
}

func (c *nodeCursor) Attr(name string) (string, bool) {
	if c.current == nil {
		return "", false
	}

	for _, attr := range c.current.Attr {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}

	return "", false
}

func (c *nodeCursor) Children() (Cursor, error) {
	if c.current == nil {
		return nil, ErrNoElement
	}

	return &nodeCursor{first: c.current.FirstChild}, nil
}
