package adapter

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

// streamCursor reads elements straight from an xml.Decoder token stream.
// All cursors of a document share the decoder, so only the innermost open
// cursor may be advanced at a time.
type streamCursor struct {
	dec      *xml.Decoder
	current  *xml.StartElement
	open     bool // end tag of current not consumed yet
	child    *streamCursor
	done     bool
	document bool
}

// NewStreamCursor returns a cursor positioned on the root element of the XML
// document read from r.
func NewStreamCursor(r io.Reader) (Cursor, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	// No entity expansion beyond the predefined XML entities.
	dec.Entity = map[string]string{}

	root := &streamCursor{dec: dec, document: true}

	ok, err := root.Next()
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, errors.New("xml document has no root element")
	}

	return root, nil
}

func (c *streamCursor) Next() (bool, error) {
	if c.done {
		return false, nil
	}

	if err := c.closeCurrent(); err != nil {
		return false, err
	}

	for {
		tok, err := c.dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if c.document {
					c.done = true
					return false, nil
				}

				err = io.ErrUnexpectedEOF
			}

			return false, fmt.Errorf("read xml token: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := t.Copy()
			c.current = &el
			c.open = true

			return true, nil
		case xml.EndElement:
			// End of the parent element: siblings are exhausted.
			c.current = nil
			c.done = true

			return false, nil
		}
	}
}

// closeCurrent consumes the rest of the current element so the decoder sits
// right after its end tag.
func (c *streamCursor) closeCurrent() error {
	if !c.open {
		return nil
	}

	c.open = false

	if c.child != nil {
		child := c.child
		c.child = nil

		for {
			ok, err := child.Next()
			if err != nil {
				return err
			}

			if !ok {
				return nil
			}
		}
	}

	if err := c.dec.Skip(); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return fmt.Errorf("skip xml element: %w", err)
	}

	return nil
}

func (c *streamCursor) Name() string {
	if c.current == nil {
		return ""
	}

	return c.current.Name.Local
}

func (c *streamCursor) Attr(name string) (string, bool) {
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

func (c *streamCursor) Children() (Cursor, error) {
	if c.current == nil || !c.open {
		return nil, ErrNoElement
	}

	if c.child != nil {
		return nil, fmt.Errorf("children of <%s> already entered", c.current.Name.Local)
	}

	c.child = &streamCursor{dec: c.dec}

	return c.child, nil
}
