package docxedit

import (
	"strings"
	"time"

	"github.com/benjaminschreck/go-docxedit/pkg/docxedit/wml"
)

// Change describes one tracked change. It is built, serialized and thrown away.
type Change struct {
	// Delete is the text marked as deleted; empty for a pure insertion
	Delete string
	// Insert is the text marked as inserted; empty for a pure deletion
	Insert string
	Author string
	Date   time.Time
	// Props are the raw run properties of the enclosing run
	Props string
	// XMLBefore is opaque markup written ahead of the change
	XMLBefore string
	// ID is the revision id, assigned by Document.NewChange
	ID int
}

// NewChange validates c and stamps it with the next revision id of the
// document. Ids start at 1 and increase with every change built, so they
// never collide within one document.
func (d *Document) NewChange(c Change) (*Change, error) {
	if c.Delete == "" && c.Insert == "" {
		return nil, &ChangeError{Author: c.Author, Cause: ErrEmptyChange}
	}
	if c.Date.IsZero() {
		c.Date = time.Now()
	}
	c.ID = d.nextRevision()
	return &c, nil
}

// ChangeXML builds a change and returns its markup
func (d *Document) ChangeXML(c Change) (string, error) {
	change, err := d.NewChange(c)
	if err != nil {
		return "", err
	}
	return change.String(), nil
}

// String renders the deletion, if any, followed by the insertion, if any.
// Both carry the change's id, author and date.
func (c *Change) String() string {
	attrs := wml.RevisionAttrs(c.ID, c.Author, c.Date)
	var b strings.Builder
	b.WriteString(c.XMLBefore)
	if c.Delete != "" {
		b.WriteString(wml.DeletionElement(attrs, c.Props, wml.EscapeText(c.Delete)))
	}
	if c.Insert != "" {
		b.WriteString(wml.InsertionElement(attrs, c.Props, wml.EscapeText(c.Insert)))
	}
	return b.String()
}
