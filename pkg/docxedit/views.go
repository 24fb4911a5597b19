package docxedit

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/benjaminschreck/go-docxedit/pkg/docxedit/render"
)

// PlainText returns the text of the current body with paragraph starts as
// newlines and tab elements as tabs. The projection is lossy and one-way.
func (d *Document) PlainText() string {
	return render.PlainText(d.Body())
}

// Indented pretty-prints the current body for inspection. It needs
// well-formed XML and does not round-trip.
func (d *Document) Indented() (string, error) {
	return render.Indent(d.Body(), "  ")
}

// Query returns the inner text of the nodes matching an XPath expression
func (d *Document) Query(expr string) ([]string, error) {
	return render.Query(d.Body(), expr)
}

// Digest returns the hex BLAKE3 hash of the current body
func (d *Document) Digest() string {
	return Digest(d.Body())
}

// Digest returns the hex BLAKE3 hash of a body
func Digest(body string) string {
	sum := blake3.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])
}
