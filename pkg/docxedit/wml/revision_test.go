package wml

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevisionAttrs(t *testing.T) {
	date := time.Date(2023, 12, 31, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))
	assert.Equal(t, ` w:id="7" w:author="O'Neil &amp; Co" w:date="2024-01-01T04:30:00Z"`,
		RevisionAttrs(7, "O'Neil & Co", date))
}

func TestRevisionElements(t *testing.T) {
	attrs := ` w:id="1"`
	assert.Equal(t,
		`<w:del w:id="1"><w:r><w:rPr><w:b/></w:rPr><w:delText xml:space="preserve">x</w:delText></w:r></w:del>`,
		DeletionElement(attrs, "<w:b/>", "x"))
	assert.Equal(t,
		`<w:ins w:id="1"><w:r><w:t xml:space="preserve">y</w:t></w:r></w:ins>`,
		InsertionElement(attrs, "", "y"))
}
