package docxedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminschreck/go-docxedit/pkg/docxedit/wml"
)

func TestDocumentViews(t *testing.T) {
	doc := New(`<w:p xmlns:w="` + wml.Namespace + `"><w:r><w:t>Hi</w:t></w:r></w:p>`)

	assert.Equal(t, "\nHi", doc.PlainText())

	indented, err := doc.Indented()
	require.NoError(t, err)
	assert.Equal(t, `<w:p xmlns:w="`+wml.Namespace+`">`+"\n  <w:r>\n    <w:t>Hi</w:t>\n  </w:r>\n</w:p>\n", indented)

	texts, err := doc.Query("//w:t")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hi"}, texts)
}

func TestDigest(t *testing.T) {
	doc := New(`<w:p/>`)
	digest := doc.Digest()
	assert.Len(t, digest, 64)
	assert.Equal(t, digest, Digest(`<w:p/>`))

	doc.SetBody(`<w:p></w:p>`)
	assert.NotEqual(t, digest, doc.Digest())

	// BLAKE3 of the empty input
	assert.Equal(t, "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262", Digest(""))
}
