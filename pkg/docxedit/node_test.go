package docxedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextString(t *testing.T) {
	tests := []struct {
		name  string
		text  *Text
		value string
		want  string
	}{
		{
			name: "new text",
			text: NewText("plain"),
			want: `<w:t>plain</w:t>`,
		},
		{
			name: "new text with leading space",
			text: NewText(" padded"),
			want: `<w:t xml:space="preserve"> padded</w:t>`,
		},
		{
			name:  "modified value gains preserve",
			text:  &Text{Start: `<w:t>`, Value: "a", orig: "a"},
			value: "a ",
			want:  `<w:t xml:space="preserve">a </w:t>`,
		},
		{
			name:  "preserve is never removed",
			text:  &Text{Start: `<w:t xml:space="preserve">`, Value: " a", orig: " a"},
			value: "a",
			want:  `<w:t xml:space="preserve">a</w:t>`,
		},
		{
			name:  "unmodified value keeps its tag",
			text:  &Text{XMLBefore: `<w:tab/>`, Start: `<w:t>`, Value: " a", orig: " a", end: `</w:t>`},
			value: " a",
			want:  `<w:tab/><w:t> a</w:t>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				tt.text.Value = tt.value
			}
			assert.Equal(t, tt.want, tt.text.String())
		})
	}
}

func TestRunFragment(t *testing.T) {
	seq, err := Segment(`<w:r w:rsidR="7"><w:rPr><w:i/></w:rPr><w:t>x</w:t></w:r>`)
	require.NoError(t, err)
	run := seq.Runs[0]

	assert.Equal(t, `<w:r w:rsidR="7"><w:rPr><w:i/></w:rPr><w:t>A &amp; B</w:t></w:r>`, run.Fragment("A & B"))
	assert.Equal(t, `<w:r w:rsidR="7"><w:rPr><w:i/></w:rPr><w:t xml:space="preserve"> y</w:t></w:r>`, run.Fragment(" y"))
	assert.Equal(t, "x", run.Text())
}

func TestRunPropsXML(t *testing.T) {
	tests := []struct {
		name string
		body string
		set  *string
		want string
	}{
		{name: "none", body: `<w:r><w:t>a</w:t></w:r>`, want: ``},
		{name: "self-closing", body: `<w:r><w:rPr/><w:t>a</w:t></w:r>`, want: `<w:rPr/>`},
		{name: "content", body: `<w:r><w:rPr><w:b/></w:rPr><w:t>a</w:t></w:r>`, want: `<w:rPr><w:b/></w:rPr>`},
		{name: "set on bare run", body: `<w:r><w:t>a</w:t></w:r>`, set: strPtr(`<w:u/>`), want: `<w:rPr><w:u/></w:rPr>`},
		{name: "set on self-closing", body: `<w:r><w:rPr/><w:t>a</w:t></w:r>`, set: strPtr(`<w:u/>`), want: `<w:rPr><w:u/></w:rPr>`},
		{name: "cleared", body: `<w:r><w:rPr><w:b/></w:rPr><w:t>a</w:t></w:r>`, set: strPtr(``), want: `<w:rPr></w:rPr>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := Segment(tt.body)
			require.NoError(t, err)
			run := seq.Runs[0]
			if tt.set != nil {
				run.Props = *tt.set
			}
			assert.Equal(t, tt.want, run.PropsXML())
		})
	}
}

func TestSequenceClone(t *testing.T) {
	body := `<w:p><w:r><w:t>one</w:t></w:r><w:r><w:t>two</w:t></w:r></w:p>`
	seq, err := Segment(body)
	require.NoError(t, err)

	clone := seq.Clone()
	clone.Runs[0].Texts[0].Value = "changed"
	clone.Runs[1].Props = "<w:b/>"

	assert.Equal(t, body, seq.String())
	assert.Equal(t, 2, clone.TextCount())
	assert.Contains(t, clone.String(), "changed")
}

func strPtr(s string) *string {
	return &s
}
