package docxedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		body string
		opts MergeOptions
		want string
		runs int
	}{
		{
			name: "equal properties fold",
			body: `<w:r><w:rPr><w:b/></w:rPr><w:t>Hello</w:t></w:r><w:r><w:rPr><w:b/></w:rPr><w:t xml:space="preserve"> World</w:t></w:r>`,
			want: `<w:r><w:rPr><w:b/></w:rPr><w:t>Hello</w:t><w:t xml:space="preserve"> World</w:t></w:r>`,
			runs: 1,
		},
		{
			name: "different properties stay apart",
			body: `<w:r><w:rPr><w:b/></w:rPr><w:t>a</w:t></w:r><w:r><w:rPr><w:i/></w:rPr><w:t>b</w:t></w:r>`,
			want: `<w:r><w:rPr><w:b/></w:rPr><w:t>a</w:t></w:r><w:r><w:rPr><w:i/></w:rPr><w:t>b</w:t></w:r>`,
			runs: 2,
		},
		{
			name: "markup between runs blocks folding",
			body: `<w:r><w:t>a</w:t></w:r><w:bookmarkStart w:id="1"/><w:r><w:t>b</w:t></w:r>`,
			want: `<w:r><w:t>a</w:t></w:r><w:bookmarkStart w:id="1"/><w:r><w:t>b</w:t></w:r>`,
			runs: 2,
		},
		{
			name: "tail moves between the text groups",
			body: `<w:r><w:t>a</w:t><w:br/></w:r><w:r><w:t>b</w:t><w:tab/></w:r>`,
			want: `<w:r><w:t>a</w:t><w:br/><w:t>b</w:t><w:tab/></w:r>`,
			runs: 1,
		},
		{
			name: "chain of three",
			body: `<w:p><w:r><w:t>a</w:t></w:r><w:r><w:t>b</w:t></w:r><w:r><w:t>c</w:t></w:r></w:p>`,
			want: `<w:p><w:r><w:t>a</w:t><w:t>b</w:t><w:t>c</w:t></w:r></w:p>`,
			runs: 1,
		},
		{
			name: "join texts",
			body: `<w:p><w:r><w:t>Hel</w:t></w:r><w:r><w:t>lo </w:t></w:r></w:p>`,
			opts: MergeOptions{JoinTexts: true},
			want: `<w:p><w:r><w:t xml:space="preserve">Hello </w:t></w:r></w:p>`,
			runs: 1,
		},
		{
			name: "join texts keeps separated texts",
			body: `<w:r><w:t>a</w:t><w:tab/><w:t>b</w:t></w:r><w:r><w:t>c</w:t></w:r>`,
			opts: MergeOptions{JoinTexts: true},
			want: `<w:r><w:t>a</w:t><w:tab/><w:t>bc</w:t></w:r>`,
			runs: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := New(tt.body)
			require.NoError(t, doc.MergeRuns(tt.opts))
			assert.Equal(t, tt.want, doc.Body())

			runs, err := doc.Runs()
			require.NoError(t, err)
			assert.Len(t, runs, tt.runs)
		})
	}
}

func TestMergeConcatenatesTexts(t *testing.T) {
	seq, err := Segment(`<w:r><w:t>a</w:t><w:t>b</w:t></w:r><w:r><w:t>c</w:t></w:r>`)
	require.NoError(t, err)

	merged := seq.Merge(MergeOptions{})
	require.Len(t, merged.Runs, 1)

	var values []string
	for _, text := range merged.Runs[0].Texts {
		values = append(values, text.Value)
	}
	assert.Equal(t, []string{"a", "b", "c"}, values)

	// Merge works on a copy
	assert.Len(t, seq.Runs, 2)
}

func TestMergeFixedPoint(t *testing.T) {
	body := `<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>a</w:t></w:r><w:r><w:rPr><w:b/></w:rPr><w:t>b</w:t></w:r>` +
		`<w:r><w:t>c</w:t></w:r><w:r><w:t>d</w:t></w:r><w:proofErr/><w:r><w:t>e</w:t></w:r></w:p>`
	seq, err := Segment(body)
	require.NoError(t, err)

	once := seq.Merge(MergeOptions{})
	twice := once.Merge(MergeOptions{})
	assert.Equal(t, once.String(), twice.String())
	assert.Len(t, once.Runs, 3)

	for i := 1; i < len(once.Runs); i++ {
		prev, cur := once.Runs[i-1], once.Runs[i]
		assert.False(t, cur.XMLBefore == "" && cur.Props == prev.Props, "runs %d and %d can still merge", i-1, i)
	}
}

func TestMergeNormalizeCaps(t *testing.T) {
	body := `<w:r><w:rPr><w:caps/></w:rPr><w:t>tom &amp; jerry</w:t></w:r><w:r><w:rPr></w:rPr><w:t xml:space="preserve"> SHOW</w:t></w:r>`

	t.Run("without normalization", func(t *testing.T) {
		doc := New(body)
		require.NoError(t, doc.MergeRuns(MergeOptions{}))
		runs, err := doc.Runs()
		require.NoError(t, err)
		assert.Len(t, runs, 2)
		assert.Equal(t, body, doc.Body())
	})

	t.Run("with normalization", func(t *testing.T) {
		doc := New(body)
		require.NoError(t, doc.MergeRuns(MergeOptions{NormalizeCaps: true}))
		runs, err := doc.Runs()
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, "TOM &amp; JERRY SHOW", runs[0].Text())
		assert.NotContains(t, doc.Body(), "<w:caps/>")
	})

	t.Run("caps switched off is kept", func(t *testing.T) {
		off := `<w:r><w:rPr><w:caps w:val="false"/></w:rPr><w:t>abc</w:t></w:r>`
		doc := New(off)
		require.NoError(t, doc.MergeRuns(MergeOptions{NormalizeCaps: true}))
		assert.Equal(t, off, doc.Body())
	})

	t.Run("caps inside a formatting change is kept", func(t *testing.T) {
		tracked := `<w:r><w:rPr><w:b/><w:rPrChange w:id="1" w:author="A" w:date="2024-01-02T03:04:05Z">` +
			`<w:rPr><w:caps/></w:rPr></w:rPrChange></w:rPr><w:t>abc</w:t></w:r>`
		doc := New(tracked)
		require.NoError(t, doc.MergeRuns(MergeOptions{NormalizeCaps: true}))
		assert.Equal(t, tracked, doc.Body())
	})

	t.Run("caps beside a formatting change is removed", func(t *testing.T) {
		change := `<w:rPrChange w:id="1" w:author="A" w:date="2024-01-02T03:04:05Z"><w:rPr><w:caps/></w:rPr></w:rPrChange>`
		doc := New(`<w:r><w:rPr><w:caps/>` + change + `</w:rPr><w:t>abc</w:t></w:r>`)
		require.NoError(t, doc.MergeRuns(MergeOptions{NormalizeCaps: true}))
		assert.Equal(t, `<w:r><w:rPr>`+change+`</w:rPr><w:t>ABC</w:t></w:r>`, doc.Body())
	})
}

func TestStripCaps(t *testing.T) {
	tests := []struct {
		props string
		want  string
		found bool
	}{
		{`<w:b/>`, `<w:b/>`, false},
		{`<w:caps/><w:b/>`, `<w:b/>`, true},
		{`<w:caps w:val="1"/>`, ``, true},
		{`<w:rPrChange w:id="2"><w:rPr><w:caps/></w:rPr></w:rPrChange>`, `<w:rPrChange w:id="2"><w:rPr><w:caps/></w:rPr></w:rPrChange>`, false},
		{`<w:rPrChange w:id="2"/><w:caps/>`, `<w:rPrChange w:id="2"/>`, true},
	}

	for _, tt := range tests {
		t.Run(tt.props, func(t *testing.T) {
			got, found := stripCaps(tt.props)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestMergeRunsMalformed(t *testing.T) {
	body := `<w:r><w:t>a</w:t>`
	doc := New(body)
	err := doc.MergeRuns(MergeOptions{})
	require.Error(t, err)
	assert.True(t, IsMarkupError(err))
	assert.Equal(t, body, doc.Body())
}
