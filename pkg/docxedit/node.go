package docxedit

import (
	"strings"

	"github.com/benjaminschreck/go-docxedit/pkg/docxedit/wml"
)

// Text is the literal content of one w:t element together with the opaque
// markup that precedes it inside its run.
type Text struct {
	// XMLBefore is opaque markup between the previous text (or the run properties) and this element
	XMLBefore string
	// Start is the raw opening tag, e.g. <w:t xml:space="preserve">
	Start string
	// Value is the raw content between the tags; entities are not decoded
	Value string

	end  string
	orig string
}

// NewText creates a text node with default tags
func NewText(value string) *Text {
	return &Text{Value: value}
}

// Preserve reports whether the element keeps leading and trailing whitespace
func (t *Text) Preserve() bool {
	return wml.HasPreserve(t.startTag())
}

func (t *Text) startTag() string {
	switch {
	case t.Start == "":
		if wml.NeedsPreserve(t.Value) {
			return wml.TextPreserveOpen
		}
		return wml.TextOpen
	case t.Value != t.orig && wml.NeedsPreserve(t.Value) && !wml.HasPreserve(t.Start):
		return wml.TextPreserveOpen
	default:
		return t.Start
	}
}

func (t *Text) endTag() string {
	if t.end == "" {
		return wml.TextClose
	}
	return t.end
}

// element wraps part of the node's value in the node's own tags
func (t *Text) element(value string) string {
	start := t.Start
	if start == "" || (wml.NeedsPreserve(value) && !wml.HasPreserve(start)) {
		start = wml.TextOpen
		if wml.NeedsPreserve(value) {
			start = wml.TextPreserveOpen
		}
	}
	return start + value + t.endTag()
}

// String serializes the text node, including its preceding markup
func (t *Text) String() string {
	return t.XMLBefore + t.startTag() + t.Value + t.endTag()
}

// Clone returns an independent copy
func (t *Text) Clone() *Text {
	c := *t
	return &c
}

// Run is a formatted span: a w:r element with its properties and texts.
type Run struct {
	// XMLBefore is opaque markup between the previous run (or the start of the body) and this run
	XMLBefore string
	// Start is the raw opening tag, attributes included
	Start string
	// Props is the raw content of the w:rPr element; empty when there is none
	Props string
	// Texts are the text elements of the run in document order
	Texts []*Text
	// Tail is opaque markup after the last text element
	Tail string

	propsTag string
	propsEnd string
	end      string
}

// setProps splits a raw w:rPr element into its tags and content
func (r *Run) setProps(raw string) {
	gt := strings.IndexByte(raw, '>')
	if kind, _ := wml.ParseTag(raw[:gt+1]); kind == wml.TagEmpty {
		r.propsTag = raw
		r.Props = ""
		return
	}
	lt := strings.LastIndexByte(raw, '<')
	r.propsTag = raw[:gt+1]
	r.Props = raw[gt+1 : lt]
	r.propsEnd = raw[lt:]
}

// HasProps reports whether the run carries a properties element
func (r *Run) HasProps() bool {
	return r.propsTag != "" || r.Props != ""
}

// PropsXML returns the properties element as it will be serialized
func (r *Run) PropsXML() string {
	switch {
	case r.propsTag == "":
		return wml.Props(r.Props)
	case strings.HasSuffix(r.propsTag, "/>"):
		if r.Props == "" {
			return r.propsTag
		}
		return wml.Props(r.Props)
	default:
		return r.propsTag + r.Props + r.propsEnd
	}
}

// Opening returns the run start tag followed by its properties
func (r *Run) Opening() string {
	start := r.Start
	if start == "" {
		start = wml.RunOpen
	}
	return start + r.PropsXML()
}

// Closing returns the run end tag
func (r *Run) Closing() string {
	if r.end == "" {
		return wml.RunClose
	}
	return r.end
}

// Text returns the concatenated raw values of all texts
func (r *Run) Text() string {
	var b strings.Builder
	for _, t := range r.Texts {
		b.WriteString(t.Value)
	}
	return b.String()
}

// Fragment builds a new run carrying this run's properties and the given
// text. The text is escaped unless it is already valid element content.
func (r *Run) Fragment(value string) string {
	return r.Opening() + wml.TextElement(wml.EscapeText(value)) + r.Closing()
}

// String serializes the run, including its preceding markup
func (r *Run) String() string {
	var b strings.Builder
	r.writeTo(&b)
	return b.String()
}

func (r *Run) writeTo(b *strings.Builder) {
	b.WriteString(r.XMLBefore)
	b.WriteString(r.Opening())
	for _, t := range r.Texts {
		b.WriteString(t.String())
	}
	b.WriteString(r.Tail)
	b.WriteString(r.Closing())
}

// Clone returns a deep copy of the run
func (r *Run) Clone() *Run {
	c := *r
	c.Texts = make([]*Text, len(r.Texts))
	for i, t := range r.Texts {
		c.Texts[i] = t.Clone()
	}
	return &c
}

// Sequence is a segmented body: runs interleaved with opaque markup, plus
// whatever follows the last run.
type Sequence struct {
	Runs []*Run
	Tail string
}

// String reassembles the body
func (s *Sequence) String() string {
	var b strings.Builder
	for _, r := range s.Runs {
		r.writeTo(&b)
	}
	b.WriteString(s.Tail)
	return b.String()
}

// Clone returns a deep copy of the sequence
func (s *Sequence) Clone() *Sequence {
	c := &Sequence{Runs: make([]*Run, len(s.Runs)), Tail: s.Tail}
	for i, r := range s.Runs {
		c.Runs[i] = r.Clone()
	}
	return c
}

// TextCount returns the number of text nodes across all runs
func (s *Sequence) TextCount() int {
	n := 0
	for _, r := range s.Runs {
		n += len(r.Texts)
	}
	return n
}
