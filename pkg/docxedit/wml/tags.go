package wml

import "strings"

// Namespace is the main WordprocessingML namespace bound to the w: prefix
const Namespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Qualified element names
const (
	Run         = "w:r"
	RunProps    = "w:rPr"
	Text        = "w:t"
	DelText     = "w:delText"
	Insertion   = "w:ins"
	Deletion    = "w:del"
	Paragraph   = "w:p"
	Tab         = "w:tab"
	Caps        = "w:caps"
	InstrText   = "w:instrText"
	FieldChar   = "w:fldChar"
	FieldSimple = "w:fldSimple"
)

// Literal tags emitted when no source tag is available to copy
const (
	RunOpen           = "<w:r>"
	RunClose          = "</w:r>"
	RunPropsOpen      = "<w:rPr>"
	RunPropsClose     = "</w:rPr>"
	TextOpen          = "<w:t>"
	TextPreserveOpen  = `<w:t xml:space="preserve">`
	TextClose         = "</w:t>"
	DelTextOpen       = `<w:delText xml:space="preserve">`
	DelTextClose      = "</w:delText>"
	PreserveAttribute = `xml:space="preserve"`
)

// TagKind classifies a raw tag
type TagKind int

const (
	TagOther TagKind = iota
	TagStart
	TagEnd
	TagEmpty
)

// ParseTag returns the kind and qualified name of a raw tag such as
// `<w:r w:rsidR="00A1">`, `</w:t>` or `<w:rPr/>`. Comments, processing
// instructions and declarations are TagOther with an empty name.
func ParseTag(tag string) (TagKind, string) {
	if len(tag) < 3 || tag[0] != '<' || tag[len(tag)-1] != '>' {
		return TagOther, ""
	}
	body := tag[1 : len(tag)-1]
	kind := TagStart
	switch {
	case strings.HasPrefix(body, "/"):
		kind = TagEnd
		body = body[1:]
	case strings.HasPrefix(body, "?"), strings.HasPrefix(body, "!"):
		return TagOther, ""
	case strings.HasSuffix(body, "/"):
		kind = TagEmpty
		body = body[:len(body)-1]
	}
	end := strings.IndexAny(body, " \t\r\n/")
	if end < 0 {
		end = len(body)
	}
	return kind, body[:end]
}

// HasPreserve reports whether a raw start tag carries xml:space="preserve"
func HasPreserve(tag string) bool {
	return strings.Contains(tag, `xml:space="preserve"`) || strings.Contains(tag, `xml:space='preserve'`)
}

// NeedsPreserve reports whether text would lose whitespace without the preserve attribute
func NeedsPreserve(text string) bool {
	if text == "" {
		return false
	}
	return isSpace(text[0]) || isSpace(text[len(text)-1])
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Props wraps raw run properties in a w:rPr element. Empty properties yield an empty string.
func Props(props string) string {
	if props == "" {
		return ""
	}
	return RunPropsOpen + props + RunPropsClose
}

// TextElement wraps raw text in a w:t element, adding the preserve attribute when needed
func TextElement(value string) string {
	if NeedsPreserve(value) {
		return TextPreserveOpen + value + TextClose
	}
	return TextOpen + value + TextClose
}

// RunElement builds a run holding a single text element
func RunElement(props, value string) string {
	return RunOpen + Props(props) + TextElement(value) + RunClose
}
