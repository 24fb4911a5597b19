package render

import (
	"regexp"

	"github.com/benjaminschreck/go-docxedit/pkg/docxedit/wml"
)

var (
	// Field instructions and deleted text are markup content, not document text
	hiddenContent  = regexp.MustCompile(`(?s)<w:(instrText|delText)(?:\s[^>]*[^/])?>.*?</w:(?:instrText|delText)>`)
	paragraphStart = regexp.MustCompile(`<w:p(?:\s[^>]*)?/?>`)
	tabElement     = regexp.MustCompile(`<w:tab\s*/>`)
	anyTag         = regexp.MustCompile(`<[^>]*>`)
)

// PlainText projects a body onto its text: each paragraph start becomes a
// newline, each tab element a tab, every other tag is dropped and entities
// are decoded.
func PlainText(body string) string {
	text := hiddenContent.ReplaceAllString(body, "")
	text = paragraphStart.ReplaceAllString(text, "\n")
	text = tabElement.ReplaceAllString(text, "\t")
	text = anyTag.ReplaceAllString(text, "")
	return wml.UnescapeText(text)
}
