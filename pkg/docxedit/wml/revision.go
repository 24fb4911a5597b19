package wml

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the timestamp format Word writes on revisions
const DateLayout = "2006-01-02T15:04:05Z"

// RevisionAttrs renders the w:id, w:author and w:date attributes of a revision
func RevisionAttrs(id int, author string, date time.Time) string {
	var b strings.Builder
	b.WriteString(` w:id="`)
	b.WriteString(strconv.Itoa(id))
	b.WriteString(`" w:author="`)
	b.WriteString(EscapeAttr(author))
	b.WriteString(`" w:date="`)
	b.WriteString(date.UTC().Format(DateLayout))
	b.WriteString(`"`)
	return b.String()
}

// DeletionElement wraps text in a tracked deletion holding one run
func DeletionElement(attrs, props, value string) string {
	return "<" + Deletion + attrs + ">" +
		RunOpen + Props(props) + DelTextOpen + value + DelTextClose + RunClose +
		"</" + Deletion + ">"
}

// InsertionElement wraps text in a tracked insertion holding one run
func InsertionElement(attrs, props, value string) string {
	return "<" + Insertion + attrs + ">" +
		RunOpen + Props(props) + TextPreserveOpen + value + TextClose + RunClose +
		"</" + Insertion + ">"
}
