package wml

import (
	"regexp"
	"strconv"
	"strings"
)

// entityRef matches the references an XML parser resolves without a DTD
var entityRef = regexp.MustCompile(`^&(?:lt|gt|amp|quot|apos|#[0-9]+|#x[0-9A-Fa-f]+);`)

// EscapeText escapes text for use as element content. Text taken from a
// document is already escaped, so predefined and numeric references are kept
// as they are. Any other '&', '<' and '>' is rewritten, including the '&' of
// a named reference such as &nbsp; that needs a DTD. Escaping twice is a no-op.
func EscapeText(s string) string {
	if !strings.ContainsAny(s, "&<>") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '&':
			if loc := entityRef.FindStringIndex(s[i:]); loc != nil {
				b.WriteString(s[i : i+loc[1]])
				i += loc[1] - 1
				continue
			}
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// EscapeAttr escapes a plain value for use inside a double-quoted attribute
func EscapeAttr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}

// UnescapeText decodes the predefined XML entities and numeric character references
func UnescapeText(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return predefinedRef.ReplaceAllStringFunc(s, decodeRef)
}

var predefinedRef = regexp.MustCompile(`&(?:lt|gt|amp|quot|apos|#[0-9]+|#x[0-9A-Fa-f]+);`)

func decodeRef(ref string) string {
	switch ref {
	case "&lt;":
		return "<"
	case "&gt;":
		return ">"
	case "&amp;":
		return "&"
	case "&quot;":
		return `"`
	case "&apos;":
		return "'"
	}
	digits := ref[2 : len(ref)-1]
	base := 10
	if digits[0] == 'x' {
		digits = digits[1:]
		base = 16
	}
	n, err := strconv.ParseUint(digits, base, 32)
	if err != nil || n > 0x10FFFF {
		return ref
	}
	return string(rune(n))
}

// UpperText upper-cases raw text content without touching entity references
func UpperText(s string, upper func(string) string) string {
	if !strings.Contains(s, "&") {
		return upper(s)
	}
	var b strings.Builder
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '&' {
			continue
		}
		loc := entityRef.FindStringIndex(s[i:])
		if loc == nil {
			continue
		}
		b.WriteString(upper(s[start:i]))
		b.WriteString(s[i : i+loc[1]])
		i += loc[1] - 1
		start = i + 1
	}
	b.WriteString(upper(s[start:]))
	return b.String()
}
