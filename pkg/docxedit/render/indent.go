package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
)

// Indent parses body as XML and writes it back with one element per line,
// indented by indent ("  " when empty). Text is trimmed of surrounding
// whitespace, so the result is for reading only.
func Indent(body, indent string) (string, error) {
	if indent == "" {
		indent = "  "
	}
	root, err := xmlquery.Parse(strings.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parsing XML: %w", err)
	}

	var buf bytes.Buffer
	formatNode(&buf, root, 0, indent)
	return buf.String(), nil
}

func formatNode(w *bytes.Buffer, n *xmlquery.Node, depth int, indent string) {
	switch n.Type {
	case xmlquery.DocumentNode:
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			formatNode(w, child, depth, indent)
		}

	case xmlquery.DeclarationNode:
		w.WriteString("<?xml")
		for _, attr := range n.Attr {
			w.WriteString(" ")
			w.WriteString(attr.Name.Local)
			w.WriteString(`="`)
			w.WriteString(escapeText(attr.Value))
			w.WriteString(`"`)
		}
		w.WriteString("?>\n")

	case xmlquery.ElementNode:
		writeIndent(w, depth, indent)
		w.WriteString("<")
		w.WriteString(qualified(n.Prefix, n.Data))
		for _, attr := range n.Attr {
			w.WriteString(" ")
			w.WriteString(qualified(attr.Name.Space, attr.Name.Local))
			w.WriteString(`="`)
			w.WriteString(escapeText(attr.Value))
			w.WriteString(`"`)
		}

		hasElementChildren := false
		hasText := false
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			switch child.Type {
			case xmlquery.ElementNode, xmlquery.CommentNode:
				hasElementChildren = true
			case xmlquery.TextNode, xmlquery.CharDataNode:
				if strings.TrimSpace(child.Data) != "" {
					hasText = true
				}
			}
		}

		if !hasElementChildren && !hasText {
			w.WriteString("/>\n")
			return
		}
		w.WriteString(">")
		if hasElementChildren {
			w.WriteString("\n")
		}

		for child := n.FirstChild; child != nil; child = child.NextSibling {
			switch child.Type {
			case xmlquery.ElementNode, xmlquery.CommentNode:
				formatNode(w, child, depth+1, indent)
			case xmlquery.TextNode:
				text := strings.TrimSpace(child.Data)
				if text == "" {
					continue
				}
				if hasElementChildren {
					writeIndent(w, depth+1, indent)
				}
				w.WriteString(escapeText(text))
				if hasElementChildren {
					w.WriteString("\n")
				}
			case xmlquery.CharDataNode:
				w.WriteString("<![CDATA[")
				w.WriteString(child.Data)
				w.WriteString("]]>")
			}
		}

		if hasElementChildren {
			writeIndent(w, depth, indent)
		}
		w.WriteString("</")
		w.WriteString(qualified(n.Prefix, n.Data))
		w.WriteString(">\n")

	case xmlquery.CommentNode:
		writeIndent(w, depth, indent)
		w.WriteString("<!--")
		w.WriteString(n.Data)
		w.WriteString("-->\n")
	}
}

func qualified(prefix, local string) string {
	if prefix == "" {
		return local
	}
	return prefix + ":" + local
}

func writeIndent(w *bytes.Buffer, depth int, indent string) {
	for i := 0; i < depth; i++ {
		w.WriteString(indent)
	}
}

// escapeText escapes quotes as well, so it serves attributes too
func escapeText(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
