// Package render provides read-only views of a document body.
//
// None of these views feed back into editing: they exist for inspection,
// search and debugging, and none of them has to round-trip.
//
// # Structure Organization
//
//   - text.go: plain-text projection of the body
//   - indent.go: pretty-printed markup from a full XML parse
//   - query.go: XPath queries over the parsed body
//
// # Key Functions
//
// PlainText: strips all markup, turning paragraph starts into newlines and
// tab elements into tab characters.
//
// Indent: parses the body with xmlquery and writes every element on its own
// line. Unlike the segmented model this needs well-formed XML.
//
// Query: evaluates an XPath expression and returns the inner text of each
// matching node. Element names are matched by prefix, e.g. //w:p//w:t.
//
// Example:
//
//	body := `<w:p><w:r><w:t>Hi</w:t></w:r></w:p>`
//	render.PlainText(body) // "\nHi"
package render
