// Package wml holds the WordprocessingML vocabulary used by docxedit.
//
// docxedit never builds an object model of a document. It works on the raw
// markup of word/document.xml and only needs to recognize and emit a handful
// of elements. This package names those elements and provides the small
// builders the editing packages share.
//
// # Structure Organization
//
//   - tags.go: element names, tag classification and the preserve-space attribute
//   - escape.go: idempotent escaping for text content and attributes
//   - revision.go: tracked change wrappers (w:ins, w:del) and their attributes
//
// # Key Concepts
//
// Run (w:r): a contiguous span of text sharing one set of run properties
// (w:rPr). Runs never nest.
//
// Text (w:t): the literal text inside a run. Leading or trailing whitespace is
// only kept by Word when the element carries xml:space="preserve".
//
// Revision (w:ins, w:del): tracked change markup wrapping whole runs. Deleted
// text moves from w:t to w:delText.
//
// # XML Namespaces
//
// Only the w: prefix bound to the main WordprocessingML namespace is recognized.
// Documents written by Word, LibreOffice and Google Docs all use it.
package wml
