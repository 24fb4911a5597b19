// Package docxedit edits the text of Microsoft Word documents (DOCX) without
// modelling the WordprocessingML grammar.
//
// The body of a document (word/document.xml) is treated as a string. Only
// runs (w:r) and the text elements inside them (w:t) are recognized; all
// other markup is carried through byte for byte. Callers rewrite the text,
// and the result differs from the input only where they intended.
//
// # Quick Start
//
//	pkg, err := docxedit.OpenPackage("contract.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc, err := pkg.Document()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc.RemoveAllNoise()
//	if err := doc.MergeRuns(docxedit.MergeOptions{JoinTexts: true}); err != nil {
//	    log.Fatal(err)
//	}
//	pattern := regexp.MustCompile(`ACME Ltd\.`)
//	rule := docxedit.Tracked(doc, "Legal", time.Now(), func(string) string { return "ACME GmbH" })
//	if err := doc.Rewrite(pattern, rule, nil); err != nil {
//	    log.Fatal(err)
//	}
//
//	pkg.SetDocumentXML(doc.Body())
//	if err := pkg.Save("contract-redlined.docx"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Segmentation
//
// Segment turns a body into a Sequence: Run nodes, each holding Text nodes,
// with opaque markup attached to the node that follows it. Sequence.String
// reassembles the exact body. Runs without text elements (breaks, drawings)
// stay opaque. Document caches the sequence and drops it whenever the body
// is replaced.
//
// # Operations
//
//   - RemoveNoise / RemoveAllNoise / RemovePatterns: delete proofing marks,
//     revision ids, language tags and similar markup straight from the body
//   - UnlinkFields: keep only the last computed result of every field
//   - MergeRuns: fuse adjacent runs with identical properties, optionally
//     joining their text nodes
//   - Replace / Rewrite: rewrite regular expression matches inside text nodes
//     through a Rule
//   - NewChange / ChangeXML: build tracked insertions and deletions
//
// Matches never span two text nodes. Word splits text into many runs (spell
// checking, revision ids), so remove noise and merge runs with JoinTexts
// before replacing.
//
// # Architecture
//
//   - wml: the WordprocessingML names, escaping and revision markup
//   - render: read-only views (plain text, indented XML, XPath queries)
//
// # Error Handling
//
//   - PatternError: unknown noise pattern name
//   - MarkupError: unbalanced run or text markup
//   - ChangeError: a change with nothing to delete or insert
//   - RuleError: a replacement rule failed
//   - DocumentError: archive failures
//
// Every operation either updates the body completely or leaves it as it was.
//
// # Thread Safety
//
// A Document serializes access to its body and sequence, and revision ids
// are allocated atomically. Edits are still meant to come from one goroutine:
// a sequence read by one caller may be stale once another replaces the body.
package docxedit
