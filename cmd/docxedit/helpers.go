package main

import (
	"github.com/benjaminschreck/go-docxedit/pkg/docxedit"
)

func open(path string) (*docxedit.Package, *docxedit.Document, error) {
	pkg, err := docxedit.OpenPackage(path)
	if err != nil {
		return nil, nil, err
	}
	doc, err := pkg.Document()
	if err != nil {
		return nil, nil, err
	}
	return pkg, doc, nil
}

// prepare widens text nodes so patterns can match across Word's run splits
func prepare(doc *docxedit.Document, config *docxedit.Config) error {
	patterns := config.NoisePatterns
	if len(patterns) == 0 {
		patterns = docxedit.PatternNames()
	}
	if err := doc.RemoveNoise(patterns...); err != nil {
		return err
	}
	return doc.MergeRuns(docxedit.MergeOptions{
		NormalizeCaps: config.NormalizeCaps,
		JoinTexts:     true,
	})
}

// skipMalformed downgrades markup errors to a warning unless strict markup is configured
func skipMalformed(err error, path string, config *docxedit.Config) error {
	if config.StrictMarkup || !docxedit.IsMarkupError(err) {
		return err
	}
	docxedit.WithField("path", path).Warn("Leaving document unchanged: %v", err)
	return nil
}

// save writes the package unless the body is unchanged
func save(pkg *docxedit.Package, doc *docxedit.Document, input, output string) error {
	if output == "" {
		output = input
	}
	if !doc.Modified() && output == input {
		docxedit.WithFields(docxedit.Fields{
			"path":   input,
			"blake3": doc.Digest(),
		}).Info("Document unchanged")
		return nil
	}
	pkg.SetDocumentXML(doc.Body())
	if err := pkg.Save(output); err != nil {
		return err
	}
	docxedit.WithFields(docxedit.Fields{
		"path":   output,
		"blake3": doc.Digest(),
	}).Info("Saved document")
	return nil
}
