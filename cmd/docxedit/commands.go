package main

import (
	"fmt"
	"regexp"
	"time"

	"github.com/fatih/color"

	"github.com/benjaminschreck/go-docxedit/pkg/docxedit"
	"github.com/benjaminschreck/go-docxedit/pkg/docxedit/wml"
)

// TextCmd prints the plain text of a document.
type TextCmd struct {
	File string `arg:"" help:"DOCX file" type:"existingfile"`
}

func (c *TextCmd) Run() error {
	_, doc, err := open(c.File)
	if err != nil {
		return err
	}
	fmt.Println(doc.PlainText())
	return nil
}

// IndentCmd prints the indented document body.
type IndentCmd struct {
	File string `arg:"" help:"DOCX file" type:"existingfile"`
}

func (c *IndentCmd) Run() error {
	_, doc, err := open(c.File)
	if err != nil {
		return err
	}
	out, err := doc.Indented()
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// InfoCmd summarizes the segmented body.
type InfoCmd struct {
	File string `arg:"" help:"DOCX file" type:"existingfile"`
}

func (c *InfoCmd) Run() error {
	pkg, doc, err := open(c.File)
	if err != nil {
		return err
	}
	seq, err := doc.Sequence()
	if err != nil {
		return err
	}
	fmt.Printf("File:       %s\n", c.File)
	fmt.Printf("Parts:      %d\n", len(pkg.ListParts()))
	fmt.Printf("Body bytes: %d\n", len(doc.Body()))
	fmt.Printf("Runs:       %d\n", len(seq.Runs))
	fmt.Printf("Text nodes: %d\n", seq.TextCount())
	fmt.Printf("BLAKE3:     %s\n", doc.Digest())
	return nil
}

// QueryCmd evaluates an XPath expression against the body.
type QueryCmd struct {
	File string `arg:"" help:"DOCX file" type:"existingfile"`
	Expr string `arg:"" help:"XPath expression, e.g. //w:p"`
}

func (c *QueryCmd) Run() error {
	_, doc, err := open(c.File)
	if err != nil {
		return err
	}
	results, err := doc.Query(c.Expr)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Println(r)
	}
	return nil
}

// GrepCmd lists matches with their surrounding text node.
type GrepCmd struct {
	File    string `arg:"" help:"DOCX file" type:"existingfile"`
	Pattern string `arg:"" help:"Regular expression"`
	Merge   bool   `help:"Remove noise and merge runs before searching" default:"true" negatable:""`
}

func (c *GrepCmd) Run(config *docxedit.Config) error {
	pattern, err := regexp.Compile(c.Pattern)
	if err != nil {
		return err
	}
	_, doc, err := open(c.File)
	if err != nil {
		return err
	}
	if c.Merge {
		if err := prepare(doc, config); err != nil {
			return err
		}
	}
	matches, err := doc.Find(pattern)
	if err != nil {
		return err
	}

	highlight := color.New(color.FgRed, color.Bold).SprintFunc()
	for _, m := range matches {
		start, end := m.Bounds()
		line := m.Source[:start] + highlight(m.Text) + m.Source[end:]
		fmt.Printf("%d: %s\n", m.Index+1, wml.UnescapeText(line))
	}
	color.Cyan("%d match(es)", len(matches))
	return nil
}

// CleanCmd removes noise markup.
type CleanCmd struct {
	File     string   `arg:"" help:"DOCX file" type:"existingfile"`
	Output   string   `short:"o" help:"Output file (default: overwrite input)"`
	Patterns []string `name:"pattern" short:"p" help:"Catalog pattern to remove (repeatable, default: configured or all)"`
	Fields   bool     `help:"Unlink fields, keeping their results"`
}

func (c *CleanCmd) Run(config *docxedit.Config) error {
	pkg, doc, err := open(c.File)
	if err != nil {
		return err
	}
	patterns := c.Patterns
	if len(patterns) == 0 {
		patterns = config.NoisePatterns
	}
	if len(patterns) == 0 {
		patterns = docxedit.PatternNames()
	}
	if err := doc.RemoveNoise(patterns...); err != nil {
		return err
	}
	if c.Fields {
		if _, err := doc.UnlinkFields(); err != nil {
			return err
		}
	}
	return save(pkg, doc, c.File, c.Output)
}

// MergeCmd merges adjacent runs.
type MergeCmd struct {
	File   string `arg:"" help:"DOCX file" type:"existingfile"`
	Output string `short:"o" help:"Output file (default: overwrite input)"`
	Caps   bool   `help:"Strip caps formatting and upper-case the text before merging"`
}

func (c *MergeCmd) Run(config *docxedit.Config) error {
	pkg, doc, err := open(c.File)
	if err != nil {
		return err
	}
	opts := docxedit.MergeOptions{NormalizeCaps: c.Caps || config.NormalizeCaps}
	if err := doc.MergeRuns(opts); err != nil {
		return skipMalformed(err, c.File, config)
	}
	return save(pkg, doc, c.File, c.Output)
}

// ReplaceCmd rewrites pattern matches.
type ReplaceCmd struct {
	File        string `arg:"" help:"DOCX file" type:"existingfile"`
	Pattern     string `arg:"" help:"Regular expression"`
	Replacement string `arg:"" help:"Replacement; $1 and ${name} expand to groups"`
	Output      string `short:"o" help:"Output file (default: overwrite input)"`
	Tracked     bool   `short:"t" help:"Record replacements as tracked changes"`
	Author      string `help:"Author of tracked changes (default: configured author)"`
	Merge       bool   `help:"Remove noise and merge runs before replacing" default:"true" negatable:""`
}

func (c *ReplaceCmd) Run(config *docxedit.Config) error {
	pattern, err := regexp.Compile(c.Pattern)
	if err != nil {
		return err
	}
	pkg, doc, err := open(c.File)
	if err != nil {
		return err
	}
	if c.Merge {
		if err := prepare(doc, config); err != nil {
			return skipMalformed(err, c.File, config)
		}
	}

	rule := docxedit.Template(c.Replacement)
	if c.Tracked {
		author := c.Author
		if author == "" {
			author = config.Author
		}
		now := time.Now()
		rule = func(m *docxedit.Match) (string, error) {
			return doc.ChangeXML(docxedit.Change{
				Delete: m.Text,
				Insert: m.Expand(c.Replacement),
				Author: author,
				Date:   now,
				Props:  m.Run.Props,
			})
		}
	}

	if err := doc.Rewrite(pattern, rule, nil); err != nil {
		err = docxedit.WithContext(err, "replace", map[string]interface{}{
			"pattern": c.Pattern,
			"tracked": c.Tracked,
		})
		return skipMalformed(err, c.File, config)
	}
	return save(pkg, doc, c.File, c.Output)
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("docxedit version %s\n", version)
	return nil
}
