package docxedit

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/benjaminschreck/go-docxedit/pkg/docxedit/wml"
)

// MergeOptions controls run merging
type MergeOptions struct {
	// NormalizeCaps strips caps formatting from runs and upper-cases their
	// text before comparing, so visually identical runs can merge.
	NormalizeCaps bool
	// JoinTexts concatenates adjacent text nodes of a run when no markup
	// separates them, so a pattern can match across a former run boundary.
	JoinTexts bool
}

var capsProperty = regexp.MustCompile(`<w:caps(?:\s+w:val="(?:true|1|on)")?\s*/>`)

// Merge returns a new sequence in which every run whose XMLBefore is empty and
// whose properties equal those of the preceding run is folded into it. It is
// a single greedy left-to-right pass; the receiver is not modified.
func (s *Sequence) Merge(opts MergeOptions) *Sequence {
	out := &Sequence{Tail: s.Tail}
	for _, r := range s.Runs {
		r = r.Clone()
		if opts.NormalizeCaps {
			normalizeCaps(r)
		}
		if n := len(out.Runs); n > 0 && r.XMLBefore == "" && out.Runs[n-1].Props == r.Props {
			fold(out.Runs[n-1], r)
			continue
		}
		out.Runs = append(out.Runs, r)
	}
	if opts.JoinTexts {
		for _, r := range out.Runs {
			joinTexts(r)
		}
	}
	return out
}

func joinTexts(r *Run) {
	texts := r.Texts[:1]
	for _, t := range r.Texts[1:] {
		if t.XMLBefore != "" {
			texts = append(texts, t)
			continue
		}
		texts[len(texts)-1].Value += t.Value
	}
	r.Texts = texts
}

// fold appends b's texts to a. Markup that trailed a's texts stays between
// the two groups of texts.
func fold(a, b *Run) {
	if a.Tail != "" {
		b.Texts[0].XMLBefore = a.Tail + b.Texts[0].XMLBefore
	}
	a.Texts = append(a.Texts, b.Texts...)
	a.Tail = b.Tail
}

// propsChange matches a recorded formatting change; the properties inside it
// describe the run before the change and are left alone
var propsChange = regexp.MustCompile(`(?s)<w:rPrChange\b[^>]*/>|<w:rPrChange\b.*?</w:rPrChange>`)

// stripCaps removes caps properties that apply to the run now and reports
// whether any was found
func stripCaps(props string) (string, bool) {
	var (
		b     strings.Builder
		found bool
		last  int
	)
	strip := func(part string) {
		if capsProperty.MatchString(part) {
			found = true
			part = capsProperty.ReplaceAllString(part, "")
		}
		b.WriteString(part)
	}
	for _, loc := range propsChange.FindAllStringIndex(props, -1) {
		strip(props[last:loc[0]])
		b.WriteString(props[loc[0]:loc[1]])
		last = loc[1]
	}
	strip(props[last:])
	if !found {
		return props, false
	}
	return b.String(), true
}

// normalizeCaps removes a caps property and upper-cases the run's text
func normalizeCaps(r *Run) {
	props, ok := stripCaps(r.Props)
	if !ok {
		return
	}
	r.Props = props
	// Casers keep state between calls
	upper := cases.Upper(language.Und)
	for _, t := range r.Texts {
		t.Value = wml.UpperText(t.Value, upper.String)
	}
}

// MergeRuns fuses adjacent runs with identical properties and commits the
// result as the new body.
func (d *Document) MergeRuns(opts MergeOptions) error {
	seq, err := d.Sequence()
	if err != nil {
		return err
	}
	merged := seq.Merge(opts)
	d.setSegmented(merged)

	d.logger().WithFields(Fields{
		"runs_before":    len(seq.Runs),
		"runs_after":     len(merged.Runs),
		"normalize_caps": opts.NormalizeCaps,
		"join_texts":     opts.JoinTexts,
	}).Debug("Merged runs")
	return nil
}
