package docxedit

import (
	"regexp"
	"strings"
)

// NoisePattern is a named pattern whose matches carry no textual content
type NoisePattern struct {
	Name    string
	Pattern *regexp.Regexp
	// Keep, when set, reports matches that must stay in place
	Keep func(match string) bool
}

// Strip deletes the matches of p that Keep does not claim and returns the
// new body with the number of spans removed.
func (p NoisePattern) Strip(body string) (string, int) {
	removed := 0
	body = p.Pattern.ReplaceAllStringFunc(body, func(m string) string {
		if p.Keep != nil && p.Keep(m) {
			return m
		}
		removed++
		return ""
	})
	return body, removed
}

// inPropsChange matches properties recorded by a formatting change. The
// w:rPr there is required even when empty.
func inPropsChange(m string) bool {
	return strings.HasPrefix(m, "<w:rPrChange")
}

// noiseCatalog is applied in order. empty_properties comes last so it also
// removes property blocks emptied by the patterns before it. Its first branch
// consumes the empty w:rPr of a formatting change so the others never see it.
var noiseCatalog = []NoisePattern{
	{Name: "proof_checking", Pattern: regexp.MustCompile(`<w:proofErr(?:\s[^>]*)?/>`)},
	{Name: "no_proofing", Pattern: regexp.MustCompile(`<w:noProof(?:\s[^>]*)?/>`)},
	{Name: "revision_ids", Pattern: regexp.MustCompile(`\s+w:rsid[A-Za-z]*="[^"]*"`)},
	{Name: "complex_script_bold", Pattern: regexp.MustCompile(`<w:bCs(?:\s[^>]*)?/>`)},
	{Name: "rendered_page_breaks", Pattern: regexp.MustCompile(`<w:lastRenderedPageBreak(?:\s[^>]*)?/>`)},
	{Name: "language", Pattern: regexp.MustCompile(`<w:lang(?:\s[^>]*)?/>`)},
	{
		Name:    "empty_properties",
		Pattern: regexp.MustCompile(`<w:rPrChange(?:\s[^>]*[^/])?>\s*(?:<w:rPr>\s*</w:rPr>|<w:rPr\s*/>)|<w:rPr>\s*</w:rPr>|<w:rPr\s*/>`),
		Keep:    inPropsChange,
	},
}

// Field markup. Self-closing forms come first so an opening tag never
// swallows the markup up to some later closing tag.
var fieldPatterns = []*regexp.Regexp{
	regexp.MustCompile(`<w:instrText(?:\s[^>]*)?/>|(?s:<w:instrText(?:\s[^>]*[^/])?>.*?</w:instrText>)`),
	regexp.MustCompile(`<w:fldChar(?:\s[^>]*)?/>|(?s:<w:fldChar(?:\s[^>]*[^/])?>.*?</w:fldChar>)`),
	regexp.MustCompile(`<w:fldSimple(?:\s[^>]*)?/>|<w:fldSimple(?:\s[^>]*[^/])?>|</w:fldSimple>`),
}

// PatternNames lists the catalog in application order
func PatternNames() []string {
	names := make([]string, len(noiseCatalog))
	for i, p := range noiseCatalog {
		names[i] = p.Name
	}
	return names
}

func lookupPattern(name string) (NoisePattern, bool) {
	for _, p := range noiseCatalog {
		if p.Name == name {
			return p, true
		}
	}
	return NoisePattern{}, false
}

// StripPatterns deletes every match of the patterns, in order, and returns the
// new body with the number of spans removed.
func StripPatterns(body string, patterns ...*regexp.Regexp) (string, int) {
	removed := 0
	for _, p := range patterns {
		body = p.ReplaceAllStringFunc(body, func(string) string {
			removed++
			return ""
		})
	}
	return body, removed
}

// RemoveNoise applies the named catalog patterns. Names are checked before
// anything is removed; an unknown name fails with a *PatternError and leaves
// the body untouched. The patterns run in catalog order whatever the order
// of names, which keeps the operation idempotent.
func (d *Document) RemoveNoise(names ...string) error {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := lookupPattern(name); !ok {
			return NewPatternError(name)
		}
		wanted[name] = true
	}

	body, removed := d.Body(), 0
	for _, p := range noiseCatalog {
		if !wanted[p.Name] {
			continue
		}
		var n int
		body, n = p.Strip(body)
		removed += n
	}
	if removed > 0 {
		d.SetBody(body)
	}

	d.logger().WithFields(Fields{
		"patterns": strings.Join(names, ","),
		"removed":  removed,
	}).Debug("Removed noise")
	return nil
}

// RemoveAllNoise applies the whole catalog
func (d *Document) RemoveAllNoise() {
	// Every catalog name is known, so this cannot fail
	_ = d.RemoveNoise(PatternNames()...)
}

// RemovePatterns deletes every match of ad-hoc patterns from the body and
// returns the number of spans removed.
func (d *Document) RemovePatterns(patterns ...*regexp.Regexp) int {
	body, removed := StripPatterns(d.Body(), patterns...)
	if removed > 0 {
		d.SetBody(body)
	}
	return removed
}

// UnlinkFields replaces every field by its last computed result, like
// "unlink fields" in Word: field instructions, field characters and simple
// field wrappers are removed, and runs left without content are dropped.
func (d *Document) UnlinkFields() (int, error) {
	body, removed := StripPatterns(d.Body(), fieldPatterns...)
	if removed == 0 {
		return 0, nil
	}
	body, err := dropEmptyRuns(body)
	if err != nil {
		return 0, err
	}
	d.SetBody(body)

	d.logger().WithField("removed", removed).Debug("Unlinked fields")
	return removed, nil
}

// dropEmptyRuns removes runs holding nothing but properties
func dropEmptyRuns(body string) (string, error) {
	tokens, err := Tokenize(body)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(tokens); i++ {
		if tokens[i].Type == TokenRunStart {
			j := i + 1
			if j < len(tokens) && tokens[j].Type == TokenRunProps {
				j++
			}
			if j < len(tokens) && tokens[j].Type == TokenRunEnd {
				i = j
				continue
			}
		}
		b.WriteString(tokens[i].Value)
	}
	return b.String(), nil
}
