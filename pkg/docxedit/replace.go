package docxedit

import (
	"regexp"
	"strings"
	"time"
)

// Match describes one pattern match inside a single text node
type Match struct {
	// Text is the matched raw text
	Text string
	// Groups holds the submatches; Groups[0] == Text. Unmatched groups are empty.
	Groups []string
	// Run is the enclosing run. Rules must not modify it.
	Run *Run
	// XMLBefore is the opaque markup preceding the text element. It is
	// written to the output before the match regardless of the rule.
	XMLBefore string
	// Extra carries the caller's parameters
	Extra Fields
	// Source is the full value of the text node
	Source string
	// Index counts matches in document order, starting at 0
	Index int

	pattern *regexp.Regexp
	loc     []int
}

// Expand substitutes $1, ${name} and friends in template with the match's groups
func (m *Match) Expand(template string) string {
	return string(m.pattern.ExpandString(nil, template, m.Source, m.loc))
}

// Bounds returns the byte offsets of the match within Source
func (m *Match) Bounds() (start, end int) {
	return m.loc[0], m.loc[1]
}

// Rule produces the markup that takes the place of a match. The markup is
// spliced between runs: the enclosing run is closed before it and reopened
// with the same properties after it.
type Rule func(m *Match) (string, error)

// Literal replaces every match with fixed text carrying the run's formatting
func Literal(text string) Rule {
	return func(m *Match) (string, error) {
		return m.Run.Fragment(text), nil
	}
}

// Template replaces every match with the expansion of template ($1, ${name})
func Template(template string) Rule {
	return func(m *Match) (string, error) {
		return m.Run.Fragment(m.Expand(template)), nil
	}
}

// Func replaces every match with fn applied to the matched text
func Func(fn func(string) string) Rule {
	return func(m *Match) (string, error) {
		return m.Run.Fragment(fn(m.Text)), nil
	}
}

// Tracked records every replacement as a tracked change: the match is marked
// deleted and fn(match) inserted, both with the run's formatting. Matches for
// which fn returns the text unchanged are left as they are.
func Tracked(d *Document, author string, date time.Time, fn func(string) string) Rule {
	return func(m *Match) (string, error) {
		insert := fn(m.Text)
		if insert == m.Text {
			return m.Run.Fragment(m.Text), nil
		}
		return d.ChangeXML(Change{
			Delete: m.Text,
			Insert: insert,
			Author: author,
			Date:   date,
			Props:  m.Run.Props,
		})
	}
}

// Replace runs rule on every match of pattern and returns the rewritten body.
// Matching is local to each text node: a match never spans two text
// elements, so runs should be merged first to widen the searchable text.
// Runs without a match are reproduced byte for byte. The document itself is
// not changed; pass the result to SetBody or use Rewrite to commit it.
func (d *Document) Replace(pattern *regexp.Regexp, rule Rule, extra Fields) (string, error) {
	seq, err := d.Sequence()
	if err != nil {
		return "", err
	}
	body, count, err := seq.Replace(pattern, rule, extra)
	if err != nil {
		return "", err
	}

	d.logger().WithFields(Fields{
		"pattern": pattern.String(),
		"matches": count,
	}).Debug("Replaced pattern")
	return body, nil
}

// ReplaceString compiles expr and calls Replace
func (d *Document) ReplaceString(expr string, rule Rule, extra Fields) (string, error) {
	pattern, err := regexp.Compile(expr)
	if err != nil {
		return "", err
	}
	return d.Replace(pattern, rule, extra)
}

// Rewrite calls Replace and commits the result
func (d *Document) Rewrite(pattern *regexp.Regexp, rule Rule, extra Fields) error {
	body, err := d.Replace(pattern, rule, extra)
	if err != nil {
		return err
	}
	d.SetBody(body)
	return nil
}

// Find returns every match of pattern without changing anything
func (d *Document) Find(pattern *regexp.Regexp) ([]*Match, error) {
	seq, err := d.Sequence()
	if err != nil {
		return nil, err
	}
	var matches []*Match
	_, _, err = seq.Replace(pattern, func(m *Match) (string, error) {
		matches = append(matches, m)
		return "", nil
	}, nil)
	return matches, err
}

// Count returns the number of matches of pattern
func (d *Document) Count(pattern *regexp.Regexp) (int, error) {
	matches, err := d.Find(pattern)
	return len(matches), err
}

// Replace is the sequence-level form of Document.Replace. It also returns
// the number of matches.
func (s *Sequence) Replace(pattern *regexp.Regexp, rule Rule, extra Fields) (string, int, error) {
	var b strings.Builder
	count := 0

	for _, r := range s.Runs {
		b.WriteString(r.XMLBefore)
		open := false
		openRun := func() {
			if !open {
				b.WriteString(r.Opening())
				open = true
			}
		}

		for _, t := range r.Texts {
			locs := pattern.FindAllStringSubmatchIndex(t.Value, -1)
			if len(locs) == 0 {
				openRun()
				b.WriteString(t.String())
				continue
			}
			if t.XMLBefore != "" {
				openRun()
				b.WriteString(t.XMLBefore)
			}

			last := 0
			for _, loc := range locs {
				if loc[0] > last {
					openRun()
					b.WriteString(t.element(t.Value[last:loc[0]]))
				}

				m := &Match{
					Text:      t.Value[loc[0]:loc[1]],
					Groups:    groups(t.Value, loc),
					Run:       r,
					XMLBefore: t.XMLBefore,
					Extra:     extra,
					Source:    t.Value,
					Index:     count,
					pattern:   pattern,
					loc:       loc,
				}
				out, err := applyRule(rule, m)
				if err != nil {
					return "", count, &RuleError{Match: m.Text, Cause: err}
				}
				if open {
					b.WriteString(r.Closing())
					open = false
				}
				b.WriteString(out)
				count++
				last = loc[1]
			}

			if last < len(t.Value) {
				openRun()
				b.WriteString(t.element(t.Value[last:]))
			}
		}

		if r.Tail != "" {
			openRun()
			b.WriteString(r.Tail)
		}
		if open {
			b.WriteString(r.Closing())
		}
	}

	b.WriteString(s.Tail)
	return b.String(), count, nil
}

// applyRule turns a panicking rule into an error
func applyRule(rule Rule, m *Match) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = RecoverError(r)
		}
	}()
	return rule(m)
}

func groups(src string, loc []int) []string {
	out := make([]string, len(loc)/2)
	for i := range out {
		if loc[2*i] >= 0 {
			out[i] = src[loc[2*i]:loc[2*i+1]]
		}
	}
	return out
}
