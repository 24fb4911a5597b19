package docxedit

import "strings"

// Segment splits a document body into runs and text nodes. Every byte that
// is not a run or text boundary is kept as opaque markup, so
// Segment(body).String() == body for every body it accepts.
//
// Runs that hold no text element (breaks, drawings, field characters) are not
// emitted as Run nodes; their markup is passed through as opaque content.
// Text elements outside a run are opaque as well.
//
// Malformed run or text markup is reported as a *MarkupError.
func Segment(body string) (*Sequence, error) {
	tokens, err := Tokenize(body)
	if err != nil {
		return nil, err
	}

	seq := &Sequence{}
	var (
		pending    strings.Builder // opaque markup before the next run
		inner      strings.Builder // opaque markup inside the current run
		run        *Run
		text       *Text
		strayText  bool
		strayStart int
	)

	for _, tok := range tokens {
		switch tok.Type {
		case TokenOpaque:
			switch {
			case text != nil:
				return nil, NewMarkupError("markup inside text element", tok.Offset)
			case run != nil:
				inner.WriteString(tok.Value)
			default:
				pending.WriteString(tok.Value)
			}

		case TokenRunStart:
			if run != nil {
				return nil, NewMarkupError("run started inside another run", tok.Offset)
			}
			if strayText {
				return nil, NewMarkupError("run started inside text element", tok.Offset)
			}
			run = &Run{XMLBefore: pending.String(), Start: tok.Value}
			pending.Reset()

		case TokenRunProps:
			run.setProps(tok.Value)

		case TokenTextStart:
			if run == nil {
				if strayText {
					return nil, NewMarkupError("text started inside text element", tok.Offset)
				}
				strayText, strayStart = true, tok.Offset
				pending.WriteString(tok.Value)
				continue
			}
			if text != nil {
				return nil, NewMarkupError("text started inside text element", tok.Offset)
			}
			text = &Text{XMLBefore: inner.String(), Start: tok.Value}
			inner.Reset()

		case TokenText:
			if text == nil {
				pending.WriteString(tok.Value)
				continue
			}
			text.Value = tok.Value
			text.orig = tok.Value

		case TokenTextEnd:
			if strayText && run == nil {
				strayText = false
				pending.WriteString(tok.Value)
				continue
			}
			if text == nil {
				return nil, NewMarkupError("text end without text start", tok.Offset)
			}
			text.end = tok.Value
			run.Texts = append(run.Texts, text)
			text = nil

		case TokenRunEnd:
			if run == nil {
				return nil, NewMarkupError("run end without run start", tok.Offset)
			}
			if text != nil {
				return nil, NewMarkupError("run ended inside text element", tok.Offset)
			}
			run.Tail = inner.String()
			run.end = tok.Value
			inner.Reset()
			if len(run.Texts) == 0 {
				pending.WriteString(run.String())
			} else {
				seq.Runs = append(seq.Runs, run)
			}
			run = nil
		}
	}

	switch {
	case text != nil:
		return nil, NewMarkupError("unterminated text element", len(body))
	case run != nil:
		return nil, NewMarkupError("unterminated run", len(body))
	case strayText:
		return nil, NewMarkupError("unterminated text element", strayStart)
	}
	seq.Tail = pending.String()
	return seq, nil
}
