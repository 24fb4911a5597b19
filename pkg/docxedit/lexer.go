package docxedit

import (
	"strings"

	"github.com/benjaminschreck/go-docxedit/pkg/docxedit/wml"
)

// TokenType represents the type of a markup token
type TokenType int

const (
	TokenOpaque TokenType = iota
	TokenRunStart
	TokenRunProps
	TokenRunEnd
	TokenTextStart
	TokenText
	TokenTextEnd
)

func (t TokenType) String() string {
	switch t {
	case TokenOpaque:
		return "Opaque"
	case TokenRunStart:
		return "RunStart"
	case TokenRunProps:
		return "RunProps"
	case TokenRunEnd:
		return "RunEnd"
	case TokenTextStart:
		return "TextStart"
	case TokenText:
		return "Text"
	case TokenTextEnd:
		return "TextEnd"
	default:
		return "Unknown"
	}
}

// Token is a raw slice of the body. Concatenating the values of all tokens
// returned by Tokenize yields the input again.
type Token struct {
	Type   TokenType
	Value  string
	Offset int
}

type lexer struct {
	input  string
	pos    int
	opaque int
	tokens []Token
}

// Tokenize splits a document body into opaque spans and the run and text
// boundaries inside it. Only unterminated tags, comments or text content are
// errors here; pairing the boundaries up is left to Segment.
func Tokenize(input string) ([]Token, error) {
	l := &lexer{input: input}

	logger := GetLogger()
	if logger.IsDebugMode() {
		logger.WithField("input_length", len(input)).Debug("Starting tokenization")
	}

	for l.pos < len(l.input) {
		lt := strings.IndexByte(l.input[l.pos:], '<')
		if lt < 0 {
			break
		}
		start := l.pos + lt
		end, err := l.tagEnd(start)
		if err != nil {
			return nil, err
		}
		tag := l.input[start:end]
		kind, name := wml.ParseTag(tag)

		switch {
		case kind == wml.TagStart && name == wml.Run:
			l.emit(TokenRunStart, start, end)
			if err := l.runProps(); err != nil {
				return nil, err
			}
		case kind == wml.TagEnd && name == wml.Run:
			l.emit(TokenRunEnd, start, end)
		case kind == wml.TagStart && name == wml.Text:
			l.emit(TokenTextStart, start, end)
			if err := l.textContent(); err != nil {
				return nil, err
			}
		case kind == wml.TagEnd && name == wml.Text:
			l.emit(TokenTextEnd, start, end)
		default:
			l.pos = end
		}
	}

	if l.opaque < len(l.input) {
		l.tokens = append(l.tokens, Token{Type: TokenOpaque, Value: l.input[l.opaque:], Offset: l.opaque})
	}

	if logger.IsDebugMode() {
		logger.WithField("token_count", len(l.tokens)).Debug("Tokenization complete")
	}
	return l.tokens, nil
}

// emit flushes pending opaque bytes and appends input[start:end] as a token
func (l *lexer) emit(typ TokenType, start, end int) {
	if l.opaque < start {
		l.tokens = append(l.tokens, Token{Type: TokenOpaque, Value: l.input[l.opaque:start], Offset: l.opaque})
	}
	l.tokens = append(l.tokens, Token{Type: typ, Value: l.input[start:end], Offset: start})
	l.pos = end
	l.opaque = end
}

// tagEnd returns the offset just past the markup construct starting at start
func (l *lexer) tagEnd(start int) (int, error) {
	rest := l.input[start:]
	for _, pair := range [][2]string{{"<!--", "-->"}, {"<![CDATA[", "]]>"}, {"<?", "?>"}} {
		if strings.HasPrefix(rest, pair[0]) {
			i := strings.Index(rest[len(pair[0]):], pair[1])
			if i < 0 {
				return 0, NewMarkupError("unterminated "+pair[0], start)
			}
			return start + len(pair[0]) + i + len(pair[1]), nil
		}
	}

	var quote byte
	for i := 1; i < len(rest); i++ {
		c := rest[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			return start + i + 1, nil
		case c == '<':
			return 0, NewMarkupError("'<' inside tag", start+i)
		}
	}
	return 0, NewMarkupError("unterminated tag", start)
}

// runProps consumes a w:rPr element that directly follows a run start
func (l *lexer) runProps() error {
	if !strings.HasPrefix(l.input[l.pos:], "<"+wml.RunProps) {
		return nil
	}
	start := l.pos
	end, err := l.tagEnd(start)
	if err != nil {
		return err
	}
	kind, name := wml.ParseTag(l.input[start:end])
	if name != wml.RunProps {
		return nil
	}
	if kind == wml.TagEmpty {
		l.emit(TokenRunProps, start, end)
		return nil
	}

	// w:rPrChange nests another w:rPr
	depth := 1
	for pos := end; depth > 0; {
		lt := strings.IndexByte(l.input[pos:], '<')
		if lt < 0 {
			return NewMarkupError("unterminated run properties", start)
		}
		tagStart := pos + lt
		tagEnd, err := l.tagEnd(tagStart)
		if err != nil {
			return err
		}
		k, n := wml.ParseTag(l.input[tagStart:tagEnd])
		if n == wml.RunProps {
			switch k {
			case wml.TagStart:
				depth++
			case wml.TagEnd:
				depth--
			}
		}
		pos = tagEnd
		end = tagEnd
	}
	l.emit(TokenRunProps, start, end)
	return nil
}

// textContent emits the literal text following a text start tag
func (l *lexer) textContent() error {
	lt := strings.IndexByte(l.input[l.pos:], '<')
	if lt < 0 {
		return NewMarkupError("unterminated text element", l.pos)
	}
	l.emit(TokenText, l.pos, l.pos+lt)
	return nil
}
