package wml

import (
	"testing"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag      string
		wantKind TagKind
		wantName string
	}{
		{`<w:r>`, TagStart, Run},
		{`<w:r w:rsidR="00A1">`, TagStart, Run},
		{`</w:r>`, TagEnd, Run},
		{`<w:rPr/>`, TagEmpty, RunProps},
		{`<w:rPr />`, TagEmpty, RunProps},
		{`<w:t xml:space="preserve">`, TagStart, Text},
		{"<w:t\txml:space='preserve'>", TagStart, Text},
		{`<w:tab/>`, TagEmpty, Tab},
		{`<!-- comment -->`, TagOther, ""},
		{`<?xml version="1.0"?>`, TagOther, ""},
		{`<![CDATA[x]]>`, TagOther, ""},
		{`not a tag`, TagOther, ""},
		{`<>`, TagOther, ""},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			kind, name := ParseTag(tt.tag)
			if kind != tt.wantKind || name != tt.wantName {
				t.Errorf("ParseTag(%q) = (%v, %q), want (%v, %q)", tt.tag, kind, name, tt.wantKind, tt.wantName)
			}
		})
	}
}

func TestPreserve(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", false},
		{"word", false},
		{"two  words", false},
		{" leading", true},
		{"trailing ", true},
		{"\ttab", true},
		{"line\n", true},
	}
	for _, tt := range tests {
		if got := NeedsPreserve(tt.text); got != tt.want {
			t.Errorf("NeedsPreserve(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}

	if !HasPreserve(TextPreserveOpen) || !HasPreserve(`<w:t xml:space='preserve'>`) {
		t.Error("HasPreserve should accept both quote styles")
	}
	if HasPreserve(TextOpen) {
		t.Error("HasPreserve(<w:t>) = true")
	}
}

func TestElements(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"empty props", Props(""), ""},
		{"props", Props("<w:b/>"), "<w:rPr><w:b/></w:rPr>"},
		{"text", TextElement("a"), "<w:t>a</w:t>"},
		{"padded text", TextElement(" a"), `<w:t xml:space="preserve"> a</w:t>`},
		{"run", RunElement("<w:i/>", "x"), "<w:r><w:rPr><w:i/></w:rPr><w:t>x</w:t></w:r>"},
		{"bare run", RunElement("", "x "), `<w:r><w:t xml:space="preserve">x </w:t></w:r>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
