package token_test

import (
	"testing"

	"tscore/internal/token"
)

func TestPunct(t *testing.T) {
	chars := ";,.(){}[]@#~?:$=!<>-&|+*^%"
	seen := make(map[token.Kind]rune)
	for _, r := range chars {
		k, ok := token.Punct(r)
		if !ok {
			t.Fatalf("Punct(%q) not recognized", r)
		}
		if !k.IsPunct() {
			t.Fatalf("Punct(%q) = %v, not a punctuator kind", r, k)
		}
		if prev, dup := seen[k]; dup {
			t.Fatalf("Punct(%q) and Punct(%q) both map to %v", prev, r, k)
		}
		seen[k] = r
	}
	for _, r := range []rune{'/', 'a', '0', ' ', '\\', '"', 0, 'λ', -1} {
		if k, ok := token.Punct(r); ok {
			t.Fatalf("Punct(%q) = %v, want not a punctuator", r, k)
		}
	}
	if !token.Slash.IsPunct() {
		t.Fatal("Slash must be a punctuator kind")
	}
}

func TestKindString(t *testing.T) {
	tests := map[token.Kind]string{
		token.LineComment:  "LineComment",
		token.BlockComment: "BlockComment",
		token.Ident:        "Ident",
		token.OpenParen:    "OpenParen",
		token.Percent:      "Percent",
		token.Unknown:      "Unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
	for k := token.LineComment; k <= token.Unknown; k++ {
		if k.String() == "" || k.String() == "Kind(?)" {
			t.Errorf("kind %d has no name", k)
		}
	}
}

func TestIsTrivia(t *testing.T) {
	for k := token.LineComment; k <= token.Unknown; k++ {
		want := k == token.LineComment || k == token.BlockComment || k == token.Whitespace || k == token.LineBreak
		if got := k.IsTrivia(); got != want {
			t.Errorf("%v.IsTrivia() = %v, want %v", k, got, want)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{Kind: token.Whitespace, Len: 3}, "Whitespace len=3"},
		{token.Token{Kind: token.BlockComment, Len: 11, Terminated: true}, "BlockComment{terminated:true} len=11"},
		{
			token.Token{Kind: token.Literal, Len: 2, Literal: token.LiteralData{Kind: token.Numeric, Base: token.Hexadecimal, EmptyInt: true, SuffixStart: 2}},
			"Literal(Numeric{Hexadecimal, empty_int}) len=2",
		},
		{
			token.Token{Kind: token.Literal, Len: 2, Literal: token.LiteralData{Kind: token.Numeric, SuffixStart: 1}},
			"Literal(Numeric{Decimal}, suffix@1) len=2",
		},
		{
			token.Token{Kind: token.Literal, Len: 4, Literal: token.LiteralData{Kind: token.Str, SuffixStart: 4}},
			"Literal(Str{terminated:false}) len=4",
		},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestIsUnterminated(t *testing.T) {
	open := token.Token{Kind: token.BlockComment, Len: 2}
	if !open.IsUnterminated() {
		t.Fatal("open block comment should be unterminated")
	}
	str := token.Token{Kind: token.Literal, Len: 1, Literal: token.LiteralData{Kind: token.Str}}
	if !str.IsUnterminated() {
		t.Fatal("open string should be unterminated")
	}
	num := token.Token{Kind: token.Literal, Len: 1, Literal: token.LiteralData{Kind: token.Numeric}}
	if num.IsUnterminated() {
		t.Fatal("numbers are never unterminated")
	}
}
