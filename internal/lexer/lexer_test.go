package lexer_test

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"tscore/internal/golden"
	"tscore/internal/lexer"
	"tscore/internal/testkit"
	"tscore/internal/token"
)

func collectAllTokens(input string) []token.Token {
	var toks []token.Token
	for tok := range lexer.Tokenize(input) {
		toks = append(toks, tok)
	}
	return toks
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func expectTokens(t *testing.T, input string, want []token.Token) {
	t.Helper()
	got := collectAllTokens(input)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokens of %q mismatch (-want +got):\n%s", input, diff)
	}
}

func TestSmoke(t *testing.T) {
	input := `function main() { console.log("hello world."); }`
	toks := collectAllTokens(input)
	want := []token.Kind{
		token.Ident, token.Whitespace, token.Ident, token.OpenParen, token.CloseParen,
		token.Whitespace, token.OpenBrace, token.Whitespace, token.Ident, token.Dot,
		token.Ident, token.OpenParen, token.Literal, token.CloseParen, token.Semi,
		token.Whitespace, token.CloseBrace,
	}
	if diff := cmp.Diff(want, kinds(toks)); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
	if toks[0].Len != 8 || toks[2].Len != 4 || toks[8].Len != 7 || toks[10].Len != 3 {
		t.Fatalf("identifier lengths: %v %v %v %v", toks[0], toks[2], toks[8], toks[10])
	}
	str := toks[12]
	if str.Literal.Kind != token.Str || !str.Literal.Terminated || str.Len != 14 || str.Literal.SuffixStart != 14 {
		t.Fatalf("string literal = %v", str)
	}
	if err := testkit.CheckTokenInvariants(input, toks); err != nil {
		t.Fatal(err)
	}
}

func TestNestedBlockComment(t *testing.T) {
	expectTokens(t, "/* /* */ */", []token.Token{
		{Kind: token.BlockComment, Len: 11, Terminated: true},
	})
	expectTokens(t, "/* /* */", []token.Token{
		{Kind: token.BlockComment, Len: 8, Terminated: false},
	})
	expectTokens(t, "/**/ */", []token.Token{
		{Kind: token.BlockComment, Len: 4, Terminated: true},
		{Kind: token.Whitespace, Len: 1},
		{Kind: token.Star, Len: 1},
		{Kind: token.Slash, Len: 1},
	})
}

func TestLineComment(t *testing.T) {
	expectTokens(t, "// a\r\nb", []token.Token{
		{Kind: token.LineComment, Len: 4},
		{Kind: token.LineBreak, Len: 2},
		{Kind: token.Ident, Len: 1},
	})
	// LS ends a comment as well
	expectTokens(t, "//x\u2028", []token.Token{
		{Kind: token.LineComment, Len: 3},
		{Kind: token.LineBreak, Len: 3},
	})
}

func TestWhitespaceAndLineBreaksStaySeparate(t *testing.T) {
	expectTokens(t, " \t\u00a0\n\r\n  ", []token.Token{
		{Kind: token.Whitespace, Len: 4},
		{Kind: token.LineBreak, Len: 3},
		{Kind: token.Whitespace, Len: 2},
	})
}

func TestStrings(t *testing.T) {
	tests := []struct {
		input      string
		len        uint32
		terminated bool
		suffix     uint32
	}{
		{`"abc"`, 5, true, 5},
		{`'a\'b'`, 6, true, 6},
		{`"a\\"`, 5, true, 5},
		{"`x${y}`", 7, true, 7},
		{`"open`, 5, false, 5},
		{`"esc\"`, 6, false, 6},
		{`'x'suffix`, 9, true, 3},
		{`"x"9`, 3, true, 3},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := lexer.FirstToken(tt.input)
			want := token.Token{
				Kind: token.Literal,
				Len:  tt.len,
				Literal: token.LiteralData{
					Kind:        token.Str,
					Terminated:  tt.terminated,
					SuffixStart: tt.suffix,
				},
			}
			if diff := cmp.Diff(want, tok); diff != "" {
				t.Fatalf("FirstToken(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestUnterminatedStringHasNoSuffix(t *testing.T) {
	tok := lexer.FirstToken(`"abc`)
	if tok.HasSuffix() {
		t.Fatalf("unterminated string must not take a suffix: %v", tok)
	}
}

func TestPunctuatorsAndUnknown(t *testing.T) {
	input := ";,.(){}[]@#~?:$=!<>-&|+*/^%\\"
	toks := collectAllTokens(input)
	if len(toks) != len(input) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(input))
	}
	for i, tok := range toks[:len(toks)-1] {
		if !tok.Kind.IsPunct() || tok.Len != 1 {
			t.Fatalf("token %d = %v, want a one-byte punctuator", i, tok)
		}
	}
	if last := toks[len(toks)-1]; last.Kind != token.Unknown {
		t.Fatalf("backslash = %v, want Unknown", last)
	}
}

func TestUnknownNonASCII(t *testing.T) {
	expectTokens(t, "\u2192x", []token.Token{
		{Kind: token.Unknown, Len: 3},
		{Kind: token.Ident, Len: 1},
	})
}

type numericCase struct {
	Input         string  `yaml:"input"`
	Base          string  `yaml:"base"`
	EmptyInt      bool    `yaml:"empty_int"`
	EmptyExponent bool    `yaml:"empty_exponent"`
	Len           uint32  `yaml:"len"`
	SuffixStart   *uint32 `yaml:"suffix_start"`
}

func TestNumericFixtures(t *testing.T) {
	data, err := os.ReadFile("testdata/numeric.yaml")
	if err != nil {
		t.Fatal(err)
	}
	var cases []numericCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("decoding fixtures: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("no fixtures")
	}
	for _, tc := range cases {
		t.Run(tc.Input, func(t *testing.T) {
			suffix := tc.Len
			if tc.SuffixStart != nil {
				suffix = *tc.SuffixStart
			}
			tok := lexer.FirstToken(tc.Input)
			if tok.Kind != token.Literal || tok.Literal.Kind != token.Numeric {
				t.Fatalf("FirstToken(%q) = %v, want a numeric literal", tc.Input, tok)
			}
			got := struct {
				Base                    string
				EmptyInt, EmptyExponent bool
				Len, SuffixStart        uint32
			}{tok.Literal.Base.String(), tok.Literal.EmptyInt, tok.Literal.EmptyExponent, tok.Len, tok.Literal.SuffixStart}
			want := struct {
				Base                    string
				EmptyInt, EmptyExponent bool
				Len, SuffixStart        uint32
			}{tc.Base, tc.EmptyInt, tc.EmptyExponent, tc.Len, suffix}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("FirstToken(%q) mismatch (-want +got):\n%s", tc.Input, diff)
			}
		})
	}
}

func TestLeadingDotNumberIsOneToken(t *testing.T) {
	toks := collectAllTokens(".123")
	if len(toks) != 1 || toks[0].Kind != token.Literal || toks[0].Len != 4 {
		t.Fatalf("got %v", toks)
	}
	toks = collectAllTokens(".x")
	if diff := cmp.Diff([]token.Kind{token.Dot, token.Ident}, kinds(toks)); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestStripShebang(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"#!/usr/bin/node\nlet x = 5;", 15, true},
		{"\n#!/bin/bash", 0, false},
		{"#!    /bin/bash", len("#!    /bin/bash"), true},
		{"#!/bin/env node\r\n", 15, true},
		{"#", 0, false},
		{"", 0, false},
		{"# !", 0, false},
	}
	for _, tt := range tests {
		got, ok := lexer.StripShebang(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("StripShebang(%q) = %d, %v, want %d, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLexerTracksOffset(t *testing.T) {
	input := "#!/usr/bin/env node\nlet a"
	lx := lexer.New(input)
	if n, ok := lexer.StripShebang(input); ok {
		lx.Skip(n)
	}
	var texts []string
	for {
		start := lx.Offset()
		tok, ok := lx.Next()
		if !ok {
			break
		}
		texts = append(texts, input[start:lx.Offset()])
		if lx.Offset()-start != int(tok.Len) {
			t.Fatalf("offset moved %d for token %v", lx.Offset()-start, tok)
		}
	}
	if diff := cmp.Diff([]string{"\n", "let", " ", "a"}, texts); diff != "" {
		t.Fatalf("texts mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeIsRestartable(t *testing.T) {
	seq := lexer.Tokenize("a b")
	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	if first != 3 || second != 3 {
		t.Fatalf("iterations produced %d and %d tokens, want 3 each", first, second)
	}
	// early break must not panic
	for range seq {
		break
	}
}

func TestTotalityOnAwkwardInput(t *testing.T) {
	inputs := []string{
		"",
		"\x00",
		"\xff\xfe\xfd",
		"'",
		"`",
		"/*",
		"/",
		"0x_",
		"1e+-",
		strings.Repeat("/*", 100),
		"a\u2029b\u2028c",
		"\ufeffimport x from 'y'",
		"\U0001d4b3 = 1",
	}
	for _, in := range inputs {
		toks := collectAllTokens(in)
		if err := testkit.CheckTokenInvariants(in, toks); err != nil {
			t.Errorf("input %q: %v", in, err)
		}
	}
}

func TestLongTokensAreNotSplit(t *testing.T) {
	long := strings.Repeat("x", 1<<16)
	toks := collectAllTokens(long)
	if len(toks) != 1 || toks[0].Len != 1<<16 {
		t.Fatalf("got %d tokens, first %v", len(toks), toks[0])
	}
	comment := "/*" + strings.Repeat("*", 40000) + "*/"
	toks = collectAllTokens(comment)
	if len(toks) != 1 || !toks[0].Terminated || int(toks[0].Len) != len(comment) {
		t.Fatalf("got %v", toks)
	}
}

func TestGoldenCorpus(t *testing.T) {
	corpus := golden.Corpus{
		Root:       "testdata",
		Refresh:    "TSCORE_REFRESH",
		Extensions: []string{"ts"},
		Outputs:    []golden.Output{{Extension: "tokens"}},
	}
	corpus.Run(t, func(t *testing.T, path, text string, outputs []string) {
		var b strings.Builder
		toks := collectAllTokens(text)
		for _, tok := range toks {
			b.WriteString(tok.String())
			b.WriteByte('\n')
		}
		outputs[0] = b.String()
		if err := testkit.CheckTokenInvariants(text, toks); err != nil {
			t.Error(err)
		}
	})
}
