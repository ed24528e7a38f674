package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
)

const maxSeedBytes = 64 << 10

// languageSeeds cover each token class and the malformed inputs the scanner
// diagnoses.
var languageSeeds = []string{
	"",
	"#!/usr/bin/env node\nconsole.log(1)\n",
	"let x = 0x1F + 0b101 + 0o17 + 1_000n + .5e-3;\n",
	"const s = 'it\\'s' + \"two\\nlines\";\r\n",
	"/* outer /* inner */ still */ a /* open",
	"// comment\u2028next\u2029line",
	"0x 0b 1e 1e+ 09 0777 1__2 1n 1.5n 0b12",
	"'unterminated\n\"also",
	"$ _ \\u0061 @decorator #private ` \u00a0\u3000",
	"\ufeffnaïve λ 变量 \U0001F600",
	"\xff\xfe invalid \xc3( utf8",
}

func addCorpusSeeds(f *testing.F) {
	for _, seed := range languageSeeds {
		f.Add([]byte(seed))
	}
	addTestdataSeeds(f, filepath.Join("..", "lexer", "testdata"))
}

// addTestdataSeeds adds every script under root.
func addTestdataSeeds(f *testing.F, root string) {
	fsys := os.DirFS(root)
	matches, err := doublestar.Glob(fsys, "**/*.{ts,tsx,js,jsx}")
	if err != nil {
		return
	}
	for _, name := range matches {
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			continue
		}
		f.Add(clampSeed(src))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
