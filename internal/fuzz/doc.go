// Package fuzztests holds fuzz harnesses for the tokenizer front end. They
// feed arbitrary bytes through the lexer and the scanner and check that
// tokenization is total: no panics, and tokens cover the input exactly.
package fuzztests
