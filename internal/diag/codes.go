package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexEmptyDigits              Code = 1004
	LexEmptyExponent            Code = 1005
	LexInvalidDigit             Code = 1006
	LexInvalidSuffix            Code = 1007
	LexLegacyOctal              Code = 1008
	LexSeparatorPlacement       Code = 1009

	// I/O
	IOLoadFileError Code = 4001
	IODecodeError   Code = 4002

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Invalid character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexEmptyDigits:              "Digit expected",
	LexEmptyExponent:            "Exponent digits expected",
	LexInvalidDigit:             "Invalid digit for radix",
	LexInvalidSuffix:            "Invalid literal suffix",
	LexLegacyOctal:              "Legacy octal literal",
	LexSeparatorPlacement:       "Numeric separator not allowed here",
	IOLoadFileError:             "I/O load file error",
	IODecodeError:               "Source decoding error",
	ObsInfo:                     "Observability information",
	ObsTimings:                  "Pipeline timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
