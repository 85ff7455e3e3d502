package lexer

import "fmt"

// ErrorKind enumerates the lexical error conditions the scanner detects.
type ErrorKind int

const (
	UnexpectedChar ErrorKind = iota
	InvalidStrEscape
	ExpectedHexChars
	NonUtf8Char
	InvalidUnicodeEscape
	InvalidCodePoint
	InvalidIdentChar
	ExpectedUnicodeEscape
	EscapeInReservedWord
	LegacyOctal
	LegacyCommentInModule
	UnterminatedStrLit
	UnterminatedRegxp
	UnterminatedTpl
	UnterminatedBlockComment
	NumericSeparatorMisplaced
	InvalidNumber
)

var errorKindNames = map[ErrorKind]string{
	UnexpectedChar:            "UnexpectedChar",
	InvalidStrEscape:          "InvalidStrEscape",
	ExpectedHexChars:          "ExpectedHexChars",
	NonUtf8Char:               "NonUtf8Char",
	InvalidUnicodeEscape:      "InvalidUnicodeEscape",
	InvalidCodePoint:          "InvalidCodePoint",
	InvalidIdentChar:          "InvalidIdentChar",
	ExpectedUnicodeEscape:     "ExpectedUnicodeEscape",
	EscapeInReservedWord:      "EscapeInReservedWord",
	LegacyOctal:               "LegacyOctal",
	LegacyCommentInModule:     "LegacyCommentInModule",
	UnterminatedStrLit:        "UnterminatedStrLit",
	UnterminatedRegxp:         "UnterminatedRegxp",
	UnterminatedTpl:           "UnterminatedTpl",
	UnterminatedBlockComment:  "UnterminatedBlockComment",
	NumericSeparatorMisplaced: "NumericSeparatorMisplaced",
	InvalidNumber:             "InvalidNumber",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// LexError is a structured lexical error with a precise source span.
// Errors are returned as plain values, never logged implicitly.
type LexError struct {
	Kind ErrorKind
	Span Span
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Span.Start, e.Span.End, e.Msg)
}

func newError(kind ErrorKind, start, end int, format string, args ...interface{}) *LexError {
	return &LexError{
		Kind: kind,
		Span: Span{Start: start, End: end},
		Msg:  fmt.Sprintf(format, args...),
	}
}
