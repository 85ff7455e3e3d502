package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"hello"`, "hello"},
		{`'hello'`, "hello"},
		{`"it's fine"`, "it's fine"},
		{`"line1\nline2"`, "line1\nline2"},
		{`"tab\there"`, "tab\there"},
		{`"\x41"`, "A"},
		{`"A"`, "A"},
		{`"\u{1F600}"`, "\U0001F600"},
		{`"a\
b"`, "ab"}, // line continuation elides the newline
	}

	for _, tt := range tests {
		toks := expectTokens(t, tt.input, ContextFlags{}, []TokenKind{String, EOF})
		assert.Equal(t, tt.want, toks[0].Value, "input %q", tt.input)
	}
}

func TestStringUnterminated(t *testing.T) {
	expectError(t, `"unterminated`, ContextFlags{}, UnterminatedStrLit)
	expectError(t, "\"line\nbreak\"", ContextFlags{}, UnterminatedStrLit)
}

func TestLegacyOctalEscape(t *testing.T) {
	toks := expectTokens(t, `"\101"`, ContextFlags{}, []TokenKind{String, EOF})
	assert.Equal(t, "A", toks[0].Value)
}

func TestLegacyOctalEscapeForbiddenInStrictMode(t *testing.T) {
	expectError(t, `"\101"`, ContextFlags{Strict: true}, LegacyOctal)
}

func TestNullCharEscapeNotFollowedByDigit(t *testing.T) {
	toks := expectTokens(t, `"\0"`, ContextFlags{}, []TokenKind{String, EOF})
	assert.Equal(t, "\x00", toks[0].Value)
}
