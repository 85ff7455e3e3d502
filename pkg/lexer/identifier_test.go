package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		want  []TokenKind
	}{
		{"foo", []TokenKind{Ident, EOF}},
		{"_private", []TokenKind{Ident, EOF}},
		{"$jquery", []TokenKind{Ident, EOF}},
		{"café", []TokenKind{Ident, EOF}},
		{"日本語", []TokenKind{Ident, EOF}},
		{"let", []TokenKind{Ident, EOF}}, // only reserved in strict mode
		{"return", []TokenKind{Keyword, EOF}},
		{"true", []TokenKind{Keyword, EOF}},
	}

	for _, tt := range tests {
		expectTokens(t, tt.input, ContextFlags{}, tt.want)
	}
}

func TestStrictModeReservedWords(t *testing.T) {
	expectTokens(t, "let", ContextFlags{Strict: true}, []TokenKind{Keyword, EOF})
	expectTokens(t, "interface", ContextFlags{Strict: true}, []TokenKind{Keyword, EOF})
}

func TestIdentifierUnicodeEscape(t *testing.T) {
	toks := expectTokens(t, "\\u0061bc", ContextFlags{}, []TokenKind{Ident, EOF})
	assert.Equal(t, "abc", toks[0].Value)
	assert.True(t, toks[0].HasEscape)
}

func TestIdentifierCodePointEscape(t *testing.T) {
	toks := expectTokens(t, `\u{1D49C}`, ContextFlags{}, []TokenKind{Ident, EOF})
	assert.True(t, toks[0].HasEscape)
}

func TestEscapedReservedWordIsAnError(t *testing.T) {
	expectError(t, "\\u0072eturn", ContextFlags{}, EscapeInReservedWord)
}

func TestPrivateName(t *testing.T) {
	toks := expectTokens(t, "#field", ContextFlags{}, []TokenKind{PrivateName, EOF})
	assert.Equal(t, "field", toks[0].Value)
}
