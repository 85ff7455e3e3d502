package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyInputYieldsEOF(t *testing.T) {
	expectTokens(t, "", ContextFlags{}, []TokenKind{EOF})
}

func TestSkipShebang(t *testing.T) {
	l := NewString("#!/usr/bin/env ecmalex\nlet x = 1")
	l.SkipShebang()
	tok, err := l.NextToken(ContextFlags{})
	assert.NoError(t, err)
	assert.Equal(t, Ident, tok.Kind)
	assert.Equal(t, "let", tok.Value)
}

func TestSkipShebangRequiresBangAfterHash(t *testing.T) {
	// "#1" isn't a shebang opener (no '!') and isn't a valid private name
	// either, so SkipShebang must leave it for NextToken to reject.
	l := NewString("#1")
	l.SkipShebang()
	_, err := l.NextToken(ContextFlags{})
	assert.Error(t, err)
}

func TestHadLineBreakBeforeLast(t *testing.T) {
	l := NewString("a\nb")
	ctx := ContextFlags{}

	tok, err := l.NextToken(ctx)
	assert.NoError(t, err)
	assert.Equal(t, Ident, tok.Kind)
	assert.False(t, l.HadLineBreakBeforeLast(), "no line break before the first token")

	tok, err = l.NextToken(ctx)
	assert.NoError(t, err)
	assert.Equal(t, Ident, tok.Kind)
	assert.True(t, l.HadLineBreakBeforeLast(), "a line break separates 'a' and 'b'")
}

func TestHadLineBreakInsideBlockComment(t *testing.T) {
	l := NewString("a /* \n */ b")
	ctx := ContextFlags{}

	_, err := l.NextToken(ctx)
	assert.NoError(t, err)
	_, err = l.NextToken(ctx)
	assert.NoError(t, err)
	assert.True(t, l.HadLineBreakBeforeLast())
}

func TestUnterminatedBlockComment(t *testing.T) {
	expectError(t, "a /* never closes", ContextFlags{}, UnterminatedBlockComment)
}

func TestLineCommentConsumesToEndOfLine(t *testing.T) {
	expectTokens(t, "a // trailing comment\nb", ContextFlags{}, []TokenKind{Ident, Ident, EOF})
}

func TestUnexpectedCharacter(t *testing.T) {
	expectError(t, "\x01", ContextFlags{}, UnexpectedChar)
}

func TestSpanCoversWholeToken(t *testing.T) {
	l := NewString("  foobar")
	tok, err := l.NextToken(ContextFlags{})
	assert.NoError(t, err)
	assert.Equal(t, 2, tok.Span.Start)
	assert.Equal(t, 8, tok.Span.End)
}

func TestLastTokenKind(t *testing.T) {
	l := NewString("a b")
	assert.Equal(t, EOF, l.LastTokenKind())
	_, _ = l.NextToken(ContextFlags{})
	assert.Equal(t, Ident, l.LastTokenKind())
}
