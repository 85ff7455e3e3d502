package ecmalex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sambeau/ecmalex/pkg/lexer"
)

func TestTokenizeBasic(t *testing.T) {
	toks, err := Tokenize("let x = 1 + 2;")
	require.NoError(t, err)
	require.NotEmpty(t, toks)
	assert.Equal(t, lexer.EOF, toks[len(toks)-1].Kind)
}

func TestTokenizeReportsFilename(t *testing.T) {
	_, err := Tokenize(`"unterminated`, WithFilename("broken.js"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.js")

	var tokErr *TokenizeError
	require.ErrorAs(t, err, &tokErr)
	assert.Equal(t, lexer.UnterminatedStrLit, tokErr.Err.Kind)
}

func TestTokenizeStrictModeRejectsLegacyOctal(t *testing.T) {
	_, err := Tokenize("017", WithStrict(true))
	require.Error(t, err)
}

func TestNewLexerStreaming(t *testing.T) {
	l := NewLexer("a b")

	tok, done, err := l.Next()
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, lexer.Ident, tok.Kind)

	_, done, err = l.Next()
	require.NoError(t, err)
	assert.False(t, done)

	_, done, err = l.Next()
	require.NoError(t, err)
	assert.True(t, done)
}

func TestLoadDialect(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "module.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strict: true\nmodule: true\n"), 0o644))

	ctx, err := LoadDialect(path)
	require.NoError(t, err)
	assert.True(t, ctx.Strict)
	assert.True(t, ctx.Module)
	assert.False(t, ctx.FnBind)
}

func TestBufferedLogger(t *testing.T) {
	logger := NewBufferedLogger()
	_, err := Tokenize("a", WithLogger(logger))
	require.NoError(t, err)

	lines := logger.Lines()
	require.Len(t, lines, 2) // Ident("a"), EOF
	assert.Contains(t, lines[0], "Ident")
	assert.Contains(t, lines[0], `"a"`)
	assert.Contains(t, lines[1], "EOF")
}
