package lexer

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

// expectTokens runs src through a fresh Lexer and asserts its token
// stream (kinds only) matches want, dumping the actual stream with
// go-spew on mismatch so a failing table entry is easy to diagnose.
func expectTokens(t *testing.T, src string, ctx ContextFlags, want []TokenKind) []SpannedToken {
	t.Helper()

	l := NewString(src)
	var got []SpannedToken
	var kinds []TokenKind

	for {
		tok, err := l.NextToken(ctx)
		if !assert.NoError(t, err, "unexpected lex error for %q", src) {
			t.Log(spew.Sdump(got))
			t.FailNow()
		}
		got = append(got, tok)
		kinds = append(kinds, tok.Kind)
		if tok.Kind == EOF {
			break
		}
	}

	if !assert.Equal(t, want, kinds, "token kinds mismatch for %q", src) {
		t.Log(spew.Sdump(got))
	}

	return got
}

// expectError runs src through a fresh Lexer and asserts it eventually
// fails with the given ErrorKind.
func expectError(t *testing.T, src string, ctx ContextFlags, want ErrorKind) {
	t.Helper()

	l := NewString(src)
	for {
		tok, err := l.NextToken(ctx)
		if err != nil {
			lexErr, ok := err.(*LexError)
			if !assert.True(t, ok, "error is not a *LexError: %v", err) {
				return
			}
			assert.Equal(t, want, lexErr.Kind, "error kind mismatch for %q", src)
			return
		}
		if tok.Kind == EOF {
			t.Fatalf("expected error %s for %q, lexed to EOF instead", want, src)
		}
	}
}
