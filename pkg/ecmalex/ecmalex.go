package ecmalex

import (
	"fmt"

	"github.com/sambeau/ecmalex/pkg/lexer"
)

// TokenizeError wraps a *lexer.LexError with the filename it occurred
// in, when one was configured via WithFilename.
type TokenizeError struct {
	Filename string
	Err      *lexer.LexError
}

func (e *TokenizeError) Error() string {
	if e.Filename == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Filename, e.Err.Error())
}

func (e *TokenizeError) Unwrap() error {
	return e.Err
}

// Tokenize scans src to completion and returns every token, including
// the final EOF.
func Tokenize(src string, opts ...Option) ([]lexer.SpannedToken, error) {
	config := newConfig(opts...)

	l := lexer.NewString(src)
	l.SkipShebang()

	var toks []lexer.SpannedToken
	for {
		tok, err := l.NextToken(config.Ctx)
		if err != nil {
			lexErr, _ := err.(*lexer.LexError)
			return toks, &TokenizeError{Filename: config.Filename, Err: lexErr}
		}
		config.Logger.LogToken(tok)
		toks = append(toks, tok)
		if tok.Kind == lexer.EOF {
			return toks, nil
		}
	}
}

// Lexer is a streaming wrapper over pkg/lexer.Lexer that applies the
// Context Flags and logger configured via Option.
type Lexer struct {
	inner *lexer.Lexer
	cfg   *Config
	done  bool
	eof   lexer.SpannedToken
}

// NewLexer constructs a streaming Lexer over src.
func NewLexer(src string, opts ...Option) *Lexer {
	config := newConfig(opts...)
	inner := lexer.NewString(src)
	inner.SkipShebang()
	return &Lexer{inner: inner, cfg: config}
}

// Next scans and returns the next token. done is true once EOF has been
// returned; calling Next again after done is a no-op that keeps
// returning the same EOF token.
func (l *Lexer) Next() (lexer.SpannedToken, bool, error) {
	if l.done {
		return l.eof, true, nil
	}
	tok, err := l.inner.NextToken(l.cfg.Ctx)
	if err != nil {
		lexErr, _ := err.(*lexer.LexError)
		return lexer.SpannedToken{}, false, &TokenizeError{Filename: l.cfg.Filename, Err: lexErr}
	}
	l.cfg.Logger.LogToken(tok)
	if tok.Kind == lexer.EOF {
		l.done = true
		l.eof = tok
	}
	return tok, l.done, nil
}
