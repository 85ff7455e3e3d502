package lexer

import "unicode"

// Lexer turns UTF-8 source text into a stream of SpannedTokens. It owns
// only Lexer State - hadLineBreak, isExprAllowed, lastTokenKind, the
// open template frames. The caller supplies ContextFlags on every call
// and is responsible for toggling them as it descends through the
// grammar, keeping lexer state cleanly separated from parser state.
type Lexer struct {
	in *input
	st *state
}

// New constructs a Lexer over raw source bytes.
func New(src []byte) *Lexer {
	return &Lexer{in: newInput(src), st: newState()}
}

// NewString constructs a Lexer over a source string.
func NewString(src string) *Lexer {
	return New([]byte(src))
}

// SkipShebang consumes a leading "#!" line, if present. Must be called,
// if at all, before the first NextToken.
func (l *Lexer) SkipShebang() {
	if l.in.curPos() != 0 || l.in.current() != '#' || l.in.peek() != '!' {
		return
	}
	for !isLineTerminator(l.in.current()) && l.in.current() != eof {
		l.in.bump()
	}
}

// HadLineBreakBeforeLast reports whether a line terminator was consumed
// (as whitespace or inside a comment) immediately before the most
// recently returned token - the signal the parser needs for automatic
// semicolon insertion. For a TemplateFragment it is also true when the
// fragment's own text contains a line terminator.
func (l *Lexer) HadLineBreakBeforeLast() bool {
	return l.st.hadLineBreak
}

// LastTokenKind returns the kind of the most recently emitted token,
// EOF's zero value before the first call to NextToken.
func (l *Lexer) LastTokenKind() TokenKind {
	return l.st.lastTokenKind
}

// NextToken scans and returns the next token, given the grammar context
// the caller currently occupies.
func (l *Lexer) NextToken(ctx ContextFlags) (SpannedToken, error) {
	l.st.hadLineBreak = false

	// A template fragment was just opened by a backtick or resumed by the
	// `}` closing an interpolation; it must be read as raw text, never
	// dispatched on like ordinary source.
	if l.st.awaitingFragment {
		l.st.awaitingFragment = false
		tok, err := l.readTemplateFragment(ctx)
		if err != nil {
			return SpannedToken{}, err
		}
		l.finish(tok)
		return tok, nil
	}

	// The previous token was a TemplateFragment: what follows is fully
	// determined by how it ended, never by ordinary dispatch.
	if l.st.lastTokenKind == TemplateFragment {
		var tok SpannedToken
		if l.st.lastFragmentTail {
			tok = l.closeTemplate()
		} else {
			tok = l.enterInterpolation()
		}
		l.finish(tok)
		return tok, nil
	}

	if err := l.skipWhitespaceAndComments(ctx); err != nil {
		return SpannedToken{}, err
	}

	if l.in.atEOF() {
		tok := SpannedToken{Token: Token{Kind: EOF}, Span: Span{Start: l.in.curPos(), End: l.in.curPos()}}
		l.finish(tok)
		return tok, nil
	}

	c := l.in.current()
	var tok SpannedToken
	var err error

	switch {
	case c == '`':
		tok = l.startTemplate()
		l.st.awaitingFragment = true

	// A '}' that closes the innermost interpolation of the template
	// currently on top of the stack is a real RBrace token; the call
	// after it must read template text, not dispatch ordinarily.
	case c == '}' && l.st.inTemplate() && l.st.currentTemplate().braceDepth == 0:
		tok = l.single(RBrace)
		l.st.awaitingFragment = true

	case isIDStart(c) || c == '\\':
		tok, err = l.readIdentifierOrKeyword(ctx)
	case c == '#':
		tok, err = l.readPrivateName(ctx)
	case isDigit(c):
		tok, err = l.readNumber(ctx)
	case c == '.':
		tok, err = l.readDot(ctx)
	case c == '"' || c == '\'':
		tok, err = l.readString(ctx)

	case c == '/':
		if l.st.isExprAllowed {
			tok, err = l.readRegex()
		} else {
			tok = l.readSlash()
		}

	case c == '*' || c == '%':
		tok = l.readStarOrPercent(c)
	case c == '&' || c == '|':
		tok = l.readAmpOrPipe(c)
	case c == '^':
		tok = l.readCaret()
	case c == '+' || c == '-':
		tok = l.readPlusOrMinus(c)
	case c == '!' || c == '=':
		tok = l.readBangOrEq(c)
	case c == ':':
		tok = l.readColon(ctx)
	case c == '<':
		tok = l.readLt()
	case c == '>':
		tok = l.readGt()

	case c == '(':
		tok = l.single(LParen)
	case c == ')':
		tok = l.single(RParen)
	case c == '[':
		tok = l.single(LBracket)
	case c == ']':
		tok = l.single(RBracket)
	case c == '{':
		if l.st.inTemplate() {
			l.st.currentTemplate().braceDepth++
		}
		tok = l.single(LBrace)
	case c == '}':
		if l.st.inTemplate() {
			l.st.currentTemplate().braceDepth--
		}
		tok = l.single(RBrace)
	case c == ';':
		tok = l.single(Semi)
	case c == ',':
		tok = l.single(Comma)
	case c == '?':
		tok = l.single(Question)
	case c == '@':
		tok = l.single(At)
	case c == '~':
		tok = l.single(Tilde)

	default:
		start := l.in.curPos()
		l.in.bump()
		err = newError(UnexpectedChar, start, l.in.curPos(), "unexpected character %q", c)
	}

	if err != nil {
		return SpannedToken{}, err
	}
	l.finish(tok)
	return tok, nil
}

// single scans a one-codepoint punctuator.
func (l *Lexer) single(kind TokenKind) SpannedToken {
	start := l.in.curPos()
	l.in.bump()
	return simpleToken(kind, start, l.in.curPos())
}

// finish updates Lexer State from the token about to be returned.
func (l *Lexer) finish(tok SpannedToken) {
	l.st.lastTokenKind = tok.Kind
	if tok.Kind != TemplateFragment {
		l.st.atLineStart = false
	}
	if tok.Kind == TemplateFragment {
		l.st.lastFragmentTail = tok.TemplateTail
	}
	if tok.Kind == Keyword {
		l.st.isExprAllowed = exprAllowedAfterKeyword(tok.Value)
	} else {
		l.st.isExprAllowed = exprAllowedAfter(tok.Kind)
	}
}

// skipWhitespaceAndComments consumes whitespace, line/block comments,
// and (outside module code) the legacy HTML-like comment openers
// "<!--" and "-->" that precede the next token.
// All four comment forms live here, rather than scattered across
// operator dispatch, since the grammar treats them uniformly as
// inter-token trivia.
func (l *Lexer) skipWhitespaceAndComments(ctx ContextFlags) error {
	for {
		c := l.in.current()
		switch {
		case c == eof:
			return nil

		case isLineTerminator(c):
			l.st.hadLineBreak = true
			l.st.atLineStart = true
			l.in.bump()

		case unicode.IsSpace(c):
			l.in.bump()

		case c == '/' && l.in.peek() == '/':
			l.skipLineComment()

		case c == '/' && l.in.peek() == '*':
			if err := l.skipBlockComment(); err != nil {
				return err
			}

		case !ctx.Module && c == '-' && l.st.atLineStart &&
			l.in.peek() == '-' && l.in.peekAhead() == '>':
			l.in.bump()
			l.in.bump()
			l.in.bump()
			l.skipLineComment()

		case !ctx.Module && c == '<':
			saved := l.in.curPos()
			l.in.bump()
			if l.in.current() == '!' && l.in.peek() == '-' && l.in.peekAhead() == '-' {
				l.in.bump()
				l.in.bump()
				l.in.bump()
				l.skipLineComment()
			} else {
				l.in.seek(saved)
				return nil
			}

		default:
			return nil
		}
	}
}

// skipLineComment consumes through end of line, leaving the terminator
// itself (if any) for the next skipWhitespaceAndComments iteration to
// register as a line break.
func (l *Lexer) skipLineComment() {
	for !isLineTerminator(l.in.current()) && l.in.current() != eof {
		l.in.bump()
	}
}

// skipBlockComment consumes a /* ... */ comment, already positioned at
// the leading '/'. A line terminator inside one still counts toward
// automatic semicolon insertion.
func (l *Lexer) skipBlockComment() error {
	start := l.in.curPos()
	l.in.bump() // '/'
	l.in.bump() // '*'

	for {
		c := l.in.current()
		if c == eof {
			return newError(UnterminatedBlockComment, start, l.in.curPos(), "unterminated block comment")
		}
		if isLineTerminator(c) {
			l.st.hadLineBreak = true
			l.st.atLineStart = true
		}
		if c == '*' && l.in.peek() == '/' {
			l.in.bump()
			l.in.bump()
			return nil
		}
		l.in.bump()
	}
}
