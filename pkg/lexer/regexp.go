package lexer

// readRegex scans a /pattern/flags regex literal. Must only be called
// when state.isExprAllowed was true at the moment '/' was seen.
func (l *Lexer) readRegex() (SpannedToken, error) {
	start := l.in.curPos()
	l.in.bump() // consume opening '/'

	patternStart := l.in.curPos()
	inClass := false

	for {
		c := l.in.current()
		switch {
		case c == eof || isLineTerminator(c):
			return SpannedToken{}, newError(UnterminatedRegxp, start, l.in.curPos(), "unterminated regular expression")
		case c == '\\':
			l.in.bump()
			if l.in.current() == eof {
				return SpannedToken{}, newError(UnterminatedRegxp, start, l.in.curPos(), "unterminated regular expression")
			}
			l.in.bump()
		case c == '[':
			inClass = true
			l.in.bump()
		case c == ']' && inClass:
			inClass = false
			l.in.bump()
		case c == '/' && !inClass:
			goto endPattern
		default:
			l.in.bump()
		}
	}

endPattern:
	pattern := l.in.sliceFrom(patternStart)
	l.in.bump() // consume closing '/'

	flagsStart := l.in.curPos()
	for isIDContinue(l.in.current()) {
		l.in.bump()
	}
	flags := l.in.sliceFrom(flagsStart)

	return SpannedToken{
		Token: Token{Kind: Regex, Pattern: pattern, Flags: flags},
		Span:  Span{Start: start, End: l.in.curPos()},
	}, nil
}
