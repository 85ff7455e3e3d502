package lexer

// readTemplateFragment scans the text of a template chunk until it
// hits `${` (interpolation boundary) or a terminating backtick. It is
// called both for the opening fragment after a backtick and for the
// fragment resumed after a matching `}`.
func (l *Lexer) readTemplateFragment(ctx ContextFlags) (SpannedToken, error) {
	start := l.in.curPos()

	var runes []rune
	hasEscape := false

	for {
		c := l.in.current()
		switch {
		case c == eof:
			return SpannedToken{}, newError(UnterminatedTpl, start, l.in.curPos(), "unterminated template literal")
		case c == '`':
			return SpannedToken{
				Token: Token{Kind: TemplateFragment, Value: string(runes), HasEscape: hasEscape, TemplateTail: true},
				Span:  Span{Start: start, End: l.in.curPos()},
			}, nil
		case c == '$' && l.in.peek() == '{':
			return SpannedToken{
				Token: Token{Kind: TemplateFragment, Value: string(runes), HasEscape: hasEscape, TemplateTail: false},
				Span:  Span{Start: start, End: l.in.curPos()},
			}, nil
		case c == '\r':
			// CRLF normalizes to LF in the decoded buffer.
			runes = append(runes, '\n')
			l.in.bump()
			l.in.eat('\n')
			l.st.hadLineBreak = true
		case c == '\n' || c == lineSeparator || c == paragraphSeparator:
			runes = append(runes, c)
			l.in.bump()
			l.st.hadLineBreak = true
		case c == '\\':
			decoded, err := l.readEscape(ctx, true)
			if err != nil {
				return SpannedToken{}, err
			}
			hasEscape = true
			runes = append(runes, decoded...)
		default:
			runes = append(runes, c)
			l.in.bump()
		}
	}
}

// startTemplate is called on seeing a backtick outside of any template:
// it emits the Backtick token and primes the state to scan a fragment
// next.
func (l *Lexer) startTemplate() SpannedToken {
	start := l.in.curPos()
	l.in.bump()
	l.st.pushTemplate()
	return SpannedToken{
		Token: Token{Kind: Backtick},
		Span:  Span{Start: start, End: l.in.curPos()},
	}
}

// enterInterpolation is called after a TemplateFragment that ended on
// `${`: it consumes the two characters and emits the DollarBrace token.
// The template frame pushed by startTemplate already tracks brace depth
// for this interpolation, so the lexer can tell the matching `}` that
// closes it (emitted as RBrace, same as any other `}`) from a nested
// block's closing brace - only the former primes awaitingFragment.
func (l *Lexer) enterInterpolation() SpannedToken {
	start := l.in.curPos()
	l.in.bump() // '$'
	l.in.bump() // '{'
	return SpannedToken{
		Token: Token{Kind: DollarBrace},
		Span:  Span{Start: start, End: l.in.curPos()},
	}
}

// closeTemplate is called when a template fragment ends on a
// terminating backtick: it consumes the backtick, emits the Backtick
// token, and pops the template frame.
func (l *Lexer) closeTemplate() SpannedToken {
	start := l.in.curPos()
	l.in.bump()
	l.st.popTemplate()
	return SpannedToken{
		Token: Token{Kind: Backtick},
		Span:  Span{Start: start, End: l.in.curPos()},
	}
}
