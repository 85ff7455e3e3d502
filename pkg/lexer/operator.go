package lexer

// This file implements operator/punctuator dispatch: one function per
// operator family rather than one giant switch arm.

func simpleToken(kind TokenKind, start, end int) SpannedToken {
	return SpannedToken{Token: Token{Kind: kind}, Span: Span{Start: start, End: end}}
}

// readDot handles '.': "..." | ".5" (a decimal number) | "."
func (l *Lexer) readDot(ctx ContextFlags) (SpannedToken, error) {
	start := l.in.curPos()
	if isDigit(l.in.peek()) {
		return l.readNumber(ctx)
	}
	l.in.bump() // 1st '.'
	if l.in.current() == '.' && l.in.peek() == '.' {
		l.in.bump()
		l.in.bump()
		return simpleToken(DotDotDot, start, l.in.curPos()), nil
	}
	return simpleToken(Dot, start, l.in.curPos()), nil
}

// readStarOrPercent handles '*' -> * ** *= **= and '%' -> % %=.
func (l *Lexer) readStarOrPercent(c rune) SpannedToken {
	start := l.in.curPos()
	l.in.bump()

	if c == '*' {
		if l.in.eat('*') {
			if l.in.eat('=') {
				return simpleToken(StarStarEq, start, l.in.curPos())
			}
			return simpleToken(StarStar, start, l.in.curPos())
		}
		if l.in.eat('=') {
			return simpleToken(StarEq, start, l.in.curPos())
		}
		return simpleToken(Star, start, l.in.curPos())
	}

	if l.in.eat('=') {
		return simpleToken(PercentEq, start, l.in.curPos())
	}
	return simpleToken(Percent, start, l.in.curPos())
}

// readAmpOrPipe handles '&' -> & && &= and '|' -> | || |=.
func (l *Lexer) readAmpOrPipe(c rune) SpannedToken {
	start := l.in.curPos()
	l.in.bump()

	if l.in.eat(c) {
		if c == '&' {
			return simpleToken(AmpAmp, start, l.in.curPos())
		}
		return simpleToken(PipePipe, start, l.in.curPos())
	}
	if l.in.eat('=') {
		if c == '&' {
			return simpleToken(AmpEq, start, l.in.curPos())
		}
		return simpleToken(PipeEq, start, l.in.curPos())
	}
	if c == '&' {
		return simpleToken(Amp, start, l.in.curPos())
	}
	return simpleToken(Pipe, start, l.in.curPos())
}

// readCaret handles '^' -> ^ ^=.
func (l *Lexer) readCaret() SpannedToken {
	start := l.in.curPos()
	l.in.bump()
	if l.in.eat('=') {
		return simpleToken(CaretEq, start, l.in.curPos())
	}
	return simpleToken(Caret, start, l.in.curPos())
}

// readPlusOrMinus handles '+' -> + ++ += and '-' -> - -- -=. The "-->"
// legacy HTML comment opener is recognized earlier, in
// skipWhitespaceAndComments, so by the time dispatch reaches '-' here
// it is always a real operator.
func (l *Lexer) readPlusOrMinus(c rune) SpannedToken {
	start := l.in.curPos()
	l.in.bump()

	if l.in.eat(c) {
		if c == '+' {
			return simpleToken(PlusPlus, start, l.in.curPos())
		}
		return simpleToken(MinusMinus, start, l.in.curPos())
	}
	if l.in.eat('=') {
		if c == '+' {
			return simpleToken(PlusEq, start, l.in.curPos())
		}
		return simpleToken(MinusEq, start, l.in.curPos())
	}
	if c == '+' {
		return simpleToken(Plus, start, l.in.curPos())
	}
	return simpleToken(Minus, start, l.in.curPos())
}

// readBangOrEq handles '!' -> ! != !== and '=' -> = == === =>.
func (l *Lexer) readBangOrEq(c rune) SpannedToken {
	start := l.in.curPos()
	l.in.bump()

	if c == '=' && l.in.eat('>') {
		return simpleToken(Arrow, start, l.in.curPos())
	}

	if l.in.eat('=') {
		if l.in.eat('=') {
			if c == '!' {
				return simpleToken(NotEqEq, start, l.in.curPos())
			}
			return simpleToken(EqEqEq, start, l.in.curPos())
		}
		if c == '!' {
			return simpleToken(NotEq, start, l.in.curPos())
		}
		return simpleToken(EqEq, start, l.in.curPos())
	}

	if c == '!' {
		return simpleToken(Bang, start, l.in.curPos())
	}
	return simpleToken(Assign, start, l.in.curPos())
}

// readColon handles ':' -> : ::.
func (l *Lexer) readColon(ctx ContextFlags) SpannedToken {
	start := l.in.curPos()
	l.in.bump()
	if ctx.FnBind && l.in.eat(':') {
		return simpleToken(ColonColon, start, l.in.curPos())
	}
	return simpleToken(Colon, start, l.in.curPos())
}

// readLt handles '<' -> < <= << <<=. The "<!--"
// legacy HTML comment opener is recognized earlier, in
// skipWhitespaceAndComments, so by the time dispatch reaches '<' here
// it is always a real operator.
func (l *Lexer) readLt() SpannedToken {
	start := l.in.curPos()
	l.in.bump() // consume '<'

	if l.in.eat('<') {
		if l.in.eat('=') {
			return simpleToken(ShlEq, start, l.in.curPos())
		}
		return simpleToken(Shl, start, l.in.curPos())
	}
	if l.in.eat('=') {
		return simpleToken(LtEq, start, l.in.curPos())
	}
	return simpleToken(Lt, start, l.in.curPos())
}

// readSlash handles '/' -> / /= (division), used when state.isExprAllowed
// is false at the moment '/' is seen; otherwise readRegex takes over.
func (l *Lexer) readSlash() SpannedToken {
	start := l.in.curPos()
	l.in.bump()
	if l.in.eat('=') {
		return simpleToken(SlashEq, start, l.in.curPos())
	}
	return simpleToken(Slash, start, l.in.curPos())
}

// readGt handles '>' -> > >= >> >>= >>> >>>=.
func (l *Lexer) readGt() SpannedToken {
	start := l.in.curPos()
	l.in.bump()

	if l.in.eat('>') {
		if l.in.eat('>') {
			if l.in.eat('=') {
				return simpleToken(UshrEq, start, l.in.curPos())
			}
			return simpleToken(Ushr, start, l.in.curPos())
		}
		if l.in.eat('=') {
			return simpleToken(ShrEq, start, l.in.curPos())
		}
		return simpleToken(Shr, start, l.in.curPos())
	}
	if l.in.eat('=') {
		return simpleToken(GtEq, start, l.in.curPos())
	}
	return simpleToken(Gt, start, l.in.curPos())
}
