package lexer

import "strconv"

const (
	lineSeparator      = rune(0x2028) // LS
	paragraphSeparator = rune(0x2029) // PS
)

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == lineSeparator || r == paragraphSeparator
}

// readString scans a single- or double-quoted string literal, decoding
// its escapes.
func (l *Lexer) readString(ctx ContextFlags) (SpannedToken, error) {
	start := l.in.curPos()
	quote := l.in.current()
	l.in.bump()

	var runes []rune
	hasEscape := false

	for {
		c := l.in.current()
		switch {
		case c == eof:
			return SpannedToken{}, newError(UnterminatedStrLit, start, l.in.curPos(), "unterminated string literal")
		case c == quote:
			l.in.bump()
			return SpannedToken{
				Token: Token{Kind: String, Value: string(runes), HasEscape: hasEscape},
				Span:  Span{Start: start, End: l.in.curPos()},
			}, nil
		case isLineTerminator(c):
			return SpannedToken{}, newError(UnterminatedStrLit, start, l.in.curPos(),
				"line terminator in string literal")
		case c == '\\':
			decoded, err := l.readEscape(ctx, false)
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

// readEscape decodes one backslash escape sequence. inTemplate disables
// legacy octal escapes unconditionally; strict mode
// disables them for strings via ctx.Strict.
func (l *Lexer) readEscape(ctx ContextFlags, inTemplate bool) ([]rune, error) {
	start := l.in.curPos()
	l.in.bump() // consume '\'

	c := l.in.current()
	switch c {
	case 'n':
		l.in.bump()
		return []rune{'\n'}, nil
	case 'r':
		l.in.bump()
		return []rune{'\r'}, nil
	case 't':
		l.in.bump()
		return []rune{'\t'}, nil
	case 'b':
		l.in.bump()
		return []rune{'\b'}, nil
	case 'v':
		l.in.bump()
		return []rune{'\v'}, nil
	case 'f':
		l.in.bump()
		return []rune{'\f'}, nil
	case '\\', '\'', '"', '`':
		l.in.bump()
		return []rune{c}, nil
	case 'x':
		l.in.bump()
		hexStart := l.in.curPos()
		for i := 0; i < 2; i++ {
			if !isHexDigit(l.in.current()) {
				return nil, newError(ExpectedHexChars, start, l.in.curPos(), "expected 2 hex digits after \\x")
			}
			l.in.bump()
		}
		v, _ := strconv.ParseInt(l.in.sliceFrom(hexStart), 16, 32)
		return []rune{rune(v)}, nil
	case 'u':
		l.in.bump()
		return l.readUnicodeEscapeBody(start)
	case '\r':
		l.in.bump()
		l.in.eat('\n') // CRLF counts as one line break
		return nil, nil
	case '\n', lineSeparator, paragraphSeparator:
		l.in.bump()
		return nil, nil
	case '0':
		if !isDigit(l.in.peek()) {
			l.in.bump()
			return []rune{0}, nil
		}
		return l.readLegacyOctalEscape(ctx, start, inTemplate)
	case '1', '2', '3', '4', '5', '6', '7':
		return l.readLegacyOctalEscape(ctx, start, inTemplate)
	case eof:
		return nil, newError(InvalidStrEscape, start, l.in.curPos(), "unterminated escape sequence")
	default:
		l.in.bump()
		return []rune{c}, nil
	}
}

// readUnicodeEscapeBody decodes the body of a \u escape (after the
// 'u'), either \uHHHH or \u{H...H}.
func (l *Lexer) readUnicodeEscapeBody(start int) ([]rune, error) {
	if l.in.is('{') {
		l.in.bump()
		hexStart := l.in.curPos()
		for l.in.current() != '}' && l.in.current() != eof {
			l.in.bump()
		}
		hex := l.in.sliceFrom(hexStart)
		if !l.in.eat('}') {
			return nil, newError(InvalidUnicodeEscape, start, l.in.curPos(), "unterminated \\u{...} escape")
		}
		if hex == "" {
			return nil, newError(InvalidUnicodeEscape, start, l.in.curPos(), "empty \\u{...} escape")
		}
		v, err := strconv.ParseInt(hex, 16, 64)
		if err != nil || v > 0x10FFFF {
			return nil, newError(InvalidCodePoint, start, l.in.curPos(), "code point out of range: %s", hex)
		}
		return []rune{rune(v)}, nil
	}

	hexStart := l.in.curPos()
	for i := 0; i < 4; i++ {
		if !isHexDigit(l.in.current()) {
			return nil, newError(ExpectedHexChars, start, l.in.curPos(), "expected 4 hex digits after \\u")
		}
		l.in.bump()
	}
	v, _ := strconv.ParseInt(l.in.sliceFrom(hexStart), 16, 32)
	return []rune{rune(v)}, nil
}

// readLegacyOctalEscape decodes \0..7 up to three octal digits;
// forbidden in strict mode and always forbidden inside templates.
func (l *Lexer) readLegacyOctalEscape(ctx ContextFlags, start int, inTemplate bool) ([]rune, error) {
	if inTemplate {
		return nil, newError(LegacyOctal, start, l.in.curPos(), "octal escapes are not allowed in template literals")
	}
	if ctx.Strict {
		return nil, newError(LegacyOctal, start, l.in.curPos(), "octal escapes are not allowed in strict mode")
	}

	digitsStart := l.in.curPos()
	for i := 0; i < 3 && isOctalDigit(l.in.current()); i++ {
		l.in.bump()
	}
	v, _ := strconv.ParseInt(l.in.sliceFrom(digitsStart), 8, 32)
	return []rune{rune(v)}, nil
}

func isOctalDigit(r rune) bool {
	return r >= '0' && r <= '7'
}
