package lexer

import (
	"math/big"
	"strconv"
	"strings"
)

// readNumber scans a numeric literal starting at the current cursor
// position, which must be on a digit or a '.' followed by a digit,
// including radix prefixes, legacy octal, and BigInt suffixes, with
// overflow and fallback-to-decimal handled per digit run.
func (l *Lexer) readNumber(ctx ContextFlags) (SpannedToken, error) {
	start := l.in.curPos()

	if l.in.is('0') {
		switch l.in.peek() {
		case 'x', 'X':
			return l.readRadixNumber(ctx, start, 16)
		case 'o', 'O':
			return l.readRadixNumber(ctx, start, 8)
		case 'b', 'B':
			return l.readRadixNumber(ctx, start, 2)
		}
	}

	leadingZero := l.in.is('0')
	digits, err := l.readDecimalDigits(ctx, start)
	if err != nil {
		return SpannedToken{}, err
	}

	if leadingZero && len(digits) > 1 {
		if ctx.Strict {
			return SpannedToken{}, newError(LegacyOctal, start, l.in.curPos(),
				"a leading 0 followed by more digits is not allowed in strict mode")
		}
		if allOctalDigits(digits) {
			return l.finishLegacyOctal(start, digits)
		}
		// NonOctalDecimalIntegerLiteral (e.g. 09): falls back to decimal.
	}

	isFloat := false

	if l.in.is('.') {
		isFloat = true
		l.in.bump()
		frac, err := l.readDecimalDigits(ctx, l.in.curPos())
		if err != nil {
			return SpannedToken{}, err
		}
		digits += "." + frac
	}

	if l.in.is('e') || l.in.is('E') {
		isFloat = true
		exp := string(l.in.current())
		l.in.bump()
		if l.in.is('+') || l.in.is('-') {
			exp += string(l.in.current())
			l.in.bump()
		}
		expDigits, err := l.readDecimalDigits(ctx, l.in.curPos())
		if err != nil {
			return SpannedToken{}, err
		}
		if expDigits == "" {
			return SpannedToken{}, newError(InvalidNumber, start, l.in.curPos(), "missing exponent digits")
		}
		digits += exp + expDigits
	}

	if !isFloat && l.in.current() == 'n' && !isIDStart(l.in.peek()) && !isDigit(l.in.peek()) {
		l.in.bump()
		return l.finishBigInt(start, digits, 10)
	}

	if err := l.checkNumberTerminator(start); err != nil {
		return SpannedToken{}, err
	}

	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return SpannedToken{}, newError(InvalidNumber, start, l.in.curPos(), "invalid number literal: %s", digits)
	}

	return SpannedToken{
		Token: Token{Kind: Number, Num: v, Radix: 10},
		Span:  Span{Start: start, End: l.in.curPos()},
	}, nil
}

// readRadixNumber scans 0x/0o/0b literals.
func (l *Lexer) readRadixNumber(ctx ContextFlags, start int, radix int) (SpannedToken, error) {
	l.in.bump() // '0'
	l.in.bump() // x/o/b

	digits, err := l.readRadixDigits(ctx, radix)
	if err != nil {
		return SpannedToken{}, err
	}
	if digits == "" {
		return SpannedToken{}, newError(InvalidNumber, start, l.in.curPos(), "expected at least one digit")
	}

	if l.in.current() == 'n' && !isIDStart(l.in.peek()) && !isDigit(l.in.peek()) {
		l.in.bump()
		return l.finishBigInt(start, digits, radix)
	}

	if err := l.checkNumberTerminator(start); err != nil {
		return SpannedToken{}, err
	}

	// Overflow wraps to a floating approximation rather than failing.
	bi, ok := new(big.Int).SetString(digits, radix)
	var v float64
	if ok {
		v, _ = new(big.Float).SetInt(bi).Float64()
	} else {
		v = 0
	}

	return SpannedToken{
		Token: Token{Kind: Number, Num: v, Radix: radix},
		Span:  Span{Start: start, End: l.in.curPos()},
	}, nil
}

func (l *Lexer) finishLegacyOctal(start int, digits string) (SpannedToken, error) {
	if err := l.checkNumberTerminator(start); err != nil {
		return SpannedToken{}, err
	}
	bi, _ := new(big.Int).SetString(digits, 8)
	v, _ := new(big.Float).SetInt(bi).Float64()
	return SpannedToken{
		Token: Token{Kind: Number, Num: v, Radix: 8},
		Span:  Span{Start: start, End: l.in.curPos()},
	}, nil
}

func (l *Lexer) finishBigInt(start int, digits string, radix int) (SpannedToken, error) {
	if err := l.checkNumberTerminator(start); err != nil {
		return SpannedToken{}, err
	}
	bi, ok := new(big.Int).SetString(digits, radix)
	if !ok {
		return SpannedToken{}, newError(InvalidNumber, start, l.in.curPos(), "invalid BigInt literal")
	}
	v, _ := new(big.Float).SetInt(bi).Float64()
	return SpannedToken{
		Token: Token{Kind: Number, Num: v, Radix: radix, IsBigInt: true, BigValue: bi},
		Span:  Span{Start: start, End: l.in.curPos()},
	}, nil
}

// checkNumberTerminator enforces "a number literal must not be
// immediately followed by an identifier-start character or another
// digit".
func (l *Lexer) checkNumberTerminator(start int) error {
	c := l.in.current()
	if isDigit(c) || isIDStart(c) {
		return newError(InvalidNumber, start, l.in.curPos(), "number literal followed by identifier character")
	}
	return nil
}

// readDecimalDigits reads a run of 0-9, honoring numeric separators when
// enabled.
func (l *Lexer) readDecimalDigits(ctx ContextFlags, runStart int) (string, error) {
	return l.readDigitRun(ctx, runStart, isDigit)
}

func (l *Lexer) readRadixDigits(ctx ContextFlags, radix int) (string, error) {
	pred := func(r rune) bool { return isRadixDigit(r, radix) }
	return l.readDigitRun(ctx, l.in.curPos(), pred)
}

func (l *Lexer) readDigitRun(ctx ContextFlags, runStart int, isDigitRune func(rune) bool) (string, error) {
	var b strings.Builder
	lastWasSep := false
	sawDigit := false

	for {
		c := l.in.current()
		if c == '_' {
			if !ctx.NumericSeparators {
				break
			}
			if !sawDigit || lastWasSep {
				return "", newError(NumericSeparatorMisplaced, runStart, l.in.curPos(),
					"numeric separator must be between two digits")
			}
			lastWasSep = true
			l.in.bump()
			continue
		}
		if !isDigitRune(c) {
			break
		}
		b.WriteRune(c)
		sawDigit = true
		lastWasSep = false
		l.in.bump()
	}

	if lastWasSep {
		return "", newError(NumericSeparatorMisplaced, runStart, l.in.curPos(),
			"numeric separator may not trail a digit run")
	}

	return b.String(), nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isRadixDigit(r rune, radix int) bool {
	switch radix {
	case 2:
		return r == '0' || r == '1'
	case 8:
		return r >= '0' && r <= '7'
	case 16:
		return isHexDigit(r)
	default:
		return isDigit(r)
	}
}

func allOctalDigits(digits string) bool {
	for _, r := range digits {
		if r < '0' || r > '7' {
			return false
		}
	}
	return true
}
