package lexer

import (
	"strconv"
	"strings"
)

// keywords is the ECMAScript reserved-word table. Words only reserved in
// strict mode are marked separately below.
var keywords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "export": true,
	"extends": true, "finally": true, "for": true, "function": true,
	"if": true, "import": true, "in": true, "instanceof": true,
	"new": true, "return": true, "super": true, "switch": true,
	"this": true, "throw": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true,
	"null": true, "true": true, "false": true,
}

// strictKeywords are additionally reserved in strict mode; reserved-word
// determination depends on Context Flags.
var strictKeywords = map[string]bool{
	"implements": true, "interface": true, "let": true, "package": true,
	"private": true, "protected": true, "public": true, "static": true,
	"yield": true,
}

func isReservedWord(word string, ctx ContextFlags) bool {
	if keywords[word] {
		return true
	}
	if ctx.Strict && strictKeywords[word] {
		return true
	}
	return false
}

// readIdentifierOrKeyword scans an identifier or keyword starting at the
// current cursor position, which must be on an IdentifierStart character
// or a `\` beginning a unicode escape.
func (l *Lexer) readIdentifierOrKeyword(ctx ContextFlags) (SpannedToken, error) {
	start := l.in.curPos()

	var b strings.Builder
	hasEscape := false

	first := true
	for {
		if l.in.is('\\') {
			r, err := l.readIdentifierEscape()
			if err != nil {
				return SpannedToken{}, err
			}
			if first && !isIDStart(r) {
				return SpannedToken{}, newError(InvalidIdentChar, start, l.in.curPos(),
					"\\u escape does not decode to an identifier start character")
			}
			if !first && !isIDContinue(r) {
				return SpannedToken{}, newError(InvalidIdentChar, start, l.in.curPos(),
					"\\u escape does not decode to an identifier continue character")
			}
			b.WriteRune(r)
			hasEscape = true
			first = false
			continue
		}

		r := l.in.current()
		if first {
			if !isIDStart(r) {
				break
			}
		} else if !isIDContinue(r) {
			break
		}
		b.WriteRune(r)
		l.in.bump()
		first = false
	}

	word := b.String()
	end := l.in.curPos()

	if isReservedWord(word, ctx) {
		if hasEscape {
			return SpannedToken{}, newError(EscapeInReservedWord, start, end,
				"reserved word %q may not contain an escape sequence", word)
		}
		return SpannedToken{
			Token: Token{Kind: Keyword, Value: word, HasEscape: false},
			Span:  Span{Start: start, End: end},
		}, nil
	}

	return SpannedToken{
		Token: Token{Kind: Ident, Value: word, HasEscape: hasEscape},
		Span:  Span{Start: start, End: end},
	}, nil
}

// readIdentifierEscape decodes a `\uXXXX` or `\u{H...H}` escape and
// returns the resulting code point.
func (l *Lexer) readIdentifierEscape() (rune, error) {
	start := l.in.curPos()
	l.in.bump() // consume '\'

	if !l.in.eat('u') {
		return 0, newError(ExpectedUnicodeEscape, start, l.in.curPos(),
			"expected 'u' after '\\' in identifier")
	}

	if l.in.is('{') {
		l.in.bump()
		hexStart := l.in.curPos()
		for l.in.current() != '}' && l.in.current() != eof {
			l.in.bump()
		}
		hex := l.in.sliceFrom(hexStart)
		if !l.in.eat('}') {
			return 0, newError(InvalidUnicodeEscape, start, l.in.curPos(), "unterminated \\u{...} escape")
		}
		if hex == "" {
			return 0, newError(InvalidUnicodeEscape, start, l.in.curPos(), "empty \\u{...} escape")
		}
		v, err := strconv.ParseInt(hex, 16, 64)
		if err != nil || v > 0x10FFFF {
			return 0, newError(InvalidCodePoint, start, l.in.curPos(), "code point out of range: %s", hex)
		}
		return rune(v), nil
	}

	hexStart := l.in.curPos()
	for i := 0; i < 4; i++ {
		if !isHexDigit(l.in.current()) {
			return 0, newError(ExpectedHexChars, start, l.in.curPos(), "expected 4 hex digits")
		}
		l.in.bump()
	}
	hex := l.in.sliceFrom(hexStart)
	v, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return 0, newError(InvalidUnicodeEscape, start, l.in.curPos(), "invalid \\u escape: %s", hex)
	}
	return rune(v), nil
}

// readPrivateName scans a `#ident` private-field name.
func (l *Lexer) readPrivateName(ctx ContextFlags) (SpannedToken, error) {
	start := l.in.curPos()
	l.in.bump() // consume '#'

	if !isIDStart(l.in.current()) && l.in.current() != '\\' {
		return SpannedToken{}, newError(UnexpectedChar, start, l.in.curPos(), "expected identifier after '#'")
	}

	ident, err := l.readIdentifierOrKeyword(ctx)
	if err != nil {
		return SpannedToken{}, err
	}

	return SpannedToken{
		Token: Token{Kind: PrivateName, Value: ident.Value, HasEscape: ident.HasEscape},
		Span:  Span{Start: start, End: ident.Span.End},
	}, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
