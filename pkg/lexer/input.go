package lexer

import "unicode/utf8"

// eof is the sentinel rune returned once the input is exhausted,
// matching the convention text/scanner uses for the same purpose.
const eof = -1

// input is a random-access cursor over UTF-8 source bytes, exposing
// current/peek/peek-ahead with two code points of lookahead beyond the
// cursor.
type input struct {
	src []byte
	pos int // byte offset of the current rune
}

func newInput(src []byte) *input {
	// Tolerate a leading BOM.
	if len(src) >= 3 && src[0] == 0xEF && src[1] == 0xBB && src[2] == 0xBF {
		src = src[3:]
	}
	return &input{src: src}
}

func (in *input) decodeAt(pos int) (rune, int) {
	if pos >= len(in.src) {
		return eof, 0
	}
	r, width := utf8.DecodeRune(in.src[pos:])
	if r == utf8.RuneError && width <= 1 {
		// Invalid UTF-8 byte: surface it as the rune with the byte's
		// value, one byte wide, rather than resyncing. No caller reports
		// NonUtf8Char; the byte is classified like that code point.
		return rune(in.src[pos]), 1
	}
	return r, width
}

// current returns the code point at the cursor, or eof.
func (in *input) current() rune {
	r, _ := in.decodeAt(in.pos)
	return r
}

func (in *input) currentWidth() int {
	_, w := in.decodeAt(in.pos)
	if w == 0 {
		return 1
	}
	return w
}

// peek returns the code point immediately after the cursor, or eof.
func (in *input) peek() rune {
	r, _ := in.decodeAt(in.pos + in.currentWidth())
	return r
}

func (in *input) peekWidth() int {
	_, w := in.decodeAt(in.pos + in.currentWidth())
	if w == 0 {
		return 1
	}
	return w
}

// peekAhead returns the code point two positions after the cursor, or eof.
func (in *input) peekAhead() rune {
	r, _ := in.decodeAt(in.pos + in.currentWidth() + in.peekWidth())
	return r
}

// bump advances one code point. Past end-of-input it is a no-op.
func (in *input) bump() {
	if in.pos >= len(in.src) {
		return
	}
	in.pos += in.currentWidth()
}

// curPos returns the current byte offset.
func (in *input) curPos() int {
	return in.pos
}

// seek rewinds (or fast-forwards) the cursor to a previously observed
// byte offset. Used for the single case where a 4-codepoint lookahead
// ("<!--") exceeds the 2-codepoint window peek/peekAhead expose: the
// caller consumes the first codepoint, checks the remaining three, and
// seeks back if they didn't match.
func (in *input) seek(pos int) {
	in.pos = pos
}

// eat advances past c if current() == c, reporting whether it did.
func (in *input) eat(c rune) bool {
	if in.current() == c {
		in.bump()
		return true
	}
	return false
}

// is is a pure predicate: does current() equal c?
func (in *input) is(c rune) bool {
	return in.current() == c
}

// atEOF reports whether the cursor has reached the end of input.
func (in *input) atEOF() bool {
	return in.pos >= len(in.src)
}

// sliceFrom returns the raw source bytes between start (inclusive) and
// the current cursor position (exclusive), as a string.
func (in *input) sliceFrom(start int) string {
	return string(in.src[start:in.pos])
}
