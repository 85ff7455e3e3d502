package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputLookahead(t *testing.T) {
	in := newInput([]byte("abc"))
	assert.Equal(t, 'a', in.current())
	assert.Equal(t, 'b', in.peek())
	assert.Equal(t, 'c', in.peekAhead())

	in.bump()
	assert.Equal(t, 'b', in.current())
	assert.Equal(t, 'c', in.peek())
	assert.Equal(t, rune(eof), in.peekAhead())

	in.bump()
	in.bump()
	assert.True(t, in.atEOF())
	assert.Equal(t, rune(eof), in.current())
}

func TestInputMultibyte(t *testing.T) {
	in := newInput([]byte("é€"))
	assert.Equal(t, 'é', in.current())
	assert.Equal(t, '€', in.peek())
	in.bump()
	assert.Equal(t, '€', in.current())
}

func TestInputStripsLeadingBOM(t *testing.T) {
	src := append([]byte{0xEF, 0xBB, 0xBF}, "x"...)
	in := newInput(src)
	assert.Equal(t, 'x', in.current())
}

func TestInputEatAndIs(t *testing.T) {
	in := newInput([]byte("=="))
	assert.True(t, in.is('='))
	assert.True(t, in.eat('='))
	assert.True(t, in.eat('='))
	assert.False(t, in.eat('='))
}

func TestInputSeek(t *testing.T) {
	in := newInput([]byte("abc"))
	saved := in.curPos()
	in.bump()
	in.bump()
	in.seek(saved)
	assert.Equal(t, 'a', in.current())
}
