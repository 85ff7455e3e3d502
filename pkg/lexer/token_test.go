package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenKindString(t *testing.T) {
	tests := []struct {
		kind TokenKind
		want string
	}{
		{LParen, "("},
		{Arrow, "=>"},
		{DollarBrace, "${"},
		{Ushr, ">>>"},
		{TokenKind(9999), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}
