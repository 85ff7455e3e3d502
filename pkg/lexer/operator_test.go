package lexer

import (
	"testing"
)

func TestOperators(t *testing.T) {
	tests := []struct {
		input string
		want  []TokenKind
	}{
		{"+ ++ +=", []TokenKind{Plus, PlusPlus, PlusEq, EOF}},
		{"- -- -=", []TokenKind{Minus, MinusMinus, MinusEq, EOF}},
		{"* ** *= **=", []TokenKind{Star, StarStar, StarEq, StarStarEq, EOF}},
		{"% %=", []TokenKind{Percent, PercentEq, EOF}},
		{"& && &=", []TokenKind{Amp, AmpAmp, AmpEq, EOF}},
		{"| || |=", []TokenKind{Pipe, PipePipe, PipeEq, EOF}},
		{"^ ^=", []TokenKind{Caret, CaretEq, EOF}},
		{"! != !==", []TokenKind{Bang, NotEq, NotEqEq, EOF}},
		{"= == === =>", []TokenKind{Assign, EqEq, EqEqEq, Arrow, EOF}},
		{"< <= << <<=", []TokenKind{Lt, LtEq, Shl, ShlEq, EOF}},
		{"> >= >> >>= >>> >>>=", []TokenKind{Gt, GtEq, Shr, ShrEq, Ushr, UshrEq, EOF}},
		{". ... .5", []TokenKind{Dot, DotDotDot, Number, EOF}},
		{": ?", []TokenKind{Colon, Question, EOF}},
		{"( ) [ ] { } ; , @ ~", []TokenKind{
			LParen, RParen, LBracket, RBracket, LBrace, RBrace, Semi, Comma, At, Tilde, EOF,
		}},
	}

	for _, tt := range tests {
		expectTokens(t, tt.input, ContextFlags{}, tt.want)
	}
}

func TestFnBindDoubleColon(t *testing.T) {
	expectTokens(t, "::", ContextFlags{FnBind: true}, []TokenKind{ColonColon, EOF})
	// Without the extension flag "::" lexes as two Colon tokens.
	expectTokens(t, "::", ContextFlags{}, []TokenKind{Colon, Colon, EOF})
}

func TestDivisionVsRegex(t *testing.T) {
	// After an identifier (which completes an expression), '/' is division.
	expectTokens(t, "a / b", ContextFlags{}, []TokenKind{Ident, Slash, Ident, EOF})
	// At start of input (is_expr_allowed == true), '/' opens a regex.
	expectTokens(t, "/a/g", ContextFlags{}, []TokenKind{Regex, EOF})
	// After '(' (an opening punctuator), '/' opens a regex.
	expectTokens(t, "(/a/)", ContextFlags{}, []TokenKind{LParen, Regex, RParen, EOF})
	// After ')' (closes an expression), '/' is division.
	expectTokens(t, "(a) / b", ContextFlags{}, []TokenKind{LParen, Ident, RParen, Slash, Ident, EOF})
	// After the "return" keyword, '/' opens a regex.
	expectTokens(t, "return /a/", ContextFlags{}, []TokenKind{Keyword, Regex, EOF})
	// After the "this" keyword (completes an expression), '/' is division.
	expectTokens(t, "this / 2", ContextFlags{}, []TokenKind{Keyword, Slash, Number, EOF})
}

func TestLegacyHTMLComments(t *testing.T) {
	expectTokens(t, "<!-- comment\n1", ContextFlags{}, []TokenKind{Number, EOF})
	// "-->" only opens a comment at the start of a line.
	expectTokens(t, "--> comment\n1", ContextFlags{}, []TokenKind{Number, EOF})
	expectTokens(t, "1\n--> comment\n2", ContextFlags{}, []TokenKind{Number, Number, EOF})
	// Mid-line, "-->" is three ordinary operator tokens.
	expectTokens(t, "1 --> 2", ContextFlags{}, []TokenKind{Number, MinusMinus, Gt, Number, EOF})
	// Forbidden in module code: lexed as real operators instead.
	expectTokens(t, "1\n<!-- x", ContextFlags{Module: true},
		[]TokenKind{Number, Lt, Bang, MinusMinus, Ident, EOF})
}
