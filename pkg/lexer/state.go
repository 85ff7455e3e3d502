package lexer

// templateFrame tracks one nested template literal. braceDepth counts
// unmatched `{` seen since the `${` that opened this frame, so the
// lexer can tell a template-closing `}` from a statement block's `}`.
type templateFrame struct {
	braceDepth int
}

// state holds the cross-token flags the lexer keeps between calls to
// NextToken.
type state struct {
	hadLineBreak  bool
	isExprAllowed bool
	lastTokenKind TokenKind
	templates     []templateFrame

	// awaitingFragment is true for the one NextToken call right after an
	// opening backtick or the `}` that closes an interpolation: the
	// driver must read template text, not dispatch on whatever character
	// follows.
	awaitingFragment bool
	// lastFragmentTail records whether the most recently emitted
	// TemplateFragment ended on a backtick (true) or on `${` (false), so
	// the following call knows whether to close the template or open an
	// interpolation.
	lastFragmentTail bool

	// atLineStart tracks whether everything since the last line
	// terminator (or the start of input) has been whitespace or a
	// comment, the condition under which "-->" opens a legacy comment.
	atLineStart bool
}

func newState() *state {
	return &state{
		// At start of input, a '/' opens a regex, not division.
		isExprAllowed: true,
		atLineStart:   true,
	}
}

func (s *state) inTemplate() bool {
	return len(s.templates) > 0
}

func (s *state) pushTemplate() {
	s.templates = append(s.templates, templateFrame{})
}

func (s *state) popTemplate() {
	if len(s.templates) > 0 {
		s.templates = s.templates[:len(s.templates)-1]
	}
}

func (s *state) currentTemplate() *templateFrame {
	if len(s.templates) == 0 {
		return nil
	}
	return &s.templates[len(s.templates)-1]
}

// exprAllowedAfter recomputes is_expr_allowed from the kind of the token
// that was just emitted.
func exprAllowedAfter(kind TokenKind) bool {
	switch kind {
	// Punctuators that cannot terminate an expression.
	case LParen, LBracket, LBrace, Comma, Semi, Colon, Question, Arrow,
		Assign, PlusEq, MinusEq, StarEq, SlashEq, PercentEq, StarStarEq,
		ShlEq, ShrEq, UshrEq, AmpEq, PipeEq, CaretEq,
		Plus, Minus, Star, StarStar, Slash, Percent,
		EqEq, EqEqEq, NotEq, NotEqEq, Lt, LtEq, Gt, GtEq,
		Shl, Shr, Ushr, Amp, Pipe, Caret, AmpAmp, PipePipe,
		Bang, Tilde, PlusPlus, MinusMinus, DotDotDot, DollarBrace, ColonColon, At:
		return true

	// Punctuators/literals that complete an expression.
	case RParen, RBracket, RBrace, Ident, Number, String, Regex,
		TemplateFragment, Dot, Backtick:
		return false

	default:
		// Keyword: resolved by exprAllowedAfterKeyword, which the
		// driver calls instead of this function for Keyword tokens.
		return false
	}
}

// keywordsAllowingExpr is the set of statement/prefix-context keywords
// after which `/` should open a regex.
var keywordsAllowingExpr = map[string]bool{
	"return":     true,
	"throw":      true,
	"typeof":     true,
	"delete":     true,
	"void":       true,
	"in":         true,
	"instanceof": true,
	"new":        true,
	"do":         true,
	"else":       true,
	"case":       true,
	"yield":      true,
	"await":      true,
}

func exprAllowedAfterKeyword(word string) bool {
	return keywordsAllowingExpr[word]
}
