package lexer

// ContextFlags are supplied by the caller on every NextToken call. They
// are never mutated by the lexer itself - the parser owns toggling
// strict/module/extension state as it descends through the grammar.
type ContextFlags struct {
	// Strict forbids legacy octal numbers and octal string escapes.
	Strict bool
	// Module forbids legacy HTML-like comments (<!-- and -->).
	Module bool
	// FnBind enables the :: token (function-bind extension).
	FnBind bool
	// NumericSeparators enables `_` digit-group separators in numeric
	// literals.
	NumericSeparators bool
}
