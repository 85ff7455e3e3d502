package lexer

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Identifier classification uses the standard library's unicode tables,
// so its Unicode version is that of the Go toolchain (Unicode 15.0 for
// the go1.24 toolchain go.mod pins); rangetable only merges those tables.
// See DESIGN.md.
//
// ECMAScript's IdentifierStart/IdentifierPart productions are defined
// over the Unicode ID_Start/ID_Continue properties plus a handful of
// extra code points (ZWJ, ZWNJ) that the language grammar adds on top.
// Go's standard unicode package does not publish ID_Start/ID_Continue
// directly, so the start/continue sets below are approximated from the
// general categories the Unicode Standard Annex #31 recommendation is
// built from, with the ECMAScript-specific additions folded in via
// rangetable.Merge.
const (
	zwj  = rune(0x200D) // zero-width joiner: Continue-only
	zwnj = rune(0x200C) // zero-width non-joiner: Continue-only
)

var (
	idStartTable = rangetable.Merge(
		unicode.L, unicode.Nl, unicode.Other_ID_Start,
	)

	idContinueTable = rangetable.Merge(
		unicode.L, unicode.Nl, unicode.Other_ID_Start,
		unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue,
		rangetable.New(zwj, zwnj),
	)
)

// isIDStart reports whether r may begin an identifier: UnicodeID_Start,
// `_`, or `$`.
func isIDStart(r rune) bool {
	if r == '_' || r == '$' {
		return true
	}
	return unicode.Is(idStartTable, r)
}

// isIDContinue reports whether r may continue an identifier:
// UnicodeID_Continue, `_`, `$`, ZWJ, or ZWNJ.
func isIDContinue(r rune) bool {
	if r == '_' || r == '$' {
		return true
	}
	return unicode.Is(idContinueTable, r)
}
