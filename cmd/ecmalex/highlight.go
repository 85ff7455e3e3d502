package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/sambeau/ecmalex/pkg/lexer"
)

var (
	colorKeyword  = color.New(color.FgMagenta, color.Bold)
	colorIdent    = color.New(color.FgWhite)
	colorLiteral  = color.New(color.FgGreen)
	colorPunct    = color.New(color.FgCyan)
	colorRegex    = color.New(color.FgYellow)
	colorTemplate = color.New(color.FgGreen)
)

// printTokensHighlighted colorizes each token by kind, wrapping stdout
// with go-colorable so ANSI sequences render on Windows consoles, and
// only emitting color at all when stdout is a real terminal
// (go-isatty) — the same combination akashmaji946-go-mix's REPL uses.
func printTokensHighlighted(toks []lexer.SpannedToken) {
	out := colorable.NewColorableStdout()
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	for _, tok := range toks {
		if tok.Kind == lexer.EOF {
			continue
		}
		c, text := highlightStyle(tok)
		c.Fprint(out, text)
		fmt.Fprint(out, " ")
	}
	fmt.Fprintln(out)
}

func highlightStyle(tok lexer.SpannedToken) (*color.Color, string) {
	switch tok.Kind {
	case lexer.Keyword:
		return colorKeyword, tok.Value
	case lexer.Ident, lexer.PrivateName:
		return colorIdent, tok.Value
	case lexer.Number:
		return colorLiteral, fmt.Sprintf("%v", tok.Num)
	case lexer.String:
		return colorLiteral, fmt.Sprintf("%q", tok.Value)
	case lexer.Regex:
		return colorRegex, "/" + tok.Pattern + "/" + tok.Flags
	case lexer.TemplateFragment, lexer.Backtick, lexer.DollarBrace:
		return colorTemplate, tok.Kind.String()
	default:
		return colorPunct, tok.Kind.String()
	}
}
