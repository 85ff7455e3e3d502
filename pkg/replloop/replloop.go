// Package replloop implements an interactive line-at-a-time tokenizer,
// the lexer-only counterpart to a language REPL: it echoes back the
// token stream for whatever is typed instead of evaluating it.
package replloop

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sambeau/ecmalex/pkg/ecmalex"
	"github.com/sambeau/ecmalex/pkg/lexer"
)

const PROMPT = ">> "

const LOGO = `
█▀▀ █▀▀ █▀▄▀█ ▄▀█ █░░ █▀▀ ▀▄▀
██▄ █▄▄ █░▀░█ █▀█ █▄▄ ██▄ █░█ `

// Start runs the tokenizing REPL, reading lines from in and writing the
// token stream for each to out, until in is exhausted or the user types
// "exit"/"quit".
func Start(in io.Reader, out io.Writer, version string, opts ...ecmalex.Option) {
	scanner := bufio.NewScanner(in)

	fmt.Fprintf(out, "%s", LOGO)
	fmt.Fprintln(out, "v", version)
	fmt.Fprintln(out, "")

	for {
		fmt.Fprintf(out, "%s", PROMPT)
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		if line == "exit" || line == "quit" {
			fmt.Fprintf(out, "Goodbye!\n")
			return
		}

		toks, err := ecmalex.Tokenize(line, opts...)
		if err != nil {
			printTokenizeError(out, err)
			continue
		}
		printTokens(out, toks)
	}
}

func printTokens(out io.Writer, toks []lexer.SpannedToken) {
	for _, tok := range toks {
		if tok.Kind == lexer.EOF {
			continue
		}
		fmt.Fprintf(out, "%-18s %q\n", tok.Kind, tokenText(tok))
	}
}

func tokenText(tok lexer.SpannedToken) string {
	switch tok.Kind {
	case lexer.Ident, lexer.Keyword, lexer.PrivateName, lexer.String, lexer.TemplateFragment:
		return tok.Value
	case lexer.Regex:
		return "/" + tok.Pattern + "/" + tok.Flags
	case lexer.Number:
		return fmt.Sprintf("%v", tok.Num)
	default:
		return tok.Kind.String()
	}
}

func printTokenizeError(out io.Writer, err error) {
	fmt.Fprintf(out, "Woops! %s\n", err)
}
