// Command ecmalex tokenizes ECMAScript source and prints its token
// stream, either from a file, from stdin, or interactively via --repl.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sambeau/ecmalex/pkg/ecmalex"
	"github.com/sambeau/ecmalex/pkg/lexer"
	"github.com/sambeau/ecmalex/pkg/replloop"
)

// Version is set at compile time via -ldflags.
var Version = "0.1.0"

var (
	helpFlag     = flag.Bool("h", false, "Show help message")
	helpLongFlag = flag.Bool("help", false, "Show help message")
	versionFlag  = flag.Bool("V", false, "Show version information")
	versionLong  = flag.Bool("version", false, "Show version information")

	strictFlag            = flag.Bool("strict", false, "Lex in strict mode (forbids legacy octal literals/escapes)")
	moduleFlag            = flag.Bool("module", false, "Lex as module code (forbids legacy HTML comments)")
	fnBindFlag            = flag.Bool("fn-bind", false, "Enable the :: function-bind extension token")
	numericSeparatorsFlag = flag.Bool("numeric-separators", false, "Enable '_' digit-group separators in numbers")
	dialectFlag           = flag.String("dialect", "", "Load Context Flags from a YAML dialect file")

	jsonFlag      = flag.Bool("json", false, "Print the token stream as JSON")
	highlightFlag = flag.Bool("highlight", false, "Colorize the token stream by kind")
	traceFlag     = flag.Bool("trace", false, "Print each token as it is scanned")
	replFlag      = flag.Bool("repl", false, "Start an interactive tokenizing REPL")
)

func main() {
	flag.Usage = printHelp
	flag.Parse()

	if *helpFlag || *helpLongFlag {
		printHelp()
		os.Exit(0)
	}
	if *versionFlag || *versionLong {
		fmt.Printf("ecmalex version %s\n", Version)
		os.Exit(0)
	}

	opts, err := buildOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	if *replFlag {
		replloop.Start(os.Stdin, os.Stdout, Version, opts...)
		return
	}

	args := flag.Args()
	var src []byte
	var filename string
	if len(args) > 0 {
		filename = args[0]
		src, err = os.ReadFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file '%s': %v\n", filename, err)
			os.Exit(1)
		}
	} else {
		src, err = io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
	}

	if filename != "" {
		opts = append(opts, ecmalex.WithFilename(filename))
	}

	toks, err := ecmalex.Tokenize(string(src), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	printTokens(toks)
}

func buildOptions() ([]ecmalex.Option, error) {
	var opts []ecmalex.Option

	// A dialect file supplies the starting flags; each command-line flag
	// can turn a setting on but never off.
	var ctx lexer.ContextFlags
	if *dialectFlag != "" {
		var err error
		ctx, err = ecmalex.LoadDialect(*dialectFlag)
		if err != nil {
			return nil, fmt.Errorf("loading dialect: %w", err)
		}
	}

	opts = append(opts,
		ecmalex.WithStrict(ctx.Strict || *strictFlag),
		ecmalex.WithModule(ctx.Module || *moduleFlag),
		ecmalex.WithFnBind(ctx.FnBind || *fnBindFlag),
		ecmalex.WithNumericSeparators(ctx.NumericSeparators || *numericSeparatorsFlag),
	)

	if *traceFlag {
		opts = append(opts, ecmalex.WithLogger(ecmalex.StdoutLogger()))
	}

	return opts, nil
}

func printTokens(toks []lexer.SpannedToken) {
	switch {
	case *jsonFlag:
		printTokensJSON(toks)
	case *highlightFlag:
		printTokensHighlighted(toks)
	default:
		printTokensPlain(toks)
	}
}

func printTokensPlain(toks []lexer.SpannedToken) {
	for _, tok := range toks {
		fmt.Printf("%-4d %-4d %-18s %q\n", tok.Span.Start, tok.Span.End, tok.Kind, tokenText(tok))
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

func printHelp() {
	fmt.Printf(`ecmalex - ECMAScript lexer version %s

Usage:
  ecmalex [options] [file]

Display Options:
  -h, --help                 Show this help message
  -V, --version              Show version information

Lexical Context Options:
  --strict                   Lex in strict mode
  --module                   Lex as module code
  --fn-bind                  Enable the :: function-bind extension token
  --numeric-separators       Enable '_' digit-group separators in numbers
  --dialect=FILE             Load Context Flags from a YAML dialect file

Output Options:
  --json                     Print the token stream as JSON
  --highlight                Colorize the token stream by kind
  --trace                    Print each token as it is scanned
  --repl                     Start an interactive tokenizing REPL

Examples:
  ecmalex script.js                  Tokenize a file
  cat script.js | ecmalex            Tokenize stdin
  ecmalex --module --json script.mjs Tokenize module code as JSON
  ecmalex --repl                     Start the tokenizing REPL

For more information, visit: https://github.com/sambeau/ecmalex
`, Version)
}
