package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sambeau/ecmalex/pkg/lexer"
)

// jsonToken is the wire shape --json prints one of per token.
type jsonToken struct {
	Kind    string  `json:"kind"`
	Start   int     `json:"start"`
	End     int     `json:"end"`
	Value   string  `json:"value,omitempty"`
	Num     float64 `json:"num,omitempty"`
	BigInt  string  `json:"bigint,omitempty"`
	Pattern string  `json:"pattern,omitempty"`
	Flags   string  `json:"flags,omitempty"`
}

func printTokensJSON(toks []lexer.SpannedToken) {
	out := make([]jsonToken, 0, len(toks))
	for _, tok := range toks {
		jt := jsonToken{
			Kind:  tok.Kind.String(),
			Start: tok.Span.Start,
			End:   tok.Span.End,
		}
		switch tok.Kind {
		case lexer.Ident, lexer.Keyword, lexer.PrivateName, lexer.String, lexer.TemplateFragment:
			jt.Value = tok.Value
		case lexer.Number:
			jt.Num = tok.Num
			if tok.IsBigInt {
				jt.BigInt = tok.BigValue.String()
			}
		case lexer.Regex:
			jt.Pattern = tok.Pattern
			jt.Flags = tok.Flags
		}
		out = append(out, jt)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}
