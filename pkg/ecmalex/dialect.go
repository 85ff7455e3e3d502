package ecmalex

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sambeau/ecmalex/pkg/lexer"
)

// dialectFile is the on-disk shape of a dialect preset: a named bundle
// of Context Flags, so a host application can ship e.g. "es5-script.yaml"
// and "es2022-module.yaml" instead of wiring flags by hand.
type dialectFile struct {
	Strict            bool `yaml:"strict"`
	Module            bool `yaml:"module"`
	FnBind            bool `yaml:"fn_bind"`
	NumericSeparators bool `yaml:"numeric_separators"`
}

// LoadDialect reads a YAML file describing a named Context Flags preset
// and returns the corresponding lexer.ContextFlags.
func LoadDialect(path string) (lexer.ContextFlags, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return lexer.ContextFlags{}, fmt.Errorf("reading dialect file: %w", err)
	}

	var d dialectFile
	if err := yaml.Unmarshal(data, &d); err != nil {
		return lexer.ContextFlags{}, fmt.Errorf("parsing dialect file %s: %w", path, err)
	}

	return lexer.ContextFlags{
		Strict:            d.Strict,
		Module:            d.Module,
		FnBind:            d.FnBind,
		NumericSeparators: d.NumericSeparators,
	}, nil
}
