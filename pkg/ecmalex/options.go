package ecmalex

import "github.com/sambeau/ecmalex/pkg/lexer"

// Config holds tokenization configuration.
type Config struct {
	Ctx      lexer.ContextFlags
	Logger   Logger
	Filename string
}

// Option configures tokenization.
type Option func(*Config)

// WithStrict toggles strict-mode lexical rules.
func WithStrict(strict bool) Option {
	return func(c *Config) { c.Ctx.Strict = strict }
}

// WithModule toggles module-mode lexical rules (forbids legacy HTML
// comments).
func WithModule(module bool) Option {
	return func(c *Config) { c.Ctx.Module = module }
}

// WithFnBind enables the `::` function-bind extension token.
func WithFnBind(enabled bool) Option {
	return func(c *Config) { c.Ctx.FnBind = enabled }
}

// WithNumericSeparators enables `_` digit-group separators in numeric
// literals.
func WithNumericSeparators(enabled bool) Option {
	return func(c *Config) { c.Ctx.NumericSeparators = enabled }
}

// WithContext sets all Context Flags at once, e.g. from LoadDialect.
func WithContext(ctx lexer.ContextFlags) Option {
	return func(c *Config) { c.Ctx = ctx }
}

// WithLogger sets the logger used for --trace-style token output.
func WithLogger(logger Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// WithFilename sets the filename reported in tokenization errors.
func WithFilename(name string) Option {
	return func(c *Config) { c.Filename = name }
}

func newConfig(opts ...Option) *Config {
	c := &Config{Logger: DefaultLogger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
