// Package ecmalex is the embeddable façade over pkg/lexer: a small
// options-driven API for tokenizing ECMAScript source without wiring up
// pkg/lexer's ContextFlags and error types by hand.
package ecmalex

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sambeau/ecmalex/pkg/lexer"
)

// Logger receives one call per token scanned while --trace (or
// WithLogger) is active, in the order NextToken produced them.
type Logger interface {
	LogToken(tok lexer.SpannedToken)
}

// formatToken renders a token with the same start, end and kind columns
// as the CLI's plain output mode. The value column differs from that
// mode: identifier, keyword, private-name, string and template text is
// quoted, numbers and regexes are not, a BigInt is shown with its "n"
// suffix, and punctuators and EOF have an empty value column.
func formatToken(tok lexer.SpannedToken) string {
	return fmt.Sprintf("%-4d %-4d %-18s %s", tok.Span.Start, tok.Span.End, tok.Kind, tokenDisplayValue(tok))
}

func tokenDisplayValue(tok lexer.SpannedToken) string {
	switch tok.Kind {
	case lexer.Ident, lexer.Keyword, lexer.PrivateName, lexer.String, lexer.TemplateFragment:
		return fmt.Sprintf("%q", tok.Value)
	case lexer.Number:
		if tok.IsBigInt {
			return tok.BigValue.String() + "n"
		}
		return fmt.Sprintf("%v", tok.Num)
	case lexer.Regex:
		return "/" + tok.Pattern + "/" + tok.Flags
	default:
		return ""
	}
}

// stdoutLogger writes to stdout.
type stdoutLogger struct{}

func (l *stdoutLogger) LogToken(tok lexer.SpannedToken) {
	fmt.Println(formatToken(tok))
}

// StdoutLogger returns a logger that writes to stdout.
func StdoutLogger() Logger {
	return &stdoutLogger{}
}

// writerLogger writes to an io.Writer.
type writerLogger struct {
	w io.Writer
}

func (l *writerLogger) LogToken(tok lexer.SpannedToken) {
	fmt.Fprintln(l.w, formatToken(tok))
}

// WriterLogger returns a logger that writes to an io.Writer.
func WriterLogger(w io.Writer) Logger {
	return &writerLogger{w: w}
}

// BufferedLogger captures one formatted line per token for later
// retrieval, useful in tests that want to assert on the trace a
// tokenization run produced without capturing stdout.
type BufferedLogger struct {
	mu    sync.Mutex
	lines []string
}

// NewBufferedLogger creates a new buffered logger.
func NewBufferedLogger() *BufferedLogger {
	return &BufferedLogger{lines: make([]string, 0)}
}

func (l *BufferedLogger) LogToken(tok lexer.SpannedToken) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, formatToken(tok))
}

// String returns all captured lines joined with newlines.
func (l *BufferedLogger) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.lines, "\n")
}

// Lines returns all captured log lines, one per token seen.
func (l *BufferedLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	result := make([]string, len(l.lines))
	copy(result, l.lines)
	return result
}

// nullLogger discards all output.
type nullLogger struct{}

func (l *nullLogger) LogToken(tok lexer.SpannedToken) {}

// NullLogger returns a logger that discards all output; the default.
func NullLogger() Logger {
	return &nullLogger{}
}

// DefaultLogger is used when no logger is configured.
var DefaultLogger Logger = NullLogger()
