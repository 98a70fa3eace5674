package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// FormatterOptions controls rendering behavior
type FormatterOptions struct {
	// MaxRows is the largest query result rendered as a table (0 = never)
	MaxRows int
	// RuleWidth is the width of the rules drawn around banners
	RuleWidth int
}

// Defaults are the options used by the CLI
var Defaults = FormatterOptions{
	MaxRows:   10,
	RuleWidth: 70,
}

var (
	successMark = color.New(color.FgGreen)
	failureMark = color.New(color.FgRed)
	warningMark = color.New(color.FgYellow)
	headingText = color.New(color.Bold)
)

// Formatter renders run output with configurable options
type Formatter struct {
	options FormatterOptions
}

// New creates a new Formatter with the specified options
func New(options FormatterOptions) *Formatter {
	if options.RuleWidth <= 0 {
		options.RuleWidth = Defaults.RuleWidth
	}

	return &Formatter{options: options}
}

// Banner writes title between two rules.
func (f *Formatter) Banner(w io.Writer, title string) error {
	rule := strings.Repeat("=", f.options.RuleWidth)
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", rule, headingText.Sprint(title), rule)
	return err
}

// Rule writes a thin separator line.
func (f *Formatter) Rule(w io.Writer) error {
	_, err := fmt.Fprintln(w, strings.Repeat("-", f.options.RuleWidth))
	return err
}

// Step writes a numbered step heading, e.g. "Step 1: Connecting...".
func (f *Formatter) Step(w io.Writer, n int, msg string) error {
	_, err := fmt.Fprintf(w, "Step %d: %s\n", n, msg)
	return err
}

// Success writes a check-marked line.
func (f *Formatter) Success(w io.Writer, format string, args ...any) error {
	return mark(w, "", successMark, "✓", format, args...)
}

// Failure writes a cross-marked line.
func (f *Formatter) Failure(w io.Writer, format string, args ...any) error {
	return mark(w, "", failureMark, "✗", format, args...)
}

// Warning writes a warning-marked line.
func (f *Formatter) Warning(w io.Writer, format string, args ...any) error {
	return mark(w, "", warningMark, "⚠", format, args...)
}

func mark(w io.Writer, prefix string, c *color.Color, symbol, format string, args ...any) error {
	_, err := fmt.Fprintf(w, "%s%s %s\n", prefix, c.Sprint(symbol), fmt.Sprintf(format, args...))
	return err
}
