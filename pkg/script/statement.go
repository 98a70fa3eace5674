package script

import "strings"

// PreviewWidth is the maximum number of characters of statement text shown in
// progress output and error summaries.
const PreviewWidth = 60

// Statement is a single executable unit of a script.
type Statement struct {
	// Index is the 1-based position of the statement in the script.
	Index int

	// Text is the statement SQL without its terminating semicolon.
	Text string

	// Preview is Text truncated to PreviewWidth characters, with "..." appended
	// when truncation happened.
	Preview string
}

// NewStatement creates a Statement with a computed preview.
func NewStatement(index int, text string) *Statement {
	return &Statement{
		Index:   index,
		Text:    text,
		Preview: Preview(text),
	}
}

// Kind classifies the statement. See Classify.
func (s *Statement) Kind() Kind {
	return Classify(s.Text)
}

// Preview flattens newlines and truncates text to PreviewWidth characters.
func Preview(text string) string {
	flat := strings.ReplaceAll(text, "\n", " ")

	runes := []rune(flat)
	if len(runes) <= PreviewWidth {
		return flat
	}

	return string(runes[:PreviewWidth]) + "..."
}
