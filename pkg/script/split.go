package script

import "strings"

// Split groups comment-free script text into statements.
//
// Lines are trimmed and accumulated; blank lines are dropped. A statement ends
// when a trimmed line ends with a semicolon. A semicolon anywhere else on a line
// does NOT end a statement, so hand-authored scripts must put each terminating
// semicolon at the end of its line.
//
// Buffered lines are joined with single spaces and the trailing semicolon is
// removed. Content left in the buffer at the end of the text is emitted as a
// final statement even though it was never terminated.
//
// Statements are numbered from 1 in source order.
func Split(stripped string) []*Statement {
	var (
		stmts []*Statement
		buf   []string
	)

	flush := func() {
		text := strings.TrimSpace(strings.TrimRight(strings.Join(buf, " "), ";"))
		buf = buf[:0]

		if text != "" {
			stmts = append(stmts, NewStatement(len(stmts)+1, text))
		}
	}

	for _, line := range strings.Split(stripped, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		buf = append(buf, line)
		if strings.HasSuffix(line, ";") {
			flush()
		}
	}

	if len(buf) > 0 {
		flush()
	}

	return stmts
}

// Parse strips comments from the raw script text and splits the result into
// statements. It is shorthand for Split(StripComments(text)).
func Parse(text string) []*Statement {
	return Split(StripComments(text))
}
