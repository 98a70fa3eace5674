package script

import "strings"

const (
	blockStart  = "/*"
	blockEnd    = "*/"
	lineComment = "--"
)

// StripComments removes block and line comments from the given script text.
//
// The returned text always has the same number of lines as the input. Lines
// that are entirely commented out become empty lines, which keeps line-ending
// semicolons aligned with the source for Split.
//
// A block comment without a closing marker comments out everything that
// follows it, including all remaining lines. Comment markers preceded by an odd
// number of single quotes on their line are treated as string content and left
// untouched.
func StripComments(text string) string {
	lines := strings.Split(text, "\n")

	inBlock := false
	for i, line := range lines {
		lines[i], inBlock = stripLine(line, inBlock)
	}

	return strings.Join(lines, "\n")
}

// stripLine strips comments from a single line. The inBlock flag reports whether
// the line starts inside an unterminated block comment; the returned flag
// reports whether the next line does.
func stripLine(line string, inBlock bool) (string, bool) {
	var out strings.Builder
	rest := line

	for {
		if inBlock {
			end := strings.Index(rest, blockEnd)
			if end < 0 {
				return out.String(), true
			}

			rest = rest[end+len(blockEnd):]
			inBlock = false
			continue
		}

		kept := out.String()
		bs := markerIndex(kept, rest, blockStart)
		lc := markerIndex(kept, rest, lineComment)

		switch {
		case lc >= 0 && (bs < 0 || lc < bs):
			out.WriteString(rest[:lc])
			return out.String(), false
		case bs >= 0:
			out.WriteString(rest[:bs])
			rest = rest[bs+len(blockStart):]
			inBlock = true
		default:
			out.WriteString(rest)
			return out.String(), false
		}
	}
}

// markerIndex returns the index in rest of the first occurrence of marker that
// is preceded by an even number of single quotes, counting both the already
// kept text of the line and rest itself. It returns -1 when there is none.
func markerIndex(kept, rest, marker string) int {
	quotes := strings.Count(kept, "'")

	offset := 0
	for {
		i := strings.Index(rest[offset:], marker)
		if i < 0 {
			return -1
		}

		pos := offset + i
		if (quotes+strings.Count(rest[:pos], "'"))%2 == 0 {
			return pos
		}

		offset = pos + len(marker)
	}
}
