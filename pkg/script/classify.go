package script

import (
	"regexp"
	"strings"
	"unicode"
)

type (
	// Kind determines which client operation runs a statement.
	Kind string
)

const (
	// KindQuery statements return rows.
	KindQuery Kind = "query"

	// KindUpdate statements mutate state and report an affected row count.
	KindUpdate Kind = "update"
)

var (
	// queryKeywords are the leading keywords of row-returning statements.
	queryKeywords = map[string]struct{}{
		"SELECT":   {},
		"SHOW":     {},
		"WITH":     {},
		"DESCRIBE": {},
		"DESC":     {},
		"EXPLAIN":  {},
	}

	limitClause = regexp.MustCompile(`(?i)\bLIMIT\b`)
)

// Classify returns KindQuery when the case-insensitive leading keyword of the
// statement denotes a read, and KindUpdate otherwise.
//
//	Classify("select * from t")          // KindQuery
//	Classify("INSERT INTO t VALUES (1)") // KindUpdate
func Classify(text string) Kind {
	if _, ok := queryKeywords[LeadingKeyword(text)]; ok {
		return KindQuery
	}

	return KindUpdate
}

// IsDisplayOnly reports whether a statement is a query that also contains a
// LIMIT clause. Such statements exist to show intermediate output and their
// failures are not tracked.
func IsDisplayOnly(text string) bool {
	return Classify(text) == KindQuery && limitClause.MatchString(text)
}

// LeadingKeyword returns the first word of the statement in upper case,
// ignoring leading whitespace and opening parentheses.
func LeadingKeyword(text string) string {
	trimmed := strings.TrimLeftFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == '('
	})

	end := strings.IndexFunc(trimmed, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '_'
	})
	if end < 0 {
		end = len(trimmed)
	}

	return strings.ToUpper(trimmed[:end])
}
