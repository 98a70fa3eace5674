package utils

import "strings"

// Quoter renders a single identifier part for a SQL dialect.
type Quoter func(part string) string

// BacktickIdentifier adds backticks around an identifier, handling nested identifiers.
// It properly handles database.table style identifiers by backticking each part.
//
// Examples:
//   - "table" -> "`table`"
//   - "database.table" -> "`database`.`table`"
//   - "`table`" -> "`table`" (already backticked, not double-backticked)
//   - "" -> ""
func BacktickIdentifier(name string) string {
	if name == "" {
		return ""
	}

	if IsBackticked(name) {
		return name
	}

	parts := strings.Split(name, ".")
	for i, part := range parts {
		if IsBackticked(part) {
			continue
		}
		parts[i] = "`" + part + "`"
	}
	return strings.Join(parts, ".")
}

// PlainIdentifier returns the identifier unchanged. Dialects that fold unquoted
// names (Snowflake, Postgres) use it so that manifest names match the catalog
// the same way they do in hand-written scripts.
func PlainIdentifier(name string) string {
	return name
}

// Qualify joins the non-empty parts with dots, rendering each one with q.
//
// Examples:
//   - (PlainIdentifier, "FEAT_DB", "FEAT_SCHEMA", "t") -> "FEAT_DB.FEAT_SCHEMA.t"
//   - (BacktickIdentifier, "", "db", "t") -> "`db`.`t`"
func Qualify(q Quoter, parts ...string) string {
	rendered := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		rendered = append(rendered, q(part))
	}
	return strings.Join(rendered, ".")
}

// QuoteLiteral renders s as a single-quoted SQL string literal, doubling any
// embedded quotes.
//
// Examples:
//   - "FEAT_SCHEMA" -> "'FEAT_SCHEMA'"
//   - "it's" -> "'it''s'"
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// IsBackticked checks if a string is already wrapped in backticks.
//
// Examples:
//   - "`table`" -> true
//   - "table" -> false
//   - "`db`.`table`" -> false (qualified name, not a single backticked identifier)
//   - "" -> false
func IsBackticked(s string) bool {
	return len(s) >= 2 && s[0] == '`' && s[len(s)-1] == '`' && !strings.Contains(s[1:len(s)-1], "`")
}
