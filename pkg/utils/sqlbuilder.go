package utils

import (
	"strings"
)

// SQLBuilder provides a fluent interface for building the catalog and teardown
// statements issued by the warehouse dialects. Identifiers are rendered with
// the builder's Quoter.
//
// Example usage:
//
//	sql := NewSQLBuilder(BacktickIdentifier).
//		Drop("TABLE").
//		IfExists().
//		QualifiedName("analytics", "events").
//		String()
//	// Output: DROP TABLE IF EXISTS `analytics`.`events`
type SQLBuilder struct {
	quote Quoter
	parts []string
}

// NewSQLBuilder creates a new SQLBuilder instance. A nil quoter leaves
// identifiers unchanged.
//
// Example:
//
//	builder := utils.NewSQLBuilder(utils.PlainIdentifier)
func NewSQLBuilder(quote Quoter) *SQLBuilder {
	if quote == nil {
		quote = PlainIdentifier
	}

	return &SQLBuilder{
		quote: quote,
		parts: make([]string, 0, 10),
	}
}

// Drop adds a DROP clause with the specified object type.
//
// Example:
//
//	builder.Drop("DATABASE")    // DROP DATABASE
//	builder.Drop("VIEW")        // DROP VIEW
func (b *SQLBuilder) Drop(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "DROP", objectType)
	return b
}

// IfExists adds an IF EXISTS clause. This should be called after DROP operations.
//
// Example:
//
//	builder.Drop("DATABASE").IfExists()  // DROP DATABASE IF EXISTS
func (b *SQLBuilder) IfExists() *SQLBuilder {
	b.parts = append(b.parts, "IF", "EXISTS")
	return b
}

// Select adds a SELECT clause with the given expressions.
//
// Example:
//
//	builder.Select("COUNT(*) AS cnt")  // SELECT COUNT(*) AS cnt
func (b *SQLBuilder) Select(exprs ...string) *SQLBuilder {
	b.parts = append(b.parts, "SELECT", strings.Join(exprs, ", "))
	return b
}

// From adds a FROM clause with a qualified object name.
//
// Example:
//
//	builder.From("main", "sqlite_master")  // FROM main.sqlite_master
func (b *SQLBuilder) From(parts ...string) *SQLBuilder {
	b.parts = append(b.parts, "FROM", Qualify(b.quote, parts...))
	return b
}

// Where adds a WHERE clause joining the conditions with AND. Nothing is added
// when no conditions are given.
//
// Example:
//
//	builder.Where("type = 'table'")  // WHERE type = 'table'
func (b *SQLBuilder) Where(conds ...string) *SQLBuilder {
	if len(conds) > 0 {
		b.parts = append(b.parts, "WHERE", strings.Join(conds, " AND "))
	}
	return b
}

// Name adds a quoted object name.
//
// Example:
//
//	builder.Name("analytics")  // `analytics` with BacktickIdentifier
func (b *SQLBuilder) Name(name string) *SQLBuilder {
	if name != "" {
		b.parts = append(b.parts, b.quote(name))
	}
	return b
}

// QualifiedName adds a dotted name built from the non-empty parts.
//
// Example:
//
//	builder.QualifiedName("", "events")           // events
//	builder.QualifiedName("analytics", "events")  // analytics.events
func (b *SQLBuilder) QualifiedName(parts ...string) *SQLBuilder {
	if name := Qualify(b.quote, parts...); name != "" {
		b.parts = append(b.parts, name)
	}
	return b
}

// Raw adds raw SQL text to the builder. Use sparingly for complex constructs
// that don't fit the fluent pattern.
//
// Example:
//
//	builder.Raw("CASCADE")  // CASCADE
func (b *SQLBuilder) Raw(sql string) *SQLBuilder {
	if sql != "" {
		b.parts = append(b.parts, sql)
	}
	return b
}

// String builds the statement without a trailing semicolon, matching how
// statements are handed to the warehouse client.
func (b *SQLBuilder) String() string {
	return strings.Join(b.parts, " ")
}
