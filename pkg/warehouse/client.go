package warehouse

import (
	"context"
	"strings"
)

type (
	// Client is a connection to a warehouse that executes single statements.
	//
	// Implementations hold at most one connection. Close must be safe to call
	// when Connect was never called or failed.
	Client interface {
		Connect(context.Context) error
		Query(context.Context, string) (*Result, error)
		Exec(context.Context, string) (int64, error)
		Close() error
	}

	// Result holds the rows returned by a query. Text values are always
	// returned as string rather than []byte.
	Result struct {
		Columns []string
		Rows    [][]any
	}
)

// ColumnIndex returns the index of the named column, compared
// case-insensitively, or -1 when the result has no such column.
func (r *Result) ColumnIndex(name string) int {
	for i, col := range r.Columns {
		if strings.EqualFold(col, name) {
			return i
		}
	}

	return -1
}

// Strings returns the named column of every row formatted as a string. A
// missing column yields nil.
func (r *Result) Strings(column string) []string {
	idx := r.ColumnIndex(column)
	if idx < 0 {
		return nil
	}

	values := make([]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		if idx < len(row) {
			values = append(values, AsString(row[idx]))
		}
	}

	return values
}

// Scalar returns the first column of the first row, or nil for an empty result.
func (r *Result) Scalar() any {
	if len(r.Rows) == 0 || len(r.Rows[0]) == 0 {
		return nil
	}

	return r.Rows[0][0]
}
