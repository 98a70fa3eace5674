package testutil

import (
	"context"

	"github.com/pseudomuto/storekeeper/pkg/warehouse"
)

// MockClient is a warehouse.Client with per-call hooks. Every call is
// recorded in order.
type MockClient struct {
	ConnectFunc func(context.Context) error
	QueryFunc   func(context.Context, string) (*warehouse.Result, error)
	ExecFunc    func(context.Context, string) (int64, error)

	Connects int
	Closes   int
	Queries  []string
	Execs    []string
	Calls    []string
}

var _ warehouse.Client = (*MockClient)(nil)

// Connect implements warehouse.Client
func (m *MockClient) Connect(ctx context.Context) error {
	m.Connects++
	if m.ConnectFunc != nil {
		return m.ConnectFunc(ctx)
	}
	return nil
}

// Query implements warehouse.Client
func (m *MockClient) Query(ctx context.Context, sql string) (*warehouse.Result, error) {
	m.Queries = append(m.Queries, sql)
	m.Calls = append(m.Calls, sql)
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, sql)
	}
	return &warehouse.Result{}, nil
}

// Exec implements warehouse.Client
func (m *MockClient) Exec(ctx context.Context, sql string) (int64, error) {
	m.Execs = append(m.Execs, sql)
	m.Calls = append(m.Calls, sql)
	if m.ExecFunc != nil {
		return m.ExecFunc(ctx, sql)
	}
	return 0, nil
}

// Close implements warehouse.Client
func (m *MockClient) Close() error {
	m.Closes++
	return nil
}

// Names builds a catalog listing result with a single name column.
func Names(names ...string) *warehouse.Result {
	res := &warehouse.Result{Columns: []string{warehouse.NameColumn}}
	for _, n := range names {
		res.Rows = append(res.Rows, []any{n})
	}
	return res
}

// Count builds a row count result.
func Count(n int64) *warehouse.Result {
	return &warehouse.Result{
		Columns: []string{"cnt"},
		Rows:    [][]any{{n}},
	}
}
