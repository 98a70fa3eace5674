package executor_test

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/storekeeper/pkg/cmd/testutil"
	"github.com/pseudomuto/storekeeper/pkg/executor"
	"github.com/pseudomuto/storekeeper/pkg/script"
	"github.com/pseudomuto/storekeeper/pkg/warehouse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statements(texts ...string) []*script.Statement {
	stmts := make([]*script.Statement, len(texts))
	for i, text := range texts {
		stmts[i] = script.NewStatement(i+1, text)
	}
	return stmts
}

func TestExecute_FailureIsolation(t *testing.T) {
	mock := &testutil.MockClient{
		ExecFunc: func(_ context.Context, sql string) (int64, error) {
			if strings.Contains(sql, "broken") {
				return 0, errors.New("SQL compilation error: object does not exist")
			}
			return 1, nil
		},
	}

	stmts := statements(
		"CREATE DATABASE db",
		"CREATE SCHEMA db.s",
		"INSERT INTO broken VALUES (1)",
		"INSERT INTO t VALUES (1)",
		"CREATE VIEW v AS SELECT 1",
	)

	report := executor.New(executor.Config{Client: mock}).Execute(context.Background(), stmts)

	require.Equal(t, 5, report.Total)
	require.Equal(t, 4, report.Successful)
	require.Equal(t, 1, report.Failed)
	require.Equal(t, 0, report.Displayed)
	require.True(t, report.HasFailures())
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 3, report.Errors[0].Index)
	assert.Equal(t, "INSERT INTO broken VALUES (1)", report.Errors[0].Preview)
	assert.Equal(t, "SQL compilation error: object does not exist", report.Errors[0].Message)

	require.Equal(t, []string{
		"CREATE DATABASE db",
		"CREATE SCHEMA db.s",
		"INSERT INTO broken VALUES (1)",
		"INSERT INTO t VALUES (1)",
		"CREATE VIEW v AS SELECT 1",
	}, mock.Execs)
}

func TestExecute_Routing(t *testing.T) {
	mock := &testutil.MockClient{
		QueryFunc: func(context.Context, string) (*warehouse.Result, error) {
			return &warehouse.Result{Columns: []string{"a"}, Rows: [][]any{{1}, {2}}}, nil
		},
		ExecFunc: func(context.Context, string) (int64, error) {
			return 7, nil
		},
	}

	stmts := statements(
		"select count(*) from t",
		"SHOW TABLES",
		"insert into t values (1)",
	)

	report := executor.New(executor.Config{Client: mock}).Execute(context.Background(), stmts)

	require.Equal(t, []string{"select count(*) from t", "SHOW TABLES"}, mock.Queries)
	require.Equal(t, []string{"insert into t values (1)"}, mock.Execs)
	require.Equal(t, 3, report.Total)
	require.Equal(t, 3, report.Successful)

	require.Len(t, report.Outcomes, 3)
	assert.Equal(t, script.KindQuery, report.Outcomes[0].Kind)
	assert.Equal(t, 2, report.Outcomes[0].RowsReturned())
	assert.Equal(t, script.KindUpdate, report.Outcomes[2].Kind)
	assert.Equal(t, int64(7), report.Outcomes[2].RowsAffected)
	assert.Equal(t, 0, report.Outcomes[2].RowsReturned())
}

func TestExecute_DisplayOnly(t *testing.T) {
	mock := &testutil.MockClient{
		QueryFunc: func(_ context.Context, sql string) (*warehouse.Result, error) {
			if strings.Contains(sql, "missing") {
				return nil, errors.New("table missing does not exist")
			}
			return &warehouse.Result{}, nil
		},
	}

	stmts := statements(
		"CREATE TABLE t (id INT)",
		"SELECT * FROM t LIMIT 5",
		"SELECT * FROM missing LIMIT 5",
		"SELECT COUNT(*) FROM t",
	)

	report := executor.New(executor.Config{Client: mock}).Execute(context.Background(), stmts)

	require.Equal(t, 2, report.Total)
	require.Equal(t, 2, report.Successful)
	require.Equal(t, 0, report.Failed)
	require.Equal(t, 2, report.Displayed)
	require.Empty(t, report.Errors)
	require.Equal(t, len(stmts), report.Total+report.Displayed)
	require.Equal(t, report.Total, report.Successful+report.Failed)

	assert.Equal(t, executor.StatusSuccess, report.Outcomes[0].Status())
	assert.Equal(t, executor.StatusDisplayed, report.Outcomes[1].Status())
	assert.Equal(t, executor.StatusDisplayFailed, report.Outcomes[2].Status())
	assert.Equal(t, executor.StatusSuccess, report.Outcomes[3].Status())
}

func TestExecute_OnOutcome(t *testing.T) {
	mock := &testutil.MockClient{
		ExecFunc: func(_ context.Context, sql string) (int64, error) {
			if sql == "bad" {
				return 0, errors.New("boom")
			}
			return 0, nil
		},
	}

	var seen []int
	var statuses []executor.Status
	exec := executor.New(executor.Config{
		Client: mock,
		OnOutcome: func(o *executor.Outcome) {
			seen = append(seen, o.Statement.Index)
			statuses = append(statuses, o.Status())
		},
	})

	exec.Execute(context.Background(), statements("ok", "bad", "ok"))

	require.Equal(t, []int{1, 2, 3}, seen)
	require.Equal(t, []executor.Status{executor.StatusSuccess, executor.StatusFailed, executor.StatusSuccess}, statuses)
}

func TestExecute_Empty(t *testing.T) {
	report := executor.New(executor.Config{Client: &testutil.MockClient{}}).Execute(context.Background(), nil)

	require.Equal(t, 0, report.Total)
	require.Equal(t, 0, report.Successful)
	require.Equal(t, 0, report.Failed)
	require.NotNil(t, report.Errors)
	require.Empty(t, report.Outcomes)
	require.False(t, report.HasFailures())
}

func TestExecute_EveryStatementFails(t *testing.T) {
	mock := &testutil.MockClient{
		ExecFunc: func(context.Context, string) (int64, error) {
			return 0, errors.New("warehouse unavailable")
		},
	}

	report := executor.New(executor.Config{Client: mock}).Execute(context.Background(), statements("a", "b", "c"))

	require.Equal(t, 3, report.Total)
	require.Equal(t, 3, report.Failed)
	require.Len(t, report.Errors, 3)
	for i, e := range report.Errors {
		assert.Equal(t, i+1, e.Index)
	}
}
