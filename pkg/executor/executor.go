package executor

import (
	"context"
	"log/slog"
	"time"

	"github.com/pseudomuto/storekeeper/pkg/script"
	"github.com/pseudomuto/storekeeper/pkg/warehouse"
)

type (
	// Executor runs script statements against a warehouse, one at a time.
	//
	// A failing statement never stops the run: its error is recorded in the
	// RunReport and execution continues with the next statement. Statements
	// that are display-only queries (a query with a LIMIT clause) run through
	// the query path and their failures are not counted.
	//
	// Example usage:
	//
	//	exec := executor.New(executor.Config{
	//		Client: client,
	//		OnOutcome: func(o *executor.Outcome) {
	//			fmt.Printf("[%d] %s\n", o.Statement.Index, o.Status())
	//		},
	//	})
	//
	//	report := exec.Execute(ctx, script.Parse(text))
	//	fmt.Printf("%d/%d statements succeeded\n", report.Successful, report.Total)
	Executor struct {
		client    warehouse.Client
		onOutcome func(*Outcome)
	}

	// Config contains configuration options for creating a new Executor.
	Config struct {
		// Client used to run every statement. It must already be connected.
		Client warehouse.Client

		// OnOutcome, when set, is called with each outcome as soon as the
		// statement completes.
		OnOutcome func(*Outcome)
	}
)

// New creates a new Executor with the provided configuration.
func New(config Config) *Executor {
	return &Executor{
		client:    config.Client,
		onOutcome: config.OnOutcome,
	}
}

// Execute runs stmts in order and returns the accumulated report. It never
// returns early; the report always holds one outcome per statement.
func (e *Executor) Execute(ctx context.Context, stmts []*script.Statement) *RunReport {
	report := &RunReport{
		Errors:   make([]StatementError, 0),
		Outcomes: make([]*Outcome, 0, len(stmts)),
	}

	for _, stmt := range stmts {
		outcome := e.run(ctx, stmt)
		report.record(outcome)

		if e.onOutcome != nil {
			e.onOutcome(outcome)
		}
	}

	return report
}

func (e *Executor) run(ctx context.Context, stmt *script.Statement) *Outcome {
	outcome := &Outcome{
		Statement: stmt,
		Kind:      stmt.Kind(),
		Display:   script.IsDisplayOnly(stmt.Text),
	}

	start := time.Now()
	switch outcome.Kind {
	case script.KindQuery:
		outcome.Result, outcome.Err = e.client.Query(ctx, stmt.Text)
	default:
		outcome.RowsAffected, outcome.Err = e.client.Exec(ctx, stmt.Text)
	}
	outcome.Duration = time.Since(start)

	slog.Debug("Executed statement",
		"index", stmt.Index,
		"kind", outcome.Kind,
		"display", outcome.Display,
		"status", outcome.Status(),
		"duration", outcome.Duration,
	)

	return outcome
}
