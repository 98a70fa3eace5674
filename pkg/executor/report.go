package executor

import (
	"time"

	"github.com/pseudomuto/storekeeper/pkg/script"
	"github.com/pseudomuto/storekeeper/pkg/warehouse"
)

type (
	// Outcome is the result of running a single statement.
	Outcome struct {
		// Statement that was executed
		Statement *script.Statement

		// Kind selects the client operation that was used
		Kind script.Kind

		// Display is set for display-only queries, whose failures are not
		// counted as statement errors
		Display bool

		// RowsAffected reported by the warehouse for updates
		RowsAffected int64

		// Result holds the returned rows for queries
		Result *warehouse.Result

		// Err is the raw warehouse error, nil on success
		Err error

		// Duration of the client call
		Duration time.Duration
	}

	// Status summarizes an Outcome.
	Status string

	// StatementError describes a failed statement.
	StatementError struct {
		// Index is the 1-based position of the statement in the script
		Index int

		// Preview is the truncated statement text
		Preview string

		// Message is the raw warehouse error message
		Message string
	}

	// RunReport accumulates the outcomes of a run.
	//
	// Total counts the statements whose failure is tracked, so Total equals
	// Successful plus Failed. Display-only statements are counted in Displayed
	// instead, and Total plus Displayed equals the number of statements run.
	RunReport struct {
		Total      int
		Successful int
		Failed     int
		Displayed  int
		Errors     []StatementError
		Outcomes   []*Outcome
	}
)

const (
	// StatusSuccess indicates the statement completed
	StatusSuccess Status = "success"

	// StatusFailed indicates the statement returned an error
	StatusFailed Status = "failed"

	// StatusDisplayed indicates a display-only query completed
	StatusDisplayed Status = "displayed"

	// StatusDisplayFailed indicates a display-only query returned an error,
	// which is not counted as a failure
	StatusDisplayFailed Status = "display_failed"
)

// Status returns the summarized status of the outcome.
func (o *Outcome) Status() Status {
	switch {
	case o.Display && o.Err != nil:
		return StatusDisplayFailed
	case o.Display:
		return StatusDisplayed
	case o.Err != nil:
		return StatusFailed
	default:
		return StatusSuccess
	}
}

// RowsReturned is the number of rows a query returned.
func (o *Outcome) RowsReturned() int {
	if o.Result == nil {
		return 0
	}

	return len(o.Result.Rows)
}

// HasFailures reports whether any tracked statement failed.
func (r *RunReport) HasFailures() bool {
	return r.Failed > 0
}

func (r *RunReport) record(o *Outcome) {
	r.Outcomes = append(r.Outcomes, o)

	if o.Display {
		r.Displayed++
		return
	}

	r.Total++
	if o.Err == nil {
		r.Successful++
		return
	}

	r.Failed++
	r.Errors = append(r.Errors, StatementError{
		Index:   o.Statement.Index,
		Preview: o.Statement.Preview,
		Message: o.Err.Error(),
	})
}
