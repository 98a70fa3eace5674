package format

import (
	"fmt"
	"io"

	"github.com/pseudomuto/storekeeper/pkg/executor"
	"github.com/pseudomuto/storekeeper/pkg/script"
)

const indent = "    "

// Progress writes the line announcing a statement, e.g.
// "[3/12] Executing: CREATE TABLE tx_cleaned AS SELECT ...".
func (f *Formatter) Progress(w io.Writer, total int, stmt *script.Statement) error {
	verb := "Executing"
	if script.IsDisplayOnly(stmt.Text) {
		verb = "Displaying"
	}

	_, err := fmt.Fprintf(w, "[%d/%d] %s: %s\n", stmt.Index, total, verb, stmt.Preview)
	return err
}

// Outcome writes the indented result line of a statement followed by a blank
// line. Query results up to MaxRows rows are rendered as a table.
func (f *Formatter) Outcome(w io.Writer, o *executor.Outcome) error {
	var err error

	switch o.Status() {
	case executor.StatusFailed:
		err = mark(w, indent, failureMark, "✗", "Failed: %v", o.Err)
	case executor.StatusDisplayFailed:
		err = mark(w, indent, warningMark, "⚠", "Display query failed, continuing: %v", o.Err)
	case executor.StatusDisplayed:
		_, err = fmt.Fprintf(w, "%sResults: %d rows\n", indent, o.RowsReturned())
		if err == nil {
			err = f.table(w, o)
		}
	default:
		err = f.success(w, o)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w)
	return err
}

func (f *Formatter) success(w io.Writer, o *executor.Outcome) error {
	if o.Kind != script.KindQuery {
		return mark(w, indent, successMark, "✓", "Success - %d rows affected", o.RowsAffected)
	}

	n := o.RowsReturned()
	if n == 0 {
		return mark(w, indent, successMark, "✓", "Success - No rows returned")
	}

	if err := mark(w, indent, successMark, "✓", "Success - %d rows returned", n); err != nil {
		return err
	}

	return f.table(w, o)
}

func (f *Formatter) table(w io.Writer, o *executor.Outcome) error {
	if o.Result == nil || o.RowsReturned() == 0 || o.RowsReturned() > f.options.MaxRows {
		return nil
	}

	return f.Result(w, o.Result)
}

// Summary writes the run totals under title and lists every failed statement
// with its 1-based index, preview and raw error message.
func (f *Formatter) Summary(w io.Writer, title string, r *executor.RunReport) error {
	if err := f.Banner(w, title); err != nil {
		return err
	}

	lines := []string{
		fmt.Sprintf("Total statements: %d", r.Total),
		fmt.Sprintf("Successful: %d", r.Successful),
		fmt.Sprintf("Failed: %d", r.Failed),
	}
	if r.Displayed > 0 {
		lines = append(lines, fmt.Sprintf("Display queries: %d", r.Displayed))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if !r.HasFailures() {
		_, _ = fmt.Fprintln(w)
		return f.Success(w, "All statements executed successfully!")
	}

	if _, err := fmt.Fprintln(w, "\nErrors encountered:"); err != nil {
		return err
	}

	for _, e := range r.Errors {
		if _, err := fmt.Fprintf(w, "  Statement %d: %s\n", e.Index, e.Preview); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "    %s\n", e.Message); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(w)
	return f.Warning(w, "Some statements failed. Please review the errors above.")
}
