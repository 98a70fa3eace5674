package verifier

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/storekeeper/pkg/manifest"
	"github.com/pseudomuto/storekeeper/pkg/warehouse"
)

type (
	// Verifier checks that the objects listed in a manifest exist and counts
	// their rows.
	Verifier struct {
		client  warehouse.Client
		dialect warehouse.Dialect
	}

	// Report is the outcome of a verification pass. Maps only hold names from
	// the manifest; an object that could not be checked maps to false and
	// has an entry in Errors.
	Report struct {
		DatabaseExists bool
		SchemaExists   bool
		Tables         map[string]bool
		Views          map[string]bool
		RowCounts      map[string]int64
		Errors         []CheckError
	}

	// CheckError records a check that could not be performed.
	CheckError struct {
		Step    Step
		Message string
	}

	// Step names a verification check.
	Step string
)

const (
	StepDatabase Step = "database"
	StepSchema   Step = "schema"
	StepTables   Step = "tables"
	StepViews    Step = "views"
	StepRowCount Step = "row_count"
)

// New creates a Verifier using client to run the statements rendered by dialect.
func New(client warehouse.Client, dialect warehouse.Dialect) *Verifier {
	return &Verifier{client: client, dialect: dialect}
}

// Verify checks the database, then the schema, then tables, then views. A
// failed check never prevents the later ones from running.
func (v *Verifier) Verify(ctx context.Context, m *manifest.Manifest) *Report {
	report := &Report{
		Tables:    make(map[string]bool, len(m.Tables)),
		Views:     make(map[string]bool, len(m.Views)),
		RowCounts: make(map[string]int64),
		Errors:    make([]CheckError, 0),
	}

	if names, err := v.list(ctx, v.dialect.ListDatabases(m)); err != nil {
		report.fail(StepDatabase, err)
	} else {
		report.DatabaseExists = containsFold(names, m.Database)
	}

	if names, err := v.list(ctx, v.dialect.ListSchemas(m)); err != nil {
		report.fail(StepSchema, err)
	} else {
		report.SchemaExists = containsFold(names, m.Schema)
	}

	v.checkObjects(ctx, m, StepTables, v.dialect.ListTables(m), m.Tables, report.Tables, report)
	v.checkObjects(ctx, m, StepViews, v.dialect.ListViews(m), m.Views, report.Views, report)

	slog.Debug("Verification complete",
		"database", report.DatabaseExists,
		"schema", report.SchemaExists,
		"errors", len(report.Errors),
	)

	return report
}

func (v *Verifier) checkObjects(
	ctx context.Context,
	m *manifest.Manifest,
	step Step,
	listSQL string,
	expected []string,
	found map[string]bool,
	report *Report,
) {
	for _, name := range expected {
		found[name] = false
	}

	names, err := v.list(ctx, listSQL)
	if err != nil {
		report.fail(step, err)
		return
	}

	for _, name := range expected {
		if !containsFold(names, name) {
			continue
		}

		found[name] = true

		count, err := v.count(ctx, m, name)
		if err != nil {
			report.fail(StepRowCount, errors.Wrapf(err, "failed to count rows in %s", name))
			continue
		}
		report.RowCounts[name] = count
	}
}

func (v *Verifier) list(ctx context.Context, sql string) ([]string, error) {
	res, err := v.client.Query(ctx, sql)
	if err != nil {
		return nil, err
	}

	if res.ColumnIndex(warehouse.NameColumn) < 0 {
		return nil, errors.Errorf("listing has no %q column: %s", warehouse.NameColumn, sql)
	}

	return res.Strings(warehouse.NameColumn), nil
}

func (v *Verifier) count(ctx context.Context, m *manifest.Manifest, name string) (int64, error) {
	res, err := v.client.Query(ctx, v.dialect.CountQuery(m, name))
	if err != nil {
		return 0, err
	}

	value := res.Scalar()
	if idx := res.ColumnIndex("cnt"); idx >= 0 && len(res.Rows) > 0 && idx < len(res.Rows[0]) {
		value = res.Rows[0][idx]
	}

	return warehouse.AsInt64(value)
}

func (r *Report) fail(step Step, err error) {
	slog.Debug("Verification check failed", "step", step, "error", err)
	r.Errors = append(r.Errors, CheckError{Step: step, Message: err.Error()})
}

// OK reports whether every expected object exists and every check ran.
func (r *Report) OK() bool {
	if !r.DatabaseExists || !r.SchemaExists || len(r.Errors) > 0 {
		return false
	}

	for _, ok := range r.Tables {
		if !ok {
			return false
		}
	}

	for _, ok := range r.Views {
		if !ok {
			return false
		}
	}

	return true
}

func containsFold(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
