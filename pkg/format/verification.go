package format

import (
	"io"

	"github.com/pseudomuto/storekeeper/pkg/manifest"
	"github.com/pseudomuto/storekeeper/pkg/verifier"
)

// Verification writes one line per check in the report. Checks that could not
// be performed are shown with their error instead of a missing object.
func (f *Formatter) Verification(w io.Writer, m *manifest.Manifest, r *verifier.Report) error {
	if err := f.Banner(w, "VERIFYING SETUP"); err != nil {
		return err
	}

	failed := make(map[verifier.Step][]string)
	for _, e := range r.Errors {
		failed[e.Step] = append(failed[e.Step], e.Message)
	}

	checks := []struct {
		step    verifier.Step
		label   string
		name    string
		present bool
	}{
		{verifier.StepDatabase, "Database", m.Database, r.DatabaseExists},
		{verifier.StepSchema, "Schema", m.Schema, r.SchemaExists},
	}

	for _, c := range checks {
		if err := f.presence(w, failed[c.step], c.label, c.name, c.present); err != nil {
			return err
		}
	}

	if err := f.objects(w, failed[verifier.StepTables], "Table", m.Tables, r.Tables, r.RowCounts); err != nil {
		return err
	}
	if err := f.objects(w, failed[verifier.StepViews], "View", m.Views, r.Views, r.RowCounts); err != nil {
		return err
	}

	for _, msg := range failed[verifier.StepRowCount] {
		if err := f.Failure(w, "Error counting rows: %s", msg); err != nil {
			return err
		}
	}

	if r.OK() {
		return f.Success(w, "Verification passed")
	}

	return f.Failure(w, "Verification failed")
}

func (f *Formatter) presence(w io.Writer, errs []string, label, name string, present bool) error {
	if len(errs) > 0 {
		return f.Failure(w, "Error checking %s %s: %s", label, name, errs[0])
	}

	if present {
		return f.Success(w, "%s %s exists", label, name)
	}

	return f.Failure(w, "%s %s does not exist", label, name)
}

func (f *Formatter) objects(
	w io.Writer,
	errs []string,
	label string,
	names []string,
	found map[string]bool,
	counts map[string]int64,
) error {
	if len(errs) > 0 {
		for _, msg := range errs {
			if err := f.Failure(w, "Error checking %ss: %s", label, msg); err != nil {
				return err
			}
		}
		return nil
	}

	for _, name := range names {
		var err error

		count, counted := counts[name]
		switch {
		case !found[name]:
			err = f.Failure(w, "%s %s does not exist", label, name)
		case counted:
			err = f.Success(w, "%s %s exists with %d rows", label, name, count)
		default:
			err = f.Success(w, "%s %s exists", label, name)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
