package cmd

import (
	"fmt"
	"io"

	"github.com/pseudomuto/storekeeper/pkg/executor"
	"github.com/pseudomuto/storekeeper/pkg/format"
	"github.com/pseudomuto/storekeeper/pkg/manifest"
	"github.com/pseudomuto/storekeeper/pkg/runner"
)

// reporter prints runner progress as it happens.
type reporter struct {
	w            io.Writer
	f            *format.Formatter
	dropExisting bool
	step         int
	total        int
}

func newReporter(w io.Writer, dropExisting bool) *reporter {
	return &reporter{w: w, f: format.New(format.Defaults), dropExisting: dropExisting}
}

func (r *reporter) nextStep(msg string) {
	r.step++
	_ = r.f.Step(r.w, r.step, msg)
}

func (r *reporter) start(title, driver string) {
	_ = r.f.Banner(r.w, title)
	_, _ = fmt.Fprintln(r.w)
	r.nextStep(fmt.Sprintf("Connecting to %s...", driver))
}

func (r *reporter) onState(s runner.State, res *runner.Result) {
	switch s {
	case runner.StateConnected:
		_ = r.f.Success(r.w, "Connected successfully\n")
	case runner.StateConnectFailed:
		_ = r.f.Failure(r.w, "Connection failed")
	case runner.StateCancelled:
		_ = r.f.Warning(r.w, "Setup cancelled.")
	case runner.StateStripped:
		r.nextStep("Parsing SQL statements...")
	case runner.StateSplit:
		r.total = len(res.Statements)
		_ = r.f.Success(r.w, "Found %d SQL statements to execute\n", r.total)
		if r.dropExisting {
			r.nextStep("Dropping existing objects (if any)...")
		}
	case runner.StateExecuting:
		r.nextStep("Executing SQL statements...")
		_ = r.f.Rule(r.w)
	}
}

func (r *reporter) onOutcome(o *executor.Outcome) {
	_ = r.f.Progress(r.w, r.total, o.Statement)
	_ = r.f.Outcome(r.w, o)
}

func (r *reporter) finish(title string, m *manifest.Manifest, res *runner.Result) {
	if res.Run != nil {
		_ = r.f.Summary(r.w, title, res.Run)
	}

	if res.Verification != nil {
		_, _ = fmt.Fprintln(r.w)
		_ = r.f.Verification(r.w, m, res.Verification)
	}
}
