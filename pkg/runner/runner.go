package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/storekeeper/pkg/executor"
	"github.com/pseudomuto/storekeeper/pkg/manifest"
	"github.com/pseudomuto/storekeeper/pkg/script"
	"github.com/pseudomuto/storekeeper/pkg/verifier"
	"github.com/pseudomuto/storekeeper/pkg/warehouse"
)

type (
	// Runner sequences a single setup run: read the script, connect, optionally
	// tear existing objects down, execute every statement and verify the result.
	//
	// The runner owns the client connection for the duration of Run and closes
	// it on every exit path once connected.
	//
	// Example usage:
	//
	//	r := runner.New(client, runner.Options{
	//		ScriptPath:   "sql/feature_store_setup.sql",
	//		DropExisting: true,
	//		Dialect:      warehouse.Snowflake{},
	//		Confirm:      &runner.PromptConfirmer{In: os.Stdin, Out: os.Stdout},
	//	})
	//
	//	result, err := r.Run(ctx)
	//	if err != nil {
	//		log.Fatal(err) // missing script or connection failure
	//	}
	//
	//	fmt.Println(result.State, result.Run.Failed)
	Runner struct {
		client warehouse.Client
		opts   Options
		state  State
	}

	// Options configure a Runner.
	Options struct {
		// ScriptPath is the setup script to run. Ignored when VerifyOnly is set.
		ScriptPath string

		// DropExisting tears down the manifest's objects before executing.
		DropExisting bool

		// VerifyOnly skips execution and only runs the verifier.
		VerifyOnly bool

		// SkipVerify disables the verification pass after execution.
		SkipVerify bool

		// Manifest lists the expected objects (default: manifest.FeatureStore()).
		Manifest *manifest.Manifest

		// Dialect renders catalog and teardown statements. Required.
		Dialect warehouse.Dialect

		// Confirm approves DropExisting. A nil Confirmer declines.
		Confirm Confirmer

		// OnState observes every state transition along with the result as it
		// stands at that point.
		OnState func(State, *Result)

		// OnOutcome receives each statement outcome during execution.
		OnOutcome func(*executor.Outcome)
	}

	// Result summarizes a run. Run is nil unless statements were executed and
	// Verification is nil unless the verifier ran.
	Result struct {
		State        State
		Statements   []*script.Statement
		Run          *executor.RunReport
		Verification *verifier.Report
	}
)

// New creates a Runner for client.
func New(client warehouse.Client, opts Options) *Runner {
	if opts.Manifest == nil {
		opts.Manifest = manifest.FeatureStore()
	}

	return &Runner{client: client, opts: opts, state: StateIdle}
}

// State returns the current state.
func (r *Runner) State() State {
	return r.state
}

// Run performs the run. Errors are returned only for fatal conditions: a
// missing script, a connection failure or a failed confirmation prompt.
// Statement failures are reported in Result.Run.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	result := &Result{State: r.state}

	if r.opts.Dialect == nil {
		return result, errors.New("a warehouse dialect is required")
	}

	var text string
	if !r.opts.VerifyOnly {
		var err error
		if text, err = script.ReadFile(r.opts.ScriptPath); err != nil {
			return result, err
		}
	}

	dropExisting := r.opts.DropExisting && !r.opts.VerifyOnly
	if dropExisting {
		ok, err := r.confirm(ctx)
		if err != nil {
			return result, err
		}

		if !ok {
			r.transition(result, StateCancelled)
			return result, nil
		}
	}

	if err := r.client.Connect(ctx); err != nil {
		r.transition(result, StateConnectFailed)

		var connErr *warehouse.ConnectionError
		if !errors.As(err, &connErr) {
			err = warehouse.NewConnectionError(r.opts.Dialect.Name(), err)
		}
		return result, err
	}
	defer func() {
		if err := r.client.Close(); err != nil {
			slog.Warn("Failed to close warehouse connection", "error", err)
		}
	}()

	r.transition(result, StateConnected)

	if r.opts.VerifyOnly {
		r.verify(ctx, result)
		r.transition(result, StateDone)
		return result, nil
	}

	stripped := script.StripComments(text)
	r.transition(result, StateStripped)

	result.Statements = script.Split(stripped)
	r.transition(result, StateSplit)

	if dropExisting {
		executor.Teardown(ctx, r.client, r.opts.Dialect, r.opts.Manifest)
	}

	r.transition(result, StateExecuting)
	result.Run = executor.New(executor.Config{
		Client:    r.client,
		OnOutcome: r.opts.OnOutcome,
	}).Execute(ctx, result.Statements)
	r.transition(result, StateExecuted)

	if !r.opts.SkipVerify && !result.Run.HasFailures() {
		r.verify(ctx, result)
	}

	r.transition(result, StateDone)
	return result, nil
}

func (r *Runner) confirm(ctx context.Context) (bool, error) {
	if r.opts.Confirm == nil {
		return false, nil
	}

	prompt := fmt.Sprintf("This will drop %s and every object listed for it.", r.opts.Manifest.Database)
	ok, err := r.opts.Confirm.Confirm(ctx, prompt)
	if err != nil {
		return false, errors.Wrap(err, "confirmation failed")
	}

	return ok, nil
}

func (r *Runner) verify(ctx context.Context, result *Result) {
	r.transition(result, StateVerifying)
	result.Verification = verifier.New(r.client, r.opts.Dialect).Verify(ctx, r.opts.Manifest)
}

func (r *Runner) transition(result *Result, next State) {
	slog.Debug("Runner state", "from", r.state, "to", next)

	r.state = next
	result.State = next

	if r.opts.OnState != nil {
		r.opts.OnState(next, result)
	}
}
