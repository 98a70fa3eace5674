// Package executor runs parsed setup scripts against a warehouse.
//
// Execution is strictly sequential over a single connected client. Each
// statement is classified by its leading keyword: queries run through
// Client.Query and everything else through Client.Exec. A failed statement is
// recorded and the run continues, so a single bad statement never hides the
// outcome of the ones after it.
//
// # Core Components
//
//   - Executor: runs statements and produces a RunReport
//   - Outcome: the result of a single statement
//   - RunReport: counts plus one StatementError per tracked failure
//   - Teardown: best-effort drop of a manifest's objects before a clean re-run
//
// # Display-only statements
//
// Queries containing a LIMIT clause are assumed to exist only to show sample
// output. They run like any other query, but their success or failure is
// counted in RunReport.Displayed rather than in Total.
//
// # Usage Example
//
//	stmts := script.Parse(text)
//
//	executor.Teardown(ctx, client, dialect, manifest.FeatureStore())
//
//	report := executor.New(executor.Config{Client: client}).Execute(ctx, stmts)
//	for _, e := range report.Errors {
//		fmt.Printf("statement %d (%s): %s\n", e.Index, e.Preview, e.Message)
//	}
package executor
