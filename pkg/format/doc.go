// Package format renders the human-readable output of a storekeeper run.
//
// It separates presentation from execution: the runner and executor produce
// plain data (outcomes, run reports, verification reports) and this package
// turns them into progress lines, summaries and small result tables.
//
// Key features:
//   - Progress lines in the form "[i/n] Executing: <preview>"
//   - Per-statement outcome lines with check marks
//   - Run summary listing every failed statement with its raw error
//   - Verification summary for the database, schema, tables and views
//   - Small query results rendered as tables
//
// Check marks are coloured with github.com/fatih/color and honour
// color.NoColor. Tables are rendered with lipgloss.
//
// Usage:
//
//	formatter := format.New(format.Defaults)
//
//	_ = formatter.Progress(os.Stdout, len(stmts), stmt)
//	_ = formatter.Outcome(os.Stdout, outcome)
//	_ = formatter.Summary(os.Stdout, "SETUP SUMMARY", report)
//	_ = formatter.Verification(os.Stdout, manifest.FeatureStore(), verification)
package format
