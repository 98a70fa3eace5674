// Package script turns a hand-authored SQL setup script into an ordered list of
// executable statements.
//
// The package deliberately avoids full SQL tokenization. Scripts are expected to
// follow a few simple authoring conventions, and the package relies on them:
//
//   - Statements end with a semicolon that is the last character of its line.
//   - Block comments use /* ... */ and may span several lines.
//   - Line comments use -- and are only recognized when the marker is preceded
//     by an even number of single quotes on its line (an odd count means the
//     marker sits inside an open string literal).
//
// Processing happens in two passes that keep the original line structure
// intact between them:
//
//	stripped := script.StripComments(text)
//	stmts := script.Split(stripped)
//
//	// or, equivalently
//	stmts := script.Parse(text)
//
//	for _, stmt := range stmts {
//		fmt.Printf("[%d] %s (%s)\n", stmt.Index, stmt.Preview, script.Classify(stmt.Text))
//	}
//
// Every statement is classified as either a Query (row-returning) or an Update
// (everything else) based solely on its leading keyword. Classification selects
// the client operation used to run the statement; it never validates SQL.
package script
