// Package verifier confirms that a setup script produced the objects named in
// a manifest.
//
// Catalog listings come from the warehouse dialect and are filtered here,
// case-insensitively, on their name column. Every existing table and view is
// then counted with SELECT COUNT(*). A check that fails is recorded as a
// CheckError and reported as "not verified"; it never aborts the pass.
//
//	report := verifier.New(client, dialect).Verify(ctx, manifest.FeatureStore())
//	if !report.Tables["feature_store"] {
//		fmt.Println("feature_store was not created")
//	}
//	fmt.Println(report.RowCounts["feature_store"])
package verifier
