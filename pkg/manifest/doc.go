// Package manifest describes the objects a setup script is expected to create.
//
// A Manifest is the fixed list of names checked by the verifier and the
// ordered list of objects dropped before a clean re-run. No SQL is parsed to
// build it; the default manifest mirrors the shipped feature store script:
//
//	m := manifest.FeatureStore()
//	fmt.Println(m.Database, m.Schema) // FEAT_DB FEAT_SCHEMA
//
//	for _, obj := range m.TeardownOrder() {
//		fmt.Println(obj.Kind, obj.Name)
//	}
//
// Manifests loaded from configuration may omit the teardown list, in which
// case TeardownOrder derives one: views in reverse declaration order, then
// tables in reverse declaration order, then the schema, then the database.
package manifest
