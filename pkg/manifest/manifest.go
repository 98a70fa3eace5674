package manifest

import "slices"

type (
	// Kind identifies the type of a catalog object.
	Kind string

	// Object is a single named catalog object.
	Object struct {
		Kind Kind   `json:"kind" yaml:"kind" toml:"kind"`
		Name string `json:"name" yaml:"name" toml:"name"`
	}

	// Manifest lists the expected database, schema, tables and views along
	// with the order in which they are torn down.
	Manifest struct {
		Database string   `json:"database,omitempty" yaml:"database" toml:"database"`
		Schema   string   `json:"schema,omitempty" yaml:"schema" toml:"schema"`
		Tables   []string `json:"tables" yaml:"tables" toml:"tables"`
		Views    []string `json:"views" yaml:"views" toml:"views"`
		Teardown []Object `json:"teardown,omitempty" yaml:"teardown,omitempty" toml:"teardown,omitempty"`
	}
)

const (
	KindDatabase Kind = "database"
	KindSchema   Kind = "schema"
	KindTable    Kind = "table"
	KindView     Kind = "view"
)

// FeatureStore returns the manifest of the shipped feature store setup script.
//
// The teardown order drops each view before the table it reads from.
func FeatureStore() *Manifest {
	return &Manifest{
		Database: "FEAT_DB",
		Schema:   "FEAT_SCHEMA",
		Tables:   []string{"customer_transactions", "tx_cleaned", "feature_store"},
		Views:    []string{"customer_agg_30d", "latest_features"},
		Teardown: []Object{
			{Kind: KindView, Name: "latest_features"},
			{Kind: KindTable, Name: "feature_store"},
			{Kind: KindView, Name: "customer_agg_30d"},
			{Kind: KindTable, Name: "tx_cleaned"},
			{Kind: KindTable, Name: "customer_transactions"},
			{Kind: KindSchema, Name: "FEAT_SCHEMA"},
			{Kind: KindDatabase, Name: "FEAT_DB"},
		},
	}
}

// TeardownOrder returns the explicit teardown list when one is set, otherwise
// an order derived from the declared objects.
func (m *Manifest) TeardownOrder() []Object {
	if len(m.Teardown) > 0 {
		return slices.Clone(m.Teardown)
	}

	objects := make([]Object, 0, len(m.Views)+len(m.Tables)+2)
	for i := len(m.Views) - 1; i >= 0; i-- {
		objects = append(objects, Object{Kind: KindView, Name: m.Views[i]})
	}
	for i := len(m.Tables) - 1; i >= 0; i-- {
		objects = append(objects, Object{Kind: KindTable, Name: m.Tables[i]})
	}
	if m.Schema != "" {
		objects = append(objects, Object{Kind: KindSchema, Name: m.Schema})
	}
	if m.Database != "" {
		objects = append(objects, Object{Kind: KindDatabase, Name: m.Database})
	}

	return objects
}
