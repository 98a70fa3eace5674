package manifest_test

import (
	"testing"

	"github.com/pseudomuto/storekeeper/pkg/manifest"
	"github.com/stretchr/testify/require"
)

func TestFeatureStore(t *testing.T) {
	m := manifest.FeatureStore()

	require.Equal(t, "FEAT_DB", m.Database)
	require.Equal(t, "FEAT_SCHEMA", m.Schema)
	require.Equal(t, []string{"customer_transactions", "tx_cleaned", "feature_store"}, m.Tables)
	require.Equal(t, []string{"customer_agg_30d", "latest_features"}, m.Views)
}

func TestTeardownOrder(t *testing.T) {
	t.Run("explicit list is kept", func(t *testing.T) {
		order := manifest.FeatureStore().TeardownOrder()

		require.Equal(t, []manifest.Object{
			{Kind: manifest.KindView, Name: "latest_features"},
			{Kind: manifest.KindTable, Name: "feature_store"},
			{Kind: manifest.KindView, Name: "customer_agg_30d"},
			{Kind: manifest.KindTable, Name: "tx_cleaned"},
			{Kind: manifest.KindTable, Name: "customer_transactions"},
			{Kind: manifest.KindSchema, Name: "FEAT_SCHEMA"},
			{Kind: manifest.KindDatabase, Name: "FEAT_DB"},
		}, order)
	})

	t.Run("derived when empty", func(t *testing.T) {
		m := &manifest.Manifest{
			Database: "db",
			Schema:   "s",
			Tables:   []string{"a", "b"},
			Views:    []string{"v1", "v2"},
		}

		require.Equal(t, []manifest.Object{
			{Kind: manifest.KindView, Name: "v2"},
			{Kind: manifest.KindView, Name: "v1"},
			{Kind: manifest.KindTable, Name: "b"},
			{Kind: manifest.KindTable, Name: "a"},
			{Kind: manifest.KindSchema, Name: "s"},
			{Kind: manifest.KindDatabase, Name: "db"},
		}, m.TeardownOrder())
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		m := manifest.FeatureStore()
		order := m.TeardownOrder()
		order[0].Name = "changed"

		require.Equal(t, "latest_features", m.Teardown[0].Name)
	})
}
