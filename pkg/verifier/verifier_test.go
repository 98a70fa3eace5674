package verifier_test

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/storekeeper/pkg/cmd/testutil"
	"github.com/pseudomuto/storekeeper/pkg/manifest"
	"github.com/pseudomuto/storekeeper/pkg/verifier"
	"github.com/pseudomuto/storekeeper/pkg/warehouse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snowflakeCatalog answers the Snowflake catalog queries for the feature store.
func snowflakeCatalog(overrides map[string]func() (*warehouse.Result, error)) *testutil.MockClient {
	return &testutil.MockClient{
		QueryFunc: func(_ context.Context, sql string) (*warehouse.Result, error) {
			for prefix, fn := range overrides {
				if strings.HasPrefix(sql, prefix) {
					return fn()
				}
			}

			switch {
			case sql == "SHOW DATABASES":
				return testutil.Names("SNOWFLAKE", "FEAT_DB"), nil
			case strings.HasPrefix(sql, "SHOW SCHEMAS"):
				return testutil.Names("INFORMATION_SCHEMA", "PUBLIC", "FEAT_SCHEMA"), nil
			case strings.HasPrefix(sql, "SHOW TABLES"):
				return testutil.Names("CUSTOMER_TRANSACTIONS", "TX_CLEANED", "FEATURE_STORE", "SCRATCH"), nil
			case strings.HasPrefix(sql, "SHOW VIEWS"):
				return testutil.Names("CUSTOMER_AGG_30D", "LATEST_FEATURES"), nil
			case strings.HasPrefix(sql, "SELECT COUNT(*)"):
				return testutil.Count(10), nil
			}
			return nil, errors.Errorf("unexpected query: %s", sql)
		},
	}
}

func TestVerify_AllPresent(t *testing.T) {
	mock := snowflakeCatalog(nil)
	report := verifier.New(mock, warehouse.Snowflake{}).Verify(context.Background(), manifest.FeatureStore())

	require.True(t, report.DatabaseExists)
	require.True(t, report.SchemaExists)
	require.Equal(t, map[string]bool{
		"customer_transactions": true,
		"tx_cleaned":            true,
		"feature_store":         true,
	}, report.Tables)
	require.Equal(t, map[string]bool{
		"customer_agg_30d": true,
		"latest_features":  true,
	}, report.Views)
	require.Len(t, report.RowCounts, 5)
	require.Equal(t, int64(10), report.RowCounts["feature_store"])
	require.Empty(t, report.Errors)
	require.True(t, report.OK())

	require.NotContains(t, report.Tables, "SCRATCH")
	require.Contains(t, mock.Queries, "SELECT COUNT(*) AS cnt FROM FEAT_DB.FEAT_SCHEMA.feature_store")
}

func TestVerify_MissingObjects(t *testing.T) {
	mock := snowflakeCatalog(map[string]func() (*warehouse.Result, error){
		"SHOW TABLES": func() (*warehouse.Result, error) {
			return testutil.Names("CUSTOMER_TRANSACTIONS"), nil
		},
		"SHOW VIEWS": func() (*warehouse.Result, error) {
			return testutil.Names(), nil
		},
	})

	report := verifier.New(mock, warehouse.Snowflake{}).Verify(context.Background(), manifest.FeatureStore())

	assert.True(t, report.Tables["customer_transactions"])
	assert.False(t, report.Tables["tx_cleaned"])
	assert.False(t, report.Tables["feature_store"])
	assert.False(t, report.Views["latest_features"])
	require.Len(t, report.Tables, 3)
	require.Len(t, report.Views, 2)
	require.Equal(t, map[string]int64{"customer_transactions": 10}, report.RowCounts)
	require.Empty(t, report.Errors)
	require.False(t, report.OK())
}

func TestVerify_FailuresDoNotBlock(t *testing.T) {
	mock := snowflakeCatalog(map[string]func() (*warehouse.Result, error){
		"SHOW DATABASES": func() (*warehouse.Result, error) {
			return nil, errors.New("insufficient privileges")
		},
		"SHOW TABLES": func() (*warehouse.Result, error) {
			return nil, errors.New("schema does not exist")
		},
	})

	report := verifier.New(mock, warehouse.Snowflake{}).Verify(context.Background(), manifest.FeatureStore())

	require.False(t, report.DatabaseExists)
	require.True(t, report.SchemaExists)
	require.Equal(t, map[string]bool{
		"customer_transactions": false,
		"tx_cleaned":            false,
		"feature_store":         false,
	}, report.Tables)
	require.True(t, report.Views["latest_features"])
	require.Equal(t, []verifier.CheckError{
		{Step: verifier.StepDatabase, Message: "insufficient privileges"},
		{Step: verifier.StepTables, Message: "schema does not exist"},
	}, report.Errors)
	require.False(t, report.OK())
}

func TestVerify_CountFailure(t *testing.T) {
	mock := snowflakeCatalog(map[string]func() (*warehouse.Result, error){
		"SELECT COUNT(*) AS cnt FROM FEAT_DB.FEAT_SCHEMA.latest_features": func() (*warehouse.Result, error) {
			return nil, errors.New("view is invalid")
		},
	})

	report := verifier.New(mock, warehouse.Snowflake{}).Verify(context.Background(), manifest.FeatureStore())

	require.True(t, report.Views["latest_features"])
	require.NotContains(t, report.RowCounts, "latest_features")
	require.Len(t, report.Errors, 1)
	require.Equal(t, verifier.StepRowCount, report.Errors[0].Step)
	require.Contains(t, report.Errors[0].Message, "latest_features")
	require.Contains(t, report.Errors[0].Message, "view is invalid")
}

func TestVerify_ListingWithoutNameColumn(t *testing.T) {
	mock := snowflakeCatalog(map[string]func() (*warehouse.Result, error){
		"SHOW VIEWS": func() (*warehouse.Result, error) {
			return &warehouse.Result{Columns: []string{"view"}, Rows: [][]any{{"LATEST_FEATURES"}}}, nil
		},
	})

	report := verifier.New(mock, warehouse.Snowflake{}).Verify(context.Background(), manifest.FeatureStore())

	require.False(t, report.Views["latest_features"])
	require.Len(t, report.Errors, 1)
	require.Equal(t, verifier.StepViews, report.Errors[0].Step)
}

func TestVerify_SQLite(t *testing.T) {
	ctx := context.Background()
	client := warehouse.NewSQLClient(warehouse.DriverSQLite, ":memory:")
	require.NoError(t, client.Connect(ctx))
	defer func() { _ = client.Close() }()

	for _, stmt := range []string{
		"CREATE TABLE customer_transactions (id TEXT, amount REAL)",
		"INSERT INTO customer_transactions VALUES ('a', 1.0), ('b', 2.0), ('c', 3.0)",
		"CREATE TABLE feature_store (customer_id TEXT)",
		"INSERT INTO feature_store SELECT id FROM customer_transactions",
		"CREATE VIEW latest_features AS SELECT * FROM feature_store",
	} {
		_, err := client.Exec(ctx, stmt)
		require.NoError(t, err, stmt)
	}

	m := &manifest.Manifest{
		Database: "main",
		Schema:   "main",
		Tables:   []string{"customer_transactions", "tx_cleaned", "feature_store"},
		Views:    []string{"latest_features"},
	}
	dialect, err := warehouse.DialectFor(warehouse.DriverSQLite)
	require.NoError(t, err)

	report := verifier.New(client, dialect).Verify(ctx, m)

	require.True(t, report.DatabaseExists)
	require.True(t, report.SchemaExists)
	require.True(t, report.Tables["feature_store"])
	require.False(t, report.Tables["tx_cleaned"])
	require.True(t, report.Views["latest_features"])
	require.Empty(t, report.Errors)

	res, err := client.Query(ctx, "SELECT COUNT(*) FROM feature_store")
	require.NoError(t, err)
	expected, err := warehouse.AsInt64(res.Scalar())
	require.NoError(t, err)

	require.Equal(t, expected, report.RowCounts["feature_store"])
	require.Equal(t, int64(3), report.RowCounts["latest_features"])
}
