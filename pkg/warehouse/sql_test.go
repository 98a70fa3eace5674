package warehouse_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/storekeeper/pkg/warehouse"
	"github.com/snowflakedb/gosnowflake"
	"github.com/stretchr/testify/require"
)

func TestSQLClient(t *testing.T) {
	ctx := context.Background()
	client := warehouse.NewSQLClient(warehouse.DriverSQLite, ":memory:")
	require.NoError(t, client.Connect(ctx))
	defer func() { _ = client.Close() }()

	_, err := client.Exec(ctx, "CREATE TABLE t (id INTEGER, label TEXT)")
	require.NoError(t, err)

	affected, err := client.Exec(ctx, "INSERT INTO t VALUES (1, 'a'), (2, 'b')")
	require.NoError(t, err)
	require.Equal(t, int64(2), affected)

	res, err := client.Query(ctx, "SELECT id, label FROM t ORDER BY id")
	require.NoError(t, err)
	require.Equal(t, []string{"id", "label"}, res.Columns)
	require.Len(t, res.Rows, 2)
	require.Equal(t, []string{"a", "b"}, res.Strings("label"))

	count, err := client.Query(ctx, "SELECT COUNT(*) AS cnt FROM t")
	require.NoError(t, err)
	n, err := warehouse.AsInt64(count.Scalar())
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	_, err = client.Query(ctx, "SELECT * FROM missing")
	require.Error(t, err)

	_, err = client.Exec(ctx, "NOT SQL AT ALL")
	require.Error(t, err)
}

func TestSQLClient_CloseWithoutConnect(t *testing.T) {
	client := warehouse.NewSQLClient(warehouse.DriverSQLite, ":memory:")
	require.NoError(t, client.Close())
	require.NoError(t, client.Close())
}

func TestSQLClient_NotConnected(t *testing.T) {
	ctx := context.Background()
	client := warehouse.NewSQLClient(warehouse.DriverSQLite, ":memory:")

	_, err := client.Query(ctx, "SELECT 1")
	require.Error(t, err)

	_, err = client.Exec(ctx, "SELECT 1")
	require.Error(t, err)
}

func TestSQLClient_ConnectFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown driver", func(t *testing.T) {
		err := warehouse.NewSQLClient("nope", "").Connect(ctx)
		require.Error(t, err)

		var connErr *warehouse.ConnectionError
		require.True(t, errors.As(err, &connErr))
		require.Equal(t, "nope", connErr.Driver)
	})

	t.Run("unreachable database", func(t *testing.T) {
		dsn := "file:" + filepath.Join(t.TempDir(), "missing", "db.sqlite") + "?mode=ro"
		err := warehouse.NewSQLClient(warehouse.DriverSQLite, dsn).Connect(ctx)
		require.Error(t, err)

		var connErr *warehouse.ConnectionError
		require.True(t, errors.As(err, &connErr))
		require.Contains(t, err.Error(), "failed to connect to sqlite")
	})
}

func TestSnowflakeDSN(t *testing.T) {
	t.Run("builds DSN", func(t *testing.T) {
		dsn, err := warehouse.SnowflakeDSN(warehouse.SnowflakeParams{
			Account:   "xy12345",
			User:      "loader",
			Password:  "secret",
			Warehouse: "COMPUTE_WH",
			Database:  "FEAT_DB",
			Schema:    "FEAT_SCHEMA",
			Role:      "SYSADMIN",
		})
		require.NoError(t, err)
		require.Contains(t, dsn, "loader:secret@xy12345")

		cfg, err := gosnowflake.ParseDSN(dsn)
		require.NoError(t, err)
		require.Equal(t, "loader", cfg.User)
		require.Equal(t, "secret", cfg.Password)
		require.Equal(t, "FEAT_DB", cfg.Database)
		require.Equal(t, "FEAT_SCHEMA", cfg.Schema)
		require.Equal(t, "COMPUTE_WH", cfg.Warehouse)
		require.Equal(t, "SYSADMIN", cfg.Role)
	})

	t.Run("requires account", func(t *testing.T) {
		_, err := warehouse.SnowflakeDSN(warehouse.SnowflakeParams{User: "u", Password: "p"})
		require.Error(t, err)
	})

	t.Run("requires user", func(t *testing.T) {
		_, err := warehouse.SnowflakeDSN(warehouse.SnowflakeParams{Account: "a", Password: "p"})
		require.Error(t, err)
	})
}
