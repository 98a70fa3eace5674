// Package warehouse defines the client contract used to run setup scripts and
// the catalog dialects used to verify their results.
//
// A Client executes one statement at a time over a single connection:
//
//	client := warehouse.NewSQLClient(warehouse.DriverSQLite, "file:features.db")
//	if err := client.Connect(ctx); err != nil {
//		return err // *warehouse.ConnectionError
//	}
//	defer func() { _ = client.Close() }()
//
//	res, err := client.Query(ctx, "SELECT 1 AS one")
//	affected, err := client.Exec(ctx, "CREATE TABLE t (id INTEGER)")
//
// SQLClient wraps any database/sql driver registered by this package
// (Snowflake, Postgres, SQLite, libSQL and DuckDB). The ClickHouse native
// protocol client lives in the clickhouse package and satisfies the same
// interface.
//
// # Dialects
//
// A Dialect renders the catalog listing, row count and teardown statements for
// one backend. Listing statements are scoped to the expected database or
// schema but never filter on object names; callers filter the returned "name"
// column themselves:
//
//	dialect, err := warehouse.DialectFor(warehouse.DriverSnowflake)
//	sql := dialect.ListTables(m) // SHOW TABLES IN SCHEMA FEAT_DB.FEAT_SCHEMA
package warehouse
