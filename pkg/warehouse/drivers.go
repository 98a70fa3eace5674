package warehouse

import (
	// database/sql drivers
	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/lib/pq"
	_ "github.com/snowflakedb/gosnowflake"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Supported driver names, as used in configuration.
const (
	DriverSnowflake  = "snowflake"
	DriverClickHouse = "clickhouse"
	DriverPostgres   = "postgres"
	DriverSQLite     = "sqlite"
	DriverLibSQL     = "libsql"
	DriverDuckDB     = "duckdb"
)

// Drivers returns every supported driver name.
func Drivers() []string {
	return []string{
		DriverSnowflake,
		DriverClickHouse,
		DriverPostgres,
		DriverSQLite,
		DriverLibSQL,
		DriverDuckDB,
	}
}
