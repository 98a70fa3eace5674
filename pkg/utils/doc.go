// Package utils provides identifier and statement helpers shared by the warehouse
// dialects.
//
// # Identifier Utilities (identifier.go)
//
// Each dialect renders names with a Quoter. ClickHouse uses BacktickIdentifier,
// while Snowflake, Postgres, DuckDB and SQLite use PlainIdentifier so that
// unquoted names fold the same way they do in hand-written scripts:
//
//	utils.BacktickIdentifier("analytics.events")
//	// Result: `analytics`.`events`
//
//	utils.Qualify(utils.PlainIdentifier, "FEAT_DB", "FEAT_SCHEMA", "feature_store")
//	// Result: FEAT_DB.FEAT_SCHEMA.feature_store
//
//	utils.QuoteLiteral("FEAT_SCHEMA")
//	// Result: 'FEAT_SCHEMA'
//
// # Statement Builder (sqlbuilder.go)
//
// SQLBuilder assembles the small set of statements the dialects issue:
//
//	utils.NewSQLBuilder(utils.PlainIdentifier).
//		Select("COUNT(*) AS cnt").
//		From("FEAT_DB", "FEAT_SCHEMA", "feature_store").
//		String()
//	// Result: SELECT COUNT(*) AS cnt FROM FEAT_DB.FEAT_SCHEMA.feature_store
package utils
