package warehouse

import (
	"github.com/pkg/errors"
	"github.com/pseudomuto/storekeeper/pkg/manifest"
	"github.com/pseudomuto/storekeeper/pkg/utils"
)

// NameColumn is the catalog listing column that holds object names.
const NameColumn = "name"

type (
	// Dialect renders the catalog, count and teardown statements of a backend.
	//
	// Listing statements return a NameColumn column and are never filtered on
	// object names. DropStatement returns "" for objects the backend cannot
	// drop.
	Dialect interface {
		Name() string
		ListDatabases(*manifest.Manifest) string
		ListSchemas(*manifest.Manifest) string
		ListTables(*manifest.Manifest) string
		ListViews(*manifest.Manifest) string
		Qualify(*manifest.Manifest, string) string
		CountQuery(*manifest.Manifest, string) string
		DropStatement(*manifest.Manifest, manifest.Object) string
	}
)

// DialectFor returns the Dialect of a supported driver.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case DriverSnowflake:
		return Snowflake{}, nil
	case DriverClickHouse:
		return ClickHouse{}, nil
	case DriverPostgres:
		return InformationSchema{name: DriverPostgres}, nil
	case DriverDuckDB:
		return InformationSchema{name: DriverDuckDB}, nil
	case DriverSQLite, DriverLibSQL:
		return SQLite{name: driver}, nil
	default:
		return nil, errors.Errorf("unsupported driver: %q", driver)
	}
}

func countQuery(q utils.Quoter, parts ...string) string {
	return utils.NewSQLBuilder(q).Select("COUNT(*) AS cnt").From(parts...).String()
}

func dropKeyword(kind manifest.Kind) string {
	switch kind {
	case manifest.KindView:
		return "VIEW"
	case manifest.KindTable:
		return "TABLE"
	case manifest.KindSchema:
		return "SCHEMA"
	case manifest.KindDatabase:
		return "DATABASE"
	default:
		return ""
	}
}
