package warehouse

import (
	"github.com/pseudomuto/storekeeper/pkg/manifest"
	"github.com/pseudomuto/storekeeper/pkg/utils"
)

// ClickHouse has a single namespace level. The manifest schema names the
// ClickHouse database holding the tables and views, and both the database and
// schema checks read SHOW DATABASES.
type ClickHouse struct{}

const clickhouseViewEngines = "('View', 'MaterializedView', 'LiveView', 'WindowView')"

func (ClickHouse) Name() string { return DriverClickHouse }

func (ClickHouse) ListDatabases(*manifest.Manifest) string {
	return "SHOW DATABASES"
}

func (ClickHouse) ListSchemas(*manifest.Manifest) string {
	return "SHOW DATABASES"
}

func (ClickHouse) ListTables(m *manifest.Manifest) string {
	return utils.NewSQLBuilder(utils.PlainIdentifier).
		Select("name").
		From("system", "tables").
		Where(
			"database = "+utils.QuoteLiteral(m.Schema),
			"engine NOT IN "+clickhouseViewEngines,
		).
		String()
}

func (ClickHouse) ListViews(m *manifest.Manifest) string {
	return utils.NewSQLBuilder(utils.PlainIdentifier).
		Select("name").
		From("system", "tables").
		Where(
			"database = "+utils.QuoteLiteral(m.Schema),
			"engine IN "+clickhouseViewEngines,
		).
		String()
}

func (ClickHouse) Qualify(m *manifest.Manifest, name string) string {
	return utils.Qualify(utils.BacktickIdentifier, m.Schema, name)
}

func (ClickHouse) CountQuery(m *manifest.Manifest, name string) string {
	return countQuery(utils.BacktickIdentifier, m.Schema, name)
}

func (ClickHouse) DropStatement(m *manifest.Manifest, obj manifest.Object) string {
	b := utils.NewSQLBuilder(utils.BacktickIdentifier)

	switch obj.Kind {
	case manifest.KindView, manifest.KindTable:
		return b.Drop(dropKeyword(obj.Kind)).IfExists().QualifiedName(m.Schema, obj.Name).String()
	case manifest.KindSchema, manifest.KindDatabase:
		return b.Drop("DATABASE").IfExists().Name(obj.Name).String()
	default:
		return ""
	}
}
