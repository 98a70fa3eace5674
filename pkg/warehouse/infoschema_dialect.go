package warehouse

import (
	"github.com/pseudomuto/storekeeper/pkg/manifest"
	"github.com/pseudomuto/storekeeper/pkg/utils"
)

// InformationSchema serves Postgres and DuckDB. Objects are qualified as
// schema.name within the connected database, and databases are never dropped
// since neither backend can drop the database it is connected to.
type InformationSchema struct {
	name string
}

func (d InformationSchema) Name() string { return d.name }

func (InformationSchema) ListDatabases(*manifest.Manifest) string {
	return "SELECT DISTINCT catalog_name AS name FROM information_schema.schemata"
}

func (InformationSchema) ListSchemas(*manifest.Manifest) string {
	return "SELECT schema_name AS name FROM information_schema.schemata"
}

func (InformationSchema) ListTables(m *manifest.Manifest) string {
	return listInformationSchema(m, "BASE TABLE")
}

func (InformationSchema) ListViews(m *manifest.Manifest) string {
	return listInformationSchema(m, "VIEW")
}

func (InformationSchema) Qualify(m *manifest.Manifest, name string) string {
	return utils.Qualify(utils.PlainIdentifier, m.Schema, name)
}

func (InformationSchema) CountQuery(m *manifest.Manifest, name string) string {
	return countQuery(utils.PlainIdentifier, m.Schema, name)
}

func (InformationSchema) DropStatement(m *manifest.Manifest, obj manifest.Object) string {
	b := utils.NewSQLBuilder(utils.PlainIdentifier)

	switch obj.Kind {
	case manifest.KindView, manifest.KindTable:
		return b.Drop(dropKeyword(obj.Kind)).IfExists().QualifiedName(m.Schema, obj.Name).String()
	case manifest.KindSchema:
		return b.Drop("SCHEMA").IfExists().Name(obj.Name).String()
	default:
		return ""
	}
}

func listInformationSchema(m *manifest.Manifest, tableType string) string {
	return utils.NewSQLBuilder(utils.PlainIdentifier).
		Select("table_name AS name").
		From("information_schema", "tables").
		Where(
			"table_type = "+utils.QuoteLiteral(tableType),
			"lower(table_schema) = lower("+utils.QuoteLiteral(m.Schema)+")",
		).
		String()
}
