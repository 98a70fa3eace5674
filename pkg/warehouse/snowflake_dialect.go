package warehouse

import (
	"github.com/pseudomuto/storekeeper/pkg/manifest"
	"github.com/pseudomuto/storekeeper/pkg/utils"
)

// Snowflake lists objects with SHOW commands and fully qualifies every name as
// database.schema.name.
type Snowflake struct{}

func (Snowflake) Name() string { return DriverSnowflake }

func (Snowflake) ListDatabases(*manifest.Manifest) string {
	return "SHOW DATABASES"
}

func (Snowflake) ListSchemas(m *manifest.Manifest) string {
	return "SHOW SCHEMAS IN DATABASE " + m.Database
}

func (Snowflake) ListTables(m *manifest.Manifest) string {
	return "SHOW TABLES IN SCHEMA " + utils.Qualify(utils.PlainIdentifier, m.Database, m.Schema)
}

func (Snowflake) ListViews(m *manifest.Manifest) string {
	return "SHOW VIEWS IN SCHEMA " + utils.Qualify(utils.PlainIdentifier, m.Database, m.Schema)
}

func (Snowflake) Qualify(m *manifest.Manifest, name string) string {
	return utils.Qualify(utils.PlainIdentifier, m.Database, m.Schema, name)
}

func (Snowflake) CountQuery(m *manifest.Manifest, name string) string {
	return countQuery(utils.PlainIdentifier, m.Database, m.Schema, name)
}

func (Snowflake) DropStatement(m *manifest.Manifest, obj manifest.Object) string {
	b := utils.NewSQLBuilder(utils.PlainIdentifier)

	switch obj.Kind {
	case manifest.KindView, manifest.KindTable:
		return b.Drop(dropKeyword(obj.Kind)).IfExists().QualifiedName(m.Database, m.Schema, obj.Name).String()
	case manifest.KindSchema:
		return b.Drop("SCHEMA").IfExists().QualifiedName(m.Database, obj.Name).String()
	case manifest.KindDatabase:
		return b.Drop("DATABASE").IfExists().Name(obj.Name).String()
	default:
		return ""
	}
}
