package warehouse

import (
	"github.com/pseudomuto/storekeeper/pkg/manifest"
	"github.com/pseudomuto/storekeeper/pkg/utils"
)

// SQLite serves SQLite and libSQL. Attached database names (usually "main")
// play the role of both database and schema; neither can be dropped.
type SQLite struct {
	name string
}

func (d SQLite) Name() string { return d.name }

func (SQLite) ListDatabases(*manifest.Manifest) string {
	return "PRAGMA database_list"
}

func (SQLite) ListSchemas(*manifest.Manifest) string {
	return "PRAGMA database_list"
}

func (SQLite) ListTables(m *manifest.Manifest) string {
	return listSQLiteMaster(m, "table")
}

func (SQLite) ListViews(m *manifest.Manifest) string {
	return listSQLiteMaster(m, "view")
}

func (SQLite) Qualify(m *manifest.Manifest, name string) string {
	return utils.Qualify(utils.PlainIdentifier, m.Schema, name)
}

func (SQLite) CountQuery(m *manifest.Manifest, name string) string {
	return countQuery(utils.PlainIdentifier, m.Schema, name)
}

func (SQLite) DropStatement(m *manifest.Manifest, obj manifest.Object) string {
	switch obj.Kind {
	case manifest.KindView, manifest.KindTable:
		return utils.NewSQLBuilder(utils.PlainIdentifier).
			Drop(dropKeyword(obj.Kind)).
			IfExists().
			QualifiedName(m.Schema, obj.Name).
			String()
	default:
		return ""
	}
}

func listSQLiteMaster(m *manifest.Manifest, objectType string) string {
	return utils.NewSQLBuilder(utils.PlainIdentifier).
		Select("name").
		From(m.Schema, "sqlite_master").
		Where("type = " + utils.QuoteLiteral(objectType)).
		String()
}
