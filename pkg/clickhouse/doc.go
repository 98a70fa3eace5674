// Package clickhouse provides a warehouse.Client for ClickHouse over the native
// protocol.
//
// Statements are executed one at a time and query results are read fully into
// a warehouse.Result. ClickHouse has no schema level below a database, so the
// feature store manifest's schema names the ClickHouse database that holds the
// tables and views (see warehouse.ClickHouse for the catalog queries).
//
// Connections accept either a plain address or a DSN, and optional mTLS:
//
//	client := clickhouse.NewClientWithOptions("clickhouse://loader:secret@ch:9440/default?secure=true",
//		clickhouse.ClientOptions{
//			TLSSettings: clickhouse.TLSSettings{
//				CAFile:   "/etc/ssl/ca.crt",
//				CertFile: "/etc/ssl/client.crt",
//				KeyFile:  "/etc/ssl/client.key",
//			},
//		})
//
//	if err := client.Connect(ctx); err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	version, err := client.GetVersion(ctx)
package clickhouse
