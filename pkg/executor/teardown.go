package executor

import (
	"context"
	"log/slog"

	"github.com/pseudomuto/storekeeper/pkg/manifest"
	"github.com/pseudomuto/storekeeper/pkg/warehouse"
)

// Teardown drops the manifest's objects in teardown order so that a setup
// script can be re-run from a clean state.
//
// Every drop is best effort: failures are logged and ignored, and objects the
// dialect cannot drop are skipped. Nothing is recorded in a RunReport.
//
// Example usage:
//
//	executor.Teardown(ctx, client, warehouse.Snowflake{}, manifest.FeatureStore())
func Teardown(ctx context.Context, client warehouse.Client, dialect warehouse.Dialect, m *manifest.Manifest) {
	for _, obj := range m.TeardownOrder() {
		sql := dialect.DropStatement(m, obj)
		if sql == "" {
			slog.Debug("Skipping teardown", "kind", obj.Kind, "name", obj.Name, "dialect", dialect.Name())
			continue
		}

		if _, err := client.Exec(ctx, sql); err != nil {
			slog.Debug("Teardown statement failed", "sql", sql, "error", err)
			continue
		}

		slog.Debug("Dropped object", "kind", obj.Kind, "name", obj.Name)
	}
}
