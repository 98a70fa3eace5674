package cmd

import (
	"github.com/pkg/errors"
	"github.com/pseudomuto/storekeeper/pkg/clickhouse"
	"github.com/pseudomuto/storekeeper/pkg/config"
	"github.com/pseudomuto/storekeeper/pkg/warehouse"
)

// Opener creates an unconnected client and the matching dialect for the
// configured warehouse.
type Opener func(*config.Warehouse) (warehouse.Client, warehouse.Dialect, error)

// OpenWarehouse is the default Opener.
//
// ClickHouse uses the native protocol client. Snowflake builds its DSN from the
// account fields when no dsn is configured. Every other driver requires a dsn.
func OpenWarehouse(cfg *config.Warehouse) (warehouse.Client, warehouse.Dialect, error) {
	dialect, err := warehouse.DialectFor(cfg.Driver)
	if err != nil {
		return nil, nil, err
	}

	switch cfg.Driver {
	case warehouse.DriverClickHouse:
		if cfg.DSN == "" {
			return nil, nil, errors.New("warehouse.dsn is required for clickhouse")
		}

		client := clickhouse.NewClientWithOptions(cfg.DSN, clickhouse.ClientOptions{
			TLSSettings: clickhouse.TLSSettings{
				CAFile:   cfg.TLS.CAFile,
				CertFile: cfg.TLS.CertFile,
				KeyFile:  cfg.TLS.KeyFile,
			},
		})
		return client, dialect, nil

	case warehouse.DriverSnowflake:
		dsn := cfg.DSN
		if dsn == "" {
			dsn, err = warehouse.SnowflakeDSN(warehouse.SnowflakeParams{
				Account:   cfg.Account,
				User:      cfg.User,
				Password:  cfg.Password,
				Warehouse: cfg.Warehouse,
				Database:  cfg.Database,
				Schema:    cfg.Schema,
				Role:      cfg.Role,
			})
			if err != nil {
				return nil, nil, errors.Wrap(err, "failed to build snowflake dsn")
			}
		}
		return warehouse.NewSQLClient(cfg.Driver, dsn), dialect, nil

	default:
		if cfg.DSN == "" {
			return nil, nil, errors.Errorf("warehouse.dsn is required for %s", cfg.Driver)
		}
		return warehouse.NewSQLClient(cfg.Driver, cfg.DSN), dialect, nil
	}
}
