package warehouse

import (
	"github.com/pkg/errors"
	"github.com/snowflakedb/gosnowflake"
)

// SnowflakeParams are the account level settings used to build a Snowflake DSN.
type SnowflakeParams struct {
	Account   string
	User      string
	Password  string
	Warehouse string
	Database  string
	Schema    string
	Role      string
}

// SnowflakeDSN renders params as a gosnowflake DSN.
//
// Example:
//
//	dsn, err := warehouse.SnowflakeDSN(warehouse.SnowflakeParams{
//		Account:  "xy12345.us-east-1",
//		User:     "loader",
//		Password: os.Getenv("SNOWFLAKE_PASSWORD"),
//	})
func SnowflakeDSN(params SnowflakeParams) (string, error) {
	if params.Account == "" {
		return "", errors.New("snowflake account is required")
	}

	if params.User == "" {
		return "", errors.New("snowflake user is required")
	}

	dsn, err := gosnowflake.DSN(&gosnowflake.Config{
		Account:   params.Account,
		User:      params.User,
		Password:  params.Password,
		Warehouse: params.Warehouse,
		Database:  params.Database,
		Schema:    params.Schema,
		Role:      params.Role,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to build snowflake DSN")
	}

	return dsn, nil
}
