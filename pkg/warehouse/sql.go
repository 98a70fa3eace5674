package warehouse

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/pkg/errors"
)

// SQLClient is a Client backed by a database/sql driver.
//
// The pool is capped at a single connection so that session state (USE
// DATABASE, temporary objects, in-memory databases) carries across statements.
type SQLClient struct {
	driver string
	dsn    string
	db     *sql.DB
}

// NewSQLClient creates a client for the registered database/sql driver name.
// No connection is made until Connect.
//
// Example usage:
//
//	client := warehouse.NewSQLClient(warehouse.DriverPostgres, "postgres://localhost/features?sslmode=disable")
//	if err := client.Connect(ctx); err != nil {
//		log.Fatal(err)
//	}
//	defer func() { _ = client.Close() }()
func NewSQLClient(driver, dsn string) *SQLClient {
	return &SQLClient{driver: driver, dsn: dsn}
}

// Connect opens the connection and verifies it with a ping.
func (c *SQLClient) Connect(ctx context.Context) error {
	db, err := sql.Open(c.driver, c.dsn)
	if err != nil {
		return NewConnectionError(c.driver, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return NewConnectionError(c.driver, err)
	}

	slog.Debug("Connected to warehouse", "driver", c.driver)
	c.db = db
	return nil
}

// Query runs sql and reads every row into memory.
func (c *SQLClient) Query(ctx context.Context, sql string) (*Result, error) {
	if c.db == nil {
		return nil, errors.New("client is not connected")
	}

	rows, err := c.db.QueryContext(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read columns")
	}

	res := &Result{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.Wrap(err, "failed to scan row")
		}

		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}

		res.Rows = append(res.Rows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return res, nil
}

// Exec runs sql and returns the affected row count. Drivers that cannot report
// a count yield 0.
func (c *SQLClient) Exec(ctx context.Context, sql string) (int64, error) {
	if c.db == nil {
		return 0, errors.New("client is not connected")
	}

	res, err := c.db.ExecContext(ctx, sql)
	if err != nil {
		return 0, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, nil
	}

	return affected, nil
}

// Close releases the connection. It is a no-op when not connected.
func (c *SQLClient) Close() error {
	if c.db == nil {
		return nil
	}

	err := c.db.Close()
	c.db = nil
	return err
}
