package docker

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultClickHouseVersion is the image tag used when no version is set.
	DefaultClickHouseVersion = "25.7"

	// DefaultUsername is the ClickHouse user created in the container.
	DefaultUsername = "default"
)

type (
	// DockerOptions represents options for running ClickHouse in Docker
	DockerOptions struct {
		// Version is the ClickHouse version to run (default: DefaultClickHouseVersion)
		Version string

		// Username and Password of the ClickHouse user (default: "default" with no password)
		Username string
		Password string

		// StartupTimeout bounds the wait for the HTTP interface (default: 5 minutes)
		StartupTimeout time.Duration
	}

	// Container manages a disposable ClickHouse server for integration tests
	Container struct {
		options   DockerOptions
		container *clickhouse.ClickHouseContainer
	}
)

// New creates a new Docker container with default options
//
// Example:
//
//	container := docker.New()
//
//	if err := container.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//	defer func() { _ = container.Stop(ctx) }()
//
//	dsn, err := container.GetDSN(ctx)
func New() *Container {
	return NewWithOptions(DockerOptions{})
}

// NewWithOptions creates a new Docker container with custom options
func NewWithOptions(opts DockerOptions) *Container {
	if opts.Version == "" {
		opts.Version = DefaultClickHouseVersion
	}

	if opts.Username == "" {
		opts.Username = DefaultUsername
	}

	if opts.StartupTimeout == 0 {
		opts.StartupTimeout = 5 * time.Minute
	}

	return &Container{options: opts}
}

// Options returns the effective options.
func (c *Container) Options() DockerOptions {
	return c.options
}

// Start starts a ClickHouse Docker container with the configured version
func (c *Container) Start(ctx context.Context) error {
	if c.container != nil {
		return errors.New("container is already running")
	}

	container, err := clickhouse.Run(ctx,
		fmt.Sprintf("clickhouse/clickhouse-server:%s-alpine", c.options.Version),
		clickhouse.WithUsername(c.options.Username),
		clickhouse.WithPassword(c.options.Password),
		testcontainers.WithEnv(map[string]string{"CLICKHOUSE_DEFAULT_ACCESS_MANAGEMENT": "1"}),
		testcontainers.WithWaitStrategyAndDeadline(
			c.options.StartupTimeout,
			wait.
				NewHTTPStrategy("/").
				WithPort("8123/tcp").
				WithStatusCodeMatcher(func(status int) bool {
					return status == 200
				}),
		),
	)
	if err != nil {
		return errors.Wrap(err, "failed to start ClickHouse container")
	}

	c.container = container
	return nil
}

// Stop stops and removes the ClickHouse Docker container
func (c *Container) Stop(ctx context.Context) error {
	if c.container == nil {
		return nil
	}

	err := c.container.Terminate(ctx)
	c.container = nil

	if err != nil {
		return errors.Wrap(err, "failed to stop ClickHouse container")
	}

	return nil
}

// GetDSN returns the native protocol DSN of the running container
func (c *Container) GetDSN(ctx context.Context) (string, error) {
	if c.container == nil {
		return "", errors.New("container is not running")
	}

	dsn, err := c.container.ConnectionString(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to get connection string")
	}

	return dsn, nil
}

// IsRunning returns true if the container is currently running
func (c *Container) IsRunning() bool {
	return c.container != nil
}
