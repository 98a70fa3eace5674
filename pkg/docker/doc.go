// Package docker runs disposable ClickHouse servers for integration tests.
//
// Containers are managed with testcontainers-go and expose a native protocol
// DSN that can be handed straight to the clickhouse package:
//
//	container := docker.NewWithOptions(docker.DockerOptions{Version: "25.7"})
//	if err := container.Start(ctx); err != nil {
//		return err
//	}
//	defer func() { _ = container.Stop(ctx) }()
//
//	dsn, err := container.GetDSN(ctx)
//	client := clickhouse.NewClient(dsn)
package docker
