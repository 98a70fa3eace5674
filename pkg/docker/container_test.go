package docker_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pseudomuto/storekeeper/pkg/cmd/testutil"
	"github.com/pseudomuto/storekeeper/pkg/docker"
	"github.com/stretchr/testify/require"
)

func TestNewWithOptions_Defaults(t *testing.T) {
	opts := docker.New().Options()
	require.Equal(t, docker.DefaultClickHouseVersion, opts.Version)
	require.Equal(t, docker.DefaultUsername, opts.Username)
	require.Equal(t, 5*time.Minute, opts.StartupTimeout)

	custom := docker.NewWithOptions(docker.DockerOptions{Version: "24.3", Username: "loader"}).Options()
	require.Equal(t, "24.3", custom.Version)
	require.Equal(t, "loader", custom.Username)
}

func TestContainer_NotRunning(t *testing.T) {
	ctx := context.Background()
	container := docker.New()

	require.False(t, container.IsRunning())
	require.NoError(t, container.Stop(ctx))

	_, err := container.GetDSN(ctx)
	require.Error(t, err)
}

func TestContainer_StartStop(t *testing.T) {
	testutil.SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	container := docker.New()
	defer func() { _ = container.Stop(ctx) }()

	require.NoError(t, container.Start(ctx))
	require.True(t, container.IsRunning())
	require.Error(t, container.Start(ctx), "starting twice should fail")

	dsn, err := container.GetDSN(ctx)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(dsn, "clickhouse://"), dsn)

	require.NoError(t, container.Stop(ctx))
	require.False(t, container.IsRunning())
}
