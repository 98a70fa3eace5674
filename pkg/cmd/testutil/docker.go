package testutil

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/pseudomuto/storekeeper/pkg/docker"
	"github.com/stretchr/testify/require"
)

// SkipIfNoDocker skips the test in short mode or when Docker is not available
func SkipIfNoDocker(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping Docker tests in short mode")
	}

	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("Docker not available")
	}

	cmd := exec.CommandContext(t.Context(), "docker", "ps")
	if err := cmd.Run(); err != nil {
		t.Skip("Docker daemon not running")
	}
}

// StartClickHouse starts a ClickHouse container that is stopped when the test
// finishes, and returns its DSN
func StartClickHouse(t *testing.T) string {
	t.Helper()

	SkipIfNoDocker(t)

	container := docker.New()
	t.Cleanup(func() {
		_ = container.Stop(context.Background())
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	require.NoError(t, container.Start(ctx), "Failed to start ClickHouse container")

	dsn, err := container.GetDSN(ctx)
	require.NoError(t, err, "Failed to get container DSN")

	return dsn
}
