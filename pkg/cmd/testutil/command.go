package testutil

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
)

// RunCommand executes a command under a test root command. The command reads
// from in and the combined output is returned.
func RunCommand(t *testing.T, command *cli.Command, in string, args ...string) (string, error) {
	t.Helper()
	return RunCommandWithContext(context.Background(), t, command, in, args...)
}

// RunCommandWithContext executes a command with a custom context
func RunCommandWithContext(ctx context.Context, t *testing.T, command *cli.Command, in string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := &cli.Command{
		Name:      "test",
		Reader:    strings.NewReader(in),
		Writer:    &out,
		ErrWriter: io.Discard,
		Commands:  []*cli.Command{command},
	}

	// Prepend command name to args
	fullArgs := append([]string{"test", command.Name}, args...)

	err := app.Run(ctx, fullArgs)
	return out.String(), err
}
