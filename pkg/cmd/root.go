package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates and executes the storekeeper CLI application with the supplied
// version, commands and command-line arguments.
//
// The application is started from an fx start hook and shuts the fx app down
// once the command completes. The exit code is 1 when the command returns an
// error and 0 otherwise. Statement failures during a run are reported but do
// not produce an error.
//
// Global Flags:
//   - --dir, -d: Project directory (defaults to current directory)
//
// Relative config and script paths are resolved against the project
// directory.
//
// Example usage:
//
//	# Set up the feature store from the current directory
//	storekeeper setup
//
//	# Recreate it from scratch in another project directory
//	storekeeper --dir /path/to/project setup --drop-existing
func Run(p Params) {
	app := NewApp(p.Version, p.Commands)

	p.Lifecycle.Append(fx.StartHook(func() {
		// Start hooks are bound by fx.StartTimeout, commands are not.
		go func() {
			if err := app.Run(p.Ctx, p.Args); err != nil {
				slog.Error("Error running command", "err", err)
				_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
				return
			}

			_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
		}()
	}))
}

// NewApp builds the root command.
func NewApp(version *Version, commands []*cli.Command) *cli.Command {
	if version == nil {
		version = &Version{}
	}

	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Root().Writer, "Version:", version.Version)
		fmt.Fprintln(cmd.Root().Writer, "Commit:", version.Commit)
		fmt.Fprintln(cmd.Root().Writer, "Date:", version.Timestamp)
	}

	return &cli.Command{
		Name:  "storekeeper",
		Usage: "Set up and verify a feature store in a data warehouse",
		Description: `storekeeper runs the feature store setup script against a warehouse
statement by statement, reports every failure without stopping, and verifies
that the expected database, schema, tables and views exist afterwards.`,
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "the project directory",
				Value:       ".",
				DefaultText: "Current directory",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, os.Chdir(cmd.String("dir"))
		},
		Commands: commands,
	}
}
