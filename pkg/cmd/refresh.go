package cmd

import (
	"context"
	"log/slog"

	"github.com/pseudomuto/storekeeper/pkg/runner"
	"github.com/urfave/cli/v3"
)

// refresh creates the refresh command, which re-runs the feature refresh
// script against an existing feature store. Objects are never dropped.
//
// Example usage:
//
//	# Refresh feature data
//	storekeeper refresh
//
//	# Refresh and verify the result
//	storekeeper refresh --verify
func refresh(p setupParams) *cli.Command {
	return &cli.Command{
		Name:  "refresh",
		Usage: "Run the feature refresh script",
		Description: `Execute the refresh script configured as refresh_script through the same
engine as setup: every statement is run in order and failures are reported
without stopping. Verification is skipped unless --verify is given.`,
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "verify",
				Usage: "verify the feature store after refreshing",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runRefresh(ctx, cmd, p)
		},
	}
}

func runRefresh(ctx context.Context, cmd *cli.Command, p setupParams) error {
	cfg, err := p.Loader.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	client, dialect, err := p.Open(&cfg.Warehouse)
	if err != nil {
		return err
	}

	slog.Info("Running refresh", "driver", cfg.Warehouse.Driver, "script", cfg.RefreshScript)

	rep := newReporter(cmd.Root().Writer, false)
	rep.start("FEATURE STORE REFRESH", cfg.Warehouse.Driver)

	result, err := runner.New(client, runner.Options{
		ScriptPath: cfg.RefreshScript,
		SkipVerify: !cmd.Bool("verify"),
		Manifest:   cfg.Manifest,
		Dialect:    dialect,
		OnState:    rep.onState,
		OnOutcome:  rep.onOutcome,
	}).Run(ctx)
	if err != nil {
		return err
	}

	rep.finish("REFRESH SUMMARY", cfg.Manifest, result)
	return nil
}
