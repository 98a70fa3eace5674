package cmd

import (
	"context"
	"log/slog"

	"github.com/pseudomuto/storekeeper/pkg/config"
	"github.com/pseudomuto/storekeeper/pkg/consts"
	"github.com/pseudomuto/storekeeper/pkg/runner"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type setupParams struct {
	fx.In

	Loader *config.Loader
	Open   Opener
}

// setup creates the setup command, which runs the feature store setup script.
//
// Command flags:
//   - --config, -c: Config file (default: config/storekeeper.yaml)
//   - --drop-existing: Drop the manifest's objects before running the script
//   - --verify-only: Only verify the existing setup
//   - --yes, -y: Skip the confirmation prompt for --drop-existing
//
// Example usage:
//
//	# Run the setup script and verify the result
//	storekeeper setup
//
//	# Start from a clean slate without prompting
//	storekeeper setup --drop-existing --yes
//
//	# Check an existing deployment
//	storekeeper setup --verify-only
func setup(p setupParams) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Run the feature store setup script",
		Description: `Execute every statement of the setup script in order, reporting each
failure and continuing with the next statement. When every statement succeeds
the database, schema, tables and views listed in the manifest are verified.

--drop-existing removes every object in the manifest first. This deletes all
data and asks for confirmation unless --yes is given.`,
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "drop-existing",
				Usage: "drop existing objects before creating them (deletes all data)",
			},
			&cli.BoolFlag{
				Name:  "verify-only",
				Usage: "only verify the existing setup, do not execute SQL",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "do not prompt before dropping existing objects",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runSetup(ctx, cmd, p)
		},
	}
}

func runSetup(ctx context.Context, cmd *cli.Command, p setupParams) error {
	cfg, err := p.Loader.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	client, dialect, err := p.Open(&cfg.Warehouse)
	if err != nil {
		return err
	}

	root := cmd.Root()
	dropExisting := cmd.Bool("drop-existing")
	verifyOnly := cmd.Bool("verify-only")

	var confirm runner.Confirmer = &runner.PromptConfirmer{In: root.Reader, Out: root.Writer}
	if cmd.Bool("yes") {
		confirm = runner.Fixed(true)
	}

	slog.Info("Running setup",
		"driver", cfg.Warehouse.Driver,
		"script", cfg.Script,
		"drop_existing", dropExisting,
		"verify_only", verifyOnly,
	)

	rep := newReporter(root.Writer, dropExisting && !verifyOnly)
	rep.start("FEATURE STORE AUTOMATED SETUP", cfg.Warehouse.Driver)

	result, err := runner.New(client, runner.Options{
		ScriptPath:   cfg.Script,
		DropExisting: dropExisting,
		VerifyOnly:   verifyOnly,
		Manifest:     cfg.Manifest,
		Dialect:      dialect,
		Confirm:      confirm,
		OnState:      rep.onState,
		OnOutcome:    rep.onOutcome,
	}).Run(ctx)
	if err != nil {
		return err
	}

	rep.finish("SETUP SUMMARY", cfg.Manifest, result)
	return nil
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "the storekeeper config file",
		Sources: cli.EnvVars("STOREKEEPER_CONFIG"),
		Value:   consts.DefaultConfigPath,
		Config: cli.StringConfig{
			TrimSpace: true,
		},
	}
}
