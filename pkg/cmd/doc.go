// Package cmd provides CLI commands for the storekeeper tool.
//
// This package implements the command-line interface for storekeeper. Each
// command loads the project configuration, opens the configured warehouse and
// hands the work to a runner.Runner, printing progress through pkg/format.
//
// # Available Commands
//
//   - setup: Run the feature store setup script and verify the result
//   - refresh: Run the feature refresh script
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. Commands are provided to
// the root command through the fx "commands" group.
//
// # Global Options
//
// All commands support global flags:
//   - --dir, -d: Specify project directory (defaults to current directory)
//   - --help, -h: Display command help
//   - --version: Display version information
//
// # Exit Codes
//
// The process exits with 1 when the config file or script is missing, the
// warehouse connection fails, or any other unrecoverable error occurs.
// Individual statement failures are reported and the process exits with 0.
package cmd
