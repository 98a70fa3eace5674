package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigPath is the config file used when --config is not given,
	// relative to the project directory.
	DefaultConfigPath = "config/storekeeper.yaml"

	// DefaultScriptPath is the setup script run by the setup command.
	DefaultScriptPath = "sql/feature_store_setup.sql"

	// DefaultRefreshScriptPath is the script run by the refresh command.
	DefaultRefreshScriptPath = "sql/refresh_features.sql"

	// DefaultDriver is the warehouse driver used when none is configured.
	DefaultDriver = "snowflake"

	// DotenvFile is read from the config file's directory when present.
	DotenvFile = ".env"

	// ConfirmationWord must be typed to approve dropping existing objects.
	ConfirmationWord = "yes"
)
