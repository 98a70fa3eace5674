package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/pseudomuto/storekeeper/pkg/consts"
	"github.com/pseudomuto/storekeeper/pkg/manifest"
	"gopkg.in/yaml.v3"
)

type (
	// TLS holds the client certificate settings used for ClickHouse mTLS.
	TLS struct {
		CAFile   string `json:"ca_file,omitempty" yaml:"ca_file,omitempty" toml:"ca_file,omitempty"`
		CertFile string `json:"cert_file,omitempty" yaml:"cert_file,omitempty" toml:"cert_file,omitempty"`
		KeyFile  string `json:"key_file,omitempty" yaml:"key_file,omitempty" toml:"key_file,omitempty"`
	}

	// Warehouse describes how to reach the target warehouse.
	//
	// DSN is passed to the driver unchanged when set. For Snowflake an empty
	// DSN is built from the individual connection fields.
	Warehouse struct {
		// Driver selects the backend: snowflake, clickhouse, postgres, sqlite,
		// libsql or duckdb.
		Driver string `json:"driver" yaml:"driver" toml:"driver"`

		// DSN is the full connection string for the driver.
		DSN string `json:"dsn,omitempty" yaml:"dsn,omitempty" toml:"dsn,omitempty"`

		Account   string `json:"account,omitempty" yaml:"account,omitempty" toml:"account,omitempty"`
		User      string `json:"user,omitempty" yaml:"user,omitempty" toml:"user,omitempty"`
		Password  string `json:"password,omitempty" yaml:"password,omitempty" toml:"password,omitempty"`
		Warehouse string `json:"warehouse,omitempty" yaml:"warehouse,omitempty" toml:"warehouse,omitempty"`
		Database  string `json:"database,omitempty" yaml:"database,omitempty" toml:"database,omitempty"`
		Schema    string `json:"schema,omitempty" yaml:"schema,omitempty" toml:"schema,omitempty"`
		Role      string `json:"role,omitempty" yaml:"role,omitempty" toml:"role,omitempty"`

		// TLS configures client certificates (clickhouse only).
		TLS TLS `json:"tls" yaml:"tls,omitempty" toml:"tls,omitempty"`
	}

	// Config represents the storekeeper project configuration.
	Config struct {
		// Warehouse contains the connection settings
		Warehouse Warehouse `json:"warehouse" yaml:"warehouse" toml:"warehouse"`

		// Script is the setup script, relative to the project directory
		Script string `json:"script" yaml:"script" toml:"script"`

		// RefreshScript is the feature refresh script, relative to the project directory
		RefreshScript string `json:"refresh_script" yaml:"refresh_script" toml:"refresh_script"`

		// Manifest lists the objects the setup script is expected to create
		Manifest *manifest.Manifest `json:"manifest" yaml:"manifest" toml:"manifest"`
	}

	// Format is a configuration file encoding.
	Format string
)

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// FormatFor returns the Format implied by the extension of path. Unknown
// extensions are treated as YAML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// ${VAR} references in string values are expanded from the process
// environment. Defaults are applied for every omitted field and the result is
// validated before it is returned.
//
// Example:
//
//	yamlData := `
//	warehouse:
//	  driver: sqlite
//	  dsn: features.db
//	manifest:
//	  database: main
//	  schema: main
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData), config.FormatYAML)
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Script: %s\n", cfg.Script) // sql/feature_store_setup.sql
func LoadConfig(r io.Reader, format Format) (*Config, error) {
	return load(r, format, os.LookupEnv)
}

// LoadConfigFile loads a configuration from the specified file path using a
// Loader backed by the process environment.
//
// Example:
//
//	cfg, err := config.LoadConfigFile("config/storekeeper.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
//
//	fmt.Printf("Driver: %s\n", cfg.Warehouse.Driver)
func LoadConfigFile(path string) (*Config, error) {
	return NewLoader().Load(path)
}

func load(r io.Reader, format Format, lookup LookupFunc) (*Config, error) {
	var cfg Config

	switch format {
	case FormatTOML:
		if err := toml.NewDecoder(r).Decode(&cfg); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal config")
		}
	case FormatYAML, FormatJSON:
		if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal config")
		}
	default:
		return nil, errors.Errorf("unsupported config format: %q", format)
	}

	if err := cfg.expand(lookup); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Warehouse.Driver == "" {
		c.Warehouse.Driver = consts.DefaultDriver
	}
	if c.Script == "" {
		c.Script = consts.DefaultScriptPath
	}
	if c.RefreshScript == "" {
		c.RefreshScript = consts.DefaultRefreshScriptPath
	}
	if c.Manifest == nil {
		c.Manifest = manifest.FeatureStore()
	}
}

func (c *Config) expand(lookup LookupFunc) error {
	fields := []*string{
		&c.Warehouse.Driver,
		&c.Warehouse.DSN,
		&c.Warehouse.Account,
		&c.Warehouse.User,
		&c.Warehouse.Password,
		&c.Warehouse.Warehouse,
		&c.Warehouse.Database,
		&c.Warehouse.Schema,
		&c.Warehouse.Role,
		&c.Warehouse.TLS.CAFile,
		&c.Warehouse.TLS.CertFile,
		&c.Warehouse.TLS.KeyFile,
		&c.Script,
		&c.RefreshScript,
	}

	for _, f := range fields {
		v, err := Expand(*f, lookup)
		if err != nil {
			return err
		}
		*f = v
	}

	return nil
}
