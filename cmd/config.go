package cmd

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DBConfig is one entry of the databases list in obt-sqlgen.yaml.
// Provider is either an ADO.Net invariant name (Npgsql,
// System.Data.SqlClient, ...) or a Go driver name.
type DBConfig struct {
	Name     string `mapstructure:"name" validate:"required"`
	Provider string `mapstructure:"provider" validate:"required"`
	DSN      string `mapstructure:"dsn" validate:"required"`
	Schema   string `mapstructure:"schema"`
	Active   bool   `mapstructure:"active"`
}

var validate = validator.New()

// GetActiveDBConfig returns the currently active database configuration.
func GetActiveDBConfig() (*DBConfig, error) {
	var configs []DBConfig

	if err := viper.UnmarshalKey("databases", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse databases config: %w", err)
	}

	var activeConfig *DBConfig
	count := 0

	for i := range configs {
		if configs[i].Active {
			activeConfig = &configs[i]
			count++
		}
	}

	if count == 0 {
		return nil, fmt.Errorf("no active database found in config (set active: true)")
	}
	if count > 1 {
		return nil, fmt.Errorf("multiple active databases found (only one can be active)")
	}

	if err := validate.Struct(activeConfig); err != nil {
		return nil, fmt.Errorf("invalid database config %q: %w", activeConfig.Name, err)
	}

	return activeConfig, nil
}

// resolveConnection picks the connection to use: --provider and --dsn
// when both are given, the active database from the config file otherwise.
func resolveConnection() (*DBConfig, error) {
	provider := viper.GetString("database.provider")
	dsn := viper.GetString("database.dsn")
	if provider != "" && dsn != "" {
		return &DBConfig{
			Name:     "command line",
			Provider: provider,
			DSN:      dsn,
			Schema:   viper.GetString("database.schema"),
			Active:   true,
		}, nil
	}

	cfg, err := GetActiveDBConfig()
	if err != nil {
		return nil, fmt.Errorf("no connection given (use --provider and --dsn or a config file): %w", err)
	}
	if s := viper.GetString("database.schema"); s != "" {
		cfg.Schema = s
	}
	return cfg, nil
}
