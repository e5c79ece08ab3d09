package config

import (
	"fmt"
	"strings"

	"github.com/Alp4ka/sqlpager"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "SQLPAGER"

// Config is the CLI configuration. Values come from, in increasing priority:
// defaults, the config file, SQLPAGER_* environment variables, bound flags.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger"`
	// Query - description of the paginated statement.
	Query sqlpager.RawSQLQuery `mapstructure:"query"`
	// Sort - "alias asc|desc" terms resolved through Columns. Overrides Query.Order.
	Sort []string `mapstructure:"sort"`
	// Columns - sortable column aliases.
	Columns map[string]string `mapstructure:"columns"`
	Output  string            `mapstructure:"output" validate:"oneof=text json yaml"`
}

// Load reads the configuration. path may be empty, in which case only
// defaults, environment and flags are used. flagKeys maps config keys to the
// names of flags in flags that override them.
func Load(path string, flags *pflag.FlagSet, flagKeys map[string]string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for key, flagName := range flagKeys {
		flag := flags.Lookup(flagName)
		if flag == nil {
			return nil, fmt.Errorf("unknown flag '%s' for config key '%s'", flagName, key)
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind flag '%s': %w", flagName, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &cfg, nil
}

// BuildQuery builds the configured query, applying Sort when set.
func (c *Config) BuildQuery() (*sqlpager.SQLQuery, error) {
	raw := c.Query

	if len(c.Sort) > 0 {
		orderings, err := sqlpager.ParseSort(c.Sort, c.Columns)
		if err != nil {
			return nil, fmt.Errorf("cannot parse sort: %w", err)
		}

		opts := []sqlpager.QueryOption{
			sqlpager.WithProjection(raw.Projection...),
			sqlpager.WithFilter(raw.Filter),
			sqlpager.WithOrderings(orderings...),
			sqlpager.WithCursor(raw.Cursor),
			sqlpager.WithPageSize(raw.PageSize),
		}

		return sqlpager.NewSQLQuery(raw.Source, opts...)
	}

	return raw.Build()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("output", "text")

	// Keys must be known to viper for AutomaticEnv to pick them up.
	v.SetDefault("query.source", "")
	v.SetDefault("query.projection", []string{})
	v.SetDefault("query.filter", "")
	v.SetDefault("query.order", "")
	v.SetDefault("query.cursor", "")
	v.SetDefault("query.page_size", 0)
	v.SetDefault("sort", []string{})
	v.SetDefault("columns", map[string]string{})
}
