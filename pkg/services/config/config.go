package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/dummy-atlas/pkg/models/domain"
	"github.com/spf13/viper"
)

const envPrefix = "ATLAS"

const (
	EngineMemory = "memory"
	EngineDuckDB = "duckdb"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Engine   EngineConfig   `mapstructure:"engine"`
	Profiles string         `mapstructure:"profiles"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DefaultsConfig holds the parameters used when a request leaves them out.
type DefaultsConfig struct {
	Category string `mapstructure:"category"`
	Years    int    `mapstructure:"years"`
	MaxRows  int    `mapstructure:"max_rows"`
	Seed     uint64 `mapstructure:"seed"`
}

type EngineConfig struct {
	Kind   string `mapstructure:"kind"`
	DbPath string `mapstructure:"db_path"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("defaults.category", string(domain.CategoryCafe))
	v.SetDefault("defaults.years", 2)
	v.SetDefault("defaults.max_rows", 365)
	v.SetDefault("defaults.seed", 0)
	v.SetDefault("engine.kind", EngineMemory)
	v.SetDefault("engine.db_path", ":memory:")
	v.SetDefault("profiles", "")
}

// LoadConfig reads the optional config file, then ATLAS_* environment variables
// (ATLAS_SERVER_PORT, ATLAS_DEFAULTS_YEARS, ...) on top of the built-in defaults.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid server port %d", c.Server.Port))
	}
	if c.Engine.Kind != EngineMemory && c.Engine.Kind != EngineDuckDB {
		errs = append(errs, fmt.Errorf("invalid engine %q: must be %s or %s", c.Engine.Kind, EngineMemory, EngineDuckDB))
	}
	if _, err := c.DefaultParams(); err != nil {
		errs = append(errs, fmt.Errorf("invalid defaults: %w", err))
	}
	return errors.Join(errs...)
}

// DefaultParams converts the defaults section into validated build parameters.
func (c *Config) DefaultParams() (domain.Params, error) {
	category, err := domain.ParseCategory(c.Defaults.Category)
	if err != nil {
		return domain.Params{}, err
	}
	params := domain.Params{
		Category: category,
		Years:    c.Defaults.Years,
		MaxRows:  c.Defaults.MaxRows,
		Seed:     c.Defaults.Seed,
	}
	return params, params.Validate()
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
