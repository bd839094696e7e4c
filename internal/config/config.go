package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "SPECFILTER"

	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeyCatalog   = "catalog"
	KeyOutput    = "output"

	OutputText = "text"
	OutputJSON = "json"
)

// ErrInvalid a configuration value is not allowed
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Log     LogConfig `mapstructure:"log"`
	Catalog string    `mapstructure:"catalog"`
	Output  string    `mapstructure:"output"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SetDefaults sets the value of every key nobody configured.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyCatalog, "")
	v.SetDefault(KeyOutput, OutputText)
}

// NewViper layers defaults, the optional YAML configFile and SPECFILTER_* environment variables.
// Flags are bound on top by the caller.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", configFile)
		}
	}
	return v, nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	cfg.Output = strings.ToLower(cfg.Output)
	if cfg.Output != OutputText && cfg.Output != OutputJSON {
		return nil, errors.Wrapf(ErrInvalid, "output %q, want %s or %s", cfg.Output, OutputText, OutputJSON)
	}
	return &cfg, nil
}
