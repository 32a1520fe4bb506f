package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config holds the runtime settings shared by every command.
type Config struct {
	Saida   string `mapstructure:"saida"`
	Verbose bool   `mapstructure:"verbose"`
}

// Build assembles configuration from, in increasing precedence: defaults,
// an optional config file, CONCILIA_* environment variables and command
// line flags.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// Best effort; a missing .env is fine.
	_ = gotenv.Load()

	v := viper.New()
	v.SetDefault("saida", "conciliacao_saida.xlsx")
	v.SetDefault("verbose", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("concilia")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// Only the implicit config.yaml is allowed to be absent.
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
