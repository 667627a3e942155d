package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config struct {
	GitHub GitHubConfig `mapstructure:"github"`
	Lint   LintConfig   `mapstructure:"lint"`
}

type GitHubConfig struct {
	Owner   string `mapstructure:"owner"`
	Repo    string `mapstructure:"repo"`
	Token   string `mapstructure:"token"`
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

type LintConfig struct {
	Format string   `mapstructure:"format" validate:"omitempty,oneof=pretty text json yaml table"`
	Strict bool     `mapstructure:"strict"`
	Checks []string `mapstructure:"checks"`
}

var validate = validator.New()

// LoadConfig reads the optional .repolint.yaml from the given path, the
// working directory or the home directory, then layers REPOLINT_* (and
// GITHUB_TOKEN) environment variables on top.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate home directory: %w", err)
		}
		v.AddConfigPath(".")
		v.AddConfigPath(home)
		v.SetConfigName(".repolint")
		v.SetConfigType("yaml")
	}

	v.SetDefault("lint.format", "pretty")
	v.SetDefault("github.base_url", "https://api.github.com")

	v.SetEnvPrefix("repolint")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("github.token", "GITHUB_TOKEN", "REPOLINT_GITHUB_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind token env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine when none was asked for
		// explicitly; a broken one never is.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validate.Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}
