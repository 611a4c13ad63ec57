package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tinybazaar/bazaar/internal/model"
)

// appConfig holds the full storefront configuration.
type appConfig struct {
	DBFile       string        `mapstructure:"db-file"`
	SeedFile     string        `mapstructure:"seed-file"`
	QueryTimeout time.Duration `mapstructure:"query-timeout"`

	APIEnabled bool   `mapstructure:"api-enabled"`
	APIAddr    string `mapstructure:"api-addr"`

	BaseCurrency string             `mapstructure:"base-currency"`
	Rates        map[string]float64 `mapstructure:"rates"`

	// RefCode tags this run's orders with an affiliate code, as if the
	// shop had been opened through that affiliate's link.
	RefCode string `mapstructure:"ref-code"`
	// Fragment deep-links straight into a product, e.g. "product-p1".
	Fragment string `mapstructure:"fragment"`
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("BAZAAR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("db-file", model.DefaultDBFile)
	v.SetDefault("seed-file", "")
	v.SetDefault("query-timeout", 30*time.Second)
	v.SetDefault("api-enabled", false)
	v.SetDefault("api-addr", model.DefaultAPIListen)
	v.SetDefault("base-currency", model.DefaultBaseCurrency)
	v.SetDefault("ref-code", "")
	v.SetDefault("fragment", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "bazaar", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
