// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Bill struct {
		Delimiter     string `mapstructure:"delimiter" yaml:"delimiter"`
		OutputDir     string `mapstructure:"output_dir" yaml:"output_dir"`
		ConstantsFile string `mapstructure:"constants_file" yaml:"constants_file"`
	} `mapstructure:"bill" yaml:"bill"`

	Extract struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"extract" yaml:"extract"`

	Export struct {
		CSV  bool `mapstructure:"csv" yaml:"csv"`
		XLSX bool `mapstructure:"xlsx" yaml:"xlsx"`
	} `mapstructure:"export" yaml:"export"`
}

// flagBindings maps CLI flags onto config keys. Flags missing from the
// given set are ignored.
var flagBindings = map[string]string{
	"log.level":       "log-level",
	"log.format":      "log-format",
	"bill.output_dir": "output-dir",
	"export.csv":      "csv",
	"export.xlsx":     "xlsx",
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
// Flags, when given, take precedence over environment and config file values.
func InitializeConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.phonebill")
	v.AddConfigPath(".phonebill")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("PHONEBILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	// 5. CLI flags
	if flags != nil {
		for key, name := range flagBindings {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("bill.delimiter", ",")
	v.SetDefault("bill.output_dir", "output")
	v.SetDefault("bill.constants_file", "")

	v.SetDefault("extract.delimiter", "|")

	v.SetDefault("export.csv", false)
	v.SetDefault("export.xlsx", false)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if utf8.RuneCountInString(config.Bill.Delimiter) != 1 {
		return fmt.Errorf("bill delimiter must be a single character, got: %q", config.Bill.Delimiter)
	}

	if utf8.RuneCountInString(config.Extract.Delimiter) != 1 {
		return fmt.Errorf("extract delimiter must be a single character, got: %q", config.Extract.Delimiter)
	}

	if strings.TrimSpace(config.Bill.OutputDir) == "" {
		return fmt.Errorf("bill.output_dir must not be empty")
	}

	return nil
}

// BillDelimiter returns the bill CSV delimiter as a rune.
func (c *Config) BillDelimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.Bill.Delimiter)
	return r
}

// ExtractDelimiter returns the extractor CSV delimiter as a rune.
func (c *Config) ExtractDelimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.Extract.Delimiter)
	return r
}
