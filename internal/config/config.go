// Package config resolves the arseo command-line configuration.
//
// Values are layered, highest priority first: command-line flags,
// ARSEO_* environment variables, the YAML config file, and the defaults
// below. The config file is the one named by --config, or
// $XDG_CONFIG_HOME/arseo/config.yaml when it exists.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/civanmustafa/Sembrand-editor/seo"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "arseo"

// EnvPrefix prefixes every environment variable, e.g. ARSEO_PRIMARY.
const EnvPrefix = "ARSEO"

// Default values.
const (
	DefaultFormat      = FormatJSON
	DefaultConcurrency = 4
	DefaultConfigFile  = "config.yaml"
)

// Report formats.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Keys shared by flags, environment variables and the config file.
const (
	KeyPrimary     = "primary"
	KeySecondary   = "secondary"
	KeyCompany     = "company"
	KeyFormat      = "format"
	KeyLexicon     = "lexicon"
	KeyConcurrency = "concurrency"
	KeyHTML        = "html"
	KeyVerbose     = "verbose"
)

var keys = []string{
	KeyPrimary, KeySecondary, KeyCompany, KeyFormat,
	KeyLexicon, KeyConcurrency, KeyHTML, KeyVerbose,
}

// Configuration errors.
var (
	ErrConfigNotFound     = errors.New("configuration file not found")
	ErrInvalidFormat      = errors.New("invalid format: must be json or markdown")
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")
)

// Config is the resolved configuration of one arseo run.
type Config struct {
	Primary     string   `mapstructure:"primary"`
	Secondary   []string `mapstructure:"secondary"`
	Company     string   `mapstructure:"company"`
	Format      string   `mapstructure:"format"`
	Lexicon     string   `mapstructure:"lexicon"` // path to a lexicon YAML file
	Concurrency int      `mapstructure:"concurrency"`
	HTML        bool     `mapstructure:"html"` // inputs are HTML, not plain text
	Verbose     bool     `mapstructure:"verbose"`
}

// XDGConfigDir returns the arseo directory under the XDG config home.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultPath returns the config file read when --config is not given.
func DefaultPath() string {
	return filepath.Join(XDGConfigDir(), DefaultConfigFile)
}

// New returns a viper instance with the defaults and environment binding
// set. Callers bind their flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyFormat, DefaultFormat)
	v.SetDefault(KeyConcurrency, DefaultConcurrency)
	v.SetDefault(KeySecondary, []string{})
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// Unmarshal only sees environment values for keys viper knows about.
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
	return v
}

// Load reads the config file into v and decodes the merged settings.
// An explicit path that does not exist is an error; a missing default
// file is not.
func Load(v *viper.Viper, path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration. It returns the first problem found.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatJSON, FormatMarkdown:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	return c.Params().Validate()
}

// Params returns the analysis terms.
func (c *Config) Params() seo.Params {
	return seo.Params{
		Primary:   c.Primary,
		Secondary: c.Secondary,
		Company:   c.Company,
	}
}
