// Package config loads per-project routelens settings: a routelens.yaml at
// the project root merged over defaults. Anything beyond that simple merge
// (workspace discovery, per-editor settings) is deliberately absent.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/routelens/routelens/pkg/resolver"
)

// FileName is the config file name, without extension.
const FileName = "routelens"

// Config is the merged project configuration.
type Config struct {
	// AppDir is the app directory relative to the project root
	AppDir string `mapstructure:"appDir" yaml:"appDir"`
	// DefinitionFile is the route definition file name without extension
	DefinitionFile string `mapstructure:"definitionFile" yaml:"definitionFile"`
}

// Load reads routelens.yaml from the project root and merges it over
// defaults. A missing file is not an error; a malformed one is.
func Load(projectRoot string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(projectRoot)
	v.SetDefault("definitionFile", resolver.DefaultDefinitionBase)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read %s.yaml: %w", FileName, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse %s.yaml: %w", FileName, err)
	}

	if cfg.AppDir == "" {
		cfg.AppDir = DetectAppDir(projectRoot)
	}
	return cfg, nil
}

// DetectAppDir picks the app directory for a project: the first of src/app
// and app that exists, falling back to "app" when neither does (so callers
// still get a deterministic candidate path to report).
func DetectAppDir(projectRoot string) string {
	for _, dir := range resolver.DefaultAppDirs {
		info, err := os.Stat(filepath.Join(projectRoot, dir))
		if err == nil && info.IsDir() {
			return dir
		}
	}
	return "app"
}

// ResolverConfig converts the project configuration into the resolver's
// per-call form.
func (c *Config) ResolverConfig() resolver.Config {
	return resolver.Config{
		AppDir:         c.AppDir,
		DefinitionBase: c.DefinitionFile,
	}
}

// AppPath returns the absolute app directory for a project root.
func (c *Config) AppPath(projectRoot string) string {
	return filepath.Join(projectRoot, c.AppDir)
}
