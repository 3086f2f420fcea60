// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Configuration loading from defaults, .env, config file, env vars and flags

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override (BUILD_RUNNER_PROJECT, ...)
	EnvPrefix = "BUILD_RUNNER"
	// FileName is the config file base name searched for when no explicit file is given
	FileName = "build-runner"
	// EnvFileName is the optional dotenv file loaded from the base directory
	EnvFileName = ".env"
)

// Keys understood by the loader
const (
	KeyProject       = "project"
	KeyConfiguration = "configuration"
	KeyPlatform      = "platform"
	KeyTool          = "tool"
	KeyOSTag         = "os_tag"
	KeyDir           = "dir"
	KeyPublishDir    = "publish_dir"
	KeyClosingDelay  = "closing_delay"
)

// Options controls where Load looks for configuration
type Options struct {
	BaseDir    string // Directory of the runner itself; default for Dir and config search path
	ConfigFile string // Explicit config file; must exist when set
	EnvFile    string // Explicit dotenv file; must exist when set
}

// NewViper returns a viper instance carrying the defaults and env bindings.
// Callers may bind flags onto it before calling Load.
func NewViper(baseDir string) *viper.Viper {
	v := viper.New()

	def := Default(baseDir)
	v.SetDefault(KeyProject, def.Project)
	v.SetDefault(KeyConfiguration, def.Configuration)
	v.SetDefault(KeyPlatform, def.Platform)
	v.SetDefault(KeyTool, def.Tool)
	v.SetDefault(KeyOSTag, def.OSTag)
	v.SetDefault(KeyDir, def.Dir)
	v.SetDefault(KeyPublishDir, "")
	v.SetDefault(KeyClosingDelay, def.ClosingDelay)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// Load resolves the final configuration. Precedence, highest first:
// flags bound on v, environment, config file, .env, defaults.
func Load(v *viper.Viper, opts Options) (Config, error) {
	if err := loadEnvFile(v, opts); err != nil {
		return Config{}, err
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		if opts.BaseDir != "" {
			v.AddConfigPath(opts.BaseDir)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Dir != "" && !filepath.IsAbs(cfg.Dir) {
		abs, err := filepath.Abs(cfg.Dir)
		if err != nil {
			return Config{}, fmt.Errorf("failed to resolve dir %s: %w", cfg.Dir, err)
		}
		cfg.Dir = abs
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadEnvFile reads BUILD_RUNNER_* entries from a dotenv file as defaults on v,
// so the config file and the real environment both take precedence over them
func loadEnvFile(v *viper.Viper, opts Options) error {
	path := opts.EnvFile
	if path == "" {
		if opts.BaseDir == "" {
			return nil
		}
		path = filepath.Join(opts.BaseDir, EnvFileName)
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	prefix := EnvPrefix + "_"
	for name, value := range vars {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		v.SetDefault(strings.ToLower(strings.TrimPrefix(name, prefix)), value)
	}
	return nil
}
