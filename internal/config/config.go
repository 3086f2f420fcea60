// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Build configuration value and derived paths

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation
var ErrInvalidConfig = errors.New("invalid configuration")

// Default values used when nothing else is configured
const (
	DefaultProject       = "hotcorners"
	DefaultConfiguration = "Release"
	DefaultPlatform      = "x64"
	DefaultTool          = "msbuild"
	DefaultOSTag         = "win"
	DefaultClosingDelay  = 3 * time.Second
)

// Config describes one build. It is built once at startup and passed by value.
type Config struct {
	Project       string        `mapstructure:"project" yaml:"project"`
	Configuration string        `mapstructure:"configuration" yaml:"configuration"`
	Platform      string        `mapstructure:"platform" yaml:"platform"`
	Tool          string        `mapstructure:"tool" yaml:"tool"`
	OSTag         string        `mapstructure:"os_tag" yaml:"os_tag"`
	Dir           string        `mapstructure:"dir" yaml:"dir"`
	PublishDir    string        `mapstructure:"publish_dir" yaml:"publish_dir,omitempty"`
	ClosingDelay  time.Duration `mapstructure:"closing_delay" yaml:"closing_delay"`
}

// Default returns the built-in configuration rooted at dir
func Default(dir string) Config {
	return Config{
		Project:       DefaultProject,
		Configuration: DefaultConfiguration,
		Platform:      DefaultPlatform,
		Tool:          DefaultTool,
		OSTag:         DefaultOSTag,
		Dir:           dir,
		ClosingDelay:  DefaultClosingDelay,
	}
}

// ProjectFile returns the project file handed to the build tool
func (c Config) ProjectFile() string {
	return c.Project + ".vcxproj"
}

// BuildCommand returns the build tool invocation as program name + arguments
func (c Config) BuildCommand() []string {
	return []string{
		c.Tool,
		c.ProjectFile(),
		"-t:rebuild",
		"-p:Configuration=" + c.Configuration,
		"-p:Platform=" + c.Platform,
	}
}

// OutputDir returns bin/<os>-<platform>-<configuration>, relative to Dir
func (c Config) OutputDir() string {
	return filepath.Join("bin", fmt.Sprintf("%s-%s-%s", c.OSTag, c.Platform, c.Configuration))
}

// ArtifactPath returns the expected executable path, relative to Dir
func (c Config) ArtifactPath() string {
	return filepath.Join(c.OutputDir(), c.Project+".exe")
}

// IsReleaseX64 reports whether this is the Release|x64 combination that gets published
func (c Config) IsReleaseX64() bool {
	return c.Configuration+"|"+c.Platform == "Release|x64"
}

// Validate checks that every required field is usable
func (c Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Project) == "" {
		problems = append(problems, "project is required")
	} else if strings.ContainsAny(c.Project, `/\`) {
		problems = append(problems, fmt.Sprintf("project must be a bare name, got %q", c.Project))
	}
	if strings.TrimSpace(c.Configuration) == "" {
		problems = append(problems, "configuration is required")
	}
	if strings.TrimSpace(c.Platform) == "" {
		problems = append(problems, "platform is required")
	}
	if strings.TrimSpace(c.Tool) == "" {
		problems = append(problems, "tool is required")
	}
	if strings.TrimSpace(c.OSTag) == "" {
		problems = append(problems, "os_tag is required")
	}
	if strings.TrimSpace(c.Dir) == "" {
		problems = append(problems, "dir is required")
	}
	if c.ClosingDelay < 0 {
		problems = append(problems, "closing_delay must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
