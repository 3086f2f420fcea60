// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Config tests

package tests

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sony-level/build-runner/internal/config"
)

func TestDefaultBuildCommand(t *testing.T) {
	cfg := config.Default("/src")

	assert.Equal(t, []string{
		"msbuild",
		"hotcorners.vcxproj",
		"-t:rebuild",
		"-p:Configuration=Release",
		"-p:Platform=x64",
	}, cfg.BuildCommand())
}

func TestArtifactPath(t *testing.T) {
	cfg := config.Default("/src")
	cfg.Configuration = "Debug"

	assert.Equal(t, filepath.Join("bin", "win-x64-Debug", "hotcorners.exe"), cfg.ArtifactPath())
}

func TestIsReleaseX64(t *testing.T) {
	tests := []struct {
		configuration string
		platform      string
		want          bool
	}{
		{"Release", "x64", true},
		{"Debug", "x64", false},
		{"Release", "Win32", false},
		{"release", "x64", false},
	}

	for _, tt := range tests {
		t.Run(tt.configuration+"|"+tt.platform, func(t *testing.T) {
			cfg := config.Default("/src")
			cfg.Configuration = tt.configuration
			cfg.Platform = tt.platform
			assert.Equal(t, tt.want, cfg.IsReleaseX64())
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, config.Default("/src").Validate())

	cfg := config.Default("/src")
	cfg.Project = "sub/project"
	cfg.Tool = ""
	cfg.ClosingDelay = -time.Second

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "bare name")
	assert.Contains(t, err.Error(), "tool is required")
	assert.Contains(t, err.Error(), "closing_delay")
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load(config.NewViper(dir), config.Options{BaseDir: dir})
	require.NoError(t, err)

	assert.Equal(t, config.Default(dir), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "project: demo\nconfiguration: Debug\nclosing_delay: 1s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "build-runner.yml"), []byte(content), 0o644))

	cfg, err := config.Load(config.NewViper(dir), config.Options{BaseDir: dir})
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Project)
	assert.Equal(t, "Debug", cfg.Configuration)
	assert.Equal(t, "x64", cfg.Platform)
	assert.Equal(t, time.Second, cfg.ClosingDelay)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "build-runner.yml"), []byte("platform: Win32\n"), 0o644))
	t.Setenv("BUILD_RUNNER_PLATFORM", "ARM64")

	cfg, err := config.Load(config.NewViper(dir), config.Options{BaseDir: dir})
	require.NoError(t, err)

	assert.Equal(t, "ARM64", cfg.Platform)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	dotenv := "BUILD_RUNNER_CONFIGURATION=Debug\nBUILD_RUNNER_PLATFORM=Win32\nUNRELATED=1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(dotenv), 0o644))

	cfg, err := config.Load(config.NewViper(dir), config.Options{BaseDir: dir})
	require.NoError(t, err)

	assert.Equal(t, "Debug", cfg.Configuration)
	assert.Equal(t, "Win32", cfg.Platform)

	_, leaked := os.LookupEnv("BUILD_RUNNER_CONFIGURATION")
	assert.False(t, leaked, ".env must not be exported to the process environment")
}

func TestLoadFileOverridesDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BUILD_RUNNER_CONFIGURATION=Debug\nBUILD_RUNNER_PROJECT=fromenv\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "build-runner.yml"), []byte("configuration: Release\n"), 0o644))

	cfg, err := config.Load(config.NewViper(dir), config.Options{BaseDir: dir})
	require.NoError(t, err)

	assert.Equal(t, "Release", cfg.Configuration)
	assert.Equal(t, "fromenv", cfg.Project)
}

func TestLoadEnvOverridesDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BUILD_RUNNER_TOOL=fromdotenv\n"), 0o644))
	t.Setenv("BUILD_RUNNER_TOOL", "fromenv")

	cfg, err := config.Load(config.NewViper(dir), config.Options{BaseDir: dir})
	require.NoError(t, err)

	assert.Equal(t, "fromenv", cfg.Tool)
}

func TestLoadExplicitEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(t.TempDir(), "ci.env")
	require.NoError(t, os.WriteFile(path, []byte("BUILD_RUNNER_CLOSING_DELAY=500ms\n"), 0o644))

	cfg, err := config.Load(config.NewViper(dir), config.Options{BaseDir: dir, EnvFile: path})
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.ClosingDelay)

	_, err = config.Load(config.NewViper(dir), config.Options{BaseDir: dir, EnvFile: filepath.Join(dir, "missing.env")})
	assert.Error(t, err)
}

func TestLoadOverride(t *testing.T) {
	dir := t.TempDir()
	v := config.NewViper(dir)
	v.Set(config.KeyTool, "dotnet-msbuild")

	cfg, err := config.Load(v, config.Options{BaseDir: dir})
	require.NoError(t, err)

	assert.Equal(t, "dotnet-msbuild", cfg.Tool)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := t.TempDir()

	_, err := config.Load(config.NewViper(dir), config.Options{
		BaseDir:    dir,
		ConfigFile: filepath.Join(dir, "nope.yml"),
	})
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	v := config.NewViper(dir)
	v.Set(config.KeyProject, "")

	_, err := config.Load(v, config.Options{BaseDir: dir})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
