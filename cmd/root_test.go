/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sony-level/build-runner/internal/build"
	"github.com/sony-level/build-runner/internal/console"
	"github.com/sony-level/build-runner/internal/logger"
)

// resetFlags restores every flag to its default after a test drives rootCmd
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		reset := func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
		for _, c := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
			c.PersistentFlags().VisitAll(reset)
			c.Flags().VisitAll(reset)
		}
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
}

func TestExecuteMissingConfigFile(t *testing.T) {
	resetFlags(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)

	code := execute([]string{"--config", filepath.Join(t.TempDir(), "missing.yml"), "--no-pause"})

	assert.Equal(t, build.ExitConfigError, code)
	assert.Contains(t, out.String(), "failed to read config")
}

func TestExecuteRejectsArguments(t *testing.T) {
	resetFlags(t)

	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)

	assert.Equal(t, build.ExitConfigError, execute([]string{"extra"}))
	assert.Contains(t, stderr.String(), "Error:")
}

func TestExitCode(t *testing.T) {
	resetFlags(t)

	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, build.ExitSuccess},
		{"build exit code", &exitCodeError{code: 42}, 42},
		{"wrapped negative code", fmt.Errorf("run: %w", &exitCodeError{code: -1073741819}), -1073741819},
		{"environment", &exitCodeError{code: build.ExitEnvError}, build.ExitEnvError},
		{"cobra error", errors.New("unknown flag: --bogus"), build.ExitConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
	assert.Contains(t, stderr.String(), "Error: unknown flag: --bogus")
}

func TestNewDetectorNoPause(t *testing.T) {
	resetFlags(t)
	noPause = true

	assert.Equal(t, console.Fixed(console.Persistent), newDetector(logger.Nop()))
}

func TestNewDetectorUsesParentProcess(t *testing.T) {
	resetFlags(t)

	_, fixed := newDetector(logger.Nop()).(console.Fixed)
	assert.False(t, fixed)
}

func TestTitle(t *testing.T) {
	assert.NotEmpty(t, title(rootCmd))
	assert.NotEmpty(t, title(configCmd))
}

func TestDefaultDir(t *testing.T) {
	tmp := filepath.Join(string(filepath.Separator), "tmp")
	cwd := filepath.Join(string(filepath.Separator), "work", "hotcorners")

	tests := []struct {
		name string
		exe  string
		want string
	}{
		{"installed runner", filepath.Join(cwd, "build-runner.exe"), cwd},
		{"elsewhere", filepath.Join(string(filepath.Separator), "opt", "tools", "build-runner"), filepath.Join(string(filepath.Separator), "opt", "tools")},
		{"go run binary", filepath.Join(tmp, "go-build123", "b001", "exe", "build-runner"), cwd},
		{"sibling of temp dir", filepath.Join(string(filepath.Separator), "tmpfoo", "build-runner"), filepath.Join(string(filepath.Separator), "tmpfoo")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultDir(tt.exe, tmp, cwd))
		})
	}
}

func TestRunnerDirIsAbsolute(t *testing.T) {
	dir := runnerDir()
	require.NotEmpty(t, dir)
	assert.True(t, filepath.IsAbs(dir) || dir == ".")
}
