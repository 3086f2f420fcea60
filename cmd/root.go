/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sony-level/build-runner/internal/build"
	"github.com/sony-level/build-runner/internal/config"
	"github.com/sony-level/build-runner/internal/logger"
)

var (
	// Global flags
	configFile string
	envFile    string
	verbose    bool
	noPause    bool

	// Build overrides, bound onto viper keys
	projectFlag       string
	configurationFlag string
	platformFlag      string
	toolFlag          string
	dirFlag           string
	publishDirFlag    string
)

// exitCodeError carries a non-zero exit code out of cobra without printing
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// rootCmd builds the project when run without a subcommand
var rootCmd = &cobra.Command{
	Use:   "build-runner",
	Short: "Rebuild the project with MSBuild and publish the executable",
	Long: `build-runner rebuilds a Visual C++ project with msbuild, checks that the
expected executable was produced under bin/<os>-<platform>-<configuration>/
and, for Release|x64 builds on Windows, copies it to %UserProfile%\Bin.

Without arguments it builds hotcorners.vcxproj in Release|x64 from the
directory the runner lives in. When started from a throwaway console
(double-click, launcher) it waits before the window closes.

Examples:
  build-runner
  build-runner --configuration Debug
  build-runner --dir ./src --project myapp -v
  build-runner config`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeBuild(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if code := execute(os.Args[1:]); code != build.ExitSuccess {
		os.Exit(code)
	}
}

// execute runs the root command with args and returns the process exit code
func execute(args []string) int {
	rootCmd.SetArgs(args)
	return exitCode(rootCmd.Execute())
}

// exitCode maps the error returned by cobra onto a process exit code
func exitCode(err error) int {
	if err == nil {
		return build.ExitSuccess
	}

	var exitErr *exitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	return build.ExitConfigError
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file (default: build-runner.yml next to the runner)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Dotenv file to load (default: .env next to the runner)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noPause, "no-pause", false, "Never wait before exiting, even in a temporary console")

	rootCmd.PersistentFlags().StringVar(&projectFlag, "project", "", "Project name (default: hotcorners)")
	rootCmd.PersistentFlags().StringVar(&configurationFlag, "configuration", "", "Build configuration (default: Release)")
	rootCmd.PersistentFlags().StringVar(&platformFlag, "platform", "", "Target platform (default: x64)")
	rootCmd.PersistentFlags().StringVar(&toolFlag, "tool", "", "Build tool (default: msbuild)")
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "", "Project directory (default: directory of the runner, or the working directory under go run)")
	rootCmd.PersistentFlags().StringVar(&publishDirFlag, "publish-dir", "", "Publish destination (default: %UserProfile%\\Bin)")
}

// flagKeys maps command line flags onto config keys
var flagKeys = map[string]string{
	"project":       config.KeyProject,
	"configuration": config.KeyConfiguration,
	"platform":      config.KeyPlatform,
	"tool":          config.KeyTool,
	"dir":           config.KeyDir,
	"publish-dir":   config.KeyPublishDir,
}

// loadConfig resolves the configuration for cmd, flags taking precedence
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	baseDir := runnerDir()

	v := config.NewViper(baseDir)
	if err := bindFlags(v, cmd); err != nil {
		return config.Config{}, err
	}

	return config.Load(v, config.Options{
		BaseDir:    baseDir,
		ConfigFile: configFile,
		EnvFile:    envFile,
	})
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", flag, err)
		}
	}
	return nil
}

// runnerDir returns the directory holding the runner executable,
// falling back to the current directory
func runnerDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	exe, err := os.Executable()
	if err != nil {
		return cwd
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	tempDir := os.TempDir()
	if resolved, err := filepath.EvalSymlinks(tempDir); err == nil {
		tempDir = resolved
	}
	return defaultDir(exe, tempDir, cwd)
}

// defaultDir picks the executable's directory unless the executable lives
// under tempDir, which is where go run and go test place their binaries
func defaultDir(exe, tempDir, cwd string) string {
	exeDir := filepath.Dir(exe)
	if tempDir != "" {
		rel, err := filepath.Rel(tempDir, exeDir)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return cwd
		}
	}
	return exeDir
}

func newLogger() *logger.Logger {
	level := "info"
	if verbose {
		level = "debug"
	}
	return logger.New(logger.Config{Level: level, Format: "console"}, "build-runner")
}
