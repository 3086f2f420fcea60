/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sony-level/build-runner/internal/build"
	"github.com/sony-level/build-runner/internal/console"
	"github.com/sony-level/build-runner/internal/logger"
	"github.com/sony-level/build-runner/internal/platform"
	"github.com/sony-level/build-runner/internal/prereq"
	"github.com/sony-level/build-runner/internal/ui"
)

func executeBuild(cmd *cobra.Command) error {
	log := newLogger()

	cfg, err := loadConfig(cmd)
	if err != nil {
		log.WithError(err).Error("configuration rejected")
		ui.NewReporter(cmd.OutOrStdout()).Failure(err.Error())
		return &exitCodeError{code: build.ExitConfigError}
	}

	tools := prereq.NewChecker()
	if verbose {
		tools = tools.WithVersionLookup(prereq.ToolVersion)
	}

	runner := build.NewRunner(cfg, build.Deps{
		Tools:    tools,
		Console:  newDetector(log),
		Platform: platform.Detect(os.Stdout),
		Logger:   log,
		Title:    title(cmd),
	})

	if code := runner.Run(context.Background()); code != build.ExitSuccess {
		return &exitCodeError{code: code}
	}
	return nil
}

// newDetector honors --no-pause by pinning the console to persistent
func newDetector(log *logger.Logger) console.Detector {
	if noPause {
		return console.Fixed(console.Persistent)
	}
	return console.NewProcessDetector(log)
}

// title identifies the runner in the console window title
func title(cmd *cobra.Command) string {
	if exe, err := os.Executable(); err == nil {
		return filepath.Base(exe)
	}
	return cmd.Root().Name()
}
