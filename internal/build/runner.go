// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Build sequence: title, chdir, build, verify, publish, report

package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/sony-level/build-runner/internal/artifact"
	"github.com/sony-level/build-runner/internal/config"
	"github.com/sony-level/build-runner/internal/console"
	"github.com/sony-level/build-runner/internal/exec"
	"github.com/sony-level/build-runner/internal/logger"
	"github.com/sony-level/build-runner/internal/platform"
	"github.com/sony-level/build-runner/internal/prereq"
	"github.com/sony-level/build-runner/internal/ui"
)

// Executor runs the build tool
type Executor interface {
	Run(ctx context.Context, cmd exec.Command) (*exec.Result, error)
}

// ToolChecker resolves the build tool before launch
type ToolChecker interface {
	CheckTool(name string) prereq.CheckResult
	GetInstallGuide(name string) string
}

// Deps are the collaborators of a Runner. Nil fields get real implementations.
type Deps struct {
	Executor Executor
	Tools    ToolChecker
	Console  console.Detector
	Platform platform.Platform
	Fs       afero.Fs
	Reporter *ui.Reporter
	Logger   *logger.Logger
	Title    string
	WaitKey  func() error
	Sleep    func(time.Duration)
	Chdir    func(dir string) error
}

// Runner drives a single build from start to exit code
type Runner struct {
	cfg      config.Config
	exec     Executor
	tools    ToolChecker
	console  console.Detector
	platform platform.Platform
	fs       afero.Fs
	report   *ui.Reporter
	log      *logger.Logger
	title    string
	waitKey  func() error
	sleep    func(time.Duration)
	chdir    func(string) error
}

// NewRunner creates a runner for cfg
func NewRunner(cfg config.Config, deps Deps) *Runner {
	r := &Runner{
		cfg:      cfg,
		exec:     deps.Executor,
		tools:    deps.Tools,
		console:  deps.Console,
		platform: deps.Platform,
		fs:       deps.Fs,
		report:   deps.Reporter,
		log:      deps.Logger,
		title:    deps.Title,
		waitKey:  deps.WaitKey,
		sleep:    deps.Sleep,
		chdir:    deps.Chdir,
	}

	if r.log == nil {
		r.log = logger.Nop()
	}
	r.log = r.log.WithComponent("build")
	if r.exec == nil {
		r.exec = exec.NewRunner(r.log)
	}
	if r.tools == nil {
		r.tools = prereq.NewChecker()
	}
	if r.console == nil {
		r.console = console.NewProcessDetector(r.log)
	}
	if r.platform == nil {
		r.platform = platform.Detect(os.Stdout)
	}
	if r.fs == nil {
		r.fs = afero.NewOsFs()
	}
	if r.report == nil {
		r.report = ui.NewReporter(os.Stdout)
	}
	if r.title == "" {
		r.title = "build-runner"
	}
	if r.waitKey == nil {
		r.waitKey = func() error { return console.WaitForKey(os.Stdin) }
	}
	if r.sleep == nil {
		r.sleep = time.Sleep
	}
	if r.chdir == nil {
		r.chdir = os.Chdir
	}
	return r
}

// Run executes the build sequence and returns the process exit code
func (r *Runner) Run(ctx context.Context) int {
	temporary := r.console.Detect() == console.Temporary

	if err := r.platform.SetTitle(r.title); err != nil {
		r.log.WithError(err).Debug("could not set console title")
	}

	if err := r.chdir(r.cfg.Dir); err != nil {
		r.closingBad(fmt.Sprintf("Cannot enter %s: %v", r.cfg.Dir, err), temporary)
		return ExitEnvError
	}

	r.report.Building(r.cfg.Project)

	result, err := r.launch(ctx)
	if err != nil {
		var guide []string
		if errors.Is(err, exec.ErrToolNotFound) {
			guide = append(guide, r.tools.GetInstallGuide(r.cfg.Tool))
		}
		r.closingBad(err.Error(), temporary, guide...)
		return ExitEnvError
	}
	if !result.Success() {
		r.closingBad("Build error", temporary)
		return int(result.ExitCode)
	}

	exe := r.cfg.ArtifactPath()
	if !artifact.Verify(r.fs, exe) {
		r.closingBad(fmt.Sprintf("%s not generated!", filepath.ToSlash(exe)), temporary)
		return ExitFailure
	}

	r.maybePublish(exe)

	r.closingOK(fmt.Sprintf("Build of %s ok", r.cfg.Project), temporary)
	return ExitSuccess
}

// launch resolves the build tool and runs it
func (r *Runner) launch(ctx context.Context) (*exec.Result, error) {
	argv := r.cfg.BuildCommand()

	check := r.tools.CheckTool(argv[0])
	if !check.Found {
		return nil, fmt.Errorf("%w: %s", exec.ErrToolNotFound, argv[0])
	}
	r.log.Debug("resolved build tool", map[string]interface{}{
		"path":    check.Path,
		"version": check.Version,
	})

	result, err := r.exec.Run(ctx, exec.Command{
		Binary: check.Path,
		Args:   argv[1:],
		Dir:    r.cfg.Dir,
	})
	if err != nil {
		if result == nil || !errors.Is(err, exec.ErrOutput) {
			return nil, err
		}
		r.log.WithError(err).Warn("build output was not fully copied")
	}

	r.report.Launched(argv[0], result.ExitCode, exec.FormatDuration(result.Duration))
	return result, nil
}

// maybePublish copies the artifact for Release|x64 builds on platforms that
// publish, when the destination directory exists. Errors are reported only.
func (r *Runner) maybePublish(exe string) {
	if !r.cfg.IsReleaseX64() || !r.platform.CanPublish() {
		return
	}

	dst, ok := r.publishDir()
	if !ok {
		r.log.Debug("no publish destination")
		return
	}
	if !artifact.DirExists(r.fs, dst) {
		r.log.Debug("publish destination missing", map[string]interface{}{"dir": dst})
		return
	}

	r.report.Copying(filepath.ToSlash(exe), dst)
	if _, err := artifact.Publish(r.fs, exe, dst); err != nil {
		r.report.CopyFailed(err)
		r.log.WithError(err).Warn("publish failed", map[string]interface{}{
			"src": exe,
			"dst": dst,
		})
	}
}

func (r *Runner) publishDir() (string, bool) {
	if r.cfg.PublishDir != "" {
		return r.cfg.PublishDir, true
	}
	return r.platform.PublishDir()
}

func (r *Runner) closingBad(msg string, temporary bool, details ...string) {
	r.report.Failure(msg)
	for _, d := range details {
		r.report.Detail(d)
	}
	if !temporary {
		return
	}
	r.report.PressKey()
	if err := r.waitKey(); err != nil {
		r.log.WithError(err).Debug("keypress wait failed")
	}
}

func (r *Runner) closingOK(msg string, temporary bool) {
	r.report.Success(msg)
	if !temporary {
		return
	}
	r.report.Closing()
	r.sleep(r.cfg.ClosingDelay)
}
