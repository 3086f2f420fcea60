// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Blocking subprocess launcher

package exec

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/sony-level/build-runner/internal/logger"
)

// Runner launches build tool processes
type Runner struct {
	log *logger.Logger
}

// NewRunner creates a new runner
func NewRunner(log *logger.Logger) *Runner {
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{log: log.WithComponent("exec")}
}

// Run starts the command with the caller's stdio and blocks until it exits.
// There is no timeout and no retry. A non-zero exit code is not an error;
// failing to find or start the program is. When the program ran but its
// output could not be copied, the result comes back together with ErrOutput.
func (r *Runner) Run(ctx context.Context, cmd Command) (*Result, error) {
	if cmd.Binary == "" {
		return nil, fmt.Errorf("%w: empty program name", ErrToolNotFound)
	}

	path, err := exec.LookPath(cmd.Binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrToolNotFound, cmd.Binary, err)
	}

	c := exec.CommandContext(ctx, path, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
	if cmd.Stdin != nil {
		c.Stdin = cmd.Stdin
	}
	if cmd.Stdout != nil {
		c.Stdout = cmd.Stdout
	}
	if cmd.Stderr != nil {
		c.Stderr = cmd.Stderr
	}

	r.log.Debug("launching", map[string]interface{}{
		"path": path,
		"args": cmd.Args,
		"dir":  cmd.Dir,
	})

	start := time.Now()
	err = c.Run()
	duration := time.Since(start)

	if c.ProcessState == nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrStart, path, err)
	}

	result := &Result{
		ExitCode: int32(c.ProcessState.ExitCode()),
		Duration: duration,
	}
	r.log.Debug("process exited", map[string]interface{}{
		"exit_code": result.ExitCode,
		"duration":  duration.String(),
	})

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return result, fmt.Errorf("%w: %s: %v", ErrOutput, path, err)
	}
	return result, nil
}

// FormatDuration renders seconds above half a second, milliseconds below
func FormatDuration(d time.Duration) string {
	if d.Seconds() > 0.5 {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
}
