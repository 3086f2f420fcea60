// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Execution types

package exec

import (
	"errors"
	"io"
	"time"
)

var (
	// ErrToolNotFound is returned when the program cannot be resolved on PATH
	ErrToolNotFound = errors.New("build tool not found")
	// ErrStart is returned when the program was found but could not be started
	ErrStart = errors.New("failed to start build tool")
	// ErrOutput is returned when the program ran but copying its output failed
	ErrOutput = errors.New("build tool output failed")
)

// Command describes a subprocess to run
type Command struct {
	Binary string    // Program name or path, resolved via PATH
	Args   []string  // Arguments
	Dir    string    // Working directory; empty keeps the current one
	Stdin  io.Reader // Defaults to os.Stdin
	Stdout io.Writer // Defaults to os.Stdout
	Stderr io.Writer // Defaults to os.Stderr
}

// Result is the outcome of a finished subprocess
type Result struct {
	ExitCode int32
	Duration time.Duration
}

// Success reports whether the process exited with code 0
func (r *Result) Success() bool {
	return r.ExitCode == 0
}
