// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Process exit codes

package build

// Exit codes returned by the runner. A failed build returns the build
// tool's own exit code instead.
const (
	// ExitSuccess indicates the build and artifact check passed
	ExitSuccess = 0
	// ExitFailure indicates the build tool succeeded but no artifact was produced
	ExitFailure = 1
	// ExitConfigError indicates invalid configuration or command line
	ExitConfigError = 2
	// ExitEnvError indicates an environment fault: tool missing, unusable directory
	ExitEnvError = 3
)
