// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Build tool lookup on PATH

package prereq

import (
	"os/exec"
	"strings"
)

// Checker verifies tool existence
type Checker struct {
	tools    map[string]*Tool
	lookPath func(string) (string, error)
	version  func(path string, args []string) string
}

// NewChecker creates a new prerequisite checker
func NewChecker() *Checker {
	return NewCheckerWithTools(DefaultTools())
}

// NewCheckerWithTools creates a checker with custom tools
func NewCheckerWithTools(tools map[string]*Tool) *Checker {
	return &Checker{
		tools:    tools,
		lookPath: exec.LookPath,
	}
}

// WithLookPath replaces the PATH lookup, mainly for tests
func (c *Checker) WithLookPath(fn func(string) (string, error)) *Checker {
	c.lookPath = fn
	return c
}

// WithVersionLookup makes CheckTool report the tool version through fn.
// Without it no version command is run.
func (c *Checker) WithVersionLookup(fn func(path string, args []string) string) *Checker {
	c.version = fn
	return c
}

// CheckTool checks if a specific tool exists. Unknown names are looked up directly.
func (c *Checker) CheckTool(name string) CheckResult {
	result := CheckResult{Name: name}

	tool, ok := c.tools[strings.ToLower(name)]
	if !ok {
		if path, err := c.lookPath(name); err == nil {
			result.Found = true
			result.Path = path
		}
		return result
	}

	candidates := append([]string{tool.Command}, tool.Alternatives...)
	for _, cand := range candidates {
		path, err := c.lookPath(cand)
		if err != nil {
			continue
		}
		result.Found = true
		result.Path = path
		if c.version != nil && len(tool.VersionArgs) > 0 {
			result.Version = c.version(path, tool.VersionArgs)
		}
		return result
	}

	return result
}

// GetTool returns a tool definition by name
func (c *Checker) GetTool(name string) *Tool {
	return c.tools[strings.ToLower(name)]
}

// GetInstallGuide returns installation instructions for a tool
func (c *Checker) GetInstallGuide(name string) string {
	tool := c.GetTool(name)
	if tool == nil {
		return "No installation guide available for " + name
	}
	return tool.InstallGuide
}

// ToolVersion runs the version command and returns its last non-empty line
func ToolVersion(path string, args []string) string {
	out, err := exec.Command(path, args...).Output()
	if err != nil {
		return ""
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
