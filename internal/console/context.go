// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Console context classification

package console

import (
	"errors"
	"regexp"
	"strings"

	"github.com/sony-level/build-runner/internal/logger"
)

// Context tells whether the console window lives only as long as this process
type Context int

const (
	// Persistent is an interactive terminal that stays open after exit
	Persistent Context = iota
	// Temporary is a window opened for this process (double-click, launcher)
	Temporary
)

func (c Context) String() string {
	if c == Temporary {
		return "temporary"
	}
	return "persistent"
}

// ErrParentNotFound is returned when the parent process is not in the process table
var ErrParentNotFound = errors.New("parent process not found")

// temporaryParents matches launchers that open a throwaway console
var temporaryParents = regexp.MustCompile(`(?i)^(?:py|python|explorer)$|terminal$`)

// Classify maps a parent process name to a console context.
// A trailing ".exe" is ignored.
func Classify(parentName string) Context {
	name := strings.TrimSpace(parentName)
	if len(name) > 4 && strings.EqualFold(name[len(name)-4:], ".exe") {
		name = name[:len(name)-4]
	}
	if temporaryParents.MatchString(name) {
		return Temporary
	}
	return Persistent
}

// Detector determines the console context of the running process
type Detector interface {
	Detect() Context
}

// Fixed is a Detector that always reports the same context
type Fixed Context

// Detect returns the fixed context
func (f Fixed) Detect() Context {
	return Context(f)
}

// ProcessDetector classifies the console from the parent process name
type ProcessDetector struct {
	lookup func() (string, error)
	log    *logger.Logger
}

// NewProcessDetector creates a detector backed by the OS process table
func NewProcessDetector(log *logger.Logger) *ProcessDetector {
	return NewDetectorWithLookup(ParentProcessName, log)
}

// NewDetectorWithLookup creates a detector with a custom parent name lookup
func NewDetectorWithLookup(lookup func() (string, error), log *logger.Logger) *ProcessDetector {
	if log == nil {
		log = logger.Nop()
	}
	return &ProcessDetector{lookup: lookup, log: log.WithComponent("console")}
}

// Detect classifies the parent process. Lookup failures yield Persistent.
func (d *ProcessDetector) Detect() Context {
	name, err := d.lookup()
	if err != nil {
		d.log.WithError(err).Debug("parent process lookup failed, assuming persistent console")
		return Persistent
	}

	ctx := Classify(name)
	d.log.Debug("classified console", map[string]interface{}{
		"parent":  name,
		"context": ctx.String(),
	})
	return ctx
}
