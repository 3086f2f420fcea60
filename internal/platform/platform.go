// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Platform capabilities: console title and publish destination

package platform

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// Platform supplies the OS-specific behavior of a build run.
// One variant is selected at startup.
type Platform interface {
	// Name identifies the variant ("windows" or "other")
	Name() string
	// SetTitle sets the console window title
	SetTitle(title string) error
	// CanPublish reports whether artifacts may be published on this OS
	CanPublish() bool
	// PublishDir returns the default publish destination, if any
	PublishDir() (string, bool)
}

// Detect selects the variant for the running OS
func Detect(out io.Writer) Platform {
	return ForOS(runtime.GOOS, out, os.Getenv)
}

// ForOS selects the variant for goos. getenv resolves environment variables.
func ForOS(goos string, out io.Writer, getenv func(string) string) Platform {
	if getenv == nil {
		getenv = os.Getenv
	}
	if goos == "windows" {
		return &Windows{getenv: getenv}
	}
	return &Other{out: out}
}

// Windows is the native Windows variant
type Windows struct {
	getenv func(string) string
}

func (w *Windows) Name() string { return "windows" }

// SetTitle calls SetConsoleTitleW
func (w *Windows) SetTitle(title string) error {
	return setConsoleTitle(title)
}

func (w *Windows) CanPublish() bool { return true }

// PublishDir returns %UserProfile%\Bin. An unset profile disables publishing.
func (w *Windows) PublishDir() (string, bool) {
	profile := w.getenv("USERPROFILE")
	if profile == "" {
		return "", false
	}
	return filepath.Join(profile, "Bin"), true
}

// Other covers every non-Windows OS
type Other struct {
	out io.Writer
}

func (o *Other) Name() string { return "other" }

// SetTitle writes the xterm OSC 2 title sequence
func (o *Other) SetTitle(title string) error {
	if o.out == nil {
		return nil
	}
	if _, err := fmt.Fprintf(o.out, "\x1b]2;%s\x07", title); err != nil {
		return fmt.Errorf("failed to set title: %w", err)
	}
	return nil
}

func (o *Other) CanPublish() bool { return false }

func (o *Other) PublishDir() (string, bool) { return "", false }
