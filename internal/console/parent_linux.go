// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Linux parent process lookup through procfs

//go:build linux

package console

import (
	"fmt"
	"os"
	"strings"
)

// ParentProcessName returns the command name of the parent process
func ParentProcessName() (string, error) {
	ppid := os.Getppid()

	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", ppid))
	if err != nil {
		return "", fmt.Errorf("%w: pid %d: %v", ErrParentNotFound, ppid, err)
	}
	return strings.TrimSpace(string(data)), nil
}
