// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Windows parent process lookup through a Toolhelp32 snapshot

//go:build windows

package console

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// ParentProcessName returns the executable name of the parent process
func ParentProcessName() (string, error) {
	ppid := uint32(os.Getppid())

	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return "", fmt.Errorf("failed to snapshot processes: %w", err)
	}
	defer windows.CloseHandle(snapshot)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))

	if err := windows.Process32First(snapshot, &entry); err != nil {
		return "", fmt.Errorf("failed to read process list: %w", err)
	}

	for {
		if entry.ProcessID == ppid {
			return windows.UTF16ToString(entry.ExeFile[:]), nil
		}
		if err := windows.Process32Next(snapshot, &entry); err != nil {
			if errors.Is(err, windows.ERROR_NO_MORE_FILES) {
				break
			}
			return "", fmt.Errorf("failed to read process list: %w", err)
		}
	}

	return "", fmt.Errorf("%w: pid %d", ErrParentNotFound, ppid)
}
