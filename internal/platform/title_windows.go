// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Windows console title

//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32            = windows.NewLazySystemDLL("kernel32.dll")
	procSetConsoleTitle = kernel32.NewProc("SetConsoleTitleW")
)

func setConsoleTitle(title string) error {
	ptr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return fmt.Errorf("invalid title: %w", err)
	}
	ret, _, callErr := procSetConsoleTitle.Call(uintptr(unsafe.Pointer(ptr)))
	if ret == 0 {
		return fmt.Errorf("SetConsoleTitleW failed: %w", callErr)
	}
	return nil
}
