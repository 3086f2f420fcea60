// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Console title stub for non-Windows builds

//go:build !windows

package platform

import "errors"

func setConsoleTitle(string) error {
	return errors.ErrUnsupported
}
