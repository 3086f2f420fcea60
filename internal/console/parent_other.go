// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Parent process lookup fallback

//go:build !windows && !linux

package console

import "errors"

// ParentProcessName is not available on this platform
func ParentProcessName() (string, error) {
	return "", errors.ErrUnsupported
}
