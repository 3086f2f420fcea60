// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Build artifact verification and publishing

package artifact

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Verify reports whether path exists and is a regular file
func Verify(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DirExists reports whether path is an existing directory
func DirExists(fs afero.Fs, path string) bool {
	ok, err := afero.DirExists(fs, path)
	return err == nil && ok
}

// Publish copies src into dstDir, keeping its base name and permissions.
// An existing file at the destination is overwritten. Returns the destination path.
func Publish(fs afero.Fs, src, dstDir string) (string, error) {
	dst := filepath.Join(dstDir, filepath.Base(src))

	in, err := fs.Open(src)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", src, err)
	}

	out, err := fs.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return "", fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", dst, err)
	}

	return dst, nil
}
