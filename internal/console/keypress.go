// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Blocking keypress wait

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// WaitForKey blocks until a key is pressed on in. A terminal is switched to
// raw mode so a single key is enough; anything else is read up to a newline.
func WaitForKey(in io.Reader) error {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return waitRaw(f)
	}

	_, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read key: %w", err)
	}
	return nil
}

func waitRaw(f *os.File) error {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(fd, state)

	buf := make([]byte, 1)
	if _, err := f.Read(buf); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read key: %w", err)
	}
	return nil
}
