// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Reporter tests

package tests

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sony-level/build-runner/internal/ui"
)

// A bytes.Buffer is not a terminal, so output carries no escape codes.
func TestReporterPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewReporter(&buf)

	r.Building("hotcorners")
	r.Launched("msbuild", 0, "1.23s")
	r.Copying("bin/win-x64-Release/hotcorners.exe", `C:\Users\dev\Bin`)
	r.CopyFailed(errors.New("access denied"))
	r.Success("Build of hotcorners ok")
	r.Closing()

	assert.Equal(t, "\nBuilding hotcorners\n"+
		"msbuild returned: 0 after 1.23s\n"+
		"Copying bin/win-x64-Release/hotcorners.exe to C:\\Users\\dev\\Bin\n"+
		"access denied\n"+
		"\nBuild of hotcorners ok\n"+
		"Closing...\n", buf.String())
}

func TestReporterFailure(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewReporter(&buf)

	r.Launched("msbuild", -1073741819, "12.00ms")
	r.Failure("Build error")
	r.PressKey()

	assert.Equal(t, "msbuild returned: -1073741819 after 12.00ms\n"+
		"\nBuild error\n"+
		"Press any key to exit", buf.String())
}
