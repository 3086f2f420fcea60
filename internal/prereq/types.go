// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Build tool definitions

package prereq

// Tool represents a build tool the runner can drive
type Tool struct {
	Name         string   // Tool name
	Command      string   // Command to check existence
	VersionArgs  []string // Arguments that print the version
	Alternatives []string // Alternative command names
	InstallGuide string   // Installation instructions
}

// DefaultTools returns the list of supported build tools
func DefaultTools() map[string]*Tool {
	return map[string]*Tool{
		"msbuild": {
			Name:         "msbuild",
			Command:      "msbuild",
			VersionArgs:  []string{"-version", "-nologo"},
			Alternatives: []string{"MSBuild", "MSBuild.exe"},
			InstallGuide: `Install MSBuild:
  Windows: Visual Studio or "Build Tools for Visual Studio"
           https://visualstudio.microsoft.com/downloads/
           then run from a "Developer Command Prompt" or add
           %ProgramFiles%\Microsoft Visual Studio\<ver>\<edition>\MSBuild\Current\Bin to PATH`,
		},
	}
}

// CheckResult contains the result of checking a tool
type CheckResult struct {
	Name    string // Tool name
	Found   bool   // Whether tool was found
	Version string // Detected version (if found)
	Path    string // Path to tool (if found)
}
