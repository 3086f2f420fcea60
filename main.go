/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package main

import "github.com/sony-level/build-runner/cmd"

func main() {
	cmd.Execute()
}
