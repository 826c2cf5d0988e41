package main

import "reelcut/cmd/reelcut-cli/cmd"

func main() {
	cmd.Execute()
}
