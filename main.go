package main

import "github.com/SolracHQ/r8/cmd"

func main() {
	cmd.Execute()
}
