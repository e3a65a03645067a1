package main

import "github.com/katalvlaran/roundtrip/cmd/roundtrip/commands"

func main() {
	commands.Execute()
}
