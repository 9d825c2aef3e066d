package main

import "promptbuilder/cmd/promptbuilder-cli/cmd"

func main() {
	cmd.Execute()
}
