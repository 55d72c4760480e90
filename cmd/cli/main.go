package main

import "appctl/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
