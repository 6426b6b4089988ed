package main

import "github.com/lumenlearn/pagecraft/cmd/pagecraft-cli/cmd"

func main() {
	cmd.Execute()
}
