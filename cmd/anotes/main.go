package main

import "github.com/zach-snell/apple-notes-mcp/cmd/anotes/cli"

func main() {
	cli.Execute()
}
