package main

import "github.com/deepnoodle-ai/fsbox/cmd/fsbox/cli"

func main() {
	cli.Execute()
}
