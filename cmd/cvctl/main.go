package main

import "github.com/iggarsaudev/career-hub/internal/cli"

func main() {
	cli.Execute()
}
