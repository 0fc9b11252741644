package main

import "github.com/LeJamon/tpa/internal/cli"

func main() {
	cli.Execute()
}
