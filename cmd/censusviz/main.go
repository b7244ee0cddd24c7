package main

import (
	"os"

	"github.com/censusviz/censusviz/cli"
)

func main() {
	os.Exit(cli.Execute())
}
