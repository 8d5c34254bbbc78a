package main

import (
	"os"

	"github.com/dshills/scout/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
