package main

import (
	"os"

	"memo/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
