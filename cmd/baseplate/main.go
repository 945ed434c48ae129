package main

import (
	"fmt"
	"os"

	"github.com/baseplate-io/baseplate/cmd/baseplate/commands"
)

func main() {
	if err := commands.NewCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
