package main

import (
	"fmt"
	"os"

	"github.com/klep98/Inventario-Desarrollo-IV/cmd/inventarioctl/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
