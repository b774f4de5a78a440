package main

import (
	"fmt"
	"os"

	"github.com/tokopintar/product-advisor/cmd/advisor/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
