package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/idswap/internal/cli"
	"github.com/arthur-debert/idswap/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		errorStyle := ui.DefaultStyles().Get("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
