package main

import (
	"os"

	"github.com/seekwe/smart-npm/internal/cli"
	"github.com/seekwe/smart-npm/pkg/output"
)

func main() {
	rootCmd := cli.NewUninstallCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		output.NewNotifier(os.Stderr).Line("Error", "Error: %v", err)
		os.Exit(1)
	}
}
