// sharpparse - command line front end for the sharpparse engine.
//
// Runs a built-in demo language configuration over input files so the
// engine's token stream, AST, and boundary detection can be inspected
// without writing a host program.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "sharpparse",
		Short:         "Event-driven lexing and parsing engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newASTCmd())
	rootCmd.AddCommand(newBoundariesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
