package main

import (
	"fmt"
	"os"

	"github.com/alexzzzs/sharpparse/ast"
	"github.com/spf13/cobra"
)

func newASTCmd() *cobra.Command {
	var (
		verbose bool
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "ast <file>",
		Short: "Build and print the AST for a file using the demo language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, cleanup, err := newLogger(verbose, logFile)
			if err != nil {
				return err
			}
			defer cleanup()

			cfg := demoConfig(demoOptions{ast: true, logger: logger})
			if issues := sharpparseValidate(cfg, logger); issues != nil {
				return issues
			}

			ctx := cfg.Run(args[0])
			for _, node := range ctx.ASTNodes() {
				fmt.Println(ast.Sprint(node))
			}
			if n := len(ctx.Errors()); n > 0 {
				fmt.Fprintf(os.Stderr, "%d errors\n", n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVar(&logFile, "log-file", "", "also write JSON logs to this file")

	return cmd
}
