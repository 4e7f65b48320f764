package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexzzzs/sharpparse"
	"github.com/spf13/cobra"
)

func newBoundariesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boundaries <file>",
		Short: "Show how a file would be partitioned for parallel parsing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			cfg := demoConfig(demoOptions{})
			for _, b := range cfg.IdentifyBoundaries(string(data)) {
				fmt.Printf("%s %s\tlines %d-%d\n", b.Kind, b.Name, b.StartLine, b.EndLine)
			}
			return nil
		},
	}
	return cmd
}

// sharpparseValidate logs warnings and returns an error when the
// configuration is invalid.
func sharpparseValidate(cfg *sharpparse.Config, logger *slog.Logger) error {
	issues := sharpparse.Validate(cfg)
	for _, w := range issues.Warnings() {
		logger.Warn("config warning", "message", w.Message)
	}
	return issues.Err()
}
