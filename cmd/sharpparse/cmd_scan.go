package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	var (
		verbose      bool
		trace        bool
		parallel     bool
		parallelTok  bool
		workers      int
		minFunctions int
		logFile      string
	)

	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Tokenize a file with the demo language and print the token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, cleanup, err := newLogger(verbose, logFile)
			if err != nil {
				return err
			}
			defer cleanup()

			cfg := demoConfig(demoOptions{
				trace:        trace,
				parallel:     parallel,
				workers:      workers,
				minFunctions: minFunctions,
				logger:       logger,
			})
			if parallelTok {
				cfg.EnableParallelTokenization()
			}
			if issues := sharpparseValidate(cfg, logger); issues != nil {
				return issues
			}

			ctx := cfg.Run(args[0])
			logger.Debug("scan complete",
				"file", args[0],
				"tokens", len(ctx.Tokens()),
				"errors", len(ctx.Errors()))

			for _, tok := range ctx.Tokens() {
				if strings.TrimSpace(tok.Text) == "" {
					continue
				}
				fmt.Printf("%d:%d\t%s\t%q\n", tok.Line, tok.Col, tok.Kind, tok.Text)
			}
			if trace {
				for _, line := range ctx.Trace() {
					fmt.Fprintln(os.Stderr, line)
				}
			}
			if n := len(ctx.Errors()); n > 0 {
				fmt.Fprintf(os.Stderr, "%d errors\n", n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVar(&trace, "trace", false, "record and print engine trace lines")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "enable boundary-based parallel parsing")
	cmd.Flags().BoolVar(&parallelTok, "parallel-lines", false, "enable per-line parallel tokenization")
	cmd.Flags().IntVarP(&workers, "workers", "j", 0, "max parallel workers (default: number of CPUs)")
	cmd.Flags().IntVar(&minFunctions, "min-functions", -1, "min boundaries before parallel parsing kicks in")
	cmd.Flags().StringVar(&logFile, "log-file", "", "also write JSON logs to this file")

	return cmd
}
