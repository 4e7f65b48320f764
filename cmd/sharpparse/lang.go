package main

import (
	"log/slog"

	"github.com/alexzzzs/sharpparse"
)

// demoKeywords and demoOperators define the built-in demo language.
var (
	demoKeywords  = []string{"function", "return", "let", "var", "const", "if", "else", "while", "for", "true", "false"}
	demoOperators = []string{"==", "!=", "<=", ">=", "&&", "||", "+", "-", "*", "/", "=", "<", ">"}
)

type demoOptions struct {
	ast          bool
	trace        bool
	parallel     bool
	workers      int
	minFunctions int
	logger       *slog.Logger
}

// demoConfig builds a configuration for a small C-like demo language:
// keyword and operator sequences, patterns for strings, numbers, and
// identifiers, and no-op handlers for punctuation and whitespace.
func demoConfig(o demoOptions) *sharpparse.Config {
	cfg := sharpparse.NewConfig().EnableTokens()

	if o.ast {
		cfg.EnableAST()
	}
	if o.trace {
		cfg.EnableTrace()
	}
	if o.parallel {
		cfg.EnableParallel()
	}
	if o.workers > 0 {
		cfg.SetMaxParallelism(o.workers)
	}
	if o.minFunctions >= 0 {
		cfg.SetMinFunctionsForParallelism(o.minFunctions)
	}

	for _, kw := range demoKeywords {
		cfg.RegisterSequence(kw, nil)
	}
	for _, op := range demoOperators {
		cfg.RegisterSequence(op, nil)
	}
	for _, ch := range []byte{'(', ')', '{', '}', '[', ']', ',', ';', ' ', '\t'} {
		cfg.RegisterChar(ch, nil)
	}

	cfg.RegisterPattern(`"[^"]*"`, nil)
	cfg.RegisterPattern(`[0-9]+(\.[0-9]+)?`, nil)
	cfg.RegisterPattern(`[A-Za-z_][A-Za-z0-9_]*`, nil)

	if o.logger != nil {
		log := o.logger
		cfg.RegisterErrorHandler(func(_ *sharpparse.Context, message string) {
			log.Warn("scan error", "message", message)
		})
	}

	return cfg
}
