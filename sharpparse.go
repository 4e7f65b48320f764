package sharpparse

import (
	"fmt"
	"os"
)

// Version is the sharpparse version string.
const Version = "0.1.0"

// Run reads the file at path and scans its contents. A read failure
// is captured as a single ConfigError in an otherwise-empty context
// rather than aborting.
//
// Example:
//
//	ctx := cfg.Run("input.src")
//	for _, tok := range ctx.Tokens() {
//	    // ...
//	}
func (c *Config) Run(path string) *Context {
	data, err := os.ReadFile(path)
	if err != nil {
		ctx := NewContext()
		ctx.File = path
		ctx.state.errors = append(ctx.state.errors, ErrorInfo{
			Kind:    ConfigError,
			Message: fmt.Sprintf("cannot read file %s: %v", path, err),
		})
		return ctx
	}
	ctx := c.run(string(data))
	ctx.File = path
	return ctx
}

// RunString scans text directly. The scan always completes; callers
// wanting fail-fast semantics inspect Errors() afterwards.
//
// Example:
//
//	cfg := sharpparse.NewConfig().EnableTokens().RegisterSequence("let", nil)
//	ctx := cfg.RunString("let x = 1")
func (c *Config) RunString(text string) *Context {
	return c.run(text)
}

func (c *Config) run(text string) *Context {
	ctx := NewContext()

	// Registration-time configuration errors surface on the result
	// so misconfigured runs are visible without a Validate call.
	for _, e := range c.errs {
		ctx.state.errors = append(ctx.state.errors, *e)
	}

	eng := newEngine(c)

	if c.parallel {
		boundaries := identifyBoundaries(text, c.boundaryRules)
		if len(boundaries) >= c.minFunctions && len(boundaries) > 0 {
			eng.scanBoundaries(ctx, boundaries)
			return ctx
		}
	}

	if c.parallelTok {
		eng.scanLinesParallel(ctx, text)
		return ctx
	}

	eng.scanText(ctx, text)
	return ctx
}

// IdentifyBoundaries exposes boundary detection for callers that want
// to inspect how input would be partitioned for parallel parsing.
func (c *Config) IdentifyBoundaries(text string) []Boundary {
	return identifyBoundaries(text, c.boundaryRules)
}
