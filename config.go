package sharpparse

import "runtime"

// DefaultMinFunctions is the boundary count below which parallel
// parsing falls back to sequential scanning.
const DefaultMinFunctions = 2

// Config is the builder-style configuration surface. Handlers are
// registered before scanning; the configuration and scanning phases
// are strictly separated, and no registration happens mid-scan.
//
// Registration methods chain:
//
//	cfg := sharpparse.NewConfig().
//	    EnableTokens().
//	    RegisterSequence("let", nil).
//	    WithMode("body", func(m *ModeConfig) {
//	        m.RegisterChar('}', exit)
//	    })
//
// Invalid registrations (empty mode names, sequences, or patterns) are
// rejected immediately: the registration is dropped and a
// configuration error accumulates on the Config, surfaced by Validate
// and by Run/RunString as ConfigError entries in the context.
type Config struct {
	reg *registry

	tokens   bool
	buildAST bool
	trace    bool

	parallel     bool
	parallelTok  bool
	maxWorkers   int
	minFunctions int

	boundaryRules []compiledRule

	errs []*ErrorInfo
}

// NewConfig creates an empty configuration with the built-in boundary
// rules and parallelism defaults.
func NewConfig() *Config {
	return &Config{
		reg:           newRegistry(),
		maxWorkers:    runtime.NumCPU(),
		minFunctions:  DefaultMinFunctions,
		boundaryRules: defaultBoundaryRules(),
	}
}

func (c *Config) configError(info *ErrorInfo) {
	c.errs = append(c.errs, info)
}

// RegisterChar registers a handler for a single character outside any
// mode. Multiple handlers per character are allowed and all fire in
// registration order.
func (c *Config) RegisterChar(ch byte, fn CharHandler) *Config {
	c.reg.addChar(globalMode, ch, fn)
	return c
}

// RegisterSequence registers a handler for an exact character
// sequence outside any mode, matched with longest-match semantics.
func (c *Config) RegisterSequence(seq string, fn SequenceHandler) *Config {
	c.registerSequence(globalMode, seq, fn)
	return c
}

// RegisterPattern registers a handler for a regular expression outside
// any mode. Patterns are tried in registration order, first match
// wins. The pattern is compiled for anchored, position-based matching.
func (c *Config) RegisterPattern(expr string, fn PatternHandler) *Config {
	c.registerPattern(globalMode, expr, fn)
	return c
}

// RegisterErrorHandler registers a handler invoked with the rendered
// message of every recorded error. Error handlers are always global.
func (c *Config) RegisterErrorHandler(fn ErrorHandler) *Config {
	c.reg.addErrorHandler(fn)
	return c
}

// RegisterASTBuilder registers a custom match-to-node translation
// outside any mode. The first builder returning non-nil wins; when all
// decline, the built-in translation rules apply.
func (c *Config) RegisterASTBuilder(fn ASTBuilder) *Config {
	c.reg.addBuilder(globalMode, fn)
	return c
}

// WithMode runs the nested builder against a named mode, scoping all
// registrations made through it to that mode. An empty mode name is
// rejected and the nested builder is not run.
func (c *Config) WithMode(name string, build func(m *ModeConfig)) *Config {
	if name == "" {
		c.configError(configErrorf("mode name must not be empty"))
		return c
	}
	if build != nil {
		build(&ModeConfig{name: name, c: c})
	}
	return c
}

// EnableTokens turns on token production: every successful match is
// classified and appended to the token stream.
func (c *Config) EnableTokens() *Config {
	c.tokens = true
	return c
}

// EnableAST turns on AST building: every successful match is offered
// to the registered builders and then the default translation rules.
func (c *Config) EnableAST() *Config {
	c.buildAST = true
	return c
}

// EnableTrace turns on trace-line recording in the context state.
func (c *Config) EnableTrace() *Config {
	c.trace = true
	return c
}

// EnableParallel turns on boundary-based parallel parsing. Input is
// split at function/declaration boundaries and each boundary is
// scanned concurrently when at least the minimum-function threshold of
// boundaries is found.
func (c *Config) EnableParallel() *Config {
	c.parallel = true
	return c
}

// EnableParallelTokenization turns on per-line parallel scanning.
// Each line gets a fresh context, so effects that depend on mode
// persisting across lines must not rely on this path.
func (c *Config) EnableParallelTokenization() *Config {
	c.parallelTok = true
	return c
}

// SetMaxParallelism caps the number of concurrent workers for both
// parallel paths. n must be positive.
func (c *Config) SetMaxParallelism(n int) *Config {
	if n <= 0 {
		c.configError(configErrorf("max parallelism must be positive, got %d", n))
		return c
	}
	c.maxWorkers = n
	return c
}

// SetMinFunctionsForParallelism sets the boundary count below which
// parallel parsing falls back to sequential scanning. n must be
// non-negative.
func (c *Config) SetMinFunctionsForParallelism(n int) *Config {
	if n < 0 {
		c.configError(configErrorf("min functions for parallelism must be non-negative, got %d", n))
		return c
	}
	c.minFunctions = n
	return c
}

// AddBoundaryRule appends a declaration-boundary rule used by parallel
// parsing, after the built-in defaults.
func (c *Config) AddBoundaryRule(rule BoundaryRule) *Config {
	cr, err := compileRule(rule)
	if err != nil {
		c.configError(configErrorf("boundary rule %q does not compile: %v", rule.Pattern, err))
		return c
	}
	c.boundaryRules = append(c.boundaryRules, cr)
	return c
}

func (c *Config) registerSequence(mode, seq string, fn SequenceHandler) {
	if seq == "" {
		c.configError(configErrorf("sequence must not be empty"))
		return
	}
	c.reg.addSequence(mode, seq, fn)
}

func (c *Config) registerPattern(mode, expr string, fn PatternHandler) {
	if expr == "" {
		c.configError(configErrorf("pattern must not be empty"))
		return
	}
	if err := c.reg.addPattern(mode, expr, fn); err != nil {
		c.configError(configErrorf("pattern %q does not compile: %v", expr, err))
	}
}

// ModeConfig scopes registrations to one named mode. Obtained through
// Config.WithMode.
type ModeConfig struct {
	name string
	c    *Config
}

// Name returns the mode this builder registers into.
func (m *ModeConfig) Name() string {
	return m.name
}

// RegisterChar registers a character handler scoped to this mode.
func (m *ModeConfig) RegisterChar(ch byte, fn CharHandler) *ModeConfig {
	m.c.reg.addChar(m.name, ch, fn)
	return m
}

// RegisterSequence registers a sequence handler scoped to this mode.
func (m *ModeConfig) RegisterSequence(seq string, fn SequenceHandler) *ModeConfig {
	m.c.registerSequence(m.name, seq, fn)
	return m
}

// RegisterPattern registers a pattern handler scoped to this mode.
func (m *ModeConfig) RegisterPattern(expr string, fn PatternHandler) *ModeConfig {
	m.c.registerPattern(m.name, expr, fn)
	return m
}

// RegisterASTBuilder registers a custom AST builder scoped to this
// mode.
func (m *ModeConfig) RegisterASTBuilder(fn ASTBuilder) *ModeConfig {
	m.c.reg.addBuilder(m.name, fn)
	return m
}
