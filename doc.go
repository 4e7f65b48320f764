// Package sharpparse provides an embeddable, event-driven lexing and
// parsing engine.
//
// Callers register character, sequence, and pattern handlers, organize
// them into context-sensitive modes, and feed the engine raw text. The
// engine scans the text once, dispatching each position to the best
// handler, and can produce a token stream and an abstract syntax tree
// with operator-precedence expression folding along the way.
//
// # Quick Start
//
//	cfg := sharpparse.NewConfig().
//	    EnableTokens().
//	    RegisterSequence("let", nil).
//	    RegisterPattern(`[0-9]+`, nil)
//
//	ctx := cfg.RunString("let x = 1")
//	tokens := ctx.Tokens()
//
// # Dispatch Priority
//
// At every cursor position the engine tries, in order: the longest
// registered sequence (trie lookup), the first registered pattern that
// matches at that exact position, and finally the handlers for the
// single character. Mode-specific registrations are consulted before
// global ones but never suppress them.
//
// # Modes
//
// A mode is a named parsing context pushed and popped on the context's
// stack via [Context.EnterMode] and [Context.ExitMode]; the active
// mode changes which handlers are visible. The reserved mode
// "expression" routes matches through an operator-precedence
// [ExpressionBuilder] that folds operands and operators into a binary
// operation tree.
//
// # Parallel Parsing
//
// With [Config.EnableParallel], input is partitioned at declaration
// boundaries and each boundary is scanned concurrently; partial
// results are merged back in submission order with line numbers
// corrected. [Config.EnableParallelTokenization] fans out per line
// instead. Both paths are fork-join with a bounded worker count.
//
// # Error Handling
//
// The scan loop never aborts: every error is recorded as an
// [ErrorInfo], all registered error handlers are invoked, and scanning
// continues. Configurations are checked up front with [Validate].
//
// # Thread Safety
//
// A Config is built once and is read-only during scanning; each run
// gets its own [Context]. The only state shared between workers is the
// pattern-compilation cache, which supports concurrent lookup-or-insert.
package sharpparse
