package sharpparse

import (
	"github.com/alexzzzs/sharpparse/ast"
	"github.com/alexzzzs/sharpparse/internal/pattern"
	"github.com/alexzzzs/sharpparse/internal/trie"
)

// CharHandler handles a single matched character.
type CharHandler func(ctx *Context, ch byte)

// SequenceHandler handles an exact multi-character match found by
// longest-match trie lookup.
type SequenceHandler func(ctx *Context, matched string)

// PatternHandler handles a regular-expression match found by
// first-match-in-registration-order lookup.
type PatternHandler func(ctx *Context, matched string)

// ErrorHandler receives the rendered message of every recorded error.
type ErrorHandler func(ctx *Context, message string)

// ASTBuilder translates a match into an AST node. Returning nil
// declines the match, passing it to the next builder or the default
// translation rules.
type ASTBuilder func(ctx *Context, matched string) ast.Node

// globalMode is the registry key for handlers registered outside any
// mode.
const globalMode = ""

// patternEntry pairs a compiled pattern with its handler. The source
// is kept for validation; entries stay in registration order.
type patternEntry struct {
	source   string
	compiled *pattern.Pattern
	fn       PatternHandler
}

// registry owns all registered handlers, keyed by mode name with
// globalMode ("") for mode-less registrations. It is built during
// configuration and read-only during scanning.
type registry struct {
	chars       map[string]map[byte][]CharHandler
	tries       map[string]*trie.Tree[SequenceHandler]
	patterns    map[string][]patternEntry
	builders    map[string][]ASTBuilder
	errHandlers []ErrorHandler

	cache *pattern.Cache
}

func newRegistry() *registry {
	return &registry{
		chars:    make(map[string]map[byte][]CharHandler),
		tries:    make(map[string]*trie.Tree[SequenceHandler]),
		patterns: make(map[string][]patternEntry),
		builders: make(map[string][]ASTBuilder),
		cache:    pattern.NewCache(pattern.DefaultCacheSize),
	}
}

func (r *registry) addChar(mode string, ch byte, fn CharHandler) {
	byChar := r.chars[mode]
	if byChar == nil {
		byChar = make(map[byte][]CharHandler)
		r.chars[mode] = byChar
	}
	byChar[ch] = append(byChar[ch], fn)
}

func (r *registry) addSequence(mode, seq string, fn SequenceHandler) {
	t := r.tries[mode]
	if t == nil {
		t = trie.New[SequenceHandler]()
		r.tries[mode] = t
	}
	t.Insert(seq, fn)
}

func (r *registry) addPattern(mode, src string, fn PatternHandler) error {
	p, err := r.cache.Get(src)
	if err != nil {
		return err
	}
	r.patterns[mode] = append(r.patterns[mode], patternEntry{source: src, compiled: p, fn: fn})
	return nil
}

func (r *registry) addBuilder(mode string, fn ASTBuilder) {
	r.builders[mode] = append(r.builders[mode], fn)
}

func (r *registry) addErrorHandler(fn ErrorHandler) {
	r.errHandlers = append(r.errHandlers, fn)
}

// charHandlers returns the handlers for ch in the given mode followed
// by the global ones. Mode-specific handlers take priority but never
// suppress global handlers; all of them fire.
func (r *registry) charHandlers(mode string, ch byte) []CharHandler {
	var out []CharHandler
	if mode != globalMode {
		out = append(out, r.chars[mode][ch]...)
	}
	out = append(out, r.chars[globalMode][ch]...)
	return out
}

// matchSequence resolves the longest sequence match at pos, consulting
// the active mode's trie first and falling back to the global trie.
func (r *registry) matchSequence(mode, text string, pos int) (int, SequenceHandler, bool) {
	if mode != globalMode {
		if t := r.tries[mode]; t != nil {
			if n, fn, ok := t.LongestMatch(text, pos); ok {
				return n, fn, true
			}
		}
	}
	if t := r.tries[globalMode]; t != nil {
		if n, fn, ok := t.LongestMatch(text, pos); ok {
			return n, fn, true
		}
	}
	return 0, nil, false
}

// matchPattern resolves the first pattern that matches at pos, trying
// the active mode's patterns in registration order and then the global
// ones.
func (r *registry) matchPattern(mode, text string, pos int) (string, PatternHandler, bool) {
	if mode != globalMode {
		if matched, fn, ok := firstPattern(r.patterns[mode], text, pos); ok {
			return matched, fn, true
		}
	}
	return firstPattern(r.patterns[globalMode], text, pos)
}

func firstPattern(entries []patternEntry, text string, pos int) (string, PatternHandler, bool) {
	for _, e := range entries {
		if e.compiled == nil {
			continue
		}
		if matched, ok := e.compiled.MatchAt(text, pos); ok {
			return matched, e.fn, true
		}
	}
	return "", nil, false
}

// modeBuilders returns the AST builders for the mode followed by the
// global ones; the first builder returning a non-nil node wins.
func (r *registry) modeBuilders(mode string) []ASTBuilder {
	var out []ASTBuilder
	if mode != globalMode {
		out = append(out, r.builders[mode]...)
	}
	out = append(out, r.builders[globalMode]...)
	return out
}

// hasHandlers reports whether any char, sequence, or pattern handler
// is registered in any mode. With a completely empty registry the
// engine degrades to a no-op scanner instead of erroring on every
// character.
func (r *registry) hasHandlers() bool {
	for _, byChar := range r.chars {
		if len(byChar) > 0 {
			return true
		}
	}
	for _, t := range r.tries {
		if t.Len() > 0 {
			return true
		}
	}
	for _, ps := range r.patterns {
		if len(ps) > 0 {
			return true
		}
	}
	return false
}
