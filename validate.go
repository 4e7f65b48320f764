package sharpparse

import (
	"fmt"
	"sort"
)

// IssueLevel grades a validation finding.
type IssueLevel uint8

const (
	// LevelWarning marks findings that do not prevent scanning.
	LevelWarning IssueLevel = iota
	// LevelError marks findings that make the configuration invalid.
	LevelError
)

// String returns "warning" or "error".
func (l IssueLevel) String() string {
	if l == LevelError {
		return "error"
	}
	return "warning"
}

// Issue is one validation finding.
type Issue struct {
	Level   IssueLevel
	Message string
}

// Issues is a list of validation findings.
type Issues []Issue

// Error returns a combined message for all findings.
func (is Issues) Error() string {
	switch len(is) {
	case 0:
		return "no issues"
	case 1:
		return is[0].Message
	default:
		return fmt.Sprintf("%s (and %d more issues)", is[0].Message, len(is)-1)
	}
}

// Err returns the error-level findings as an error, or nil when the
// configuration is valid.
func (is Issues) Err() error {
	var errs Issues
	for _, i := range is {
		if i.Level == LevelError {
			errs = append(errs, i)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Warnings returns only the warning-level findings.
func (is Issues) Warnings() Issues {
	var warns Issues
	for _, i := range is {
		if i.Level == LevelWarning {
			warns = append(warns, i)
		}
	}
	return warns
}

func (is *Issues) warnf(format string, args ...any) {
	*is = append(*is, Issue{Level: LevelWarning, Message: fmt.Sprintf(format, args...)})
}

func (is *Issues) errorf(format string, args ...any) {
	*is = append(*is, Issue{Level: LevelError, Message: fmt.Sprintf(format, args...)})
}

// Validate checks a configuration for mistakes that registration alone
// cannot reject: multiple character handlers on the same character
// within one mode and duplicate literal patterns within one mode are
// warnings, non-compiling patterns and invalid registrations are
// errors, and tracing with no error handlers is a usability warning.
// Trie sequence overlaps are not checked; longest-match semantics
// already resolve them at scan time.
func Validate(c *Config) Issues {
	var issues Issues

	for _, e := range c.errs {
		issues.errorf("%s", e.Message)
	}

	// Map iteration order is randomized; sort the keys so repeated
	// Validate calls report findings in a stable order.
	for _, mode := range sortedKeys(c.reg.chars) {
		byChar := c.reg.chars[mode]
		chars := make([]int, 0, len(byChar))
		for ch := range byChar {
			chars = append(chars, int(ch))
		}
		sort.Ints(chars)
		for _, ch := range chars {
			if handlers := byChar[byte(ch)]; len(handlers) > 1 {
				issues.warnf("%d handlers registered for character %q in mode %q; all will fire",
					len(handlers), byte(ch), mode)
			}
		}
	}

	for _, mode := range sortedKeys(c.reg.patterns) {
		entries := c.reg.patterns[mode]
		counts := make(map[string]int, len(entries))
		for _, e := range entries {
			counts[e.source]++
		}
		reported := make(map[string]bool, len(counts))
		for _, e := range entries {
			if counts[e.source] > 1 && !reported[e.source] {
				reported[e.source] = true
				issues.warnf("pattern %q registered %d times in mode %q; only the first can match",
					e.source, counts[e.source], mode)
			}
		}
	}

	if c.trace && len(c.reg.errHandlers) == 0 {
		issues.warnf("tracing is enabled but no error handlers are registered")
	}

	return issues
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
