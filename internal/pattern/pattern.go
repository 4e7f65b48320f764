// Package pattern provides position-anchored regular expression
// matching on top of coregex, plus a shared compilation cache.
package pattern

import (
	"sync"

	"github.com/coregx/coregex"
)

// anchorPrefix forces matches to start exactly at the probe position.
const anchorPrefix = "^(?:"

// Pattern is a compiled regular expression configured for anchored,
// position-based matching: it matches at a given start position only,
// never at an arbitrary offset inside the text.
type Pattern struct {
	source string
	re     *coregex.Regexp
}

// Compile compiles the expression for anchored matching.
func Compile(expr string) (*Pattern, error) {
	re, err := coregex.Compile(anchorPrefix + expr + ")")
	if err != nil {
		return nil, err
	}
	return &Pattern{source: expr, re: re}, nil
}

// MustCompile compiles the expression, panicking on error.
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Source returns the original expression string.
func (p *Pattern) Source() string {
	return p.source
}

// MatchAt reports whether the pattern matches starting exactly at pos,
// returning the matched text. Zero-length matches are rejected so a
// scan loop always makes progress.
func (p *Pattern) MatchAt(text string, pos int) (string, bool) {
	if pos < 0 || pos > len(text) {
		return "", false
	}
	loc := p.re.FindStringIndex(text[pos:])
	if loc == nil || loc[0] != 0 || loc[1] == 0 {
		return "", false
	}
	return text[pos : pos+loc[1]], true
}

// First tries patterns in order and returns the index and text of the
// first one that matches at pos. This is "first match wins", in
// contrast to the trie's "longest match wins".
func First(patterns []*Pattern, text string, pos int) (int, string, bool) {
	for i, p := range patterns {
		if matched, ok := p.MatchAt(text, pos); ok {
			return i, matched, true
		}
	}
	return -1, "", false
}

// Cache provides thread-safe compiled pattern memoization keyed by the
// literal expression string, with FIFO eviction. Reads are lock-free
// via sync.Map; a compiled Pattern is immutable once inserted, so
// concurrent readers never observe a partially-constructed entry.
type Cache struct {
	cache   sync.Map   // map[string]*Pattern - lock-free reads
	orderMu sync.Mutex // protects order slice for eviction
	order   []string   // FIFO order for eviction
	maxSize int
}

// DefaultCacheSize is the eviction threshold used when none is given.
const DefaultCacheSize = 128

// NewCache creates a cache with the specified max size.
func NewCache(maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	return &Cache{
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

// Get returns the compiled pattern for expr, compiling and caching on
// first use. Repeated calls with an identical expression return the
// same *Pattern instance.
func (c *Cache) Get(expr string) (*Pattern, error) {
	if p, ok := c.cache.Load(expr); ok {
		return p.(*Pattern), nil
	}

	p, err := Compile(expr)
	if err != nil {
		return nil, err
	}

	// Another goroutine may have compiled the same expression; keep
	// the first stored instance so memoization stays idempotent.
	if existing, loaded := c.cache.LoadOrStore(expr, p); loaded {
		return existing.(*Pattern), nil
	}

	c.orderMu.Lock()
	c.order = append(c.order, expr)
	for len(c.order) > c.maxSize {
		oldest := c.order[0]
		c.order = c.order[1:]
		c.cache.Delete(oldest)
	}
	c.orderMu.Unlock()

	return p, nil
}

// MustGet returns the compiled pattern, panicking on error.
func (c *Cache) MustGet(expr string) *Pattern {
	p, err := c.Get(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	c.orderMu.Lock()
	n := len(c.order)
	c.orderMu.Unlock()
	return n
}
