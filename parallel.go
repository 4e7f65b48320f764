package sharpparse

import (
	"strings"
	"sync"

	"github.com/coregx/coregex"
)

// BoundaryRule describes how one declaration shape opens a parseable
// boundary. Pattern is matched against each line; NameGroup selects
// the capture group holding the declaration name. Open and Close are
// the delimiter pair whose per-line counts track nesting depth; an
// empty Close means the boundary only closes at the next declaration
// or at end of input.
type BoundaryRule struct {
	Pattern   string
	NameGroup int
	Kind      string
	Open      string
	Close     string
}

// Boundary is one contiguous text range identified as a single
// function or declaration for parallel parsing.
type Boundary struct {
	Name      string
	Kind      string
	StartLine int // 1-based, inclusive
	EndLine   int // 1-based, inclusive
	Content   string
}

// countedLines returns the number of line-counter increments scanning
// the boundary's content produces. Empty lines do not increment the
// counter, so they are excluded; using the physical line span here
// would desynchronize merged line numbers from the sequential scan.
func (b Boundary) countedLines() int {
	n := 0
	for _, line := range strings.Split(b.Content, "\n") {
		if line != "" {
			n++
		}
	}
	return n
}

type compiledRule struct {
	rule BoundaryRule
	re   *coregex.Regexp
}

func compileRule(rule BoundaryRule) (compiledRule, error) {
	re, err := coregex.Compile(rule.Pattern)
	if err != nil {
		return compiledRule{}, err
	}
	return compiledRule{rule: rule, re: re}, nil
}

func mustCompileRule(rule BoundaryRule) compiledRule {
	cr, err := compileRule(rule)
	if err != nil {
		panic(err)
	}
	return cr
}

// defaultBoundaryRules covers the common declaration shapes. The
// def-rule has no closing delimiter, so such boundaries run until the
// next declaration.
func defaultBoundaryRules() []compiledRule {
	return []compiledRule{
		mustCompileRule(BoundaryRule{
			Pattern:   `^\s*function\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(`,
			NameGroup: 1,
			Kind:      "function",
			Open:      "{",
			Close:     "}",
		}),
		mustCompileRule(BoundaryRule{
			Pattern:   `^\s*def\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(`,
			NameGroup: 1,
			Kind:      "function",
			Open:      ":",
			Close:     "",
		}),
		mustCompileRule(BoundaryRule{
			Pattern:   `^\s*class\s+([A-Za-z_][A-Za-z0-9_]*)`,
			NameGroup: 1,
			Kind:      "class",
			Open:      "{",
			Close:     "}",
		}),
	}
}

// openBoundary tracks the boundary currently being accumulated during
// identification.
type openBoundary struct {
	ruleIdx   int
	name      string
	kind      string
	startLine int
	depth     int
	opened    bool // has the open delimiter been seen yet
	lines     []string
}

func (ob *openBoundary) close(endLine int) Boundary {
	return Boundary{
		Name:      ob.name,
		Kind:      ob.kind,
		StartLine: ob.startLine,
		EndLine:   endLine,
		Content:   strings.Join(ob.lines, "\n"),
	}
}

// identifyBoundaries scans the text line by line against the rules. A
// declaration match closes any open boundary and opens a new one;
// while a boundary is open, delimiter counts (including those on the
// declaration line itself) adjust the nesting depth, and depth
// returning to zero closes it. A boundary still open at end of input
// takes all remaining lines.
func identifyBoundaries(text string, rules []compiledRule) []Boundary {
	lines := strings.Split(text, "\n")
	var out []Boundary
	var cur *openBoundary

	for i, line := range lines {
		lineNo := i + 1

		matchedRule := -1
		name := ""
		for ri, cr := range rules {
			m := cr.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if cr.rule.NameGroup > 0 && cr.rule.NameGroup < len(m) {
				name = m[cr.rule.NameGroup]
			}
			matchedRule = ri
			break
		}

		if matchedRule >= 0 {
			if cur != nil {
				out = append(out, cur.close(lineNo-1))
			}
			cur = &openBoundary{
				ruleIdx:   matchedRule,
				name:      name,
				kind:      rules[matchedRule].rule.Kind,
				startLine: lineNo,
			}
		}
		if cur == nil {
			continue
		}

		cur.lines = append(cur.lines, line)
		rule := rules[cur.ruleIdx].rule
		if rule.Open != "" {
			opens := strings.Count(line, rule.Open)
			cur.depth += opens
			if opens > 0 {
				cur.opened = true
			}
		}
		if rule.Close != "" {
			cur.depth -= strings.Count(line, rule.Close)
			if cur.opened && cur.depth <= 0 {
				out = append(out, cur.close(lineNo))
				cur = nil
			}
		}
	}

	if cur != nil {
		out = append(out, cur.close(len(lines)))
	}
	return out
}

// boundaryResult carries one worker's partial state, tagged with the
// boundary's submission index so the merge can run in original order.
type boundaryResult struct {
	index int
	ctx   *Context
	lines int
}

// scanBoundaries scans each boundary's content concurrently with a
// fresh context and merges the partial results back into ctx in
// submission order. Worker engines have tracing disabled and never
// fan out again.
func (e *engine) scanBoundaries(ctx *Context, boundaries []Boundary) {
	workers := e.cfg.maxWorkers
	if workers <= 0 || workers > len(boundaries) {
		workers = len(boundaries)
	}

	jobs := make(chan int, len(boundaries))
	results := make(chan boundaryResult, len(boundaries))
	worker := &engine{cfg: e.cfg, trace: false}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				wctx := NewContext()
				wctx.File = ctx.File
				worker.scanText(wctx, boundaries[idx].Content)
				results <- boundaryResult{
					index: idx,
					ctx:   wctx,
					lines: boundaries[idx].countedLines(),
				}
			}
		}()
	}

	for i := range boundaries {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	close(results)

	collected := make([]boundaryResult, 0, len(boundaries))
	for r := range results {
		collected = append(collected, r)
	}
	sortByIndex(collected)

	mergeResults(ctx, collected)
}

// mergeResults folds worker states into the base context in
// submission order. Token and error line numbers are corrected by the
// running sum of previous boundaries' counted line totals, so merged
// numbering matches what a sequential scan of the same text produces;
// AST nodes and trace lines carry no absolute positions and are
// appended as-is. User data is taken only from the base context.
func mergeResults(base *Context, results []boundaryResult) {
	offset := 0
	for _, r := range results {
		st := r.ctx.state
		for _, t := range st.tokens {
			t.Line += offset
			base.state.tokens = append(base.state.tokens, t)
		}
		for _, e := range st.errors {
			e.Line += offset
			base.state.errors = append(base.state.errors, e)
		}
		base.state.nodes = append(base.state.nodes, st.nodes...)
		base.state.trace = append(base.state.trace, st.trace...)
		offset += r.lines
	}
	base.Line += offset
	base.Col = 1
}

// scanLinesParallel scans independent lines concurrently, each with a
// fresh context, and merges tokens, nodes, and errors back in line
// order with absolute line numbers. Effective line numbers are
// precomputed sequentially so the empty-line counting quirk matches
// the sequential path.
func (e *engine) scanLinesParallel(ctx *Context, text string) {
	lines := strings.Split(text, "\n")

	effective := make([]int, len(lines))
	next := ctx.Line
	for i, line := range lines {
		effective[i] = next
		if line != "" {
			next++
		}
	}

	workers := e.cfg.maxWorkers
	if workers <= 0 || workers > len(lines) {
		workers = len(lines)
	}

	jobs := make(chan int, len(lines))
	results := make(chan boundaryResult, len(lines))
	worker := &engine{cfg: e.cfg, trace: false}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				wctx := NewContext()
				wctx.File = ctx.File
				worker.scanLine(wctx, lines[idx])
				wctx.finalizeExpression()
				results <- boundaryResult{index: idx, ctx: wctx}
			}
		}()
	}

	for i := range lines {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	close(results)

	collected := make([]boundaryResult, 0, len(lines))
	for r := range results {
		collected = append(collected, r)
	}
	sortByIndex(collected)

	for _, r := range collected {
		st := r.ctx.state
		for _, t := range st.tokens {
			t.Line = effective[r.index]
			ctx.state.tokens = append(ctx.state.tokens, t)
		}
		for _, e := range st.errors {
			e.Line = effective[r.index]
			ctx.state.errors = append(ctx.state.errors, e)
		}
		ctx.state.nodes = append(ctx.state.nodes, st.nodes...)
	}
	ctx.Line = next
	ctx.Col = 1
}

// sortByIndex sorts results by submission index using insertion sort;
// boundary counts are small enough that O(n^2) is fine.
func sortByIndex(results []boundaryResult) {
	for i := 1; i < len(results); i++ {
		j := i
		for j > 0 && results[j-1].index > results[j].index {
			results[j-1], results[j] = results[j], results[j-1]
			j--
		}
	}
}
