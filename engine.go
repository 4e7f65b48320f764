package sharpparse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexzzzs/sharpparse/ast"
	"github.com/alexzzzs/sharpparse/token"
)

// engine runs the per-position dispatch loop over a context. Worker
// engines created by the parallel paths share the configuration but
// have tracing forced off.
type engine struct {
	cfg   *Config
	trace bool
}

func newEngine(cfg *Config) *engine {
	return &engine{cfg: cfg, trace: cfg.trace}
}

// scanText folds line scanning over the whole input and finalizes any
// pending expression. An empty line does not increment the line
// counter; callers relying on line-number fidelity with the reference
// behavior must match this quirk.
func (e *engine) scanText(ctx *Context, text string) {
	for _, line := range strings.Split(text, "\n") {
		e.scanLine(ctx, line)
		if line != "" {
			ctx.Line++
			ctx.Col = 1
		}
	}
	ctx.finalizeExpression()
}

// scanLine dispatches every position of one line. Priority per
// position: sequence match, then pattern match, then character
// handlers. The loop never aborts; errors are recorded and scanning
// continues at the next position.
func (e *engine) scanLine(ctx *Context, line string) {
	reg := e.cfg.reg
	pos := 0
	for pos < len(line) {
		mode := ctx.CurrentMode()
		startLine, startCol := ctx.Line, ctx.Col

		if n, fn, ok := reg.matchSequence(mode, line, pos); ok {
			matched := line[pos : pos+n]
			if fn != nil {
				fn(ctx, matched)
			}
			ctx.Col += n
			e.tracef(ctx, "%d:%d sequence %q mode=%q", startLine, startCol, matched, mode)
			e.emit(ctx, matched, startLine, startCol, mode)
			pos += n
			continue
		}

		if matched, fn, ok := reg.matchPattern(mode, line, pos); ok {
			if fn != nil {
				fn(ctx, matched)
			}
			ctx.Col += len(matched)
			e.tracef(ctx, "%d:%d pattern %q mode=%q", startLine, startCol, matched, mode)
			e.emit(ctx, matched, startLine, startCol, mode)
			pos += len(matched)
			continue
		}

		ch := line[pos]
		handlers := reg.charHandlers(mode, ch)
		if len(handlers) == 0 {
			if reg.hasHandlers() {
				e.reportError(ctx, UnexpectedChar,
					fmt.Sprintf("no handler for %q", ch),
					"register a char, sequence, or pattern handler covering this character")
			}
			// Empty registry: degrade to a no-op scanner so callers
			// can build configurations incrementally.
			ctx.Col++
			pos++
			continue
		}
		for _, h := range handlers {
			if h != nil {
				h(ctx, ch)
			}
		}
		ctx.Col++
		e.tracef(ctx, "%d:%d char %q mode=%q", startLine, startCol, ch, mode)
		e.emit(ctx, string(ch), startLine, startCol, mode)
		pos++
	}
}

// emit runs the auto-tokenize and auto-AST hooks after a successful
// match. mode is the mode that was active when the match was found,
// before its handler ran.
func (e *engine) emit(ctx *Context, matched string, line, col int, mode string) {
	if e.cfg.tokens {
		ctx.addToken(token.Make(matched, line, col, mode))
	}
	if e.cfg.buildAST {
		e.buildNode(ctx, matched, mode)
	}
}

// buildNode offers the match to the custom builders for the mode,
// falling back to the default translation rules, and routes the result
// through the expression builder while in expression mode.
func (e *engine) buildNode(ctx *Context, matched, mode string) {
	if mode == ModeExpression && IsOperator(matched) {
		ctx.exprBuilder().PushOperator(matched)
		return
	}

	var node ast.Node
	for _, b := range e.cfg.reg.modeBuilders(mode) {
		if b == nil {
			continue
		}
		if n := b(ctx, matched); n != nil {
			node = n
			break
		}
	}
	if node == nil {
		node = defaultNode(matched)
	}
	if node == nil {
		return
	}

	if mode == ModeExpression {
		ctx.exprBuilder().PushOperand(node)
		return
	}
	ctx.addNode(node)
}

// defaultNode is the built-in match-to-node translation: control
// keywords become skeleton control-flow nodes, literals become literal
// nodes, identifier-shaped text becomes a variable reference, and
// anything else falls back to a raw Literal. Whitespace and bare
// punctuation map to nothing.
func defaultNode(text string) ast.Node {
	switch text {
	case "if":
		return &ast.If{}
	case "while":
		return &ast.While{}
	case "for":
		return &ast.For{}
	case "function":
		return &ast.Function{}
	case "return":
		return &ast.Return{}
	case "true":
		return &ast.Boolean{Value: true}
	case "false":
		return &ast.Boolean{Value: false}
	case "(", ")", "{", "}", "[", "]", ",", ";":
		return nil
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if len(text) >= 2 && (text[0] == '"' || text[0] == '\'') && text[len(text)-1] == text[0] {
		return &ast.StringLit{Value: text[1 : len(text)-1]}
	}
	if n, err := strconv.ParseFloat(text, 64); err == nil {
		return &ast.Number{Value: n}
	}
	if token.IsIdentifier(text) {
		return &ast.Variable{Name: text}
	}
	return &ast.Literal{Text: text}
}

// reportError records an error at the current cursor position and
// invokes every registered error handler with the rendered message.
func (e *engine) reportError(ctx *Context, kind ErrorKind, msg, suggestion string) {
	info := ErrorInfo{
		Kind:       kind,
		Line:       ctx.Line,
		Col:        ctx.Col,
		Mode:       ctx.CurrentMode(),
		Message:    msg,
		Suggestion: suggestion,
	}
	ctx.state.errors = append(ctx.state.errors, info)
	e.tracef(ctx, "%d:%d error: %s", info.Line, info.Col, info.Message)
	for _, h := range e.cfg.reg.errHandlers {
		if h != nil {
			h(ctx, info.Error())
		}
	}
}

func (e *engine) tracef(ctx *Context, format string, args ...any) {
	if !e.trace {
		return
	}
	ctx.addTrace(fmt.Sprintf(format, args...))
}
