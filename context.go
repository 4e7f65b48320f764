package sharpparse

import (
	"github.com/alexzzzs/sharpparse/ast"
	"github.com/alexzzzs/sharpparse/token"
)

// exprBuilderKey is the reserved user-data key under which the
// expression-mode operator stack is stored.
const exprBuilderKey = "sharpparse.exprBuilder"

// State accumulates the results of a scan: tokens, AST nodes, errors,
// and trace lines, plus a caller-defined user-data side table. A State
// is owned by exactly one Context.
type State struct {
	tokens []token.Token
	nodes  []ast.Node
	errors []ErrorInfo
	trace  []string
	user   map[string]any
}

func newState() *State {
	return &State{user: make(map[string]any)}
}

// Context is the evolving parse state threaded through the scan loop:
// the cursor position, the mode stack, and the accumulated results.
// A Context has no external aliases; the engine mutates it in place.
type Context struct {
	Line int    // 1-based cursor line
	Col  int    // 1-based cursor column
	File string // source file path, "" for in-memory input

	modes []string // mode stack, last element is active
	state *State
}

// NewContext creates an empty context positioned at 1:1.
func NewContext() *Context {
	return &Context{Line: 1, Col: 1, state: newState()}
}

// EnterMode pushes a named mode; it becomes the active mode.
func (c *Context) EnterMode(name string) {
	c.modes = append(c.modes, name)
}

// ExitMode pops the active mode. Popping an empty stack is a no-op.
// Leaving the expression mode finalizes any pending expression and
// appends the completed tree to the node list.
func (c *Context) ExitMode() {
	if len(c.modes) == 0 {
		return
	}
	popped := c.modes[len(c.modes)-1]
	c.modes = c.modes[:len(c.modes)-1]
	if popped == ModeExpression {
		c.finalizeExpression()
	}
}

// CurrentMode returns the active mode name, or "" when no mode is
// active.
func (c *Context) CurrentMode() string {
	if len(c.modes) == 0 {
		return ""
	}
	return c.modes[len(c.modes)-1]
}

// ModeDepth returns the number of modes on the stack.
func (c *Context) ModeDepth() int {
	return len(c.modes)
}

// finalizeExpression folds any pending expression-builder state into a
// single node and appends it. Malformed expressions fold to nothing.
func (c *Context) finalizeExpression() {
	b, ok := c.state.user[exprBuilderKey].(*ExpressionBuilder)
	if !ok {
		return
	}
	delete(c.state.user, exprBuilderKey)
	if node := b.Finalize(); node != nil {
		c.state.nodes = append(c.state.nodes, node)
	}
}

// exprBuilder returns the pending expression builder, creating one on
// first use.
func (c *Context) exprBuilder() *ExpressionBuilder {
	if b, ok := c.state.user[exprBuilderKey].(*ExpressionBuilder); ok {
		return b
	}
	b := NewExpressionBuilder()
	c.state.user[exprBuilderKey] = b
	return b
}

// Tokens returns the accumulated tokens in chronological order.
func (c *Context) Tokens() []token.Token {
	out := make([]token.Token, len(c.state.tokens))
	copy(out, c.state.tokens)
	return out
}

// ASTNodes returns the accumulated AST nodes in chronological order.
func (c *Context) ASTNodes() []ast.Node {
	out := make([]ast.Node, len(c.state.nodes))
	copy(out, c.state.nodes)
	return out
}

// Errors returns the recorded errors in chronological order.
func (c *Context) Errors() []ErrorInfo {
	out := make([]ErrorInfo, len(c.state.errors))
	copy(out, c.state.errors)
	return out
}

// Trace returns the recorded trace lines in chronological order.
func (c *Context) Trace() []string {
	out := make([]string, len(c.state.trace))
	copy(out, c.state.trace)
	return out
}

// GetUserData returns the value stored under key in the user-data
// side table.
func (c *Context) GetUserData(key string) (any, bool) {
	v, ok := c.state.user[key]
	return v, ok
}

// SetUserData stores a value under key in the user-data side table.
func (c *Context) SetUserData(key string, value any) {
	c.state.user[key] = value
}

// addToken appends a token to the state.
func (c *Context) addToken(t token.Token) {
	c.state.tokens = append(c.state.tokens, t)
}

// addNode appends an AST node to the state.
func (c *Context) addNode(n ast.Node) {
	c.state.nodes = append(c.state.nodes, n)
}

// addTrace appends a trace line to the state.
func (c *Context) addTrace(line string) {
	c.state.trace = append(c.state.trace, line)
}
