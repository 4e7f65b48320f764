// Package ast defines the abstract syntax tree built by the scan engine.
//
// The tree is a closed set of node types behind the Node interface.
// Children are owned by their parent; nodes never reference a parent,
// so the structure is always a tree, never a graph.
//
// Node hierarchy:
//
//	Node (interface)
//	├── Function, If, While, For, Block - structure
//	├── Assignment, Return, Call - statements
//	├── BinaryOp, UnaryOp - operations
//	└── Variable, Number, StringLit, Boolean, Literal - leaves
package ast

// Node is the interface implemented by all AST nodes.
type Node interface {
	node() // marker method to prevent external implementations
}

// Function is a named function declaration with parameters and a body.
type Function struct {
	Name   string
	Params []string
	Body   []Node
}

// If is a conditional with an optional else branch.
type If struct {
	Cond Node
	Then []Node
	Else []Node // nil when there is no else branch
}

// While is a pre-condition loop.
type While struct {
	Cond Node
	Body []Node
}

// For is a three-clause loop; any clause may be nil.
type For struct {
	Init Node
	Cond Node
	Step Node
	Body []Node
}

// Block is a sequence of statements.
type Block struct {
	Stmts []Node
}

// Assignment binds a value to a name.
type Assignment struct {
	Name  string
	Value Node
}

// Return exits a function, optionally with a value.
type Return struct {
	Value Node // nil for a bare return
}

// Call is a function invocation.
type Call struct {
	Name string
	Args []Node
}

// BinaryOp applies an infix operator to two operands.
type BinaryOp struct {
	Left  Node
	Op    string
	Right Node
}

// UnaryOp applies a prefix operator to one operand.
type UnaryOp struct {
	Op      string
	Operand Node
}

// Variable is a reference to a name.
type Variable struct {
	Name string
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

// StringLit is a string literal (without surrounding quotes).
type StringLit struct {
	Value string
}

// Boolean is a true/false literal.
type Boolean struct {
	Value bool
}

// Literal is the raw-text fallback for matches that map to no other
// node type.
type Literal struct {
	Text string
}

func (*Function) node()   {}
func (*If) node()         {}
func (*While) node()      {}
func (*For) node()        {}
func (*Block) node()      {}
func (*Assignment) node() {}
func (*Return) node()     {}
func (*Call) node()       {}
func (*BinaryOp) node()   {}
func (*UnaryOp) node()    {}
func (*Variable) node()   {}
func (*Number) node()     {}
func (*StringLit) node()  {}
func (*Boolean) node()    {}
func (*Literal) node()    {}
