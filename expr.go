package sharpparse

import "github.com/alexzzzs/sharpparse/ast"

// ModeExpression is the reserved mode name in which matched operands
// and operators are routed through an ExpressionBuilder instead of
// being appended to the node list directly.
const ModeExpression = "expression"

// Precedence returns the binding strength of an infix operator.
// Higher binds tighter; unknown operators return 0.
func Precedence(op string) int {
	switch op {
	case "*", "/":
		return 7
	case "+", "-":
		return 6
	case "<", "<=", ">", ">=":
		return 5
	case "==", "!=":
		return 4
	case "&&":
		return 3
	case "||":
		return 2
	case "=":
		return 1
	default:
		return 0
	}
}

// IsOperator reports whether text is a known infix operator.
func IsOperator(text string) bool {
	return Precedence(text) > 0
}

// ExpressionBuilder folds operands and infix operators into a binary
// operation tree using an operator-precedence (shunting-yard) stack.
type ExpressionBuilder struct {
	operands  []ast.Node
	operators []string
}

// NewExpressionBuilder creates an empty builder.
func NewExpressionBuilder() *ExpressionBuilder {
	return &ExpressionBuilder{}
}

// PushOperand pushes a completed operand node.
func (b *ExpressionBuilder) PushOperand(node ast.Node) {
	b.operands = append(b.operands, node)
}

// PushOperator pushes an infix operator, first folding any stacked
// operator of greater or equal precedence. Folding at equal precedence
// gives left-to-right evaluation among equal operators.
func (b *ExpressionBuilder) PushOperator(op string) {
	prec := Precedence(op)
	for len(b.operators) > 0 && Precedence(b.operators[len(b.operators)-1]) >= prec {
		b.applyTop()
	}
	b.operators = append(b.operators, op)
}

// Finalize folds all remaining operators and returns the completed
// expression. Returns nil when zero or more than one operand remains,
// which callers treat as "no expression to emit".
func (b *ExpressionBuilder) Finalize() ast.Node {
	for len(b.operators) > 0 {
		b.applyTop()
	}
	if len(b.operands) != 1 {
		return nil
	}
	node := b.operands[0]
	b.operands = b.operands[:0]
	return node
}

// applyTop pops the top operator and its two operands and pushes the
// folded BinaryOp back. With fewer than two operands the operator is
// dropped rather than crashing on malformed input.
func (b *ExpressionBuilder) applyTop() {
	op := b.operators[len(b.operators)-1]
	b.operators = b.operators[:len(b.operators)-1]
	if len(b.operands) < 2 {
		return
	}
	right := b.operands[len(b.operands)-1]
	left := b.operands[len(b.operands)-2]
	b.operands = b.operands[:len(b.operands)-2]
	b.operands = append(b.operands, &ast.BinaryOp{Left: left, Op: op, Right: right})
}
