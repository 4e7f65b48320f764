package sharpparse

import (
	"testing"

	"github.com/alexzzzs/sharpparse/ast"
)

func TestPrecedenceTable(t *testing.T) {
	tests := []struct {
		op   string
		want int
	}{
		{"*", 7}, {"/", 7},
		{"+", 6}, {"-", 6},
		{"<", 5}, {"<=", 5}, {">", 5}, {">=", 5},
		{"==", 4}, {"!=", 4},
		{"&&", 3},
		{"||", 2},
		{"=", 1},
		{"??", 0}, {"word", 0},
	}

	for _, tt := range tests {
		if got := Precedence(tt.op); got != tt.want {
			t.Errorf("Precedence(%q) = %d, want %d", tt.op, got, tt.want)
		}
	}
}

func TestBuilderPrecedence(t *testing.T) {
	b := NewExpressionBuilder()
	b.PushOperand(&ast.Number{Value: 2})
	b.PushOperator("+")
	b.PushOperand(&ast.Number{Value: 3})
	b.PushOperator("*")
	b.PushOperand(&ast.Number{Value: 4})

	node := b.Finalize()
	if got := ast.Sprint(node); got != "(+ 2 (* 3 4))" {
		t.Errorf("Finalize = %s, want (+ 2 (* 3 4))", got)
	}
}

func TestBuilderLeftAssociativity(t *testing.T) {
	b := NewExpressionBuilder()
	b.PushOperand(&ast.Number{Value: 1})
	b.PushOperator("-")
	b.PushOperand(&ast.Number{Value: 2})
	b.PushOperator("-")
	b.PushOperand(&ast.Number{Value: 3})

	node := b.Finalize()
	if got := ast.Sprint(node); got != "(- (- 1 2) 3)" {
		t.Errorf("Finalize = %s, want (- (- 1 2) 3)", got)
	}
}

func TestBuilderMalformedExpressions(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if node := NewExpressionBuilder().Finalize(); node != nil {
			t.Errorf("Finalize = %v, want nil", node)
		}
	})

	t.Run("two operands no operator", func(t *testing.T) {
		b := NewExpressionBuilder()
		b.PushOperand(&ast.Number{Value: 1})
		b.PushOperand(&ast.Number{Value: 2})
		if node := b.Finalize(); node != nil {
			t.Errorf("Finalize = %v, want nil", node)
		}
	})

	t.Run("dangling operator is dropped", func(t *testing.T) {
		b := NewExpressionBuilder()
		b.PushOperator("+")
		b.PushOperand(&ast.Number{Value: 5})
		node := b.Finalize()
		if got := ast.Sprint(node); got != "5" {
			t.Errorf("Finalize = %s, want 5", got)
		}
	})
}

func TestExpressionModeScanning(t *testing.T) {
	cfg := NewConfig().EnableAST().
		RegisterChar('(', func(ctx *Context, _ byte) { ctx.EnterMode(ModeExpression) }).
		RegisterChar(' ', nil).
		RegisterPattern(`[0-9]+`, nil).
		RegisterSequence("+", nil).
		RegisterSequence("*", nil).
		WithMode(ModeExpression, func(m *ModeConfig) {
			m.RegisterChar(')', func(ctx *Context, _ byte) { ctx.ExitMode() })
		})

	ctx := cfg.RunString("(2 + 3 * 4)")
	nodes := ctx.ASTNodes()
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes, want 1: %v", len(nodes), nodes)
	}
	if got := ast.Sprint(nodes[0]); got != "(+ 2 (* 3 4))" {
		t.Errorf("node = %s, want (+ 2 (* 3 4))", got)
	}
}

func TestExpressionFinalizedAtEndOfInput(t *testing.T) {
	cfg := NewConfig().EnableAST().
		RegisterChar('(', func(ctx *Context, _ byte) { ctx.EnterMode(ModeExpression) }).
		RegisterChar(' ', nil).
		RegisterPattern(`[0-9]+`, nil).
		RegisterSequence("+", nil)

	// The expression mode is never explicitly exited; the run still
	// folds the pending expression at end of input.
	ctx := cfg.RunString("(2 + 3")
	nodes := ctx.ASTNodes()
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(nodes))
	}
	if got := ast.Sprint(nodes[0]); got != "(+ 2 3)" {
		t.Errorf("node = %s, want (+ 2 3)", got)
	}
}
