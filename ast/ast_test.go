package ast

import "testing"

func TestSprint(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			"binary op",
			&BinaryOp{Left: &Number{Value: 2}, Op: "+", Right: &Number{Value: 3}},
			"(+ 2 3)",
		},
		{
			"nested precedence",
			&BinaryOp{
				Left: &Number{Value: 2},
				Op:   "+",
				Right: &BinaryOp{
					Left:  &Number{Value: 3},
					Op:    "*",
					Right: &Number{Value: 4},
				},
			},
			"(+ 2 (* 3 4))",
		},
		{
			"assignment",
			&Assignment{Name: "x", Value: &Number{Value: 1}},
			"(= x 1)",
		},
		{
			"call",
			&Call{Name: "f", Args: []Node{&Variable{Name: "a"}, &Boolean{Value: true}}},
			"(call f a true)",
		},
		{
			"return without value",
			&Return{},
			"(return)",
		},
		{
			"string literal",
			&StringLit{Value: "hi"},
			`"hi"`,
		},
		{
			"raw literal",
			&Literal{Text: "@"},
			`(literal "@")`,
		},
		{
			"nil",
			nil,
			"<nil>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sprint(tt.node); got != tt.want {
				t.Errorf("Sprint = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWalkPreorder(t *testing.T) {
	tree := &If{
		Cond: &BinaryOp{Left: &Variable{Name: "x"}, Op: "<", Right: &Number{Value: 10}},
		Then: []Node{&Assignment{Name: "y", Value: &Number{Value: 1}}},
		Else: []Node{&Return{Value: &Boolean{Value: false}}},
	}

	var count int
	Walk(tree, func(Node) bool {
		count++
		return true
	})
	// if, binop, var, num, assign, num, return, bool
	if count != 8 {
		t.Errorf("visited %d nodes, want 8", count)
	}
}

func TestWalkSkipsSubtree(t *testing.T) {
	tree := &While{
		Cond: &Boolean{Value: true},
		Body: []Node{&Call{Name: "f", Args: []Node{&Number{Value: 1}}}},
	}

	var names []string
	Walk(tree, func(n Node) bool {
		if c, ok := n.(*Call); ok {
			names = append(names, c.Name)
			return false // do not descend into args
		}
		return true
	})

	if len(names) != 1 || names[0] != "f" {
		t.Errorf("names = %v, want [f]", names)
	}
}
