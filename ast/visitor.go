package ast

// Walk traverses the tree rooted at node in preorder, calling fn for
// each node. If fn returns false the subtree below that node is
// skipped. A nil node is ignored.
func Walk(node Node, fn func(Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Function:
		walkList(n.Body, fn)
	case *If:
		Walk(n.Cond, fn)
		walkList(n.Then, fn)
		walkList(n.Else, fn)
	case *While:
		Walk(n.Cond, fn)
		walkList(n.Body, fn)
	case *For:
		Walk(n.Init, fn)
		Walk(n.Cond, fn)
		Walk(n.Step, fn)
		walkList(n.Body, fn)
	case *Block:
		walkList(n.Stmts, fn)
	case *Assignment:
		Walk(n.Value, fn)
	case *Return:
		Walk(n.Value, fn)
	case *Call:
		walkList(n.Args, fn)
	case *BinaryOp:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *UnaryOp:
		Walk(n.Operand, fn)
	}
}

func walkList(nodes []Node, fn func(Node) bool) {
	for _, n := range nodes {
		Walk(n, fn)
	}
}
