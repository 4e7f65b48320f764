package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Sprint returns a compact single-line representation of the node,
// suitable for debugging and test assertions.
func Sprint(node Node) string {
	var b strings.Builder
	sprintNode(&b, node)
	return b.String()
}

func sprintNode(b *strings.Builder, node Node) {
	if node == nil {
		b.WriteString("<nil>")
		return
	}

	switch n := node.(type) {
	case *Function:
		fmt.Fprintf(b, "(function %s (%s)", n.Name, strings.Join(n.Params, " "))
		sprintList(b, n.Body)
		b.WriteByte(')')
	case *If:
		b.WriteString("(if ")
		sprintNode(b, n.Cond)
		sprintList(b, n.Then)
		if n.Else != nil {
			b.WriteString(" else")
			sprintList(b, n.Else)
		}
		b.WriteByte(')')
	case *While:
		b.WriteString("(while ")
		sprintNode(b, n.Cond)
		sprintList(b, n.Body)
		b.WriteByte(')')
	case *For:
		b.WriteString("(for ")
		sprintNode(b, n.Init)
		b.WriteByte(' ')
		sprintNode(b, n.Cond)
		b.WriteByte(' ')
		sprintNode(b, n.Step)
		sprintList(b, n.Body)
		b.WriteByte(')')
	case *Block:
		b.WriteString("(block")
		sprintList(b, n.Stmts)
		b.WriteByte(')')
	case *Assignment:
		fmt.Fprintf(b, "(= %s ", n.Name)
		sprintNode(b, n.Value)
		b.WriteByte(')')
	case *Return:
		b.WriteString("(return")
		if n.Value != nil {
			b.WriteByte(' ')
			sprintNode(b, n.Value)
		}
		b.WriteByte(')')
	case *Call:
		fmt.Fprintf(b, "(call %s", n.Name)
		sprintList(b, n.Args)
		b.WriteByte(')')
	case *BinaryOp:
		fmt.Fprintf(b, "(%s ", n.Op)
		sprintNode(b, n.Left)
		b.WriteByte(' ')
		sprintNode(b, n.Right)
		b.WriteByte(')')
	case *UnaryOp:
		fmt.Fprintf(b, "(%s ", n.Op)
		sprintNode(b, n.Operand)
		b.WriteByte(')')
	case *Variable:
		b.WriteString(n.Name)
	case *Number:
		b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	case *StringLit:
		fmt.Fprintf(b, "%q", n.Value)
	case *Boolean:
		fmt.Fprintf(b, "%t", n.Value)
	case *Literal:
		fmt.Fprintf(b, "(literal %q)", n.Text)
	default:
		fmt.Fprintf(b, "<%T>", node)
	}
}

func sprintList(b *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		b.WriteByte(' ')
		sprintNode(b, n)
	}
}
