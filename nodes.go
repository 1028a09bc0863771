package mathexpr

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. The tree is
// strictly owned: every node is the sole parent of its children.
type node struct {
	kind nodeKind

	val  float64 // nodeNum
	name string  // nodeConst, nodeCall
	fn   Func    // nodeCall
	args []*node // nodeCall, in call order

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum   // push val
	nodeConst // push constants[name]
	nodeCall  // call fn with args

	nodeNeg  // negate left
	nodeFact // factorial of left
	nodePct  // left divided by 100

	nodeAdd // left + right
	nodeSub // left - right
	nodeMul // left * right
	nodeDiv // left / right
	nodeMod // left mod right; reserved, no token produces it yet
	nodePow // left ^ right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeConst:
		return "Const"
	case nodeCall:
		return "Call"
	case nodeNeg:
		return "Neg"
	case nodeFact:
		return "Fact"
	case nodePct:
		return "Pct"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	case nodeMod:
		return "Mod"
	case nodePow:
		return "Pow"
	}
	return "nodeKind(" + strconv.Itoa(int(k)) + ")"
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes a fully parenthesized rendering of the subtree, used for debug
// output and parser tests.
func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.val, 'g', -1, 64))
	case nodeConst:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		b.WriteByte('(')
		for i, a := range n.args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.fmt(b)
		}
		b.WriteByte(')')
	case nodeNeg:
		b.WriteString("(-")
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeFact:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteString("!)")
	case nodePct:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteString("%)")
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteString(binopText(n.kind))
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		// Invalid nodes use an invalid character.
		b.WriteByte('$')
	}
}

func binopText(k nodeKind) string {
	switch k {
	case nodeAdd:
		return " + "
	case nodeSub:
		return " - "
	case nodeMul:
		return " * "
	case nodeDiv:
		return " / "
	case nodeMod:
		return " mod "
	case nodePow:
		return " ^ "
	}
	return " ? "
}
