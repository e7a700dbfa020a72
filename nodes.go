package flt

import (
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/repr"
)

// Expr is a node in the abstract syntax tree of an expression. The set of
// node types is closed: every Expr is a Number, Unary, Binary, or Group.
//
// Nodes are values. A parsed tree shares nothing with any other tree, and
// nothing in this package modifies a node after creating it. Pointers to nodes
// also have the methods of Expr, but they are not nodes: functions in this
// package panic if given one.
type Expr interface {
	// String formats the expression as source text that parses to an equal
	// tree.
	String() string

	expr()
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

// Unary is a prefix operator applied to an operand.
type Unary struct {
	Op      UnaryOp
	Operand Expr
}

// Binary is an infix operator applied to two operands.
type Binary struct {
	Op          BinaryOp
	Left, Right Expr
}

// Group is a parenthesized subexpression. It is kept in the tree so that
// explicit grouping is distinguishable from grouping implied by precedence.
type Group struct {
	Inner Expr
}

func (Number) expr() {}
func (Unary) expr()  {}
func (Binary) expr() {}
func (Group) expr()  {}

// UnaryOp is a prefix operator.
type UnaryOp int8

const (
	Negate UnaryOp = iota
)

// String returns the operator's symbol.
func (op UnaryOp) String() string {
	switch op {
	case Negate:
		return "-"
	default:
		return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
	}
}

// Name returns the operator's name, e.g. "Negate".
func (op UnaryOp) Name() string {
	switch op {
	case Negate:
		return "Negate"
	default:
		return op.String()
	}
}

// GoString returns the operator's qualified name, e.g. "flt.Negate".
func (op UnaryOp) GoString() string {
	return "flt." + op.Name()
}

// BinaryOp is an infix operator.
type BinaryOp int8

const (
	Add BinaryOp = iota
	Subtract
	Multiply
	Divide
)

// String returns the operator's symbol.
func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
	}
}

// Name returns the operator's name, e.g. "Multiply".
func (op BinaryOp) Name() string {
	switch op {
	case Add:
		return "Add"
	case Subtract:
		return "Subtract"
	case Multiply:
		return "Multiply"
	case Divide:
		return "Divide"
	default:
		return op.String()
	}
}

// GoString returns the operator's qualified name, e.g. "flt.Multiply".
func (op BinaryOp) GoString() string {
	return "flt." + op.Name()
}

// Equal reports whether a and b have the same shape, the same operators, and
// numerically equal literals.
func Equal(a, b Expr) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case Number:
		b, ok := b.(Number)
		return ok && a.Value == b.Value
	case Unary:
		b, ok := b.(Unary)
		return ok && a.Op == b.Op && Equal(a.Operand, b.Operand)
	case Binary:
		b, ok := b.(Binary)
		return ok && a.Op == b.Op && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case Group:
		b, ok := b.(Group)
		return ok && Equal(a.Inner, b.Inner)
	default:
		panic("flt: invalid node type " + repr.String(a))
	}
}

// Walk calls fn on e and then on each of its descendants in pre-order. If fn
// returns false, Walk does not visit the children of that node.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	switch e := e.(type) {
	case Number:
	case Unary:
		Walk(e.Operand, fn)
	case Binary:
		Walk(e.Left, fn)
		Walk(e.Right, fn)
	case Group:
		Walk(e.Inner, fn)
	default:
		panic("flt: invalid node type " + repr.String(e))
	}
}

// Depth returns the number of nodes on the longest path from e to a leaf.
func Depth(e Expr) int {
	switch e := e.(type) {
	case nil:
		return 0
	case Number:
		return 1
	case Unary:
		return 1 + Depth(e.Operand)
	case Binary:
		l, r := Depth(e.Left), Depth(e.Right)
		if r > l {
			l = r
		}
		return 1 + l
	case Group:
		return 1 + Depth(e.Inner)
	default:
		panic("flt: invalid node type " + repr.String(e))
	}
}

// Debug formats a tree with one node per line, naming the type of each node
// and showing every field, zero or not. The result is deterministic.
func Debug(e Expr) string {
	return repr.String(e, repr.Indent("  "), repr.OmitEmpty(false))
}

func (n Number) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n Unary) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n Binary) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n Group) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n Number) fmt(b *strings.Builder) {
	if math.IsInf(n.Value, 0) {
		// A literal too large for float64 parses to infinity.
		if n.Value < 0 {
			b.WriteByte('-')
		}
		b.WriteByte('1')
		b.WriteString(strings.Repeat("0", 309))
		return
	}
	// Literals have no exponent syntax, so never use one.
	b.WriteString(strconv.FormatFloat(n.Value, 'f', -1, 64))
}

func (n Unary) fmt(b *strings.Builder) {
	b.WriteString(n.Op.String())
	// Only unary and primary terms can follow a prefix operator without
	// brackets. A negative literal also needs them, or it would read as a
	// second negation.
	fmtoperand(b, n.Operand, func(e Expr) bool {
		switch e := e.(type) {
		case Number:
			return math.Signbit(e.Value)
		case Binary:
			return true
		}
		return false
	})
}

func (n Binary) fmt(b *strings.Builder) {
	prec := binop(n.Op).prec
	fmtoperand(b, n.Left, func(e Expr) bool {
		l, ok := e.(Binary)
		return ok && binop(l.Op).prec < prec
	})
	b.WriteByte(' ')
	b.WriteString(n.Op.String())
	b.WriteByte(' ')
	// Operators are left-associative, so a right operand of equal precedence
	// needs brackets too.
	fmtoperand(b, n.Right, func(e Expr) bool {
		r, ok := e.(Binary)
		return ok && binop(r.Op).prec <= prec
	})
}

func (n Group) fmt(b *strings.Builder) {
	b.WriteByte('(')
	fmtnode(b, n.Inner)
	b.WriteByte(')')
}

// fmtoperand writes an operand, wrapping it in brackets if wrap reports that
// the tree shape needs them. Parsed trees carry explicit Group nodes wherever
// brackets are needed, so this only matters for trees built by hand.
func fmtoperand(b *strings.Builder, e Expr, wrap func(Expr) bool) {
	if wrap(e) {
		b.WriteByte('(')
		fmtnode(b, e)
		b.WriteByte(')')
		return
	}
	fmtnode(b, e)
}

func fmtnode(b *strings.Builder, e Expr) {
	switch e := e.(type) {
	case Number:
		e.fmt(b)
	case Unary:
		e.fmt(b)
	case Binary:
		e.fmt(b)
	case Group:
		e.fmt(b)
	case nil:
		// Invalid trees use invalid characters.
		b.WriteByte('$')
	default:
		panic("flt: invalid node type " + repr.String(e) + " after writing " + b.String())
	}
}
