package flt

import "strconv"

// Expr = Sum
// Sum = Product { ('+' | '-') Product }
// Product = Unary { ('*' | '/') Unary }
// Unary = '-' Unary | Primary
// Primary = num | '(' Sum ')'

// Parse parses an expression from the start of src. The result is the
// expression and the text following it, less any leading whitespace. The rest
// of src is not examined beyond the token after the expression, so it is up to
// the caller to decide whether trailing text is an error.
//
// If parsing fails, the error is an *Error giving the kind of failure and its
// byte offset in src. There is no partial result.
//
// Parse does not retain src or any state between calls. It is safe to call
// concurrently.
func Parse(src string, opts ...ParseOption) (Expr, string, error) {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	in, n, err := parsesum(input{src: src}, &p, 0)
	if err != nil {
		return nil, "", err
	}
	return n, in.skipSpace().rest(), nil
}

// parsesum parses a left-associative chain of additions and subtractions.
// depth is the nesting depth of the sum.
func parsesum(in input, p *parsectx, depth int) (input, Expr, error) {
	in, n, err := parseproduct(in, p, depth)
	if err != nil {
		return in, nil, err
	}
	for {
		op, rest, ok, err := nextop(in, precsum)
		if err != nil {
			return in, nil, err
		}
		if !ok {
			return in, n, nil
		}
		rest, rhs, err := parseproduct(rest, p, depth)
		if err != nil {
			return in, nil, err
		}
		n = Binary{Op: op, Left: n, Right: rhs}
		in = rest
	}
}

// parseproduct parses a left-associative chain of multiplications and
// divisions.
func parseproduct(in input, p *parsectx, depth int) (input, Expr, error) {
	in, n, err := parseunary(in, p, depth)
	if err != nil {
		return in, nil, err
	}
	for {
		op, rest, ok, err := nextop(in, precproduct)
		if err != nil {
			return in, nil, err
		}
		if !ok {
			return in, n, nil
		}
		rest, rhs, err := parseunary(rest, p, depth)
		if err != nil {
			return in, nil, err
		}
		n = Binary{Op: op, Left: n, Right: rhs}
		in = rest
	}
}

// parseunary parses any number of prefix operators applied to a primary term.
func parseunary(in input, p *parsectx, depth int) (input, Expr, error) {
	tok, rest, err := next(in)
	if err != nil {
		return in, nil, err
	}
	if tok.kind != tokenOp {
		return parseprimary(in, p, depth)
	}
	op, ok := unop(tok.text)
	if !ok {
		return in, nil, unexpected(tok, "a term")
	}
	if err := p.descend(tok, depth+1); err != nil {
		return in, nil, err
	}
	// -x is right-associative, so the operand is another unary term.
	rest, operand, err := parseunary(rest, p, depth+1)
	if err != nil {
		return in, nil, err
	}
	return rest, Unary{Op: op, Operand: operand}, nil
}

// parseprimary parses a number or a bracketed subexpression.
func parseprimary(in input, p *parsectx, depth int) (input, Expr, error) {
	tok, rest, err := next(in)
	if err != nil {
		return in, nil, err
	}
	switch tok.kind {
	case tokenNum:
		return rest, Number{Value: number(tok)}, nil
	case tokenOpen:
		if err := p.descend(tok, depth+1); err != nil {
			return in, nil, err
		}
		rest, inner, err := parsesum(rest, p, depth+1)
		if err != nil {
			return in, nil, err
		}
		end, after, err := next(rest)
		if err != nil {
			return in, nil, err
		}
		if end.kind != tokenClose {
			return in, nil, &Error{Kind: UnclosedGroup, Pos: end.pos, Text: end.text, Open: tok.pos}
		}
		return after, Group{Inner: inner}, nil
	default:
		return in, nil, unexpected(tok, "a number or (")
	}
}

// nextop scans the token following a term. If it is a binary operator of the
// given precedence, the result is that operator and the input following it,
// with ok true. Tokens that can follow a complete expression, i.e. the end of
// input, a close bracket, and any text that isn't part of the expression
// language, yield ok false. A token that can only be a mistaken operator is an
// error.
func nextop(in input, prec int8) (BinaryOp, input, bool, error) {
	tok, rest, err := next(in)
	if err != nil {
		// Only malformed numbers fail to lex. A number in operator position
		// ends the expression, so whether it is well-formed is the caller's
		// business.
		return 0, in, false, nil
	}
	switch tok.kind {
	case tokenOp:
		o := binops[tok.text]
		if o.prec != prec {
			return 0, in, false, nil
		}
		return o.op, rest, true, nil
	case tokenInvalid:
		return 0, in, false, unexpected(tok, "an operator")
	}
	// Anything else that can follow a term ends the expression.
	return 0, in, false, nil
}

// descend checks whether a new nesting level is allowed.
func (p *parsectx) descend(tok lexToken, depth int) error {
	if p.maxdepth > 0 && depth > p.maxdepth {
		return &Error{
			Kind: TooDeep,
			Pos:  tok.pos,
			Text: tok.text,
			Open: -1,
			why:  "limit " + strconv.Itoa(p.maxdepth),
		}
	}
	return nil
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// op is the operator to use when this one is selected.
	op BinaryOp
}

const (
	precsum     int8 = 1
	precproduct int8 = 5
)

var binops = map[string]operator{
	"+": {precsum, Add},
	"-": {precsum, Subtract},
	"*": {precproduct, Multiply},
	"/": {precproduct, Divide},
}

// binop gets the operator information for a binary operator. Unknown
// operators bind least.
func binop(op BinaryOp) operator {
	switch op {
	case Add, Subtract:
		return operator{precsum, op}
	case Multiply, Divide:
		return operator{precproduct, op}
	default:
		return operator{0, op}
	}
}

// unop gets a unary operator for a token string.
func unop(text string) (UnaryOp, bool) {
	switch text {
	case "-":
		return Negate, true
	default:
		return 0, false
	}
}
