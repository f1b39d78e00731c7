package evaluator

import (
	"strconv"
)

// Token is a lexical token of an arithmetic expression.
type Token struct {
	// Kind is the variant of the token.
	Kind TokenKind
	// Op is the operator of a TokenOp token.
	Op Op
	// Num is the value of a TokenNum token.
	Num float64
	// Col is the 1-based rune column at which the token starts.
	Col int
}

func (t Token) String() string {
	var s string
	switch t.Kind {
	case TokenNum:
		s = formatNum(t.Num)
	case TokenOp:
		s = t.Op.String()
	case TokenOpen:
		s = "("
	case TokenClose:
		s = ")"
	}
	return t.Kind.String() + ":" + s + "@" + strconv.Itoa(t.Col)
}

// TokenKind is the variant of a Token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNum is a numeric literal, possibly negative.
	TokenNum
	// TokenOp is an operator.
	TokenOp
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Op is an arithmetic operator.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
	OpPow Op = '^'
	// OpNeg is prefix negation. The lexer produces it for a unary minus that
	// does not begin a numeric literal, as in -(x).
	OpNeg Op = '~'
)

// Operators contains the runes which the lexer accepts as operators.
const Operators = "+-*/^"

func (op Op) String() string {
	if op == OpNeg {
		return "neg"
	}
	return string(rune(op))
}

// operator is the constant metadata for an Op.
type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// arity is the number of operands.
	arity int8
}

// info gets the metadata for an operator. Panics if op is not an operator.
func (op Op) info() operator {
	switch op {
	case OpAdd, OpSub:
		return operator{1, false, 2}
	case OpMul, OpDiv:
		return operator{2, false, 2}
	case OpPow:
		return operator{3, true, 2}
	case OpNeg:
		return operator{3, true, 1}
	default:
		panic("evaluator: invalid operator " + strconv.QuoteRune(rune(op)))
	}
}

// Prec returns the precedence of the operator. Higher binds more tightly.
func (op Op) Prec() int {
	return int(op.info().prec)
}

// RightAssoc returns whether the operator is right-associative.
func (op Op) RightAssoc() bool {
	return op.info().right
}

// Unary returns whether the operator is a prefix operator.
func (op Op) Unary() bool {
	return op.info().arity == 1
}

// pops reports whether top, an operator already on the stack, must be output
// before p is pushed.
func (p operator) pops(top operator) bool {
	if p.arity == 1 {
		// A prefix operator has no left operand to steal.
		return false
	}
	if p.right {
		return p.prec < top.prec
	}
	return p.prec <= top.prec
}
