package evaluator

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Eval evaluates the postfix expression. Arithmetic follows IEEE-754: division
// by zero gives an infinity or NaN rather than an error, as does a power
// outside the real domain. The only error is an *ExpressionError, when an
// operator is missing operands or the terms don't combine into one value.
func (p Postfix) Eval() (float64, error) {
	stack := make([]float64, 0, len(p)/2+1)
	for _, tok := range p {
		switch tok.Kind {
		case TokenNum:
			stack = append(stack, tok.Num)
		case TokenOp:
			if tok.Op == OpNeg {
				if len(stack) < 1 {
					return 0, &ExpressionError{Col: tok.Col, Op: tok.Op}
				}
				stack[len(stack)-1] = -stack[len(stack)-1]
				continue
			}
			if len(stack) < 2 {
				return 0, &ExpressionError{Col: tok.Col, Op: tok.Op}
			}
			r := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			l := &stack[len(stack)-1]
			*l = apply(tok.Op, *l, r)
		default:
			panic("evaluator: " + tok.String() + " in postfix expression")
		}
	}
	if len(stack) != 1 {
		col := 0
		if len(p) > 0 {
			col = p[0].Col
		}
		return 0, &ExpressionError{Col: col, Left: len(stack)}
	}
	return stack[0], nil
}

// apply computes a binary operation.
func apply(op Op, a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpPow:
		return math.Pow(a, b)
	default:
		panic("evaluator: invalid binary operator " + op.String())
	}
}

// Eval is a shortcut to scan, convert, and evaluate an expression.
func Eval(src io.RuneScanner) (float64, error) {
	toks, err := Lex(src)
	if err != nil {
		return 0, err
	}
	p, err := ToPostfix(toks)
	if err != nil {
		return 0, err
	}
	return p.Eval()
}

// EvalString is a shortcut to evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
