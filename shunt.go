package evaluator

import "strings"

// Postfix is an expression in postfix order, containing only number and
// operator tokens.
type Postfix []Token

// ToPostfix reorders infix tokens into postfix order using the shunting-yard
// algorithm. Parentheses are consumed; the only error is a *BracketError.
// ToPostfix does not check that operators have operands; Eval does.
func ToPostfix(tokens []Token) (Postfix, error) {
	out := make(Postfix, 0, len(tokens))
	var stack []Token
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNum:
			out = append(out, tok)
		case TokenOp:
			p := tok.Op.info()
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != TokenOp || !p.pops(top.Op.info()) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case TokenOpen:
			stack = append(stack, tok)
		case TokenClose:
			for {
				if len(stack) == 0 {
					return nil, &BracketError{Col: tok.Col}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TokenOpen {
					break
				}
				out = append(out, top)
			}
		default:
			panic("evaluator: unknown token: " + tok.String())
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind != TokenOp {
			return nil, &BracketError{Col: top.Col, Open: true}
		}
		out = append(out, top)
	}
	return out, nil
}

// String formats the postfix expression as space-separated terms, with
// negation written as neg.
func (p Postfix) String() string {
	var b strings.Builder
	for i, tok := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch tok.Kind {
		case TokenNum:
			b.WriteString(formatNum(tok.Num))
		case TokenOp:
			b.WriteString(tok.Op.String())
		default:
			panic("evaluator: " + tok.String() + " in postfix expression")
		}
	}
	return b.String()
}
