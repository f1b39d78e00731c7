package evaluator

import "strconv"

// CharError is an error indicating a character that is not part of the
// expression grammar. It implements InputError.
type CharError struct {
	// Col is the position of the character.
	Col int
	// Char is the offending character.
	Char rune
}

func (err *CharError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char))
}

func (err *CharError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a malformed numeric literal. It
// implements InputError.
type NumberError struct {
	// Col is the position of the start of the literal.
	Col int
	// Text is the literal as scanned, including any folded sign.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Open is true if the unmatched parenthesis is an open one.
	Open bool
}

func (err *BracketError) Error() string {
	if err.Open {
		return errpos(err.Col, "open bracket ( with no close bracket")
	}
	return errpos(err.Col, "close bracket ) with no open bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// ExpressionError is an error indicating an operator without enough operands
// or operands without an operator to join them. It implements InputError.
type ExpressionError struct {
	// Col is the position of the operator missing an operand, the position of
	// the first term of an expression that did not reduce to one value, or 0
	// if the expression is empty.
	Col int
	// Op is the operator missing an operand. It is zero if the error is due to
	// the number of values left at the end of evaluation.
	Op Op
	// Left is the number of values left at the end of evaluation, if Op is 0.
	Left int
}

func (err *ExpressionError) Error() string {
	switch {
	case err.Op != 0:
		return errpos(err.Col, "missing operand for "+strconv.Quote(err.Op.String()))
	case err.Left == 0:
		return errpos(err.Col, "no expression")
	default:
		return errpos(err.Col, "missing operator between "+strconv.Itoa(err.Left)+" terms")
	}
}

func (err *ExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based rune column of the
	// token that caused the error.
	Pos() int
}

var (
	_ InputError = (*CharError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*ExpressionError)(nil)
)
