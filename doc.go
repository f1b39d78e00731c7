// Package evaluator implements a calculator for arithmetic expressions over
// float64.
//
// An expression is made of decimal numbers, the binary operators + - * / ^,
// and parentheses. "^" is exponentiation and associates to the right, so
// "2^3^2" is "2^(3^2)". The others associate to the left with the usual
// precedence. A minus sign at the start of an expression or after an operator
// or open parenthesis is unary: "-3", "4*-2", and "-(2+3)" all work. There is
// no unary plus.
//
// Evaluation happens in three stages which are exported individually:
// Tokenize scans the text, ToPostfix reorders the tokens with the
// shunting-yard algorithm, and Postfix.Eval computes the result on a value
// stack. EvalString does all three.
//
// Arithmetic follows IEEE-754, so "1/0" is +Inf and "0/0" is NaN. Errors are
// only for malformed input, and all of them implement InputError.
//
package evaluator
