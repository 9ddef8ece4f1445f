// Package arith implements a float64 calculator for single-line arithmetic
// expressions.
//
// Expressions use + - * / with the usual precedence, parentheses, and unary
// signs. "-2*-(3+1)" is 8. "8/2/2" is 2, since operators of the same
// precedence group to the left. Numbers are decimal, with an optional point
// and no exponent: "1", "1.5", ".5", and "5." are all numbers.
//
// Evaluation happens during parsing, so there is no syntax tree. Errors
// resulting from bad input implement InputError, which reports the column of
// the token that caused them.
//
package arith
