// Package rpn implements a double-precision floating-point calculator for
// infix arithmetic.
//
// Expressions use the four operators + - * /, parentheses, and unary + and -.
// "3 + 4 * 2" is 11, "(3 + 4) * 2" is 14, and "2 - -3" is 5.
//
// Each binary operator has its own precedence, from tightest to loosest
// / * + -, and equal precedences group left to right. That is not school
// arithmetic: / binds tighter than *, and + binds tighter than -, so
// "1 - 2 + 3" is 1 - (2 + 3) = -4. Parenthesize to get (1 - 2) + 3. Unary
// operators bind tighter than all of them.
//
// Division by zero follows floating-point rules, so "1 / 0" is +Inf rather
// than an error.
//
// Conversion and evaluation are separate steps. Convert scans the input once,
// reordering it into postfix (reverse Polish) order with the shunting-yard
// algorithm, and Eval reduces the postfix queue on an operand stack. EvalString
// does both.
//
package rpn
