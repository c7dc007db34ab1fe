package rpn

import "strconv"

// Operators contains the runes which are considered to be operators.
const Operators = "*+-/"

// UnaryPrecedence is the precedence given to + and - in unary position. It is
// higher than that of any binary operator.
const UnaryPrecedence = 255

// Operator is an arithmetic operator. Operators are values; the copies
// returned by Lookup may be modified without affecting the operator table.
type Operator struct {
	// Symbol is the rune that denotes the operator.
	Symbol rune
	// Argc is the number of operands the operator consumes.
	Argc int
	// Precedence is the binding strength of the operator. Higher binds
	// tighter.
	Precedence int

	reduce func(a, b float64) float64
}

// operators is the operator table, sorted by symbol.
var operators = [...]Operator{
	{Symbol: '*', Argc: 2, Precedence: 3, reduce: func(a, b float64) float64 { return a * b }},
	{Symbol: '+', Argc: 2, Precedence: 2, reduce: func(a, b float64) float64 { return a + b }},
	{Symbol: '-', Argc: 2, Precedence: 1, reduce: func(a, b float64) float64 { return a - b }},
	{Symbol: '/', Argc: 2, Precedence: 4, reduce: func(a, b float64) float64 { return a / b }},
}

// Lookup finds the operator denoted by r. The result is a copy of the table
// entry.
func Lookup(r rune) (Operator, bool) {
	// Binary search by hand. The table is four entries; package sort would
	// cost a closure per lookup for nothing.
	lo, hi := 0, len(operators)
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		switch s := operators[m].Symbol; {
		case s == r:
			return operators[m], true
		case s < r:
			lo = m + 1
		default:
			hi = m
		}
	}
	return Operator{}, false
}

// Unary returns a copy of op in unary position: one operand, binding tighter
// than any binary operator.
func (op Operator) Unary() Operator {
	op.Argc = 1
	op.Precedence = UnaryPrecedence
	return op
}

// IsUnary returns whether op takes a single operand.
func (op Operator) IsUnary() bool {
	return op.Argc == 1
}

// Resolve applies the operator to its operands. operands are in pop order, so
// operands[0] is the most recently pushed value. A binary operator computes
// operands[1] op operands[0]; for the postfix "a b /", that is a / b.
// Unary + is the identity and unary - negates. Panics if len(operands) is
// less than op.Argc.
func (op Operator) Resolve(operands []float64) float64 {
	if len(operands) < op.Argc {
		panic("rpn: " + strconv.Itoa(len(operands)) + " operands for " + op.String())
	}
	if op.IsUnary() {
		if op.Symbol == '-' {
			return -operands[0]
		}
		return operands[0]
	}
	return op.reduce(operands[1], operands[0])
}

func (op Operator) String() string {
	if op.Symbol == 0 {
		return "<nil>"
	}
	return string(op.Symbol)
}
