package rpn

import "strconv"

// Token is an element of a postfix queue.
type Token struct {
	// Kind is the type of the token.
	Kind TokenKind
	// Value is the value of a TokenNum.
	Value float64
	// Op is the operator of a TokenOp, after unary adjustment.
	Op Operator
	// Col is the rune column, starting at 1, where the token began.
	Col int
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNum is a numeric literal.
	TokenNum
	// TokenOp is an operator.
	TokenOp
	// TokenOpen is an open parenthesis. It only appears in a postfix queue
	// when an open parenthesis was never closed.
	TokenOpen
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token
//go:generate go mod tidy

// String formats the token the way it appears in a postfix rendering.
func (t Token) String() string {
	switch t.Kind {
	case TokenNum:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	case TokenOp:
		return t.Op.String()
	case TokenOpen:
		return "("
	default:
		return t.Kind.String()
	}
}
