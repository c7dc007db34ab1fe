package rpn

import "strconv"

// ErrorKind classifies an evaluation failure. Each kind is itself an error, so
// errors.Is(err, DuplicateDecimal) reports whether err is of that kind.
type ErrorKind int8

const (
	_ ErrorKind = iota
	// InvalidCharacter is a rune that is not a digit, decimal point,
	// parenthesis, whitespace, or operator.
	InvalidCharacter
	// UnexpectedToken is an open parenthesis that reached evaluation because
	// it was never closed.
	UnexpectedToken
	// DuplicateDecimal is a numeral with two decimal points.
	DuplicateDecimal
	// NumberParseError is a numeral that does not convert to a float.
	NumberParseError
	// MismatchedParenthesis is a close parenthesis with no open parenthesis
	// to match it.
	MismatchedParenthesis
	// NotEnoughArguments is an operator with fewer operands available than
	// it consumes.
	NotEnoughArguments
	// NoResult is an expression that reduces to nothing, e.g. empty input.
	NoResult
)

var kindmsgs = [...]string{
	InvalidCharacter:      "invalid character",
	UnexpectedToken:       "unexpected token",
	DuplicateDecimal:      "duplicate decimal point",
	NumberParseError:      "invalid number",
	MismatchedParenthesis: "mismatched parenthesis",
	NotEnoughArguments:    "not enough arguments",
	NoResult:              "no result",
}

func (k ErrorKind) Error() string {
	if k <= 0 || int(k) >= len(kindmsgs) {
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindmsgs[k]
}

// Error is an error from converting or evaluating an expression. It
// implements InputError and unwraps to its Kind, as well as to the strconv
// error behind a NumberParseError.
type Error struct {
	// Kind is the class of the error.
	Kind ErrorKind
	// Col is the rune column, starting at 1, of the token or character that
	// caused the error. It is 0 for errors not tied to a position, like
	// NoResult on empty input.
	Col int
	// Text is the offending input text, if any.
	Text string
	// Token is the offending token for UnexpectedToken and
	// NotEnoughArguments.
	Token Token

	err error
}

func (err *Error) Error() string {
	msg := err.Kind.Error()
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	if err.Col <= 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

// Pos returns the column of the error.
func (err *Error) Pos() int {
	return err.Col
}

// Unwrap returns the error kind and any underlying cause.
func (err *Error) Unwrap() []error {
	if err.err == nil {
		return []error{err.Kind}
	}
	return []error{err.Kind, err.err}
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var _ InputError = (*Error)(nil)
