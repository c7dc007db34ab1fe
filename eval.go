package rpn

import (
	"io"
	"strings"
)

// Eval evaluates the postfix queue and returns the result. Each call uses its
// own operand stack, so evaluating the same Expr again gives the same result.
// Only the Logger option affects evaluation.
//
// If operands remain on the stack after the queue is exhausted, the result is
// the most recently pushed one.
func (e *Expr) Eval(opts ...Option) (float64, error) {
	cfg := newConfig(opts)
	log := cfg.log
	stack := make([]float64, 0, len(e.tokens))
	// Binary operators never need more than this.
	var buf [2]float64
	for _, tok := range e.tokens {
		switch tok.Kind {
		case TokenNum:
			stack = append(stack, tok.Value)
		case TokenOp:
			op := tok.Op
			if len(stack) < op.Argc {
				err := &Error{Kind: NotEnoughArguments, Col: tok.Col, Text: op.String(), Token: tok}
				log.Debug().Err(err).Int("have", len(stack)).Int("want", op.Argc).Msg("evaluation failed")
				return 0, err
			}
			switch {
			case op.IsUnary() && op.Symbol == '+':
				// identity
			case op.IsUnary() && op.Symbol == '-':
				stack[len(stack)-1] = -stack[len(stack)-1]
			default:
				invoc := buf[:0]
				for i := 0; i < op.Argc; i++ {
					invoc = append(invoc, stack[len(stack)-1])
					stack = stack[:len(stack)-1]
				}
				stack = append(stack, op.Resolve(invoc))
			}
			log.Trace().Stringer("op", op).Int("argc", op.Argc).Float64("top", stack[len(stack)-1]).Msg("reduced")
		case TokenOpen:
			err := &Error{Kind: UnexpectedToken, Col: tok.Col, Text: "(", Token: tok}
			log.Debug().Err(err).Msg("evaluation failed")
			return 0, err
		default:
			panic("rpn: invalid token kind " + tok.Kind.String())
		}
	}
	if len(stack) == 0 {
		return 0, &Error{Kind: NoResult}
	}
	return stack[len(stack)-1], nil
}

// Eval is a shortcut to convert an expression and return its result.
func Eval(src io.RuneScanner, opts ...Option) (float64, error) {
	ex, err := Convert(src, opts...)
	if err != nil {
		return 0, err
	}
	return ex.Eval(opts...)
}

// EvalString is a shortcut to convert and evaluate a string expression.
func EvalString(src string, opts ...Option) (float64, error) {
	return Eval(strings.NewReader(src), opts...)
}
