package rpn

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Expr is an expression converted to postfix order, ready to evaluate.
type Expr struct {
	tokens []Token
}

// converter scans infix input and reorders it into postfix in the same pass.
type converter struct {
	src io.RuneScanner
	// buf holds the digits of the numeral being scanned, and bufcol is the
	// column where it started.
	buf    strings.Builder
	bufcol int
	// col is the number of runes read so far.
	col int
	// holding is the operator stack; its top is the last element.
	holding []Token
	output  []Token
	// unary is whether a + or - at this point is in unary position: at the
	// start of input, after an operator, or after an open parenthesis.
	unary  bool
	strict bool
}

// Convert scans an infix expression and converts it to postfix order. The
// input is read until EOF.
func Convert(src io.RuneScanner, opts ...Option) (*Expr, error) {
	cfg := newConfig(opts)
	c := converter{src: src, unary: true, strict: cfg.strict}
	if err := c.scan(); err != nil {
		cfg.log.Debug().Err(err).Msg("conversion failed")
		return nil, err
	}
	ex := &Expr{tokens: c.output}
	cfg.log.Debug().Stringer("postfix", ex).Int("tokens", len(ex.tokens)).Msg("converted")
	return ex, nil
}

// ConvertString is a shortcut to convert a string expression.
func ConvertString(src string, opts ...Option) (*Expr, error) {
	return Convert(strings.NewReader(src), opts...)
}

// readRune reads a rune from the src and updates the column count.
func (c *converter) readRune() (rune, error) {
	r, sz, err := c.src.ReadRune()
	if sz > 0 {
		c.col++
	}
	return r, err
}

func (c *converter) scan() error {
	for {
		r, err := c.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		switch {
		case '0' <= r && r <= '9':
			c.digit(r)
			continue
		case r == '.':
			if strings.ContainsRune(c.buf.String(), '.') {
				return &Error{Kind: DuplicateDecimal, Col: c.col, Text: c.buf.String() + "."}
			}
			c.digit(r)
			continue
		}
		if err := c.flush(); err != nil {
			return err
		}
		switch {
		case r == '(':
			c.holding = append(c.holding, Token{Kind: TokenOpen, Col: c.col})
			c.unary = true
		case r == ')':
			if err := c.close(); err != nil {
				return err
			}
		case unicode.IsSpace(r):
			// do nothing
		default:
			op, ok := Lookup(r)
			if !ok {
				return &Error{Kind: InvalidCharacter, Col: c.col, Text: string(r)}
			}
			c.operator(op)
		}
	}
	if err := c.flush(); err != nil {
		return err
	}
	return c.drain()
}

// digit adds a rune to the pending numeral.
func (c *converter) digit(r rune) {
	if c.buf.Len() == 0 {
		c.bufcol = c.col
	}
	c.buf.WriteRune(r)
}

// flush emits the pending numeral, if there is one.
func (c *converter) flush() error {
	if c.buf.Len() == 0 {
		return nil
	}
	s := c.buf.String()
	c.buf.Reset()
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// Out of range numerals are ±Inf or 0, which ParseFloat already
		// gives us. Anything else is malformed, in practice a lone ".".
		return &Error{Kind: NumberParseError, Col: c.bufcol, Text: s, err: err}
	}
	c.output = append(c.output, Token{Kind: TokenNum, Value: v, Col: c.bufcol})
	c.unary = false
	return nil
}

// close handles a close parenthesis by moving operators to the output until
// the matching open parenthesis, which is discarded.
func (c *converter) close() error {
	for len(c.holding) > 0 {
		top := c.holding[len(c.holding)-1]
		c.holding = c.holding[:len(c.holding)-1]
		if top.Kind == TokenOpen {
			c.unary = false
			return nil
		}
		c.output = append(c.output, top)
	}
	return &Error{Kind: MismatchedParenthesis, Col: c.col, Text: ")"}
}

// operator moves operators that bind at least as tightly as op from the
// holding stack to the output, then pushes op.
func (c *converter) operator(op Operator) {
	if c.unary && (op.Symbol == '+' || op.Symbol == '-') {
		op = op.Unary()
	}
	for len(c.holding) > 0 {
		top := c.holding[len(c.holding)-1]
		if top.Kind != TokenOp || top.Op.Precedence < op.Precedence {
			break
		}
		c.output = append(c.output, top)
		c.holding = c.holding[:len(c.holding)-1]
	}
	c.holding = append(c.holding, Token{Kind: TokenOp, Op: op, Col: c.col})
	c.unary = true
}

// drain moves everything left on the holding stack to the output. Unclosed
// open parentheses go along with the operators unless the converter is
// strict.
func (c *converter) drain() error {
	for len(c.holding) > 0 {
		top := c.holding[len(c.holding)-1]
		c.holding = c.holding[:len(c.holding)-1]
		if top.Kind == TokenOpen && c.strict {
			return &Error{Kind: MismatchedParenthesis, Col: top.Col, Text: "("}
		}
		c.output = append(c.output, top)
	}
	return nil
}

// Tokens returns a copy of the postfix queue.
func (e *Expr) Tokens() []Token {
	return append(([]Token)(nil), e.tokens...)
}

// String renders the postfix queue with tokens separated by spaces.
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}
