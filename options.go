package rpn

import "github.com/rs/zerolog"

// Option is an option for converting or evaluating expressions.
type Option interface {
	apply(*config)
}

type (
	logopt    zerolog.Logger
	strictopt bool
)

// config holds the settings for one conversion or evaluation.
type config struct {
	log zerolog.Logger
	// strict makes an open parenthesis left on the holding stack at the end
	// of input a conversion error.
	strict bool
}

func newConfig(opts []Option) config {
	c := config{log: zerolog.Nop()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(&c)
	}
	return c
}

// Logger sets the logger for conversion and evaluation. The converter logs
// each postfix queue at debug level, and the evaluator logs each reduction at
// trace level. The default discards everything.
func Logger(log zerolog.Logger) Option {
	return logopt(log)
}

func (o logopt) apply(c *config) {
	c.log = zerolog.Logger(o)
}

// StrictParens makes Convert reject an open parenthesis that is never closed
// with MismatchedParenthesis. Without it, the parenthesis is left in the
// postfix queue and evaluation fails with UnexpectedToken.
func StrictParens() Option {
	return strictopt(true)
}

func (o strictopt) apply(c *config) {
	c.strict = bool(o)
}
