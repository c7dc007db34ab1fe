package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zephyrtronium/rpn"
)

// session evaluates expressions one line at a time.
type session struct {
	out    io.Writer
	log    zerolog.Logger
	cfg    Config
	opts   []rpn.Option
	prompt bool
}

func newSession(out io.Writer, log zerolog.Logger, cfg Config) *session {
	opts := []rpn.Option{rpn.Logger(log)}
	if cfg.Strict {
		opts = append(opts, rpn.StrictParens())
	}
	return &session{out: out, log: log, cfg: cfg, opts: opts}
}

// run reads and evaluates lines until EOF or the sentinel. A malformed
// expression is reported and does not end the session; a read error does.
func (s *session) run(in io.Reader) error {
	rd := bufio.NewReader(in)
	n := 0
	for {
		if s.prompt {
			fmt.Fprint(s.out, s.cfg.Prompt)
		}
		line, err := rd.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(s.out, "Error: reading input: %v\n", err)
			return err
		}
		if line == "" && err != nil {
			// EOF with nothing left on the line.
			if s.prompt {
				fmt.Fprintln(s.out)
			}
			s.log.Debug().Int("lines", n).Msg("end of input")
			return nil
		}
		text := strings.TrimRight(line, "\r\n")
		if text == s.cfg.Sentinel {
			s.log.Debug().Int("lines", n).Msg("sentinel")
			return nil
		}
		n++
		s.eval(text)
		if err != nil {
			s.log.Debug().Int("lines", n).Msg("end of input")
			return nil
		}
	}
}

// eval evaluates one expression and prints its result or error. The result
// reports whether evaluation succeeded.
func (s *session) eval(text string) bool {
	ex, err := rpn.ConvertString(text, s.opts...)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return false
	}
	if s.cfg.Echo {
		fmt.Fprintln(s.out, ex)
	}
	r, err := ex.Eval(s.opts...)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return false
	}
	fmt.Fprintf(s.out, "%s = ", text)
	fmt.Fprintf(s.out, s.cfg.Format+"\n", r)
	return true
}
