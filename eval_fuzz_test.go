package rpn_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/rpn"
)

func FuzzEval(f *testing.F) {
	f.Add("3 + 4 * 2")
	f.Add("(3 + 4) * 2")
	f.Add("2 - -3")
	f.Add("1 / 0")
	f.Add("((")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := rpn.EvalString(s)
		q, qerr := rpn.EvalString(s)
		if (err == nil) != (qerr == nil) {
			t.Fatalf("%q: inconsistent errors %v and %v", s, err, qerr)
		}
		if err != nil {
			if _, ok := err.(rpn.InputError); !ok {
				t.Errorf("%q: error %v is not an InputError", s, err)
			}
			return
		}
		if r != q && !(math.IsNaN(r) && math.IsNaN(q)) {
			t.Errorf("%q: inconsistent results %g and %g", s, r, q)
		}
	})
}
