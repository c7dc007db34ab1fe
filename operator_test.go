package rpn

import "testing"

func TestLookup(t *testing.T) {
	cases := []struct {
		sym  rune
		argc int
		prec int
	}{
		{'/', 2, 4},
		{'*', 2, 3},
		{'+', 2, 2},
		{'-', 2, 1},
	}
	for _, c := range cases {
		op, ok := Lookup(c.sym)
		if !ok {
			t.Errorf("no operator for %q", c.sym)
			continue
		}
		if op.Symbol != c.sym || op.Argc != c.argc || op.Precedence != c.prec {
			t.Errorf("%q: want argc %d precedence %d, got %+v", c.sym, c.argc, c.prec, op)
		}
	}
	for _, r := range "^%()., x0#\x00" {
		if op, ok := Lookup(r); ok {
			t.Errorf("%q: unexpected operator %+v", r, op)
		}
	}
}

func TestOperatorsSorted(t *testing.T) {
	for i := 1; i < len(operators); i++ {
		if operators[i-1].Symbol >= operators[i].Symbol {
			t.Errorf("operator table out of order at %d: %q before %q", i, operators[i-1].Symbol, operators[i].Symbol)
		}
	}
	if len(Operators) != len(operators) {
		t.Fatalf("Operators has %d symbols, table has %d", len(Operators), len(operators))
	}
	for i, r := range Operators {
		if operators[i].Symbol != r {
			t.Errorf("Operators[%d] is %q, table has %q", i, r, operators[i].Symbol)
		}
	}
}

func TestResolve(t *testing.T) {
	// Operands are in pop order: the second is the left-hand side.
	cases := []struct {
		sym      rune
		operands []float64
		r        float64
	}{
		{'/', []float64{2, 8}, 4},
		{'*', []float64{2, 8}, 16},
		{'+', []float64{2, 8}, 10},
		{'-', []float64{2, 8}, 6},
		{'-', []float64{8, 2}, -6},
		{'/', []float64{8, 2}, 0.25},
	}
	for _, c := range cases {
		op, _ := Lookup(c.sym)
		if r := op.Resolve(c.operands); r != c.r {
			t.Errorf("%v %q: want %g, got %g", c.operands, c.sym, c.r, r)
		}
	}
}

func TestUnary(t *testing.T) {
	neg, _ := Lookup('-')
	u := neg.Unary()
	if !u.IsUnary() || u.Argc != 1 || u.Precedence != UnaryPrecedence {
		t.Errorf("wrong unary operator: %+v", u)
	}
	if neg.IsUnary() {
		t.Errorf("Unary modified its receiver: %+v", neg)
	}
	if again, _ := Lookup('-'); again.Argc != 2 || again.Precedence != 1 {
		t.Errorf("Unary modified the operator table: %+v", again)
	}
	if r := u.Resolve([]float64{3}); r != -3 {
		t.Errorf("unary - 3: want -3, got %g", r)
	}
	plus, _ := Lookup('+')
	if r := plus.Unary().Resolve([]float64{3}); r != 3 {
		t.Errorf("unary + 3: want 3, got %g", r)
	}
	for _, op := range operators {
		if UnaryPrecedence <= op.Precedence {
			t.Errorf("unary precedence %d does not exceed %v precedence %d", UnaryPrecedence, op, op.Precedence)
		}
	}
}

func TestResolvePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic resolving with too few operands")
		}
	}()
	op, _ := Lookup('*')
	op.Resolve([]float64{1})
}
