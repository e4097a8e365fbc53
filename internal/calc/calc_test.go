package calc

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/govalues/strdecimal"
)

func newEvaluator(t *testing.T, opts Options) *Evaluator {
	t.Helper()
	e, err := New(zerolog.Nop(), opts)
	if err != nil {
		t.Fatalf("New(%+v) failed: %v", opts, err)
	}
	return e
}

func TestNew(t *testing.T) {
	tests := map[string]struct {
		precision string
		want      error
	}{
		"not an integer": {"abc", strdecimal.ErrPrecisionNotInteger},
		"negative":       {"-1", strdecimal.ErrPrecisionNegative},
		"out of range":   {"11", strdecimal.ErrPrecisionRange},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New(zerolog.Nop(), Options{Precision: tt.precision})
			if !errors.Is(err, tt.want) {
				t.Errorf("New(%q) = %v, want %v", tt.precision, err, tt.want)
			}
		})
	}
}

func TestEvaluator_Eval(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			opts Options
			expr string
			want string
		}{
			{Options{}, "5", "5"},
			{Options{}, "* 10 + 1.23 4.56", "57.90"},
			{Options{}, "+ 0.1 0.2", "0.3"},
			{Options{}, "- 1 2", "-1"},
			{Options{}, "* 0.1 -0.15", "-0.015"},
			{Options{}, "/ 1 3", "0.3333333333"},
			{Options{Precision: "3"}, "/ 5 0.9", "5.556"},
			{Options{Precision: "2.5"}, "/ 1 8", "0.13"},
			{Options{}, "% 5 15", "0.75"},
			{Options{}, "% - 0 5 20", "-1"},
			{Options{}, "+ euro 1", "NaN"},
			{Options{}, "  +\t1   2 ", "3"},
		}
		for _, tt := range tests {
			e := newEvaluator(t, tt.opts)
			got, err := e.Eval(tt.expr)
			if err != nil {
				t.Errorf("Eval(%q) failed: %v", tt.expr, err)
				continue
			}
			if diff := cmp.Diff(tt.want, got.String()); diff != "" {
				t.Errorf("Eval(%q) mismatch (-want +got):\n%s", tt.expr, diff)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			opts Options
			expr string
			want error
		}{
			"empty":              {Options{}, "", ErrNoTokens},
			"blank":              {Options{}, "  ", ErrNoTokens},
			"missing operand":    {Options{}, "+ 1", ErrNotEnoughOperands},
			"missing operator":   {Options{}, "1 2", ErrTooManyOperands},
			"division by zero":   {Options{}, "/ 1 0", strdecimal.ErrDivisionByZero},
			"invalid percentage": {Options{}, "% 5 -1", strdecimal.ErrInvalidPercentage},
			"strict":             {Options{Strict: true}, "+ euro 1", ErrNotANumber},
			"strict suffix":      {Options{Strict: true}, "+ 12euros 1", ErrNotANumber},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				e := newEvaluator(t, tt.opts)
				_, err := e.Eval(tt.expr)
				if !errors.Is(err, tt.want) {
					t.Errorf("Eval(%q) = %v, want %v", tt.expr, err, tt.want)
				}
			})
		}
	})
}

func TestEvaluator_Apply(t *testing.T) {
	e := newEvaluator(t, Options{})
	_, err := e.Apply("^", strdecimal.New(2), strdecimal.New(3))
	if !errors.Is(err, ErrUnknownOperator) {
		t.Errorf("Apply(\"^\", 2, 3) = %v, want %v", err, ErrUnknownOperator)
	}
}

func TestEvaluator_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	e, err := New(logger, Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if _, err := e.Eval("+ 1 2"); err != nil {
		t.Fatalf("Eval() failed: %v", err)
	}
	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		`{"level":"debug","op":"+","left":"1","right":"2","result":"3","message":"applied"}`,
		`{"level":"debug","expr":"+ 1 2","result":"3","message":"evaluated"}`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluator_Round(t *testing.T) {
	tests := []struct {
		opts Options
		d    string
		want string
	}{
		{Options{}, "2.5", "3"},
		{Options{}, "-2.5", "-3"},
		{Options{Precision: "2"}, "0.455", "0.46"},
		{Options{Precision: "2"}, "5", "5.00"},
		{Options{Precision: "2"}, "euro", "NaN"},
	}
	for _, tt := range tests {
		e := newEvaluator(t, tt.opts)
		got := e.Round(strdecimal.New(tt.d))
		if diff := cmp.Diff(tt.want, got.String()); diff != "" {
			t.Errorf("Round(%q) mismatch (-want +got):\n%s", tt.d, diff)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want Comparison
	}{
		{"5", "5.00", Comparison{Eq: true, Lte: true, Gte: true}},
		{"5", "5.01", Comparison{Lt: true, Lte: true}},
		{"5", "4.9", Comparison{Gt: true, Gte: true}},
		{"euro", "5", Comparison{}},
	}
	for _, tt := range tests {
		got := Compare(strdecimal.New(tt.a), strdecimal.New(tt.b))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Compare(%q, %q) mismatch (-want +got):\n%s", tt.a, tt.b, diff)
		}
	}
}
