// Package calc evaluates arithmetic expressions over decimals written in
// prefix (Polish) notation, such as "* 10 + 1.23 4.56".
package calc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/govalues/strdecimal"
)

var (
	ErrNoTokens          = errors.New("no tokens")
	ErrNotEnoughOperands = errors.New("not enough operands")
	ErrTooManyOperands   = errors.New("too many operands")
	ErrNotANumber        = errors.New("operand is not a number")
	ErrUnknownOperator   = errors.New("unknown operator")
)

// Operators lists the binary operators understood by [Evaluator.Eval].
// "%" takes a percentage of its first operand: "% 5 20" is 1.
var Operators = []string{"+", "-", "*", "/", "%"}

func isOperator(token string) bool {
	for _, op := range Operators {
		if token == op {
			return true
		}
	}
	return false
}

type Options struct {
	// Precision of quotients and of [Evaluator.Round], as accepted by
	// [strdecimal.ParsePrec]. Empty means that quotients keep the precision
	// of [strdecimal.Decimal.Div] and rounding goes to an integer.
	Precision string
	// Strict rejects operands that are not numbers instead of turning them
	// into NaN.
	Strict bool
}

// Evaluator is safe for concurrent use once constructed.
type Evaluator struct {
	logger  zerolog.Logger
	prec    int
	hasPrec bool
	strict  bool
}

func New(logger zerolog.Logger, opts Options) (*Evaluator, error) {
	e := &Evaluator{
		logger: logger,
		strict: opts.Strict,
	}
	if opts.Precision != "" {
		prec, err := strdecimal.ParsePrec(opts.Precision)
		if err != nil {
			return nil, err
		}
		e.prec = prec
		e.hasPrec = true
	}
	return e, nil
}

// Operand converts a token to a decimal.
// In strict mode the token must satisfy [strdecimal.IsNumber].
func (e *Evaluator) Operand(token string) (strdecimal.Decimal, error) {
	if e.strict && !strdecimal.IsNumber(token) {
		return strdecimal.Decimal{}, fmt.Errorf("%q: %w", token, ErrNotANumber)
	}
	return strdecimal.New(strings.TrimSpace(token)), nil
}

// Apply evaluates "op a b".
func (e *Evaluator) Apply(op string, a, b strdecimal.Decimal) (strdecimal.Decimal, error) {
	var (
		result strdecimal.Decimal
		err    error
	)
	switch op {
	case "+":
		result = a.Add(b)
	case "-":
		result = a.Sub(b)
	case "*":
		result = a.Mul(b)
	case "/":
		if e.hasPrec {
			result, err = a.DivPrec(b, e.prec)
		} else {
			result, err = a.Div(b)
		}
	case "%":
		result, err = a.Percentage(b.Trim().String())
	default:
		err = fmt.Errorf("%q: %w", op, ErrUnknownOperator)
	}
	if err != nil {
		return strdecimal.Decimal{}, fmt.Errorf("evaluating \"%s %s %s\": %w", op, a, b, err)
	}
	e.logger.Debug().
		Str("op", op).
		Str("left", a.String()).
		Str("right", b.String()).
		Str("result", result.String()).
		Msg("applied")
	return result, nil
}

// Eval evaluates a prefix expression.
// Tokens are separated by white space and are read from right to left:
// operands are pushed on a stack and each operator replaces the two
// topmost operands with its result.
func (e *Evaluator) Eval(expr string) (strdecimal.Decimal, error) {
	tokens := strings.Fields(expr)
	if len(tokens) == 0 {
		return strdecimal.Decimal{}, ErrNoTokens
	}
	stack := make([]strdecimal.Decimal, 0, len(tokens))
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		if !isOperator(token) {
			d, err := e.Operand(token)
			if err != nil {
				return strdecimal.Decimal{}, fmt.Errorf("processing token %q: %w", token, err)
			}
			stack = append(stack, d)
			continue
		}
		if len(stack) < 2 {
			return strdecimal.Decimal{}, fmt.Errorf("processing token %q: %w", token, ErrNotEnoughOperands)
		}
		left := stack[len(stack)-1]
		right := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		result, err := e.Apply(token, left, right)
		if err != nil {
			return strdecimal.Decimal{}, fmt.Errorf("processing token %q: %w", token, err)
		}
		stack = append(stack, result)
	}
	if len(stack) != 1 {
		return strdecimal.Decimal{}, fmt.Errorf("post-processed stack contains %v: %w", stack, ErrTooManyOperands)
	}
	e.logger.Debug().Str("expr", expr).Str("result", stack[0].String()).Msg("evaluated")
	return stack[0], nil
}

// Round changes the precision of d to the configured precision,
// or to 0 if none was given.
func (e *Evaluator) Round(d strdecimal.Decimal) strdecimal.Decimal {
	return d.MustChangePrecision(e.prec)
}

// Comparison holds the results of all comparisons of two decimals.
type Comparison struct {
	Eq  bool `json:"eq"`
	Lt  bool `json:"lt"`
	Lte bool `json:"lte"`
	Gt  bool `json:"gt"`
	Gte bool `json:"gte"`
}

func Compare(a, b strdecimal.Decimal) Comparison {
	return Comparison{
		Eq:  a.Eq(b),
		Lt:  a.Lt(b),
		Lte: a.Lte(b),
		Gt:  a.Gt(b),
		Gte: a.Gte(b),
	}
}
