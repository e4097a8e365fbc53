package strdecimal_test

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/govalues/strdecimal"
	"github.com/govalues/strdecimal/internal/calc"
)

// This example evaluates a mathematical expression written in prefix
// (or Polish) notation with the calculator behind the deccalc command.
func Example_prefixCalculator() {
	ev, err := calc.New(zerolog.Nop(), calc.Options{})
	if err != nil {
		panic(err)
	}
	d, err := ev.Eval("* 10 + 1.23 4.56")
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output:
	// 57.90
}

// This example shows that decimals keep the digits that binary floats lose.
func Example_floatComparison() {
	a, b := 0.1, 0.2
	fmt.Println(a + b)
	fmt.Println(strdecimal.New(a).Add(strdecimal.New(b)))
	// Output:
	// 0.30000000000000004
	// 0.3
}

func ExampleNew() {
	fmt.Println(strdecimal.New("012.9 euros"))
	fmt.Println(strdecimal.New(-5))
	fmt.Println(strdecimal.New(0.123))
	fmt.Println(strdecimal.New("0.123456789012"))
	fmt.Println(strdecimal.New(nil).StringOr("absent", "NaN"))
	fmt.Println(strdecimal.New("euro"))
	// Output:
	// 12.9
	// -5
	// 0.123
	// 0.1234567890
	// absent
	// NaN
}

func ExampleNewWithPrec() {
	fmt.Println(strdecimal.NewWithPrec(123.456, 2))
	fmt.Println(strdecimal.NewWithPrec(5, 2))
	fmt.Println(strdecimal.NewWithPrec("0.12344999999", 4))
	_, err := strdecimal.NewWithPrec(10, 20)
	fmt.Println(err)
	// Output:
	// 123.46 <nil>
	// 5.00 <nil>
	// 0.1234 <nil>
	// NewWithPrec(10, 20) failed: maximum is 10, got 20: precision out of range
}

func ExampleFromString() {
	fmt.Println(strdecimal.FromString("1.2300"))
	fmt.Println(strdecimal.FromString(".0000"))
	fmt.Println(strdecimal.FromString("-0.01"))
	fmt.Println(strdecimal.FromString("-.5"))
	// Output:
	// 1.2300
	// 0.0000
	// -0.01
	// -0.5
}

func ExampleFromFloat64() {
	fmt.Println(strdecimal.FromFloat64(1.23e-2))
	fmt.Println(strdecimal.FromFloat64(1.23e2))
	fmt.Println(strdecimal.FromFloat64(1.0 / 3))
	// Output:
	// 0.0123
	// 123
	// 0.3333333333
}

func ExampleParsePrec() {
	fmt.Println(strdecimal.ParsePrec("2"))
	fmt.Println(strdecimal.ParsePrec("2.5"))
	_, err := strdecimal.ParsePrec("abc")
	fmt.Println(err)
	// Output:
	// 2 <nil>
	// 2 <nil>
	// ParsePrec("abc") failed: precision is not an integer
}

func ExampleDecimal_Prec() {
	d := strdecimal.New("-123")
	e := strdecimal.New("5.7")
	f := strdecimal.New("1.2300")
	fmt.Println(d.Prec())
	fmt.Println(e.Prec())
	fmt.Println(f.Prec())
	// Output:
	// 0
	// 1
	// 4
}

func ExampleDecimal_ChangePrecision() {
	d := strdecimal.New("0.455")
	e := strdecimal.New("-0.455")
	f := strdecimal.New("5")
	fmt.Println(d.ChangePrecision(2))
	fmt.Println(e.ChangePrecision(2))
	fmt.Println(f.ChangePrecision(2))
	// Output:
	// 0.46 <nil>
	// -0.46 <nil>
	// 5.00 <nil>
}

func ExampleDecimal_Float64() {
	d := strdecimal.New("0.1")
	e := strdecimal.New("123.456")
	fmt.Println(d.Float64())
	fmt.Println(e.Float64())
	fmt.Println(strdecimal.Absent.Float64())
	// Output:
	// 0.1 true
	// 123.456 true
	// 0 false
}

func ExampleDecimal_ScaledInt() {
	d := strdecimal.New("-1.2300")
	fmt.Println(d.ScaledInt())
	// Output: -12300 true
}

func ExampleDecimal_String() {
	d := strdecimal.New("1234567890.1234567890")
	fmt.Println(d.String())
	// Output: 1234567890.1234567890
}

func ExampleDecimal_StringOr() {
	fmt.Println(strdecimal.Absent.StringOr("NULL", "?"))
	fmt.Println(strdecimal.NaN.StringOr("NULL", "?"))
	fmt.Println(strdecimal.New("1.50").StringOr("NULL", "?"))
	// Output:
	// NULL
	// ?
	// 1.50
}

func ExampleDecimal_Trim() {
	d := strdecimal.New("04.0010")
	fmt.Println(d.Trim())
	// Output: 4.001
}

func ExampleDecimal_Abs() {
	d := strdecimal.New("-15.67")
	fmt.Println(d.Abs())
	// Output: 15.67
}

func ExampleDecimal_Add() {
	d := strdecimal.New("15.6")
	e := strdecimal.New("8.25")
	fmt.Println(d.Add(e))
	// Output: 23.85
}

func ExampleDecimal_Sub() {
	d := strdecimal.New("15.6")
	e := strdecimal.New("8")
	fmt.Println(d.Sub(e))
	// Output: 7.6
}

func ExampleDecimal_Mul() {
	d := strdecimal.New("0.1")
	e := strdecimal.New("-0.15")
	fmt.Println(d.Mul(e))
	// Output: -0.015
}

func ExampleDecimal_Div() {
	d := strdecimal.New("-15.67")
	e := strdecimal.New("2")
	fmt.Println(d.Div(e))
	_, err := d.Div(strdecimal.New(0))
	fmt.Println(err)
	// Output:
	// -7.835 <nil>
	// "-15.67".Div("0") failed: division by zero
}

func ExampleDecimal_DivPrec() {
	d := strdecimal.New("5")
	e := strdecimal.New("0.9")
	fmt.Println(d.DivPrec(e, 3))
	fmt.Println(d.DivPrec(e, 0))
	// Output:
	// 5.556 <nil>
	// 6 <nil>
}

func ExampleDecimal_Percentage() {
	d := strdecimal.New("5")
	fmt.Println(d.Percentage("20"))
	fmt.Println(d.Percentage("15"))
	// Output:
	// 1 <nil>
	// 0.75 <nil>
}

func ExampleDecimal_Eq() {
	d := strdecimal.New("5")
	fmt.Println(d.Eq(strdecimal.New("5.00")))
	fmt.Println(d.Eq(strdecimal.New("5.001")))
	fmt.Println(strdecimal.NaN.Eq(strdecimal.NaN))
	fmt.Println(strdecimal.Absent.Eq(strdecimal.Absent))
	// Output:
	// true
	// false
	// false
	// true
}

func ExampleDecimal_Lt() {
	d := strdecimal.New("5")
	fmt.Println(d.Lt(strdecimal.New("5.01")))
	fmt.Println(d.Lt(strdecimal.New("4.9")))
	fmt.Println(strdecimal.Absent.Lt(strdecimal.New("3.2")))
	// Output:
	// true
	// false
	// true
}

func ExampleDecimal_IsNeg() {
	d := strdecimal.New("-15.67")
	e := strdecimal.New("23")
	f := strdecimal.New("-0")
	fmt.Println(d.IsNeg())
	fmt.Println(e.IsNeg())
	fmt.Println(f.IsNeg())
	// Output:
	// true
	// false
	// false
}

func ExampleDecimal_IsZero() {
	d := strdecimal.New("-15.67")
	e := strdecimal.New("0.00")
	f := strdecimal.New("-0")
	fmt.Println(d.IsZero())
	fmt.Println(e.IsZero())
	fmt.Println(f.IsZero())
	// Output:
	// false
	// true
	// true
}

type Invoice struct {
	Total strdecimal.Decimal `json:"total"`
	Tax   strdecimal.Decimal `json:"tax"`
}

func ExampleDecimal_UnmarshalJSON() {
	b := []byte(`{"total": "-15.670", "tax": null}`)
	var v Invoice
	err := json.Unmarshal(b, &v)
	if err != nil {
		panic(err)
	}
	fmt.Println(v.Total, v.Tax.IsAbsent())
	// Output: -15.670 true
}

func ExampleDecimal_MarshalJSON() {
	v := Invoice{Total: strdecimal.New("-15.670")}
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	// Output: {"total":"-15.670","tax":null}
}

func ExampleDecimal_Scan() {
	d := &strdecimal.Decimal{}
	err := d.Scan("-15.67")
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: -15.67
}

func ExampleDecimal_Value() {
	d := strdecimal.New("-15.67")
	s, err := d.Value()
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output: -15.67
}

func ExampleIntPart() {
	fmt.Println(strdecimal.IntPart("012.9 euros"))
	fmt.Println(strdecimal.IntPart("-0.01"))
	fmt.Println(strdecimal.IntPart(".0000"))
	fmt.Println(strdecimal.IntPart("euros"))
	// Output:
	// 12
	// -0
	// 0
	// NaN
}

func ExampleFracPart() {
	fmt.Println(strdecimal.FracPart("0.010"))
	fmt.Println(strdecimal.CountDecimals("0.010"))
	// Output:
	// 010
	// 3
}

func ExampleTrim() {
	fmt.Println(strdecimal.Trim("04.0010"))
	fmt.Println(strdecimal.Trim(".0010"))
	fmt.Println(strdecimal.Trim("0.0000"))
	// Output:
	// 4.001
	// 0.001
	// 0
}

func ExampleRescale() {
	fmt.Println(strdecimal.Rescale("12345", 2))
	fmt.Println(strdecimal.Rescale("12345", 7))
	fmt.Println(strdecimal.Rescale("-12345", 5))
	fmt.Println(strdecimal.Rescale("dinero", 2))
	// Output:
	// 123.45
	// 0.0012345
	// -0.12345
	// NaN
}

func ExampleIsNumber() {
	fmt.Println(strdecimal.IsNumber("-1.23"))
	fmt.Println(strdecimal.IsNumber("12 euros"))
	// Output:
	// true
	// false
}
