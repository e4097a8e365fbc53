package strdecimal

import "fmt"

// MustNewWithPrec is like [NewWithPrec] but panics if the precision is out of range.
// It simplifies safe initialization of global variables holding decimals.
func MustNewWithPrec(v any, prec int) Decimal {
	d, err := NewWithPrec(v, prec)
	if err != nil {
		panic(fmt.Sprintf("MustNewWithPrec(%v, %v) failed: %v", v, prec, err))
	}
	return d
}

// MustChangePrecision is like [Decimal.ChangePrecision] but panics if the
// precision is out of range.
func (d Decimal) MustChangePrecision(prec int) Decimal {
	f, err := d.ChangePrecision(prec)
	if err != nil {
		panic(fmt.Sprintf("MustChangePrecision(%v) failed: %v", prec, err))
	}
	return f
}

// MustDiv is like [Decimal.Div] but panics if computing error.
func (d Decimal) MustDiv(e Decimal) Decimal {
	f, err := d.Div(e)
	if err != nil {
		panic(fmt.Sprintf("MustDiv(%v) failed: %v", e, err))
	}
	return f
}

// MustDivPrec is like [Decimal.DivPrec] but panics if computing error.
func (d Decimal) MustDivPrec(e Decimal, prec int) Decimal {
	f, err := d.DivPrec(e, prec)
	if err != nil {
		panic(fmt.Sprintf("MustDivPrec(%v, %v) failed: %v", e, prec, err))
	}
	return f
}

// MustPercentage is like [Decimal.Percentage] but panics if p is not valid.
func (d Decimal) MustPercentage(p string) Decimal {
	f, err := d.Percentage(p)
	if err != nil {
		panic(fmt.Sprintf("MustPercentage(%q) failed: %v", p, err))
	}
	return f
}
