package strdecimal

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Decimal type is an immutable representation of a decimal number
// with up to [MaxDecimals] digits after the decimal point.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal is in one of three states:
//
//   - Absent: there is no value. This is the zero value of Decimal.
//   - Invalid: the value was built from something that is not a number (NaN).
//   - Numeric: a finite decimal number.
//
// A numeric decimal keeps its integer digits and its fraction digits as
// separate strings. The number of fraction digits is the precision of the
// decimal, so 1, 1.0 and 1.00 are equal values with different precisions.
// Negative zero is kept as such: it is printed as "-0" but equals 0.
type Decimal struct {
	kind  kind
	neg   bool   // indicates whether the decimal is negative, -0 included
	whole string // digits before the decimal point, "0" for zero magnitude
	frac  string // digits after the decimal point
}

type kind uint8

const (
	kindAbsent kind = iota
	kindInvalid
	kindNumeric
)

// MaxDecimals is the maximum number of digits after the decimal point.
const MaxDecimals = 10

var (
	// Absent is a decimal without a value.
	Absent = Decimal{}
	// NaN is a decimal that is not a number.
	NaN = Decimal{kind: kindInvalid}
)

var (
	ErrPrecisionNegative   = errors.New("precision is negative")
	ErrPrecisionRange      = errors.New("precision out of range")
	ErrPrecisionNotInteger = errors.New("precision is not an integer")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrInvalidPercentage   = errors.New("percentage is not a non-negative integer")
	errCoefficientOverflow = errors.New("coefficient overflow")
	errUnsupportedSource   = errors.New("unsupported source type")
)

// newNumeric returns a numeric decimal.
// Fraction digits beyond MaxDecimals are rounded off.
func newNumeric(neg bool, whole, frac string) Decimal {
	d := Decimal{kind: kindNumeric, neg: neg, whole: whole, frac: frac}
	if len(frac) > MaxDecimals {
		d = d.round(MaxDecimals)
	}
	return d
}

// newFromCoef returns a decimal equal to coef / 10^prec,
// where coef is a string of digits and neg is its sign.
// A zero result is never negative.
func newFromCoef(neg bool, coef string, prec int) Decimal {
	if strings.Trim(coef, "0") == "" {
		neg = false
	}
	whole, frac := rescale(coef, prec)
	return newNumeric(neg, trimLeadingZeros(whole), frac)
}

// New converts v to a decimal.
// The following types of v are supported:
//
//   - nil: the result is [Absent].
//   - Decimal, *Decimal: the result is a copy of v.
//   - string, []byte, [json.Number]: the text is parsed with [FromString].
//   - signed and unsigned integers: the result is an integer decimal.
//   - float32, float64: the float is converted with [FromFloat64].
//
// Any other type results in [NaN].
// If the result has more than [MaxDecimals] digits after the decimal point,
// it is rounded half away from zero.
func New(v any) Decimal {
	return convert(v, -1)
}

// NewWithPrec is like [New], but the result has exactly prec digits after the
// decimal point. See [Decimal.ChangePrecision] for the details of padding and
// rounding.
// Text and floats are rounded once, from all of their digits, so
// "0.12344999999" with precision 4 results in 0.1234.
//
// NewWithPrec returns an error if prec is negative or greater than [MaxDecimals].
// The precision is checked even if v results in [Absent] or [NaN].
func NewWithPrec(v any, prec int) (Decimal, error) {
	if err := checkPrec(prec); err != nil {
		return Decimal{}, fmt.Errorf("NewWithPrec(%v, %v) failed: %w", v, prec, err)
	}
	return convert(v, prec), nil
}

// convert is the common part of New and NewWithPrec.
// A negative prec keeps the precision of v, up to MaxDecimals.
func convert(v any, prec int) Decimal {
	switch v := v.(type) {
	case nil:
		return Absent
	case Decimal:
		return v.atPrec(prec)
	case *Decimal:
		if v == nil {
			return Absent
		}
		return v.atPrec(prec)
	case string:
		return parse(v, prec)
	case []byte:
		return parse(string(v), prec)
	case json.Number:
		return parse(string(v), prec)
	case int:
		return parse(strconv.FormatInt(int64(v), 10), prec)
	case int8:
		return parse(strconv.FormatInt(int64(v), 10), prec)
	case int16:
		return parse(strconv.FormatInt(int64(v), 10), prec)
	case int32:
		return parse(strconv.FormatInt(int64(v), 10), prec)
	case int64:
		return parse(strconv.FormatInt(v, 10), prec)
	case uint:
		return parse(strconv.FormatUint(uint64(v), 10), prec)
	case uint8:
		return parse(strconv.FormatUint(uint64(v), 10), prec)
	case uint16:
		return parse(strconv.FormatUint(uint64(v), 10), prec)
	case uint32:
		return parse(strconv.FormatUint(uint64(v), 10), prec)
	case uint64:
		return parse(strconv.FormatUint(v, 10), prec)
	case float32:
		return parseFloat(float64(v), 32, prec)
	case float64:
		return parseFloat(v, 64, prec)
	default:
		return NaN
	}
}

// parse scans s and rounds its exact digits once.
// A negative prec keeps the digits of s, up to MaxDecimals.
func parse(s string, prec int) Decimal {
	neg, whole, frac, ok := scan(s)
	if !ok {
		return NaN
	}
	if prec < 0 {
		return newNumeric(neg, whole, frac)
	}
	d := Decimal{kind: kindNumeric, neg: neg, whole: whole, frac: frac}
	return d.withPrec(prec)
}

// parseFloat parses the shortest text that represents f exactly
// as a float of the given bit size.
func parseFloat(f float64, bitSize, prec int) Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NaN
	}
	return parse(strconv.FormatFloat(f, 'f', -1, bitSize), prec)
}

// FromString parses the leading number of s.
// Leading white space and a sign are allowed, a bare decimal point counts as
// an integer part of 0, and trailing text is ignored:
//
//	"1.2300"      -> 1.2300
//	".0000"       -> 0.0000
//	"-0.01"       -> -0.01
//	"012.9 euros" -> 12.9
//
// Trailing zeros of the fraction are kept, so they define the precision.
// FromString returns [NaN] if s does not start with a number.
// Scientific notation is not supported.
func FromString(s string) Decimal {
	return parse(s, -1)
}

// FromInt64 converts an integer to a decimal with no digits after the
// decimal point.
func FromInt64(i int64) Decimal {
	return parse(strconv.FormatInt(i, 10), -1)
}

// FromFloat64 converts a float to a decimal using the shortest text that
// represents the float exactly.
// The result is rounded to [MaxDecimals] digits after the decimal point.
// Negative zero results in -0.
// FromFloat64 returns [NaN] if f is NaN or an infinity.
func FromFloat64(f float64) Decimal {
	return parseFloat(f, 64, -1)
}

// ParsePrec parses a precision given as text, such as a command-line flag.
// Like C's atoi it reads the leading integer of s, so "2.5" results in 2.
//
// ParsePrec returns an error if:
//   - s does not start with an integer;
//   - the precision is negative or greater than [MaxDecimals].
func ParsePrec(s string) (int, error) {
	t := strings.TrimSpace(s)
	neg := false
	switch {
	case t == "":
		// skip
	case t[0] == '-':
		neg = true
		t = t[1:]
	case t[0] == '+':
		t = t[1:]
	}
	end := 0
	for end < len(t) && isDigit(t[end]) {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("ParsePrec(%q) failed: %w", s, ErrPrecisionNotInteger)
	}
	prec, err := strconv.Atoi(t[:end])
	if err != nil {
		prec = MaxDecimals + 1 // too many digits
	}
	if neg {
		prec = -prec
	}
	if err := checkPrec(prec); err != nil {
		return 0, fmt.Errorf("ParsePrec(%q) failed: %w", s, err)
	}
	return prec, nil
}

func checkPrec(prec int) error {
	switch {
	case prec < 0:
		return ErrPrecisionNegative
	case prec > MaxDecimals:
		return fmt.Errorf("maximum is %v, got %v: %w", MaxDecimals, prec, ErrPrecisionRange)
	}
	return nil
}

// Prec returns the number of digits after the decimal point.
// Prec returns 0 for [Absent] and [NaN].
func (d Decimal) Prec() int {
	return len(d.frac)
}

// ChangePrecision returns d with exactly prec digits after the decimal point.
// If prec is greater than the current precision, the fraction is padded with
// zeros and no information is lost.
// If prec is less than the current precision, d is rounded half away from zero,
// so 0.455 becomes 0.46 and -0.455 becomes -0.46.
// A negative value that rounds to zero keeps its sign.
// [Absent] and [NaN] are returned unchanged.
//
// ChangePrecision returns an error if prec is negative or greater than [MaxDecimals].
func (d Decimal) ChangePrecision(prec int) (Decimal, error) {
	if err := checkPrec(prec); err != nil {
		return Decimal{}, fmt.Errorf("%q.ChangePrecision(%v) failed: %w", d, prec, err)
	}
	return d.withPrec(prec), nil
}

// withPrec assumes that prec is within range.
func (d Decimal) withPrec(prec int) Decimal {
	switch {
	case !d.HasValue():
		return d
	case d.Prec() < prec:
		return d.pad(prec)
	case d.Prec() > prec:
		return d.round(prec)
	}
	return d
}

func (d Decimal) atPrec(prec int) Decimal {
	if prec < 0 {
		return d
	}
	return d.withPrec(prec)
}

func (d Decimal) pad(prec int) Decimal {
	d.frac = d.frac + strings.Repeat("0", prec-d.Prec())
	return d
}

func (d Decimal) round(prec int) Decimal {
	var (
		digits string
		shift  int
		coef   string
	)

	digits = d.whole + d.frac
	shift = d.Prec() - prec

	if f, ok := parseFint(digits); ok {
		coef = f.rshHalfUp(shift).string()
	} else {
		b := getBint()
		defer putBint(b)
		b.setDigits(digits)
		b.rshHalfUp(b, shift)
		coef = b.string()
	}

	whole, frac := rescale(coef, prec)
	return Decimal{kind: kindNumeric, neg: d.neg, whole: trimLeadingZeros(whole), frac: frac}
}

// HasValue returns true if d is a number, that is, neither [Absent] nor [NaN].
func (d Decimal) HasValue() bool {
	return d.kind == kindNumeric
}

// IsNaN returns true if d is [NaN].
func (d Decimal) IsNaN() bool {
	return d.kind == kindInvalid
}

// IsAbsent returns true if d is [Absent].
func (d Decimal) IsAbsent() bool {
	return d.kind == kindAbsent
}

// IsZero returns true if d == 0, including negative zero.
func (d Decimal) IsZero() bool {
	return d.HasValue() && d.whole == "0" && strings.Trim(d.frac, "0") == ""
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return d.HasValue() && !d.neg && !d.IsZero()
}

// IsNeg returns true if d < 0.
// Negative zero is not negative.
func (d Decimal) IsNeg() bool {
	return d.HasValue() && d.neg && !d.IsZero()
}

// sign returns -1, 0 or +1 for numeric values and 0 for [Absent].
func (d Decimal) sign() int {
	switch {
	case !d.HasValue(), d.IsZero():
		return 0
	case d.neg:
		return -1
	}
	return 1
}

// Float64 returns the nearest float to d.
// For [NaN] it returns math.NaN() and true.
// For [Absent] it returns 0 and false.
func (d Decimal) Float64() (float64, bool) {
	switch d.kind {
	case kindAbsent:
		return 0, false
	case kindInvalid:
		return math.NaN(), true
	}
	f, _ := strconv.ParseFloat(d.String(), 64)
	return f, true
}

// ScaledInt returns the digits of d, including the fraction, read as one
// integer. For example, -1.2300 results in -12300.
// ScaledInt returns false for [Absent] and [NaN].
func (d Decimal) ScaledInt() (*big.Int, bool) {
	if !d.HasValue() {
		return nil, false
	}
	z := (*bint)(new(big.Int))
	z.setDigits(d.whole + d.frac)
	if d.neg {
		(*big.Int)(z).Neg((*big.Int)(z))
	}
	return (*big.Int)(z), true
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of d.
// The returned string does not use scientific notation and is formatted
// according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// String returns "" for [Absent] and "NaN" for [NaN].
// Also see method [Decimal.StringOr].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	return d.StringOr("", nan)
}

// StringOr is like [Decimal.String], but returns absent for [Absent] and
// invalid for [NaN].
func (d Decimal) StringOr(absent, invalid string) string {
	switch d.kind {
	case kindAbsent:
		return absent
	case kindInvalid:
		return invalid
	}
	var b strings.Builder
	b.Grow(len(d.whole) + len(d.frac) + 2)
	if d.neg {
		b.WriteByte('-')
	}
	b.WriteString(d.whole)
	if d.frac != "" {
		b.WriteByte('.')
		b.WriteString(d.frac)
	}
	return b.String()
}

// Serializable returns a view of d suited for structured serialization:
// nil for [Absent], math.NaN() for [NaN], and the result of [Decimal.String]
// otherwise.
func (d Decimal) Serializable() any {
	switch d.kind {
	case kindAbsent:
		return nil
	case kindInvalid:
		return math.NaN()
	}
	return d.String()
}

// Trim returns d with trailing zeros of the fraction removed.
// [Absent] and [NaN] are returned unchanged.
func (d Decimal) Trim() Decimal {
	if !d.HasValue() {
		return d
	}
	d.frac = strings.TrimRight(d.frac, "0")
	return d
}

// Abs returns the absolute value of d.
// [Absent] and [NaN] are returned unchanged.
func (d Decimal) Abs() Decimal {
	if !d.HasValue() {
		return d
	}
	d.neg = false
	return d
}

// align pads the fraction of the operand with the lower precision,
// so that both operands have the same precision.
func align(d, e Decimal) (Decimal, Decimal) {
	switch {
	case !d.HasValue() || !e.HasValue():
		// skip
	case d.Prec() < e.Prec():
		d = d.pad(e.Prec())
	case e.Prec() < d.Prec():
		e = e.pad(d.Prec())
	}
	return d, e
}

// Add returns the sum of d and e.
// The precision of the sum is the larger of the precisions of d and e,
// and the sum is exact.
//
// If d is [Absent] or [NaN], Add returns d.
// Otherwise, if e is [Absent] or [NaN], Add returns e.
func (d Decimal) Add(e Decimal) Decimal {
	switch {
	case !d.HasValue():
		return d
	case !e.HasValue():
		return e
	}
	d, e = align(d, e)
	f, err := addFast(d, e)
	if err != nil {
		f = addSlow(d, e)
	}
	return f
}

// Sub returns the difference of d and e.
// The same rules as for [Decimal.Add] apply.
func (d Decimal) Sub(e Decimal) Decimal {
	if e.HasValue() {
		e.neg = !e.neg
	}
	return d.Add(e)
}

// addFast assumes that d and e have values and the same precision.
func addFast(d, e Decimal) (Decimal, error) {
	var (
		dcoef fint
		ecoef fint
		neg   bool
		ok    bool
	)

	dcoef, ok = parseFint(d.whole + d.frac)
	if !ok {
		return Decimal{}, errCoefficientOverflow
	}
	ecoef, ok = parseFint(e.whole + e.frac)
	if !ok {
		return Decimal{}, errCoefficientOverflow
	}

	// Sign
	if ecoef < dcoef {
		neg = d.neg
	} else {
		neg = e.neg
	}

	// Coefficient
	if d.neg != e.neg {
		dcoef = dcoef.dist(ecoef)
	} else {
		dcoef, ok = dcoef.add(ecoef)
		if !ok {
			return Decimal{}, errCoefficientOverflow
		}
	}

	return newFromCoef(neg, dcoef.string(), d.Prec()), nil
}

// addSlow assumes that d and e have values and the same precision.
func addSlow(d, e Decimal) Decimal {
	var (
		dcoef *bint
		ecoef *bint
		neg   bool
	)

	dcoef = getBint()
	defer putBint(dcoef)
	ecoef = getBint()
	defer putBint(ecoef)
	dcoef.setDigits(d.whole + d.frac)
	ecoef.setDigits(e.whole + e.frac)

	// Sign
	if dcoef.cmp(ecoef) > 0 {
		neg = d.neg
	} else {
		neg = e.neg
	}

	// Coefficient
	if d.neg != e.neg {
		dcoef.dist(dcoef, ecoef)
	} else {
		dcoef.add(dcoef, ecoef)
	}

	return newFromCoef(neg, dcoef.string(), d.Prec())
}

// Mul returns the product of d and e.
// The precision of the product is the sum of the precisions of d and e.
// If the sum exceeds [MaxDecimals], the product is rounded half away from zero
// to [MaxDecimals] digits after the decimal point.
//
// If d is [Absent] or [NaN], Mul returns d.
// Otherwise, if e is [Absent] or [NaN], Mul returns e.
func (d Decimal) Mul(e Decimal) Decimal {
	switch {
	case !d.HasValue():
		return d
	case !e.HasValue():
		return e
	}
	f, err := mulFast(d, e)
	if err != nil {
		f = mulSlow(d, e)
	}
	return f
}

func mulFast(d, e Decimal) (Decimal, error) {
	var (
		dcoef fint
		ecoef fint
		ok    bool
	)

	dcoef, ok = parseFint(d.whole + d.frac)
	if !ok {
		return Decimal{}, errCoefficientOverflow
	}
	ecoef, ok = parseFint(e.whole + e.frac)
	if !ok {
		return Decimal{}, errCoefficientOverflow
	}

	// Coefficient
	dcoef, ok = dcoef.mul(ecoef)
	if !ok {
		return Decimal{}, errCoefficientOverflow
	}

	return newFromCoef(d.neg != e.neg, dcoef.string(), d.Prec()+e.Prec()), nil
}

func mulSlow(d, e Decimal) Decimal {
	var (
		dcoef *bint
		ecoef *bint
	)

	dcoef = getBint()
	defer putBint(dcoef)
	ecoef = getBint()
	defer putBint(ecoef)
	dcoef.setDigits(d.whole + d.frac)
	ecoef.setDigits(e.whole + e.frac)

	// Coefficient
	dcoef.mul(dcoef, ecoef)

	return newFromCoef(d.neg != e.neg, dcoef.string(), d.Prec()+e.Prec())
}

// Div returns the quotient of d and e.
// Unlike the other arithmetic operations, division is carried out on float64
// values, because the decimal quotient does not terminate in general.
// The quotient is then converted as in [FromFloat64], so it has at most
// [MaxDecimals] digits after the decimal point and may be inexact.
// Use [Decimal.DivPrec] to choose the precision of the quotient.
//
// Div returns an error if e is 0, whatever the state of d.
// Otherwise, if d is [Absent] or [NaN], Div returns d, and
// if e is [Absent] or [NaN], Div returns e.
func (d Decimal) Div(e Decimal) (Decimal, error) {
	f, err := quo(d, e, -1)
	if err != nil {
		return Decimal{}, fmt.Errorf("%q.Div(%q) failed: %w", d, e, err)
	}
	return f, nil
}

// DivPrec is like [Decimal.Div], but the quotient has exactly prec digits
// after the decimal point, see [Decimal.ChangePrecision].
// The quotient is rounded once, from all of its digits.
//
// DivPrec returns an error if:
//   - prec is negative or greater than [MaxDecimals];
//   - e is 0.
func (d Decimal) DivPrec(e Decimal, prec int) (Decimal, error) {
	if err := checkPrec(prec); err != nil {
		return Decimal{}, fmt.Errorf("%q.DivPrec(%q, %v) failed: %w", d, e, prec, err)
	}
	f, err := quo(d, e, prec)
	if err != nil {
		return Decimal{}, fmt.Errorf("%q.DivPrec(%q, %v) failed: %w", d, e, prec, err)
	}
	return f, nil
}

// quo rounds the float quotient once to prec digits.
// A negative prec rounds it to MaxDecimals.
func quo(d, e Decimal, prec int) (Decimal, error) {
	// Special case: zero divisor
	if e.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}

	switch {
	case !d.HasValue():
		return d, nil
	case !e.HasValue():
		return e, nil
	}

	// General case
	dval, _ := d.Float64()
	eval, _ := e.Float64()
	return parseFloat(dval/eval, 64, prec), nil
}

// Percentage returns p percent of d, with trailing zeros removed.
// For example, 15 percent of 5 is 0.75.
// [Absent] and [NaN] are returned unchanged.
//
// Percentage returns an error if p is not a non-negative integer literal,
// such as "20".
func (d Decimal) Percentage(p string) (Decimal, error) {
	if !d.HasValue() {
		return d, nil
	}
	if !IsDigits(p) {
		return Decimal{}, fmt.Errorf("%q.Percentage(%q) failed: %w", d, p, ErrInvalidPercentage)
	}
	return d.Mul(FromString(Rescale(p, 2))).Trim(), nil
}

// cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// [Absent] takes part in the comparison as 0.
// cmp returns false if d or e is [NaN].
func cmp(d, e Decimal) (int, bool) {
	if d.IsNaN() || e.IsNaN() {
		return 0, false
	}

	// Special case: different signs
	switch {
	case e.sign() < d.sign():
		return 1, true
	case d.sign() < e.sign():
		return -1, true
	case d.sign() == 0:
		return 0, true
	}

	// General case
	d, e = align(d, e)
	r, err := cmpFast(d, e)
	if err != nil {
		r = cmpSlow(d, e)
	}
	return r, true
}

// cmpFast assumes that d and e have the same non-zero sign and the same precision.
func cmpFast(d, e Decimal) (int, error) {
	var (
		dcoef fint
		ecoef fint
		ok    bool
	)

	dcoef, ok = parseFint(d.whole + d.frac)
	if !ok {
		return 0, errCoefficientOverflow
	}
	ecoef, ok = parseFint(e.whole + e.frac)
	if !ok {
		return 0, errCoefficientOverflow
	}

	// Comparison
	switch {
	case ecoef < dcoef:
		return d.sign(), nil
	case dcoef < ecoef:
		return -e.sign(), nil
	default:
		return 0, nil
	}
}

// cmpSlow assumes that d and e have the same non-zero sign and the same precision.
func cmpSlow(d, e Decimal) int {
	var (
		dcoef *bint
		ecoef *bint
	)

	dcoef = getBint()
	defer putBint(dcoef)
	ecoef = getBint()
	defer putBint(ecoef)
	dcoef.setDigits(d.whole + d.frac)
	ecoef.setDigits(e.whole + e.frac)

	// Comparison
	switch dcoef.cmp(ecoef) {
	case 1:
		return d.sign()
	case -1:
		return -e.sign()
	default:
		return 0
	}
}

// Eq returns true if d == e.
// Values with different precisions, such as 5 and 5.00, are equal.
// [NaN] is not equal to anything, including itself.
// [Absent] is only equal to [Absent].
func (d Decimal) Eq(e Decimal) bool {
	if d.IsAbsent() || e.IsAbsent() {
		return d.IsAbsent() && e.IsAbsent()
	}
	r, ok := cmp(d, e)
	return ok && r == 0
}

// Lt returns true if d < e.
// Comparisons with [NaN] are always false.
// In ordering comparisons [Absent] takes part as 0, so Absent < 3.2 is true,
// while Absent < -1 is false.
func (d Decimal) Lt(e Decimal) bool {
	r, ok := cmp(d, e)
	return ok && r < 0
}

// Lte returns true if d <= e.
// The same rules as for [Decimal.Lt] apply.
func (d Decimal) Lte(e Decimal) bool {
	r, ok := cmp(d, e)
	return ok && r <= 0
}

// Gt returns true if d > e.
// The same rules as for [Decimal.Lt] apply.
func (d Decimal) Gt(e Decimal) bool {
	r, ok := cmp(d, e)
	return ok && r > 0
}

// Gte returns true if d >= e.
// The same rules as for [Decimal.Lt] apply.
func (d Decimal) Gte(e Decimal) bool {
	r, ok := cmp(d, e)
	return ok && r >= 0
}

// MarshalJSON implements the [json.Marshaler] interface.
// [Absent] is encoded as null, [NaN] as "NaN", and other values as JSON
// strings, so that trailing zeros are kept.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Decimal) MarshalJSON() ([]byte, error) {
	if d.IsAbsent() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// It accepts null, JSON strings and JSON numbers.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Decimal) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Absent
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to unmarshal %T: %w", *d, err)
		}
		*d = FromString(s)
		return nil
	}
	*d = FromString(string(data))
	return nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Empty text results in [Absent].
// Also see function [FromString].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Absent
		return nil
	}
	*d = FromString(string(text))
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Scan implements the [sql.Scanner] interface.
// NULL results in [Absent], and "NaN", as stored by PostgreSQL numeric
// columns, results in [NaN].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	switch value := value.(type) {
	case nil:
		*d = Absent
	case string:
		*d = FromString(value)
	case []byte:
		*d = FromString(string(value))
	case int64:
		*d = FromInt64(value)
	case float64:
		*d = FromFloat64(value)
	default:
		return fmt.Errorf("failed to convert from %T to %T: %w", value, Decimal{}, errUnsupportedSource)
	}
	return nil
}

// Value implements the [driver.Valuer] interface.
// [Absent] results in NULL.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	if d.IsAbsent() {
		return nil, nil
	}
	return d.String(), nil
}
