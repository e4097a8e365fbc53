package strdecimal

import (
	"strings"
	"unicode/utf8"
)

// nan is the text returned by the helpers for input that is not a number.
const nan = "NaN"

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// scan reads the leading number of s the way C's strtol reads an integer:
// leading white space and a sign are skipped, then the integer digits and,
// after a '.', the fraction digits are consumed.
// Anything after the last consumed digit is ignored.
// The integer digits are returned without leading zeros, "0" if there are none.
// scan returns false if s does not start with a number.
func scan(s string) (neg bool, whole, frac string, ok bool) {
	var (
		pos   int
		width int
		start int
	)

	width = len(s)

	// White space
	for pos < width && isSpace(s[pos]) {
		pos++
	}

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	start = pos
	for pos < width && isDigit(s[pos]) {
		pos++
	}
	whole = s[start:pos]

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		start = pos
		for pos < width && isDigit(s[pos]) {
			pos++
		}
		frac = s[start:pos]
	}

	if whole == "" && frac == "" {
		return false, "", "", false
	}
	return neg, trimLeadingZeros(whole), frac, true
}

// trimLeadingZeros removes leading zeros, but keeps at least one digit.
func trimLeadingZeros(digits string) string {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "0"
	}
	return digits
}

// rescale splits a string of digits into integer and fraction digits,
// so that the fraction has exactly prec digits.
// The fraction is left-padded with zeros if there are not enough digits.
func rescale(digits string, prec int) (whole, frac string) {
	if prec <= 0 {
		return digits, ""
	}
	if i := len(digits) - prec; i > 0 {
		return digits[:i], digits[i:]
	}
	return "0", strings.Repeat("0", prec-len(digits)) + digits
}

// IsDigits returns true if s is a non-empty string of decimal digits,
// without a sign or a decimal point.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// IsInteger returns true if s is an integer literal with an optional minus sign.
func IsInteger(s string) bool {
	return IsDigits(strings.TrimPrefix(s, "-"))
}

// IsNumber returns true if the whole of s, ignoring surrounding white space,
// is a decimal number in one of the following formats:
//
//	1.234
//	-1234
//	+.5
//	12.
//
// Scientific notation is not supported.
func IsNumber(s string) bool {
	var (
		pos     int
		width   int
		hascoef bool
	)

	s = strings.TrimFunc(s, func(r rune) bool {
		return r < utf8.RuneSelf && isSpace(byte(r))
	})
	width = len(s)

	// Sign
	if pos < width && (s[pos] == '-' || s[pos] == '+') {
		pos++
	}

	// Integer
	for pos < width && isDigit(s[pos]) {
		hascoef = true
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && isDigit(s[pos]) {
			hascoef = true
			pos++
		}
	}

	return hascoef && pos == width
}

// IntPart returns the integer part of the leading number of s.
// The fraction is truncated, not rounded.
// Leading zeros are removed, a bare decimal point counts as 0, and the sign
// of a negative zero is preserved.
// Trailing text after the number is ignored:
//
//	"012.9 euros" -> "12"
//	"-0.010"      -> "-0"
//	".0000"       -> "0"
//	"euros"       -> "NaN"
func IntPart(s string) string {
	neg, whole, _, ok := scan(s)
	switch {
	case !ok:
		return nan
	case neg:
		return "-" + whole
	}
	return whole
}

// FracPart returns the digits after the decimal point of the leading number of s.
// Trailing zeros are kept.
// FracPart returns an empty string for integers and for text that does not
// start with a number.
func FracPart(s string) string {
	_, _, frac, ok := scan(s)
	if !ok {
		return ""
	}
	return frac
}

// CountDecimals returns the number of digits after the decimal point of the
// leading number of s.
func CountDecimals(s string) int {
	return len(FracPart(s))
}

// Trim is like [TrimSep] with '.' as the decimal separator.
func Trim(s string) string {
	return TrimSep(s, '.')
}

// TrimSep removes non-significant zeros from a decimal number in s:
// leading zeros of the integer part (keeping at least one digit and the minus
// sign), trailing zeros of the fraction, and the separator itself if the
// fraction becomes empty.
//
//	"04.0010" -> "4.001"
//	".0010"   -> "0.001"
//	"1.0000"  -> "1"
func TrimSep(s string, sep byte) string {
	if s == "" {
		return ""
	}
	sign := ""
	switch s[0] {
	case '-':
		sign, s = "-", s[1:]
	case '+':
		s = s[1:]
	}
	whole, frac := s, ""
	if i := strings.IndexByte(s, sep); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	whole = trimLeadingZeros(whole)
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		return sign + whole
	}
	return sign + whole + string(sep) + frac
}

// Rescale is the inverse of reading a decimal as a scaled integer.
// It inserts a decimal point prec digits from the right of the integer
// literal s, padding with zeros on the left when needed:
//
//	Rescale("12345", 2)  -> "123.45"
//	Rescale("12345", 7)  -> "0.0012345"
//	Rescale("-12345", 5) -> "-0.12345"
//
// If prec is not positive, s is returned unchanged.
// Rescale returns "NaN" if s is not an integer literal.
func Rescale(s string, prec int) string {
	if !IsInteger(s) {
		return nan
	}
	if prec <= 0 {
		return s
	}
	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	whole, frac := rescale(s, prec)
	return sign + whole + "." + frac
}
