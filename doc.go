/*
Package strdecimal implements immutable decimal numbers that keep their digits
as text.
It is designed for monetary and quantity computations, where binary
floating-point numbers introduce rounding errors such as 0.1 + 0.2 = 0.30000000000000004.

# Representation

[Decimal] is a struct with four fields:

  - Kind: one of absent, invalid (NaN), or numeric.
  - Sign: a boolean indicating whether the decimal is negative.
    Negative zero is kept, so "-0.00" is printed back as "-0.00".
  - Integer digits: the digits before the decimal point, without leading zeros.
  - Fraction digits: the digits after the decimal point, trailing zeros included.

The number of fraction digits is called the precision of the decimal.
The precision ranges from 0 to [MaxDecimals].
In this approach, the same numeric value can have multiple representations.
For example, 1, 1.0, and 1.00 all represent the same value but have different
precisions.

The zero value of [Decimal] is [Absent], a decimal without a value.
[NaN] is a decimal built from something that is not a number.
Both are "sticky": arithmetic with them returns them, and comparisons with
[NaN] are false.

# Conversions

The package provides functions for converting values to decimals:

  - from any supported Go value:
    [New], [NewWithPrec].
  - from string:
    [FromString].
  - from int64:
    [FromInt64].
  - from float64:
    [FromFloat64].

and methods for converting decimals back:

  - to string:
    [Decimal.String], [Decimal.StringOr].
  - to float64:
    [Decimal.Float64].
  - to a scaled integer:
    [Decimal.ScaledInt].
  - for serialization:
    [Decimal.Serializable], [Decimal.MarshalJSON], [Decimal.MarshalText],
    [Decimal.Value].

Text is parsed leniently, in the manner of C's strtol: leading white space
and a sign are skipped and trailing text is ignored, so "012.9 euros" is 12.9.
Scientific notation is not supported.

# Operations

[Decimal.Add], [Decimal.Sub], and the comparisons first pad the operand with
the lower precision with zeros, so that both operands have the same precision.
Each operand is then read as a scaled integer, that is, all its digits without
the decimal point. For example, 1.23 and 4.5 are read as 123 and 450.
The scaled integers are combined and the decimal point is put back.
[Decimal.Mul] multiplies the scaled integers without padding and the
precision of the product is the sum of the precisions.

Each operation on scaled integers is carried out in two steps:

 1. The operation is initially performed using uint64 arithmetic.
    If no overflow occurs, the exact result is immediately returned.
    If an overflow does occur, the operation proceeds to step 2.

 2. The operation is repeated using [big.Int] arithmetic.

Consequently, addition, subtraction, multiplication, and comparison are exact.

[Decimal.Div] and [Decimal.DivPrec] are the exception: the quotient of two
decimals does not terminate in general, so it is computed from float64
values and is an approximation.
Callers that need a particular number of digits should pass it to
[Decimal.DivPrec].

# Rounding

Results never have more than [MaxDecimals] digits after the decimal point.
When a value has to lose digits, for example in [Decimal.ChangePrecision] or
when a product has more than [MaxDecimals] fraction digits, it is rounded
half away from zero, so 0.455 becomes 0.46 and -0.455 becomes -0.46.
No other rounding modes are provided.

# Errors

Errors are returned in the following cases:

  - Precision out of range.
    [NewWithPrec], [ParsePrec], [Decimal.ChangePrecision], and
    [Decimal.DivPrec] return an error if the precision is negative or
    greater than [MaxDecimals].
    [ParsePrec] also fails if the text does not start with an integer.

  - Division by Zero.
    [Decimal.Div] and [Decimal.DivPrec] return an error if the divisor is 0,
    even if the dividend is [Absent] or [NaN].

  - Invalid Percentage.
    [Decimal.Percentage] returns an error if the percentage is not a
    non-negative integer literal.

Input that is not a number is not an error: it results in [NaN].

[big.Int]: https://pkg.go.dev/math/big#Int
*/
package strdecimal
