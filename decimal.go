// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package arith

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Decimal is an exact decimal number. Its value is:
//
//	Coeff * 10 ^ Exponent
//
// A Decimal carries no precision or rounding of its own; those come from the
// Policy an operation is performed with. The zero value is 0.
type Decimal struct {
	Coeff    big.Int
	Exponent int32
}

// maxUpscale is the largest exponent difference upscale will bridge.
const maxUpscale = 10000

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
	bigTen = big.NewInt(10)
)

// New creates a new decimal with the given coefficient and exponent.
func New(coeff int64, exponent int32) *Decimal {
	d := &Decimal{Exponent: exponent}
	d.Coeff.SetInt64(coeff)
	return d
}

// NewFromString creates a new decimal from s. It supports plain (-12.34)
// and scientific (1.234E+3) notation.
func NewFromString(s string) (*Decimal, error) {
	d := new(Decimal)
	if err := d.SetString(s); err != nil {
		return nil, err
	}
	return d, nil
}

// SetString sets d to the value of s and returns an error if s could not be
// parsed.
func (d *Decimal) SetString(s string) error {
	orig := s
	exp := int64(0)
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		e, err := strconv.ParseInt(s[i+1:], 10, 32)
		if err != nil {
			return errors.Wrapf(ErrInvalidArgument, "parse exponent: %q", orig)
		}
		exp = e
		s = s[:i]
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		exp -= int64(len(s) - i - 1)
		s = s[:i] + s[i+1:]
	}
	if exp > math.MaxInt32 || exp < math.MinInt32 {
		return errors.Wrapf(ErrOutOfRange, "exponent of %q", orig)
	}
	// big.Int accepts underscores and base prefixes in some forms; a decimal
	// mantissa is only sign and digits.
	if !isMantissa(s) {
		return errors.Wrapf(ErrInvalidArgument, "parse mantissa: %q", orig)
	}
	if _, ok := d.Coeff.SetString(s, 10); !ok {
		return errors.Wrapf(ErrInvalidArgument, "parse mantissa: %q", orig)
	}
	d.Exponent = int32(exp)
	return nil
}

func isMantissa(s string) bool {
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// NewFromFloat64 creates a new decimal from f. The conversion goes through
// the shortest decimal text that round-trips to f, so 0.1 becomes exactly
// 0.1 and not 0.1000000000000000055511151231257827. NaN and infinities
// return ErrInvalidArgument.
func NewFromFloat64(f float64) (*Decimal, error) {
	d := new(Decimal)
	if err := d.SetFloat64(f); err != nil {
		return nil, err
	}
	return d, nil
}

// SetFloat64 sets d to the decimal text value of f.
func (d *Decimal) SetFloat64(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.Wrapf(ErrInvalidArgument, "non-finite operand %v", f)
	}
	return d.SetString(strconv.FormatFloat(f, 'g', -1, 64))
}

// Float64 returns the float64 nearest to d. ErrOutOfRange is returned if d's
// magnitude is too large for a float64.
func (d *Decimal) Float64() (float64, error) {
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		if math.IsInf(f, 0) {
			return 0, errors.Wrapf(ErrOutOfRange, "%s overflows float64", d)
		}
		return 0, errors.Wrap(err, "Float64")
	}
	return f, nil
}

// String returns d in plain notation. Trailing zeros implied by a negative
// exponent are kept, so 1100 with exponent -2 prints as 11.00.
func (d *Decimal) String() string {
	s := d.Coeff.String()
	neg := d.Coeff.Sign() < 0
	if neg {
		s = s[1:]
	}
	if d.Exponent < 0 {
		if left := -int(d.Exponent) - len(s); left > 0 {
			s = "0." + strings.Repeat("0", left) + s
		} else if left < 0 {
			offset := -left
			s = s[:offset] + "." + s[offset:]
		} else {
			s = "0." + s
		}
	} else if d.Exponent > 0 && d.Coeff.Sign() != 0 {
		s += strings.Repeat("0", int(d.Exponent))
	}
	if neg {
		s = "-" + s
	}
	return s
}

// GoString implements fmt.GoStringer.
func (d *Decimal) GoString() string {
	return fmt.Sprintf(`{Coeff: %s, Exponent: %d}`, d.Coeff.String(), d.Exponent)
}

// Set sets d's Coefficient and Exponent from x and returns d.
func (d *Decimal) Set(x *Decimal) *Decimal {
	if d == x {
		return d
	}
	d.Coeff.Set(&x.Coeff)
	d.Exponent = x.Exponent
	return d
}

// Sign returns -1, 0 or +1 depending on the sign of d.
func (d *Decimal) Sign() int {
	return d.Coeff.Sign()
}

// IsZero reports whether d is zero, regardless of its exponent.
func (d *Decimal) IsZero() bool {
	return d.Coeff.Sign() == 0
}

// Neg sets d to -x and returns d.
func (d *Decimal) Neg(x *Decimal) *Decimal {
	d.Set(x)
	d.Coeff.Neg(&d.Coeff)
	return d
}

// Cmp compares d and x and returns:
//
//	-1 if d <  x
//	 0 if d == x
//	+1 if d >  x
func (d *Decimal) Cmp(x *Decimal) (int, error) {
	a, b, _, err := upscale(d, x)
	if err != nil {
		return 0, errors.Wrap(err, "Cmp")
	}
	return a.Cmp(b), nil
}

// upscale converts a and b to big.Ints with the same scaling, and their
// scaling. An error is produced if the exponents are too far apart.
func upscale(a, b *Decimal) (*big.Int, *big.Int, int32, error) {
	if a.Exponent == b.Exponent {
		return &a.Coeff, &b.Coeff, a.Exponent, nil
	}
	swapped := false
	if a.Exponent < b.Exponent {
		swapped = true
		b, a = a, b
	}
	s := int64(a.Exponent) - int64(b.Exponent)
	if s > maxUpscale {
		return nil, nil, 0, errors.Wrapf(ErrOutOfRange, "exponents %d and %d", a.Exponent, b.Exponent)
	}
	y := big.NewInt(s)
	e := new(big.Int).Exp(bigTen, y, nil)
	y.Mul(&a.Coeff, e)
	x := &b.Coeff
	if swapped {
		x, y = y, x
	}
	return y, x, b.Exponent, nil
}

// pow10 returns 10**n for n >= 0.
func pow10(n int64) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(n), nil)
}
