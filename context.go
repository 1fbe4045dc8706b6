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
	"math"
	"math/big"

	"github.com/pkg/errors"
)

// Add sets d to the exact sum x+y. No rounding is done.
func (p Policy) Add(d, x, y *Decimal) error {
	a, b, s, err := upscale(x, y)
	if err != nil {
		return errors.Wrap(err, "Add")
	}
	d.Coeff.Add(a, b)
	d.Exponent = s
	return nil
}

// Sub sets d to the exact difference x-y. No rounding is done.
func (p Policy) Sub(d, x, y *Decimal) error {
	a, b, s, err := upscale(x, y)
	if err != nil {
		return errors.Wrap(err, "Sub")
	}
	d.Coeff.Sub(a, b)
	d.Exponent = s
	return nil
}

// Mul sets d to the exact product x*y. No rounding is done.
func (p Policy) Mul(d, x, y *Decimal) error {
	e := int64(x.Exponent) + int64(y.Exponent)
	if e > math.MaxInt32 || e < math.MinInt32 {
		return errors.Wrapf(ErrOutOfRange, "Mul: exponent %d", e)
	}
	d.Coeff.Mul(&x.Coeff, &y.Coeff)
	d.Exponent = int32(e)
	return nil
}

// Quo sets d to the quotient x/y with p's scale, rounded by p's rounding
// rule. Division is the one step that rounds: a decimal quotient need not
// terminate.
func (p Policy) Quo(d, x, y *Decimal) error {
	if y.IsZero() {
		return errors.Wrapf(ErrDivisionByZero, "Quo: %s / %s", x, y)
	}
	// x/y * 10^scale = (xc/yc) * 10^k. Scale whichever side keeps k
	// non-negative, then round the integer quotient.
	k := int64(x.Exponent) - int64(y.Exponent) + int64(p.scale)
	if k > maxUpscale || -k > maxUpscale {
		return errors.Wrapf(ErrOutOfRange, "Quo: exponents %d and %d", x.Exponent, y.Exponent)
	}
	num, den := &x.Coeff, &y.Coeff
	if k > 0 {
		num = new(big.Int).Mul(num, pow10(k))
	} else if k < 0 {
		den = new(big.Int).Mul(den, pow10(-k))
	}
	q := new(big.Int)
	p.rounding.roundQuo(q, num, den)
	d.Coeff.Set(q)
	d.Exponent = -p.scale
	return nil
}

// Round sets d to x with exactly p's scale fractional digits, rounded by p's
// rounding rule.
func (p Policy) Round(d, x *Decimal) error {
	return errors.Wrap(p.rounding.quantize(d, x, p.scale), "Round")
}

// Apply performs the binary step op: d = x op y.
func (p Policy) Apply(op Op, d, x, y *Decimal) error {
	switch op {
	case OpAdd:
		return p.Add(d, x, y)
	case OpSub:
		return p.Sub(d, x, y)
	case OpMul:
		return p.Mul(d, x, y)
	case OpQuo:
		return p.Quo(d, x, y)
	default:
		return errors.Wrapf(ErrInvalidArgument, "unknown operation %d", uint8(op))
	}
}
