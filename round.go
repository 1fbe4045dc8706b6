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
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// RoundingRule selects how a value that cannot be represented at a Policy's
// scale is resolved.
type RoundingRule uint8

const (
	// RoundHalfUp rounds up if the discarded digits are >= 0.5; commercial
	// rounding, half away from zero.
	RoundHalfUp RoundingRule = iota
	// RoundHalfDown rounds up if the discarded digits are > 0.5.
	RoundHalfDown
	// RoundHalfEven rounds up if the discarded digits are > 0.5. If they are
	// exactly 0.5, it rounds up if the previous digit is odd, always producing
	// an even digit.
	RoundHalfEven
	// RoundUp rounds away from 0.
	RoundUp
	// RoundDown rounds toward 0; truncate.
	RoundDown
	// RoundCeiling rounds towards +Inf.
	RoundCeiling
	// RoundFloor rounds towards -Inf.
	RoundFloor

	numRoundingRules
)

var roundingNames = [numRoundingRules]string{
	RoundHalfUp:   "half_up",
	RoundHalfDown: "half_down",
	RoundHalfEven: "half_even",
	RoundUp:       "up",
	RoundDown:     "down",
	RoundCeiling:  "ceiling",
	RoundFloor:    "floor",
}

// Rounder reports whether 1 should be added to the absolute value of a number
// being rounded. result is the truncated value the 1 would be added to, neg is
// the sign of the unrounded value (result may be zero, so it cannot carry the
// sign itself). half is -1 if the discarded digits are < 0.5, 0 if = 0.5, or
// 1 if > 0.5. A Rounder is only consulted when discarded digits are non-zero.
type Rounder func(result *big.Int, neg bool, half int) bool

var rounders = [numRoundingRules]Rounder{
	RoundHalfUp:   roundHalfUp,
	RoundHalfDown: roundHalfDown,
	RoundHalfEven: roundHalfEven,
	RoundUp:       roundUp,
	RoundDown:     roundDown,
	RoundCeiling:  roundCeiling,
	RoundFloor:    roundFloor,
}

func roundDown(result *big.Int, neg bool, half int) bool {
	return false
}

func roundUp(result *big.Int, neg bool, half int) bool {
	return true
}

func roundHalfUp(result *big.Int, neg bool, half int) bool {
	return half >= 0
}

func roundHalfEven(result *big.Int, neg bool, half int) bool {
	if half > 0 {
		return true
	}
	if half < 0 {
		return false
	}
	return result.Bit(0) == 1
}

func roundHalfDown(result *big.Int, neg bool, half int) bool {
	return half > 0
}

func roundFloor(result *big.Int, neg bool, half int) bool {
	return neg
}

func roundCeiling(result *big.Int, neg bool, half int) bool {
	return !neg
}

// Valid reports whether r is one of the defined rounding rules.
func (r RoundingRule) Valid() bool {
	return r < numRoundingRules
}

// Rounder returns the decision function for r. Unknown rules use
// RoundHalfUp.
func (r RoundingRule) Rounder() Rounder {
	if !r.Valid() {
		return roundHalfUp
	}
	return rounders[r]
}

func (r RoundingRule) String() string {
	if !r.Valid() {
		return "unknown"
	}
	return roundingNames[r]
}

// ParseRoundingRule returns the rule named s. Names are matched case
// insensitively and may use '-' in place of '_' (half-even).
func ParseRoundingRule(s string) (RoundingRule, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for r, n := range roundingNames {
		if n == name {
			return RoundingRule(r), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown rounding rule %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (r RoundingRule) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown rounding rule %d", uint8(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *RoundingRule) UnmarshalText(text []byte) error {
	v, err := ParseRoundingRule(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// roundQuo sets q to num/den rounded to an integer by r. q must not alias num
// or den.
func (r RoundingRule) roundQuo(q, num, den *big.Int) {
	m := new(big.Int)
	q.QuoRem(num, den, m)
	if m.Sign() == 0 {
		return
	}
	neg := (num.Sign() < 0) != (den.Sign() < 0)
	// Compare the discarded fraction |m/den| against one half.
	m.Abs(m)
	m.Mul(m, bigTwo)
	half := m.CmpAbs(den)
	if r.Rounder()(q, neg, half) {
		roundAddOne(q, neg)
	}
}

// roundAddOne adds 1 to abs(b).
func roundAddOne(b *big.Int, neg bool) {
	if neg {
		b.Sub(b, bigOne)
	} else {
		b.Add(b, bigOne)
	}
}

// quantize sets d to x with exactly scale fractional digits, rounding by r
// when digits are discarded.
func (r RoundingRule) quantize(d, x *Decimal, scale int32) error {
	target := -int64(scale)
	diff := target - int64(x.Exponent)
	if diff > maxUpscale || -diff > maxUpscale {
		return errors.Wrapf(ErrOutOfRange, "quantize exponent %d to scale %d", x.Exponent, scale)
	}
	switch {
	case diff == 0:
		d.Set(x)
	case diff < 0:
		// Adding trailing zeros is exact.
		d.Coeff.Mul(&x.Coeff, pow10(-diff))
		d.Exponent = int32(target)
	default:
		q := new(big.Int)
		r.roundQuo(q, &x.Coeff, pow10(diff))
		d.Coeff.Set(q)
		d.Exponent = int32(target)
	}
	return nil
}
