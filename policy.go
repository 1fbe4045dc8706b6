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

	"github.com/pkg/errors"
)

// MaxScale is the largest scale a Policy accepts.
const MaxScale = 1000

// Policy is the precision policy results are rounded with: how many
// fractional digits to keep and which rule resolves the digits dropped. A
// Policy is an immutable value and safe for concurrent use; the zero value is
// scale 0 with RoundHalfUp.
type Policy struct {
	scale    int32
	rounding RoundingRule
}

// Default policies, built once and never mutated.
var (
	// DefaultPolicy keeps 2 fractional digits and rounds half up.
	DefaultPolicy = MustPolicy(2)
	// FourDigitPolicy keeps 4 fractional digits and rounds half up.
	FourDigitPolicy = MustPolicy(4)
	// EightDigitPolicy keeps 8 fractional digits and rounds half up. It is
	// meant for high-precision division.
	EightDigitPolicy = MustPolicy(8)
)

// NewPolicy returns a Policy keeping scale fractional digits with
// RoundHalfUp.
func NewPolicy(scale int) (Policy, error) {
	return NewPolicyWithRounding(scale, RoundHalfUp)
}

// NewPolicyWithRounding returns a Policy keeping scale fractional digits and
// rounding with r. ErrInvalidArgument is returned if scale is negative or
// above MaxScale, or r is unknown.
func NewPolicyWithRounding(scale int, r RoundingRule) (Policy, error) {
	if err := checkScale(scale); err != nil {
		return Policy{}, err
	}
	if !r.Valid() {
		return Policy{}, errors.Wrapf(ErrInvalidArgument, "unknown rounding rule %d", uint8(r))
	}
	return Policy{scale: int32(scale), rounding: r}, nil
}

// MustPolicy is like NewPolicy but panics on error.
func MustPolicy(scale int) Policy {
	return MustPolicyWithRounding(scale, RoundHalfUp)
}

// MustPolicyWithRounding is like NewPolicyWithRounding but panics on error.
func MustPolicyWithRounding(scale int, r RoundingRule) Policy {
	p, err := NewPolicyWithRounding(scale, r)
	if err != nil {
		panic(err)
	}
	return p
}

func checkScale(scale int) error {
	if scale < 0 {
		return errors.Wrapf(ErrInvalidArgument, "scale %d must be a positive integer or zero", scale)
	}
	if scale > MaxScale {
		return errors.Wrapf(ErrInvalidArgument, "scale %d exceeds %d", scale, MaxScale)
	}
	return nil
}

// Scale returns the number of fractional digits p keeps.
func (p Policy) Scale() int {
	return int(p.scale)
}

// Rounding returns p's rounding rule.
func (p Policy) Rounding() RoundingRule {
	return p.rounding
}

// WithScale returns a copy of p with the given scale.
func (p Policy) WithScale(scale int) (Policy, error) {
	return NewPolicyWithRounding(scale, p.rounding)
}

// WithRounding returns a copy of p with the given rounding rule.
func (p Policy) WithRounding(r RoundingRule) (Policy, error) {
	return NewPolicyWithRounding(int(p.scale), r)
}

func (p Policy) String() string {
	return fmt.Sprintf("scale=%d rounding=%s", p.scale, p.rounding)
}
