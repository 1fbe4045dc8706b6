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

// Package arith performs exact decimal arithmetic on float64 operands.
//
// Each operand is converted to a Decimal through its shortest decimal text,
// so 0.1 is exactly one tenth rather than the nearest binary fraction. The
// operands are folded left to right with a single operation and the result is
// rounded with a Policy, which fixes the number of fractional digits kept and
// the RoundingRule used to drop the rest:
//
//	sum, _ := arith.Add(0.1, 0.2)            // 0.3, not 0.30000000000000004
//	q, _ := arith.DivToEight(8, 1.02)        // 7.84313725
//	p, _ := arith.MulWith(arith.MustPolicyWithRounding(2, arith.RoundDown), 371.29, 1.01)
//
// All functions are pure and safe for concurrent use.
package arith

// Add returns the sum of its operands rounded with DefaultPolicy.
func Add(first float64, rest ...float64) (float64, error) {
	return DefaultPolicy.Eval(OpAdd, first, rest...)
}

// AddWith returns the sum of its operands rounded with p.
func AddWith(p Policy, first float64, rest ...float64) (float64, error) {
	return p.Eval(OpAdd, first, rest...)
}

// Sub returns first minus each of rest in order, rounded with
// DefaultPolicy.
func Sub(first float64, rest ...float64) (float64, error) {
	return DefaultPolicy.Eval(OpSub, first, rest...)
}

// SubToFour is Sub rounded with FourDigitPolicy.
func SubToFour(first float64, rest ...float64) (float64, error) {
	return FourDigitPolicy.Eval(OpSub, first, rest...)
}

// SubWith returns first minus each of rest in order, rounded with p.
func SubWith(p Policy, first float64, rest ...float64) (float64, error) {
	return p.Eval(OpSub, first, rest...)
}

// Mul returns the product of its operands rounded with DefaultPolicy.
func Mul(first float64, rest ...float64) (float64, error) {
	return DefaultPolicy.Eval(OpMul, first, rest...)
}

// MulWith returns the product of its operands rounded with p.
func MulWith(p Policy, first float64, rest ...float64) (float64, error) {
	return p.Eval(OpMul, first, rest...)
}

// Div divides first by each of rest in order, rounding every quotient with
// DefaultPolicy. ErrDivisionByZero is returned if any of rest is zero.
func Div(first float64, rest ...float64) (float64, error) {
	return DefaultPolicy.Eval(OpQuo, first, rest...)
}

// DivToFour is Div with FourDigitPolicy.
func DivToFour(first float64, rest ...float64) (float64, error) {
	return FourDigitPolicy.Eval(OpQuo, first, rest...)
}

// DivToEight is Div with EightDigitPolicy.
func DivToEight(first float64, rest ...float64) (float64, error) {
	return EightDigitPolicy.Eval(OpQuo, first, rest...)
}

// DivWith divides first by each of rest in order, rounding every quotient
// with p.
func DivWith(p Policy, first float64, rest ...float64) (float64, error) {
	return p.Eval(OpQuo, first, rest...)
}

// Round rounds v to scale fractional digits, half up. ErrInvalidArgument is
// returned if scale is negative.
func Round(v float64, scale int) (float64, error) {
	p, err := NewPolicy(scale)
	if err != nil {
		return 0, err
	}
	return p.Eval(OpAdd, v)
}

// Compare reports whether a >= b, comparing the decimal values of a and b.
// It is false if either is NaN.
func Compare(a, b float64) bool {
	x, errX := NewFromFloat64(a)
	y, errY := NewFromFloat64(b)
	if errX != nil || errY != nil {
		// Infinities order as floats do; NaN compares false.
		return a >= b
	}
	c, err := x.Cmp(y)
	if err != nil {
		return a >= b
	}
	return c >= 0
}
