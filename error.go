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

import "github.com/pkg/errors"

// Errors returned by this package are wrapped with context; compare them with
// errors.Is or errors.Cause.
var (
	// ErrInvalidArgument is returned for a negative or too large scale, an
	// unknown rounding rule, a non-finite operand or unparsable text.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDivisionByZero is returned when a divisor is exactly zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOutOfRange is returned when a value or exponent cannot be
	// represented, such as a result that overflows float64.
	ErrOutOfRange = errors.New("out of range")
)

// ErrDecimal performs operations on decimals and collects errors during
// operations. If an error is already set, the operation is skipped. Designed to
// be used for many operations in a row, with a single error check at the end.
type ErrDecimal struct {
	err error
	Ctx Policy
}

// MakeErrDecimal creates a ErrDecimal with given policy.
func MakeErrDecimal(p Policy) ErrDecimal {
	return ErrDecimal{Ctx: p}
}

// Err returns the first error encountered or nil.
func (e *ErrDecimal) Err() error {
	return e.err
}

// Add performs e.Ctx.Add(d, x, y).
func (e *ErrDecimal) Add(d, x, y *Decimal) *Decimal {
	if e.err != nil {
		return d
	}
	e.err = e.Ctx.Add(d, x, y)
	return d
}

// Sub performs e.Ctx.Sub(d, x, y).
func (e *ErrDecimal) Sub(d, x, y *Decimal) *Decimal {
	if e.err != nil {
		return d
	}
	e.err = e.Ctx.Sub(d, x, y)
	return d
}

// Mul performs e.Ctx.Mul(d, x, y).
func (e *ErrDecimal) Mul(d, x, y *Decimal) *Decimal {
	if e.err != nil {
		return d
	}
	e.err = e.Ctx.Mul(d, x, y)
	return d
}

// Quo performs e.Ctx.Quo(d, x, y).
func (e *ErrDecimal) Quo(d, x, y *Decimal) *Decimal {
	if e.err != nil {
		return d
	}
	e.err = e.Ctx.Quo(d, x, y)
	return d
}

// Round performs e.Ctx.Round(d, x).
func (e *ErrDecimal) Round(d, x *Decimal) *Decimal {
	if e.err != nil {
		return d
	}
	e.err = e.Ctx.Round(d, x)
	return d
}

// Apply performs op on d, x and y.
func (e *ErrDecimal) Apply(op Op, d, x, y *Decimal) *Decimal {
	if e.err != nil {
		return d
	}
	e.err = e.Ctx.Apply(op, d, x, y)
	return d
}
