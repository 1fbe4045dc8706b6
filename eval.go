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
	"strings"

	"github.com/pkg/errors"
)

// Op is the binary operation an operand sequence is folded with.
type Op uint8

const (
	// OpAdd folds with exact addition.
	OpAdd Op = iota
	// OpSub subtracts every later operand from the first.
	OpSub
	// OpMul folds with exact multiplication.
	OpMul
	// OpQuo divides the first operand by every later operand, rounding each
	// quotient.
	OpQuo

	numOps
)

var opNames = [numOps]string{
	OpAdd: "add",
	OpSub: "sub",
	OpMul: "mul",
	OpQuo: "div",
}

// Valid reports whether op is a defined operation.
func (op Op) Valid() bool {
	return op < numOps
}

func (op Op) String() string {
	if !op.Valid() {
		return "unknown"
	}
	return opNames[op]
}

// ParseOp returns the operation named s: add, sub, mul or div.
func ParseOp(s string) (Op, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for op, n := range opNames {
		if n == name {
			return Op(op), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown operation %q", s)
}

// EvalDecimal folds first and rest left to right with op and returns the
// result with p's scale. Add, Sub and Mul are exact until a single final
// rounding; Quo rounds every quotient with p. With no rest operands, first
// is only rounded. Divisors are checked before any arithmetic is done, so a
// failed call does no partial work. The operands are not modified.
func (p Policy) EvalDecimal(op Op, first *Decimal, rest ...*Decimal) (*Decimal, error) {
	if !op.Valid() {
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown operation %d", uint8(op))
	}
	if op == OpQuo {
		for i, y := range rest {
			if y.IsZero() {
				return nil, errors.Wrapf(ErrDivisionByZero, "%s: operand %d", op, i+1)
			}
		}
	}
	ed := MakeErrDecimal(p)
	d := new(Decimal).Set(first)
	for _, y := range rest {
		ed.Apply(op, d, d, y)
	}
	ed.Round(d, d)
	if err := ed.Err(); err != nil {
		return nil, errors.Wrap(err, op.String())
	}
	return d, nil
}

// Eval is EvalDecimal over float64 operands. Each operand is converted
// through its shortest decimal text, and the rounded result is converted back
// to the nearest float64.
func (p Policy) Eval(op Op, first float64, rest ...float64) (float64, error) {
	x, err := NewFromFloat64(first)
	if err != nil {
		return 0, errors.Wrap(err, op.String())
	}
	ys := make([]*Decimal, len(rest))
	for i, f := range rest {
		if ys[i], err = NewFromFloat64(f); err != nil {
			return 0, errors.Wrap(err, op.String())
		}
	}
	d, err := p.EvalDecimal(op, x, ys...)
	if err != nil {
		return 0, err
	}
	return d.Float64()
}
