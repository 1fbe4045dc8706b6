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
	"testing"

	"github.com/pkg/errors"
)

func TestRound(t *testing.T) {
	tests := map[RoundingRule][]struct {
		x string
		s int32
		r string
	}{
		RoundDown: {
			{x: "12", s: 0, r: "12"},
			{x: "12.9", s: 0, r: "12"},
			{x: "-12.9", s: 0, r: "-12"},
			{x: "375.0029", s: 2, r: "375.00"},
			{x: "1234.5678e10", s: 1, r: "12345678000000.0"},
			{x: "-0.004", s: 2, r: "0.00"},
		},
		RoundUp: {
			{x: "12.01", s: 0, r: "13"},
			{x: "-12.01", s: 0, r: "-13"},
			{x: "12.00", s: 0, r: "12"},
			{x: "0.001", s: 2, r: "0.01"},
		},
		RoundHalfUp: {
			{x: "1.4", s: 0, r: "1"},
			{x: "1.5", s: 0, r: "2"},
			{x: "1.6", s: 0, r: "2"},
			{x: "-1.5", s: 0, r: "-2"},
			{x: "2.345", s: 2, r: "2.35"},
			{x: "2.3449999", s: 2, r: "2.34"},
			{x: "9.995", s: 2, r: "10.00"},
			{x: "11", s: 2, r: "11.00"},
		},
		RoundHalfDown: {
			{x: "1.5", s: 0, r: "1"},
			{x: "1.51", s: 0, r: "2"},
			{x: "-1.5", s: 0, r: "-1"},
			{x: "2.345", s: 2, r: "2.34"},
		},
		RoundHalfEven: {
			{x: "1.4", s: 0, r: "1"},
			{x: "1.5", s: 0, r: "2"},
			{x: "2.5", s: 0, r: "2"},
			{x: "2.51", s: 0, r: "3"},
			{x: "-2.5", s: 0, r: "-2"},
			{x: "-3.5", s: 0, r: "-4"},
			{x: "2.345", s: 2, r: "2.34"},
			{x: "2.355", s: 2, r: "2.36"},
		},
		RoundCeiling: {
			{x: "1.01", s: 0, r: "2"},
			{x: "-1.99", s: 0, r: "-1"},
			{x: "-0.001", s: 2, r: "0.00"},
			{x: "0.001", s: 2, r: "0.01"},
		},
		RoundFloor: {
			{x: "1.99", s: 0, r: "1"},
			{x: "-1.01", s: 0, r: "-2"},
			{x: "-0.001", s: 2, r: "-0.01"},
			{x: "0.001", s: 2, r: "0.00"},
		},
	}
	for rule, tcs := range tests {
		t.Run(rule.String(), func(t *testing.T) {
			for _, tc := range tcs {
				t.Run(fmt.Sprintf("%s, %d", tc.x, tc.s), func(t *testing.T) {
					x := newDecimal(t, tc.x)
					d := new(Decimal)
					if err := rule.quantize(d, x, tc.s); err != nil {
						t.Fatal(err)
					}
					if r := d.String(); r != tc.r {
						t.Fatalf("expected %s, got %s", tc.r, r)
					}
				})
			}
		})
	}
}

func TestRoundIdempotent(t *testing.T) {
	for r := RoundingRule(0); r.Valid(); r++ {
		for _, s := range []string{"2.345", "-7.005", "0.125", "1e-9", "123456.789"} {
			x := newDecimal(t, s)
			once, twice := new(Decimal), new(Decimal)
			if err := r.quantize(once, x, 2); err != nil {
				t.Fatal(err)
			}
			if err := r.quantize(twice, once, 2); err != nil {
				t.Fatal(err)
			}
			if once.String() != twice.String() {
				t.Errorf("%s %s: %s then %s", r, s, once, twice)
			}
		}
	}
}

func TestQuantizeOutOfRange(t *testing.T) {
	x := New(1, -maxUpscale-10)
	if err := RoundHalfUp.quantize(new(Decimal), x, 2); errors.Cause(err) != ErrOutOfRange {
		t.Fatalf("expected %v, got %v", ErrOutOfRange, err)
	}
}

func TestParseRoundingRule(t *testing.T) {
	tests := map[string]RoundingRule{
		"half_up":   RoundHalfUp,
		"HALF-EVEN": RoundHalfEven,
		" down ":    RoundDown,
		"floor":     RoundFloor,
		"ceiling":   RoundCeiling,
		"up":        RoundUp,
		"half_down": RoundHalfDown,
	}
	for s, want := range tests {
		got, err := ParseRoundingRule(s)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if got != want {
			t.Fatalf("%q: expected %s, got %s", s, want, got)
		}
	}
	if _, err := ParseRoundingRule("nearest"); errors.Cause(err) != ErrInvalidArgument {
		t.Fatalf("expected %v, got %v", ErrInvalidArgument, err)
	}

	var r RoundingRule
	if err := r.UnmarshalText([]byte("half_even")); err != nil || r != RoundHalfEven {
		t.Fatalf("UnmarshalText: %v, %s", err, r)
	}
	if b, err := RoundFloor.MarshalText(); err != nil || string(b) != "floor" {
		t.Fatalf("MarshalText: %v, %s", err, b)
	}
	if _, err := RoundingRule(200).MarshalText(); errors.Cause(err) != ErrInvalidArgument {
		t.Fatalf("expected %v, got %v", ErrInvalidArgument, err)
	}
}
