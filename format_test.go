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
	"testing"

	"github.com/pkg/errors"
)

func TestFormat(t *testing.T) {
	if s := Format(nil); s != "0.00" {
		t.Fatalf("expected 0.00, got %s", s)
	}
	v := 1234.5
	if s := Format(&v); s != "1234.50" {
		t.Fatalf("expected 1234.50, got %s", s)
	}
	if s := FormatFloat(-0.001); s != "0.00" {
		t.Fatalf("expected 0.00, got %s", s)
	}
	if s := FormatFloat(2.675); s != "2.68" {
		t.Fatalf("expected 2.68, got %s", s)
	}
	if s := FormatFloat(2.665); s != "2.66" {
		t.Fatalf("expected 2.66, got %s", s)
	}
}

func TestFormatPattern(t *testing.T) {
	tests := []struct {
		v       float64
		pattern string
		r       string
	}{
		{v: 0, pattern: "#0.00", r: "0.00"},
		{v: 11, pattern: "0.00", r: "11.00"},
		{v: 7.84313725, pattern: "0.00", r: "7.84"},
		{v: -7.845, pattern: "0.00", r: "-7.84"},
		{v: 1234567.891, pattern: "#,##0.00", r: "1,234,567.89"},
		{v: 123.4, pattern: "#,##0.00", r: "123.40"},
		{v: 1234, pattern: "#,####", r: "1234"},
		{v: 12345, pattern: "#,####", r: "1,2345"},
		{v: 1.5, pattern: "0.####", r: "1.5"},
		{v: 1.23456, pattern: "0.####", r: "1.2346"},
		{v: 2, pattern: "0.0#", r: "2.0"},
		{v: 0.5, pattern: "#.##", r: ".5"},
		{v: 0, pattern: "#.##", r: "0"},
		{v: 7, pattern: "000", r: "007"},
		{v: 2.5, pattern: "#", r: "2"},
		{v: 3.5, pattern: "#", r: "4"},
		{v: math.NaN(), pattern: "0.00", r: "NaN"},
		{v: math.Inf(-1), pattern: "0.00", r: "-∞"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%v %s", tc.v, tc.pattern), func(t *testing.T) {
			v := tc.v
			s, err := FormatPattern(&v, tc.pattern)
			if err != nil {
				t.Fatal(err)
			}
			if s != tc.r {
				t.Fatalf("expected %s, got %s", tc.r, s)
			}
		})
	}
}

func TestFormatPatternErrors(t *testing.T) {
	for _, pattern := range []string{
		"",
		".",
		"0#.00",
		"0.#0",
		"#,##0,",
		"$0.00",
		"0.00%",
	} {
		if _, err := FormatPattern(nil, pattern); errors.Cause(err) != ErrInvalidArgument {
			t.Errorf("%q: expected %v, got %v", pattern, ErrInvalidArgument, err)
		}
	}
}
