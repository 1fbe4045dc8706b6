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
	"strings"

	"github.com/pkg/errors"
)

// DefaultPattern is the display pattern used by Format.
const DefaultPattern = "#0.00"

// Format renders v with DefaultPattern. A nil v is formatted as zero.
func Format(v *float64) string {
	s, err := FormatPattern(v, DefaultPattern)
	if err != nil {
		// DefaultPattern always parses.
		panic(err)
	}
	return s
}

// FormatFloat renders v with exactly two fractional digits.
func FormatFloat(v float64) string {
	return Format(&v)
}

// FormatPattern renders v with a numeric display pattern. A nil v is
// formatted as zero. The supported patterns are the digit forms of a decimal
// format:
//
//	#,##0.00   minimum one integer digit, groups of three, two decimals
//	0.####     at most four decimals, trailing zeros dropped
//
// In the integer part '0' is a required digit, '#' an optional one and ','
// a grouping separator whose distance from the end of the integer part sets
// the group size. In the fraction '0' digits are always shown and '#' digits
// only if non-zero. Values are rounded half even to the number of fraction
// digits. ErrInvalidArgument is returned for a malformed pattern.
func FormatPattern(v *float64, pattern string) (string, error) {
	pat, err := parsePattern(pattern)
	if err != nil {
		return "", err
	}
	f := 0.0
	if v != nil {
		f = *v
	}
	switch {
	case math.IsNaN(f):
		return "NaN", nil
	case math.IsInf(f, 1):
		return "∞", nil
	case math.IsInf(f, -1):
		return "-∞", nil
	}
	d, err := NewFromFloat64(f)
	if err != nil {
		return "", err
	}
	if err := RoundHalfEven.quantize(d, d, int32(pat.maxFrac)); err != nil {
		return "", errors.Wrap(err, "format")
	}
	return pat.render(d), nil
}

type numberPattern struct {
	minInt  int
	group   int
	minFrac int
	maxFrac int
}

func parsePattern(s string) (numberPattern, error) {
	var pat numberPattern
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	invalid := func() (numberPattern, error) {
		return numberPattern{}, errors.Wrapf(ErrInvalidArgument, "malformed pattern %q", s)
	}
	digits, lastComma := 0, -1
	for i := 0; i < len(intPart); i++ {
		switch intPart[i] {
		case '#':
			if pat.minInt > 0 {
				// An optional digit cannot follow a required one.
				return invalid()
			}
		case '0':
			pat.minInt++
		case ',':
			lastComma = digits
			continue
		default:
			return invalid()
		}
		digits++
	}
	if lastComma >= 0 {
		pat.group = digits - lastComma
		if pat.group == 0 {
			return invalid()
		}
	}
	for i := 0; i < len(fracPart); i++ {
		switch fracPart[i] {
		case '0':
			if pat.maxFrac > pat.minFrac {
				return invalid()
			}
			pat.minFrac++
		case '#':
		default:
			return invalid()
		}
		pat.maxFrac++
	}
	if digits == 0 && pat.maxFrac == 0 {
		return invalid()
	}
	if pat.maxFrac > MaxScale {
		return invalid()
	}
	return pat, nil
}

// render writes d, which already has maxFrac fractional digits.
func (pat numberPattern) render(d *Decimal) string {
	s := d.String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intDigits, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intDigits, frac = s[:i], s[i+1:]
	}
	for len(frac) > pat.minFrac && frac[len(frac)-1] == '0' {
		frac = frac[:len(frac)-1]
	}
	intDigits = strings.TrimLeft(intDigits, "0")
	if n := pat.minInt - len(intDigits); n > 0 {
		intDigits = strings.Repeat("0", n) + intDigits
	}
	if pat.group > 0 && len(intDigits) > pat.group {
		var b strings.Builder
		lead := len(intDigits) % pat.group
		if lead > 0 {
			b.WriteString(intDigits[:lead])
		}
		for i := lead; i < len(intDigits); i += pat.group {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intDigits[i : i+pat.group])
		}
		intDigits = b.String()
	}
	if intDigits == "" && frac == "" {
		intDigits = "0"
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(intDigits)
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
