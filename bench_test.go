// Copyright 2017 The Cockroach Authors.
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
	"math/rand"
	"testing"
)

// runBenches benchmarks op folded over random float64 operands for
// combinations of:
//
//	scale:     the policy scale results are rounded to
//	magnitude: operands lie in (-10^magnitude, 10^magnitude)
//	operands:  length of each operand sequence
func runBenches(b *testing.B, op Op, scales, magnitudes, operands []int) {
	for _, s := range scales {
		p := MustPolicy(s)
		for _, m := range magnitudes {
			for _, n := range operands {
				seqs := make([][]float64, 100)
				for i := range seqs {
					seqs[i] = make([]float64, n)
					for j := range seqs[i] {
						seqs[i][j] = (rand.Float64()*2 - 1) * float64(pow10(int64(m)).Int64())
						if seqs[i][j] == 0 {
							seqs[i][j] = 1
						}
					}
				}
				b.Run(fmt.Sprintf("S%d/M%d/N%d", s, m, n), func(b *testing.B) {
					for i := 0; i < b.N; i++ {
						seq := seqs[i%len(seqs)]
						if _, err := p.Eval(op, seq[0], seq[1:]...); err != nil {
							b.Fatal(err)
						}
					}
				})
			}
		}
	}
}

func BenchmarkAdd(b *testing.B) {
	runBenches(b, OpAdd, []int{2, 8}, []int{0, 6}, []int{2, 10})
}

func BenchmarkMul(b *testing.B) {
	runBenches(b, OpMul, []int{2, 8}, []int{0, 3}, []int{2, 5})
}

func BenchmarkQuo(b *testing.B) {
	runBenches(b, OpQuo, []int{2, 8, 20}, []int{0, 6}, []int{2, 5})
}

func BenchmarkFormat(b *testing.B) {
	v := 1234567.891
	for i := 0; i < b.N; i++ {
		if _, err := FormatPattern(&v, "#,##0.00"); err != nil {
			b.Fatal(err)
		}
	}
}
