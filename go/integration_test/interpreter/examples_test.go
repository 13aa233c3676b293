// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package interpreter

import (
	"fmt"
	"testing"

	"github.com/intcode-vm/intcode/go/examples"
)

var testExamples = examples.GetAllExamples()

func TestExamples_ComputesCorrectResult(t *testing.T) {
	for _, example := range testExamples {
		for _, variant := range getAllInterpreterVariantsForTests() {
			vm, err := newInterpreter(variant)
			if err != nil {
				t.Fatalf("failed to load %s interpreter: %v", variant, err)
			}
			for i := 0; i < 15; i++ {
				t.Run(fmt.Sprintf("%s-%s-%d", example.Name, variant, i), func(t *testing.T) {
					want := example.RunReference(i)
					got, err := example.RunOn(vm, i)
					if err != nil {
						t.Fatalf("error running program: %v", err)
					}
					if want != got {
						t.Fatalf("incorrect result, wanted %d, got %d", want, got)
					}
				})
			}
		}
	}
}

func TestExamples_MissingInputIsReported(t *testing.T) {
	for _, example := range testExamples {
		for _, variant := range getAllInterpreterVariantsForTests() {
			vm, err := newInterpreter(variant)
			if err != nil {
				t.Fatalf("failed to load %s interpreter: %v", variant, err)
			}
			t.Run(fmt.Sprintf("%s-%s", example.Name, variant), func(t *testing.T) {
				_, err := vm.Run(example.Program())
				if err == nil {
					t.Fatalf("expected starvation error")
				}
			})
		}
	}
}

func BenchmarkSum(b *testing.B) {
	for _, i := range []int{1, 10, 100, 1000} {
		b.Run(fmt.Sprintf("%d", i), func(b *testing.B) {
			benchmark(b, examples.GetSumExample(), i)
		})
	}
}

func BenchmarkFib(b *testing.B) {
	for _, i := range []int{1, 5, 10, 20, 50} {
		b.Run(fmt.Sprintf("%d", i), func(b *testing.B) {
			benchmark(b, examples.GetFibExample(), i)
		})
	}
}

func BenchmarkFactorial(b *testing.B) {
	for _, i := range []int{1, 10, 20} {
		b.Run(fmt.Sprintf("%d", i), func(b *testing.B) {
			benchmark(b, examples.GetFactorialExample(), i)
		})
	}
}

func benchmark(b *testing.B, example examples.Example, arg int) {
	// compute expected value
	wanted := example.RunReference(arg)

	for _, variant := range getAllInterpreterVariantsForTests() {
		vm, err := newInterpreter(variant)
		if err != nil {
			b.Fatalf("failed to load %s interpreter: %v", variant, err)
		}
		b.Run(variant, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				got, err := example.RunOn(vm, arg)
				if err != nil {
					b.Fatalf("running the %s example failed: %v", example.Name, err)
				}
				if wanted != got {
					b.Fatalf("unexpected result, wanted %d, got %d", wanted, got)
				}
			}
		})
	}
}
