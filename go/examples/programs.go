// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package examples

import "github.com/intcode-vm/intcode/go/intcode"

// GetCompareExample compares its argument with 8, producing 999 if it is
// below, 1000 if it is equal, and 1001 if it is above.
func GetCompareExample() Example {
	return exampleSpec{
		Name: "compare",
		program: intcode.Program{
			3, 21, 1008, 21, 8, 20, 1005, 20, 22, 107, 8, 21, 20, 1006, 20, 31,
			1106, 0, 36, 98, 0, 0, 1002, 21, 125, 20, 4, 20, 1105, 1, 46, 104,
			999, 1105, 1, 46, 1101, 1000, 1, 20, 4, 20, 1105, 1, 46, 98, 99,
		},
		reference: compare,
	}.build()
}

func compare(n int) int {
	switch {
	case n < 8:
		return 999
	case n == 8:
		return 1000
	}
	return 1001
}

// GetSumExample sums up the numbers 1 to n, for n >= 0.
func GetSumExample() Example {
	/* Listing:
	0000: IN [100]
	0002: ADD 0, 0, [101]
	0006: JZ [100], 20
	0009: ADD [101], [100], [101]
	0013: ADD [100], -1, [100]
	0017: JNZ 1, 6
	0020: OUT [101]
	0022: HALT
	*/
	return exampleSpec{
		Name: "sum",
		program: intcode.Program{
			3, 100, 1101, 0, 0, 101, 1006, 100, 20, 1, 101, 100, 101,
			1001, 100, -1, 100, 1105, 1, 6, 4, 101, 99,
		},
		reference: sum,
	}.build()
}

func sum(n int) int {
	return n * (n + 1) / 2
}

// GetFactorialExample computes n! for n >= 0, wrapping on overflow.
func GetFactorialExample() Example {
	/* Listing:
	0000: IN [50]
	0002: ADD 1, 0, [51]
	0006: JZ [50], 20
	0009: MUL [51], [50], [51]
	0013: ADD [50], -1, [50]
	0017: JNZ 1, 6
	0020: OUT [51]
	0022: HALT
	*/
	return exampleSpec{
		Name: "factorial",
		program: intcode.Program{
			3, 50, 1101, 1, 0, 51, 1006, 50, 20, 2, 51, 50, 51,
			1001, 50, -1, 50, 1105, 1, 6, 4, 51, 99,
		},
		reference: factorial,
	}.build()
}

func factorial(n int) int {
	res := 1
	for i := 2; i <= n; i++ {
		res *= i
	}
	return res
}

// GetFibExample computes the n-th Fibonacci number for n >= 0. The two
// running values are addressed relative to a base of 200.
func GetFibExample() Example {
	/* Listing:
	0000: IN [102]
	0002: ARB 200
	0004: ADD 0, 0, [rb+0]
	0008: ADD 0, 1, [rb+1]
	0012: JZ [102], 34
	0015: ADD [rb+0], [rb+1], [rb+2]
	0019: ADD [rb+1], 0, [rb+0]
	0023: ADD [rb+2], 0, [rb+1]
	0027: ADD [102], -1, [102]
	0031: JNZ 1, 12
	0034: OUT [rb+0]
	0036: HALT
	*/
	return exampleSpec{
		Name: "fib",
		program: intcode.Program{
			3, 102, 109, 200, 21101, 0, 0, 0, 21101, 0, 1, 1, 1006, 102, 34,
			22201, 0, 1, 2, 21201, 1, 0, 0, 21201, 2, 0, 1,
			1001, 102, -1, 102, 1105, 1, 12, 204, 0, 99,
		},
		reference: fib,
	}.build()
}

func fib(n int) int {
	a, b := 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a
}
