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

import (
	"fmt"

	"github.com/intcode-vm/intcode/go/intcode"
)

// Example is an executable description of a program with a (int)->int
// signature: it reads a single input and produces a single output.
type Example struct {
	exampleSpec
	hash intcode.Hash // the hash of the program
}

// exampleSpec specifies a program with a (int)->int signature.
type exampleSpec struct {
	Name      string
	program   intcode.Program // the program computing the function
	reference func(int) int   // a reference function computing the same function
}

func (s exampleSpec) build() Example {
	return Example{
		exampleSpec: s,
		hash:        s.program.Hash(),
	}
}

// Program returns a copy of the program of this example.
func (e *Example) Program() intcode.Program {
	return e.program.Clone()
}

// Hash returns the fingerprint of the program of this example.
func (e *Example) Hash() intcode.Hash {
	return e.hash
}

// RunOn runs this example on the given interpreter, using the given argument.
func (e *Example) RunOn(interpreter intcode.Interpreter, argument int) (int, error) {
	outputs, err := interpreter.Run(e.program, intcode.Word(argument))
	if err != nil {
		return 0, err
	}
	if len(outputs) != 1 {
		return 0, fmt.Errorf("unexpected number of outputs; wanted 1, got %d", len(outputs))
	}
	return int(outputs[0]), nil
}

// RunReference runs the reference function of this example to produce the
// expected result.
func (e *Example) RunReference(argument int) int {
	return e.reference(argument)
}

// GetAllExamples returns every example of this package.
func GetAllExamples() []Example {
	return []Example{
		GetCompareExample(),
		GetSumExample(),
		GetFactorialExample(),
		GetFibExample(),
	}
}
