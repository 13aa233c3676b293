// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package harness

import (
	"fmt"

	"github.com/intcode-vm/intcode/go/intcode"
)

// NounVerb is a pair of values patched into the cells 1 and 2 of a program.
type NounVerb struct {
	Noun intcode.Word
	Verb intcode.Word
}

// Code combines noun and verb into the single value 100*noun+verb.
func (n NounVerb) Code() intcode.Word {
	return 100*n.Noun + n.Verb
}

func (n NounVerb) String() string {
	return fmt.Sprintf("noun=%d verb=%d", n.Noun, n.Verb)
}

// RunPatched runs the program with the cells 1 and 2 replaced by noun and
// verb and returns the final content of cell 0.
func RunPatched(interpreter intcode.Interpreter, program intcode.Program, input NounVerb) (intcode.Word, error) {
	m := interpreter.NewMachine(program.With(1, input.Noun).With(2, input.Verb))
	if _, err := intcode.Drain(m); err != nil {
		return 0, fmt.Errorf("%v: %w", input, err)
	}
	return m.Read(0), nil
}

// FindNounVerb searches the nouns and verbs in [0, 99] for the first pair,
// in noun-major order, for which the patched program leaves target in cell 0.
func FindNounVerb(interpreter intcode.Interpreter, program intcode.Program, target intcode.Word) (NounVerb, error) {
	for noun := intcode.Word(0); noun <= 99; noun++ {
		for verb := intcode.Word(0); verb <= 99; verb++ {
			candidate := NounVerb{Noun: noun, Verb: verb}
			result, err := RunPatched(interpreter, program, candidate)
			if err != nil {
				return NounVerb{}, err
			}
			if result == target {
				return candidate, nil
			}
		}
	}
	return NounVerb{}, fmt.Errorf("%w: target %d", ErrNoSolution, target)
}
