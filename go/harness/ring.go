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

// Ring connects machines in a feedback loop: every value produced by a
// machine is queued as input of its successor, and the last machine feeds
// the first one.
//
// Machines take turns in order. Each machine runs until it produces an output
// or halts. As soon as any machine halts, the ring stops; no machine is
// stepped afterwards. The result of the ring is the last value produced by
// its last machine.
type Ring struct {
	machines []intcode.Machine
}

// NewRing creates a ring of the given machines, in turn order. Initial
// inputs, like phase settings, have to be queued on the machines before the
// ring is run.
func NewRing(machines ...intcode.Machine) *Ring {
	return &Ring{machines: machines}
}

// NewFeedbackRing creates a ring of machines running the same program, one
// per phase. Each machine receives its phase as first input, the first
// machine additionally receives the initial signal.
func NewFeedbackRing(interpreter intcode.Interpreter, program intcode.Program, phases []intcode.Word, signal intcode.Word) *Ring {
	machines := make([]intcode.Machine, len(phases))
	for i, phase := range phases {
		machines[i] = interpreter.NewMachine(program, phase)
	}
	if len(machines) > 0 {
		machines[0].PushInput(signal)
	}
	return NewRing(machines...)
}

// Len returns the number of machines in the ring.
func (r *Ring) Len() int {
	return len(r.machines)
}

// Run drives the ring until one of its machines halts and returns the last
// value produced by the last machine, or 0 if it produced none. A machine
// failing or starving for input aborts the ring with an error.
func (r *Ring) Run() (intcode.Word, error) {
	if len(r.machines) == 0 {
		return 0, ErrNoMachines
	}
	result := intcode.Word(0)
	for {
		for i, m := range r.machines {
			value, halted, err := runUntilOutput(m)
			if err != nil {
				return result, fmt.Errorf("machine %d: %w", i, err)
			}
			if halted {
				return result, nil
			}
			if i == len(r.machines)-1 {
				result = value
			}
			r.machines[(i+1)%len(r.machines)].PushInput(value)
		}
	}
}

// runUntilOutput steps the machine until it produces a value or halts.
func runUntilOutput(m intcode.Machine) (value intcode.Word, halted bool, err error) {
	for {
		signal, err := m.Step()
		if err != nil {
			return 0, false, err
		}
		switch signal.Kind {
		case intcode.OutputProduced:
			return signal.Value, false, nil
		case intcode.Halted:
			return 0, true, nil
		case intcode.InputRequested:
			if m.Blocked() {
				return 0, false, fmt.Errorf("%w: destination %d", intcode.ErrInputStarvation, signal.Address)
			}
		}
	}
}
