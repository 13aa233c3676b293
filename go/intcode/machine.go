// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package intcode

import "fmt"

//go:generate mockgen -source machine.go -destination machine_mock.go -package intcode

// Machine is a single virtual machine instance. It owns its memory and
// registers exclusively; the only way to communicate with it is by feeding
// inputs and observing the signals returned by Step.
//
// Machines are not thread-safe. A machine is driven by exactly one harness.
type Machine interface {
	// Step executes exactly one instruction and reports the resulting
	// suspend signal. An error is fatal: the machine must not be used
	// afterwards, and every further call returns the same error.
	Step() (Signal, error)

	// PushInput appends values to the pending-input queue. It may be called
	// at any time, including while the machine is blocked on input.
	PushInput(values ...Word)

	// Blocked reports whether the last step requested input while the
	// pending-input queue was empty. A blocked machine makes progress only
	// after PushInput was called.
	Blocked() bool

	// Halted reports whether the machine executed its halt instruction.
	Halted() bool

	// Read returns the content of the memory cell at the given address.
	// Addresses beyond the current memory size read as zero.
	Read(address Word) Word

	// Snapshot captures the complete execution state of the machine.
	Snapshot() Snapshot
}

// Interpreter is a factory and executor for machines. Implementations are
// obtained from the registry and are required to be thread-safe, such that
// multiple machines may be created and run in parallel.
type Interpreter interface {
	// NewMachine creates a machine ready to execute the given program with
	// the given values queued as pending input.
	NewMachine(program Program, inputs ...Word) Machine

	// Run executes the program to completion, consuming inputs in order,
	// and returns all produced outputs in emission order.
	Run(program Program, inputs ...Word) ([]Word, error)
}

// Drain steps the given machine until it halts and collects every produced
// output. If the machine blocks on input, ErrInputStarvation is returned
// together with the outputs produced so far.
func Drain(m Machine) ([]Word, error) {
	var outputs []Word
	for {
		signal, err := m.Step()
		if err != nil {
			return outputs, err
		}
		switch signal.Kind {
		case OutputProduced:
			outputs = append(outputs, signal.Value)
		case InputRequested:
			if m.Blocked() {
				return outputs, fmt.Errorf("%w: destination %d", ErrInputStarvation, signal.Address)
			}
		case Halted:
			return outputs, nil
		}
	}
}
