// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package icvm

import (
	"fmt"

	"github.com/intcode-vm/intcode/go/intcode"
)

// machine is the execution state of a single program run. It contains the
// memory, the program counter and relative base registers, and the queue of
// pending inputs. For each program execution, a new machine is created.
type machine struct {
	memory       *Memory
	pc           intcode.Word
	relativeBase intcode.Word
	inputs       []intcode.Word

	halted  bool
	blocked bool
	err     error // < sticky, set by the first failing step

	// Execution environment
	decoder   *decoder
	runner    runner
	steps     uint64
	stepLimit uint64

	// last executed opcode, used by the statistics runner
	lastOp OpCode
}

func newMachine(program intcode.Program, inputs []intcode.Word, decoder *decoder, runner runner, stepLimit uint64) *machine {
	queue := make([]intcode.Word, len(inputs))
	copy(queue, inputs)
	return &machine{
		memory:    NewMemory(program),
		inputs:    queue,
		decoder:   decoder,
		runner:    runner,
		stepLimit: stepLimit,
	}
}

// Step executes the instruction at the program counter.
func (m *machine) Step() (intcode.Signal, error) {
	if m.err != nil {
		return intcode.Signal{}, m.err
	}
	if m.halted {
		return intcode.HaltSignal(), nil
	}
	if m.stepLimit > 0 && m.steps >= m.stepLimit {
		m.err = fmt.Errorf("%w: %d steps executed", intcode.ErrStepLimitExceeded, m.steps)
		return intcode.Signal{}, m.err
	}

	pc := m.pc
	signal, err := m.runner.step(m)
	if err != nil {
		m.err = fmt.Errorf("pc %d: %w", pc, err)
		return intcode.Signal{}, m.err
	}
	return signal, nil
}

func (m *machine) PushInput(values ...intcode.Word) {
	m.inputs = append(m.inputs, values...)
}

func (m *machine) Blocked() bool {
	return m.blocked
}

func (m *machine) Halted() bool {
	return m.halted
}

func (m *machine) Read(address intcode.Word) intcode.Word {
	value, err := m.memory.read(address)
	if err != nil {
		return 0
	}
	return value
}

func (m *machine) Snapshot() intcode.Snapshot {
	inputs := make([]intcode.Word, len(m.inputs))
	copy(inputs, m.inputs)
	return intcode.Snapshot{
		Memory:       m.memory.Snapshot(),
		Pc:           m.pc,
		RelativeBase: m.relativeBase,
		Inputs:       inputs,
		Halted:       m.halted,
	}
}

// popInput removes the oldest pending input. The result is false if no
// input is pending.
func (m *machine) popInput() (intcode.Word, bool) {
	if len(m.inputs) == 0 {
		return 0, false
	}
	value := m.inputs[0]
	m.inputs = m.inputs[1:]
	return value, true
}

// operand returns the raw operand of the n-th parameter (1-based) of the
// instruction at the program counter.
func (m *machine) operand(n int) (intcode.Word, error) {
	return m.memory.read(m.pc + intcode.Word(n))
}

// value returns the effective value of the n-th parameter of the given
// instruction, dereferenced according to its mode.
func (m *machine) value(in Instruction, n int) (intcode.Word, error) {
	raw, err := m.operand(n)
	if err != nil {
		return 0, err
	}
	switch in.Mode(n) {
	case Position:
		return m.memory.read(raw)
	case Immediate:
		return raw, nil
	case Relative:
		return m.memory.read(m.relativeBase + raw)
	}
	return 0, fmt.Errorf("%w: %v", intcode.ErrInvalidMode, in.Mode(n))
}

// address returns the target address of the n-th parameter of the given
// instruction. Immediate mode is not valid for destination parameters.
func (m *machine) address(in Instruction, n int) (intcode.Word, error) {
	raw, err := m.operand(n)
	if err != nil {
		return 0, err
	}
	var res intcode.Word
	switch in.Mode(n) {
	case Position:
		res = raw
	case Relative:
		res = m.relativeBase + raw
	case Immediate:
		return 0, intcode.ErrImmediateDestination
	default:
		return 0, fmt.Errorf("%w: %v", intcode.ErrInvalidMode, in.Mode(n))
	}
	if res < 0 {
		return 0, fmt.Errorf("%w: destination %d", intcode.ErrNegativeAddress, res)
	}
	return res, nil
}
