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

import "github.com/intcode-vm/intcode/go/intcode"

func opAdd(m *machine, in Instruction) error {
	return binaryOp(m, in, func(a, b intcode.Word) intcode.Word {
		return a + b
	})
}

func opMul(m *machine, in Instruction) error {
	return binaryOp(m, in, func(a, b intcode.Word) intcode.Word {
		return a * b
	})
}

func opLessThan(m *machine, in Instruction) error {
	return binaryOp(m, in, func(a, b intcode.Word) intcode.Word {
		if a < b {
			return 1
		}
		return 0
	})
}

func opEquals(m *machine, in Instruction) error {
	return binaryOp(m, in, func(a, b intcode.Word) intcode.Word {
		if a == b {
			return 1
		}
		return 0
	})
}

// binaryOp computes dest := op(a, b) for the three parameter instructions.
func binaryOp(m *machine, in Instruction, op func(a, b intcode.Word) intcode.Word) error {
	a, err := m.value(in, 1)
	if err != nil {
		return err
	}
	b, err := m.value(in, 2)
	if err != nil {
		return err
	}
	dest, err := m.address(in, 3)
	if err != nil {
		return err
	}
	if err := m.memory.write(dest, op(a, b)); err != nil {
		return err
	}
	m.pc += 4
	return nil
}

// opInput consumes a pending input. If none is available, the machine
// remains at the current instruction and is marked as blocked.
func opInput(m *machine, in Instruction) (intcode.Signal, error) {
	dest, err := m.address(in, 1)
	if err != nil {
		return intcode.Signal{}, err
	}
	value, ok := m.popInput()
	if !ok {
		m.blocked = true
		return intcode.InputSignal(dest), nil
	}
	m.blocked = false
	if err := m.memory.write(dest, value); err != nil {
		return intcode.Signal{}, err
	}
	m.pc += 2
	return intcode.InputSignal(dest), nil
}

func opOutput(m *machine, in Instruction) (intcode.Signal, error) {
	value, err := m.value(in, 1)
	if err != nil {
		return intcode.Signal{}, err
	}
	m.pc += 2
	return intcode.OutputSignal(value), nil
}

func opJumpIfTrue(m *machine, in Instruction) error {
	return conditionalJump(m, in, func(v intcode.Word) bool { return v != 0 })
}

func opJumpIfFalse(m *machine, in Instruction) error {
	return conditionalJump(m, in, func(v intcode.Word) bool { return v == 0 })
}

func conditionalJump(m *machine, in Instruction, condition func(intcode.Word) bool) error {
	value, err := m.value(in, 1)
	if err != nil {
		return err
	}
	if !condition(value) {
		m.pc += 3
		return nil
	}
	target, err := m.value(in, 2)
	if err != nil {
		return err
	}
	m.pc = target
	return nil
}

func opAdjustRelativeBase(m *machine, in Instruction) error {
	value, err := m.value(in, 1)
	if err != nil {
		return err
	}
	m.relativeBase += value
	m.pc += 2
	return nil
}

func opHalt(m *machine) intcode.Signal {
	m.halted = true
	return intcode.HaltSignal()
}
