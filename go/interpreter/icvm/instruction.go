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
	"strings"

	"github.com/intcode-vm/intcode/go/intcode"
)

// Mode defines how the raw operand of a parameter is interpreted.
type Mode byte

const (
	Position  Mode = 0 // < operand is the address of the value
	Immediate Mode = 1 // < operand is the value itself
	Relative  Mode = 2 // < operand is an offset to the relative base
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "pos"
	case Immediate:
		return "imm"
	case Relative:
		return "rel"
	}
	return fmt.Sprintf("mode(%d)", byte(m))
}

// maxParameters is the maximum number of parameters of any instruction.
const maxParameters = 3

// Instruction is the decoded form of an instruction cell. Instructions are
// re-derived from memory on every step; they are never stored alongside the
// program.
type Instruction struct {
	opcode OpCode
	modes  [maxParameters]Mode
}

// OpCode returns the operation of the instruction.
func (i Instruction) OpCode() OpCode {
	return i.opcode
}

// Mode returns the addressing mode of the n-th parameter, starting at 1.
func (i Instruction) Mode(n int) Mode {
	return i.modes[n-1]
}

func (i Instruction) String() string {
	params := i.opcode.NumParameters()
	if params == 0 {
		return i.opcode.String()
	}
	modes := make([]string, params)
	for n := range modes {
		modes[n] = i.modes[n].String()
	}
	return fmt.Sprintf("%v %s", i.opcode, strings.Join(modes, ","))
}

// writesImmediate reports whether the instruction targets its destination
// in Immediate mode. Such an instruction fails when it is executed.
func (i Instruction) writesImmediate() bool {
	d := i.opcode.destination()
	return d > 0 && i.modes[d-1] == Immediate
}

// decodeInstruction splits an instruction cell into its OpCode and the
// addressing modes of its parameters. The sign of the cell is ignored. Mode
// digits of parameters not used by the OpCode are not validated. Destination
// modes are checked when the instruction is executed, not here.
func decodeInstruction(cell intcode.Word) (Instruction, error) {
	if cell < 0 {
		cell = -cell
	}
	op := cell % opMask
	if op < 0 { // only for math.MinInt64
		op = -op
	}
	res := Instruction{opcode: OpCode(op)}
	if !res.opcode.IsValid() {
		return Instruction{}, fmt.Errorf("%w: %d", intcode.ErrInvalidOpCode, op)
	}

	digits := cell / opMask
	for n := 0; n < res.opcode.NumParameters(); n++ {
		mode := Mode(0)
		switch digit := digits % 10; digit {
		case 0, 1, 2:
			mode = Mode(digit)
		default:
			return Instruction{}, fmt.Errorf("%w: digit %d for parameter %d of %v", intcode.ErrInvalidMode, digit, n+1, res.opcode)
		}
		res.modes[n] = mode
		digits /= 10
	}
	return res, nil
}
