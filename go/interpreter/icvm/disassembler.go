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

// Line is a single entry of a program listing.
type Line struct {
	Address int
	Cells   []intcode.Word // < the cells covered by this line
	Text    string
}

func (l Line) String() string {
	return fmt.Sprintf("%04d: %s", l.Address, l.Text)
}

// Disassemble renders a listing of the given program by a linear sweep
// starting at address 0. Cells not decoding to an executable instruction, as
// well as instructions truncated by the end of the program, are listed as
// DATA.
// Since programs may modify their own code and data is interleaved with
// instructions, the listing is a best-effort view.
func Disassemble(program intcode.Program) []Line {
	var res []Line
	for pc := 0; pc < len(program); {
		in, err := decodeInstruction(program[pc])
		width := in.opcode.Width()
		if err != nil || in.writesImmediate() || pc+width > len(program) {
			res = append(res, Line{
				Address: pc,
				Cells:   program[pc : pc+1],
				Text:    fmt.Sprintf("DATA %d", program[pc]),
			})
			pc++
			continue
		}
		operands := make([]string, 0, width-1)
		for n := 1; n < width; n++ {
			operands = append(operands, formatOperand(in.Mode(n), program[pc+n]))
		}
		text := in.opcode.String()
		if len(operands) > 0 {
			text += " " + strings.Join(operands, ", ")
		}
		res = append(res, Line{
			Address: pc,
			Cells:   program[pc : pc+width],
			Text:    text,
		})
		pc += width
	}
	return res
}

func formatOperand(mode Mode, raw intcode.Word) string {
	switch mode {
	case Position:
		return fmt.Sprintf("[%d]", raw)
	case Relative:
		if raw < 0 {
			return fmt.Sprintf("[rb%d]", raw)
		}
		return fmt.Sprintf("[rb+%d]", raw)
	}
	return fmt.Sprintf("%d", raw)
}
