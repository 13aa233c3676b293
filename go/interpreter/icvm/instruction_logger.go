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
	"io"

	"github.com/intcode-vm/intcode/go/intcode"
)

// loggingRunner is a runner that logs the execution of a program to an
// io.Writer. If no writer is provided, nothing is logged.
type loggingRunner struct {
	log io.Writer
}

// newLogger creates a new logging runner that writes to the provided
// io.Writer.
func newLogger(writer io.Writer) loggingRunner {
	return loggingRunner{log: writer}
}

func (l loggingRunner) step(m *machine) (intcode.Signal, error) {
	// log format: <pc>, <instruction>, <relative base>\n
	if l.log != nil {
		if _, err := fmt.Fprintf(l.log, "%d, %s, %d\n", m.pc, describeAt(m), m.relativeBase); err != nil {
			return intcode.Signal{}, err
		}
	}
	return execute(m)
}

// describeAt renders the instruction at the program counter of the machine,
// falling back to the raw cell for cells not representing an instruction.
func describeAt(m *machine) string {
	cell, err := m.memory.read(m.pc)
	if err != nil {
		return "-invalid-"
	}
	in, err := decodeInstruction(cell)
	if err != nil {
		return fmt.Sprintf("DATA %d", cell)
	}
	return in.String()
}
