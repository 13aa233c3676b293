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

// RunChain runs one machine per phase in series. Each machine runs to
// completion with its phase and the current signal as inputs; its last
// output becomes the signal passed to the next machine. The signal produced
// by the last machine is returned.
func RunChain(interpreter intcode.Interpreter, program intcode.Program, phases []intcode.Word, signal intcode.Word) (intcode.Word, error) {
	if len(phases) == 0 {
		return 0, ErrNoMachines
	}
	for i, phase := range phases {
		outputs, err := interpreter.Run(program, phase, signal)
		if err != nil {
			return 0, fmt.Errorf("stage %d: %w", i, err)
		}
		if len(outputs) == 0 {
			return 0, fmt.Errorf("stage %d: %w", i, ErrNoOutput)
		}
		signal = outputs[len(outputs)-1]
	}
	return signal, nil
}
