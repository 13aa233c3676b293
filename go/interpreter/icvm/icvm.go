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
	"os"

	"github.com/intcode-vm/intcode/go/intcode"
)

// Registers the interpreter configurations of this package in the registry.
// Each factory accepts an optional Config, of which the step limit and the
// trace writer are applied on top of the registered configuration.
func init() {
	configs := map[string]Config{
		// The officially supported configuration.
		"icvm": {},
		// Traces every executed instruction to stderr.
		"icvm-logging": {Trace: os.Stderr},
		// Collects instruction statistics, see Interpreter.DumpProfile.
		"icvm-stats": {WithStatistics: true},
		// Decodes every instruction from scratch.
		"icvm-no-decode-cache": {DecodeCacheSize: -1},
	}

	for name, config := range configs {
		config := config
		err := intcode.RegisterInterpreterFactory(name, func(c any) (intcode.Interpreter, error) {
			res := config
			if override, ok := c.(Config); ok {
				res.StepLimit = override.StepLimit
				if override.Trace != nil {
					res.Trace = override.Trace
				}
			}
			return NewInterpreter(res)
		})
		if err != nil {
			panic(err)
		}
	}
}
