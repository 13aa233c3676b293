// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package interpreter

import (
	"io"
	"slices"
	"strings"

	"github.com/intcode-vm/intcode/go/intcode"
	"github.com/intcode-vm/intcode/go/interpreter/icvm"
	"golang.org/x/exp/maps"
)

// getAllInterpreterVariantsForTests returns all registered interpreter variants
// that should be covered in integration tests, sorted by name.
func getAllInterpreterVariantsForTests() []string {
	res := maps.Keys(intcode.GetAllRegisteredInterpreters())
	slices.Sort(res)
	return res
}

// newInterpreter creates the given variant. Trace output of logging
// variants is discarded.
func newInterpreter(variant string) (intcode.Interpreter, error) {
	config := icvm.Config{}
	if strings.Contains(variant, "logging") {
		config.Trace = io.Discard
	}
	return intcode.NewInterpreter(variant, config)
}
