// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package harness wires machines into the topologies used to drive
// programs: feedback rings, series chains, and the searches built on top of
// them.
package harness

import "github.com/intcode-vm/intcode/go/intcode"

const (
	ErrNoMachines = intcode.ConstError("no machines")
	ErrNoOutput   = intcode.ConstError("machine halted without output")
	ErrNoSolution = intcode.ConstError("no solution found")
)
