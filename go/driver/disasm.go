// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"

	cliUtils "github.com/intcode-vm/intcode/go/driver/cli"
	"github.com/intcode-vm/intcode/go/interpreter/icvm"
	"github.com/urfave/cli/v2"
)

var DisasmCmd = cli.Command{
	Action:    doDisasm,
	Name:      "disasm",
	Usage:     "Print a listing of the instructions of a program",
	ArgsUsage: "<program file>",
}

func doDisasm(context *cli.Context) error {
	program, err := cliUtils.LoadProgram(context.Args().First())
	if err != nil {
		return err
	}
	out := context.App.Writer
	fmt.Fprintf(out, "; %d cells, hash %v\n", len(program), program.Hash())
	for _, line := range icvm.Disassemble(program) {
		fmt.Fprintln(out, line)
	}
	return nil
}
