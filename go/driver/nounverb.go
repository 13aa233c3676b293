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
	"github.com/intcode-vm/intcode/go/harness"
	"github.com/urfave/cli/v2"
)

var NounVerbCmd = cli.Command{
	Action:    doNounVerb,
	Name:      "nounverb",
	Usage:     "Find the noun and verb making the program leave the target in cell 0",
	ArgsUsage: "<program file>",
	Flags: []cli.Flag{
		cliUtils.TargetFlag,
	},
}

func doNounVerb(context *cli.Context) error {
	settings, err := cliUtils.FetchSettings(context)
	if err != nil {
		return err
	}
	interpreter, err := newInterpreter(settings)
	if err != nil {
		return err
	}
	program, err := loadProgram(settings)
	if err != nil {
		return err
	}

	res, err := harness.FindNounVerb(interpreter, program, settings.Target)
	if err != nil {
		return err
	}
	fmt.Fprintf(context.App.Writer, "%d (%v)\n", res.Code(), res)
	return nil
}
