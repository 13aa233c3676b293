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
	"time"

	cliUtils "github.com/intcode-vm/intcode/go/driver/cli"
	"github.com/intcode-vm/intcode/go/intcode"
	"github.com/urfave/cli/v2"
)

var RunCmd = cli.Command{
	Action:    doRun,
	Name:      "run",
	Usage:     "Run a program to completion and print its outputs",
	ArgsUsage: "<program file>",
	Flags: []cli.Flag{
		cliUtils.InputFlag,
		cliUtils.SnapshotFlag,
		cliUtils.ResumeFlag,
	},
}

func doRun(context *cli.Context) error {
	settings, err := cliUtils.FetchSettings(context)
	if err != nil {
		return err
	}
	interpreter, err := newInterpreter(settings)
	if err != nil {
		return err
	}

	var machine intcode.Machine
	if path := cliUtils.ResumeFlag.Fetch(context); path != "" {
		snapshot, err := readSnapshot(path)
		if err != nil {
			return err
		}
		r, ok := interpreter.(restorer)
		if !ok {
			return fmt.Errorf("interpreter %s cannot resume snapshots", settings.Interpreter)
		}
		machine = r.Restore(snapshot)
		machine.PushInput(settings.Inputs...)
		log.Infof("resuming %s at pc %d", path, snapshot.Pc)
	} else {
		program, err := loadProgram(settings)
		if err != nil {
			return err
		}
		machine = interpreter.NewMachine(program, settings.Inputs...)
	}

	start := time.Now()
	outputs, err := intcode.Drain(machine)
	if len(outputs) > 0 {
		fmt.Fprintln(context.App.Writer, intcode.Program(outputs))
	}
	if err != nil {
		if path := cliUtils.SnapshotFlag.Fetch(context); path != "" {
			if err := writeSnapshot(path, machine); err != nil {
				log.Errorf("%v", err)
			}
		}
		return err
	}
	log.Infof("run completed in %v", time.Since(start))
	return nil
}
