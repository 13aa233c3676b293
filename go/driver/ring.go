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

var RingCmd = cli.Command{
	Action:    doRing,
	Name:      "ring",
	Usage:     "Run one machine per phase in a feedback ring",
	ArgsUsage: "<program file>",
	Flags: []cli.Flag{
		cliUtils.PhasesFlag,
		cliUtils.SignalFlag,
	},
}

var ChainCmd = cli.Command{
	Action:    doChain,
	Name:      "chain",
	Usage:     "Run one machine per phase in series",
	ArgsUsage: "<program file>",
	Flags: []cli.Flag{
		cliUtils.PhasesFlag,
		cliUtils.SignalFlag,
	},
}

func doRing(context *cli.Context) error {
	settings, err := cliUtils.FetchSettings(context)
	if err != nil {
		return err
	}
	if len(settings.Phases) == 0 {
		return fmt.Errorf("no phases provided")
	}
	interpreter, err := newInterpreter(settings)
	if err != nil {
		return err
	}
	program, err := loadProgram(settings)
	if err != nil {
		return err
	}

	ring := harness.NewFeedbackRing(interpreter, program, settings.Phases, settings.Signal)
	log.Debugf("running ring of %d machines", ring.Len())
	signal, err := ring.Run()
	if err != nil {
		return err
	}
	fmt.Fprintln(context.App.Writer, signal)
	return nil
}

func doChain(context *cli.Context) error {
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

	signal, err := harness.RunChain(interpreter, program, settings.Phases, settings.Signal)
	if err != nil {
		return err
	}
	fmt.Fprintln(context.App.Writer, signal)
	return nil
}
