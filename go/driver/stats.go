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
	"io"
	"time"

	"github.com/dsnet/golib/unitconv"
	cliUtils "github.com/intcode-vm/intcode/go/driver/cli"
	"github.com/intcode-vm/intcode/go/interpreter/icvm"
	"github.com/urfave/cli/v2"
)

var StatsCmd = cli.Command{
	Action:    doStats,
	Name:      "stats",
	Usage:     "Run a program repeatedly and print instruction statistics",
	ArgsUsage: "<program file>",
	Flags: []cli.Flag{
		cliUtils.InputFlag,
		&cli.IntFlag{
			Name:  "runs",
			Usage: "number of times the program is executed",
			Value: 1,
		},
	},
}

func doStats(context *cli.Context) error {
	settings, err := cliUtils.FetchSettings(context)
	if err != nil {
		return err
	}
	program, err := loadProgram(settings)
	if err != nil {
		return err
	}
	interpreter, err := icvm.NewInterpreter(icvm.Config{
		StepLimit:      settings.StepLimit,
		WithStatistics: true,
	})
	if err != nil {
		return err
	}

	runs := context.Int("runs")
	start := time.Now()
	for i := 0; i < runs; i++ {
		if _, err := interpreter.Run(program, settings.Inputs...); err != nil {
			return fmt.Errorf("run %d: %w", i, err)
		}
	}
	elapsed := time.Since(start)

	out := context.App.Writer
	if err := interpreter.DumpProfile(out); err != nil {
		return err
	}
	return printTiming(out, runs, elapsed)
}

func printTiming(out io.Writer, runs int, elapsed time.Duration) error {
	rate := 0.0
	if elapsed > 0 {
		rate = float64(runs) / elapsed.Seconds()
	}
	_, err := fmt.Fprintf(out, "Runs: %d in %v (~%s runs per second)\n",
		runs, elapsed.Round(time.Microsecond), unitconv.FormatPrefix(rate, unitconv.SI, 1))
	return err
}
