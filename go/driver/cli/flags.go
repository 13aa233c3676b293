// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package cliUtils

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/intcode-vm/intcode/go/intcode"
	"github.com/urfave/cli/v2"
)

type interpreterFlagType struct {
	cli.StringFlag
}

var InterpreterFlag = &interpreterFlagType{
	cli.StringFlag{
		Name:    "interpreter",
		Aliases: []string{"i"},
		Usage:   "name of the registered interpreter executing the program",
		Value:   "icvm",
	},
}

func (f *interpreterFlagType) Fetch(context *cli.Context) string {
	return context.String(f.Name)
}

type wordsFlagType struct {
	cli.StringFlag
}

var InputFlag = &wordsFlagType{
	cli.StringFlag{
		Name:  "input",
		Usage: "comma separated values queued as program input",
	},
}

var PhasesFlag = &wordsFlagType{
	cli.StringFlag{
		Name:    "phases",
		Aliases: []string{"p"},
		Usage:   "comma separated phase settings, one per machine",
	},
}

func (f *wordsFlagType) Fetch(context *cli.Context) ([]intcode.Word, error) {
	words, err := intcode.ParseWords(context.String(f.Name))
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", f.Name, err)
	}
	return words, nil
}

type signalFlagType struct {
	cli.Int64Flag
}

var SignalFlag = &signalFlagType{
	cli.Int64Flag{
		Name:  "signal",
		Usage: "initial signal fed to the first machine",
	},
}

var TargetFlag = &signalFlagType{
	cli.Int64Flag{
		Name:  "target",
		Usage: "value cell 0 has to hold after the run",
		Value: 19690720,
	},
}

func (f *signalFlagType) Fetch(context *cli.Context) intcode.Word {
	return intcode.Word(context.Int64(f.Name))
}

type feedbackFlagType struct {
	cli.BoolFlag
}

var FeedbackFlag = &feedbackFlagType{
	cli.BoolFlag{
		Name:  "feedback",
		Usage: "connect the machines in a feedback ring instead of a series chain",
	},
}

func (f *feedbackFlagType) Fetch(context *cli.Context) bool {
	return context.Bool(f.Name)
}

type jobsFlagType struct {
	cli.IntFlag
}

var JobsFlag = &jobsFlagType{
	cli.IntFlag{
		Name:    "jobs",
		Aliases: []string{"j"},
		Usage:   "number of jobs run simultaneously",
		Value:   runtime.NumCPU(),
	},
}

func (f *jobsFlagType) Fetch(context *cli.Context) int {
	return context.Int(f.Name)
}

type stepLimitFlagType struct {
	cli.Uint64Flag
}

var StepLimitFlag = &stepLimitFlagType{
	cli.Uint64Flag{
		Name:  "step-limit",
		Usage: "abort machines executing more than the given number of steps, 0 for no limit",
	},
}

func (f *stepLimitFlagType) Fetch(context *cli.Context) uint64 {
	return context.Uint64(f.Name)
}

type traceFlagType struct {
	cli.BoolFlag
}

var TraceFlag = &traceFlagType{
	cli.BoolFlag{
		Name:  "trace",
		Usage: "log every executed instruction to stderr",
	},
}

func (f *traceFlagType) Fetch(context *cli.Context) bool {
	return context.Bool(f.Name)
}

type fileFlagType struct {
	cli.StringFlag
}

var SnapshotFlag = &fileFlagType{
	cli.StringFlag{
		Name:      "snapshot",
		Usage:     "store the machine state in the provided filename if the run fails",
		TakesFile: true,
	},
}

var ResumeFlag = &fileFlagType{
	cli.StringFlag{
		Name:      "resume",
		Usage:     "continue the execution captured in the provided snapshot file",
		TakesFile: true,
	},
}

var ConfigFlag = &fileFlagType{
	cli.StringFlag{
		Name:      "config",
		Aliases:   []string{"c"},
		Usage:     "load job settings from the provided TOML file, flags take precedence",
		TakesFile: true,
	},
}

var CpuProfileFlag = &fileFlagType{
	cli.StringFlag{
		Name:      "cpuprofile",
		Usage:     "store CPU profile in the provided filename",
		TakesFile: true,
	},
}

func (f *fileFlagType) Fetch(context *cli.Context) string {
	return context.String(f.Name)
}

type verbosityFlagType struct {
	cli.IntFlag
}

var VerbosityFlag = &verbosityFlagType{
	cli.IntFlag{
		Name:    "verbosity",
		Aliases: []string{"v"},
		Usage:   "logging verbosity, higher values log more details",
	},
}

func (f *verbosityFlagType) Fetch(context *cli.Context) int {
	return context.Int(f.Name)
}

var commonFlags = []cli.Flag{
	CpuProfileFlag,
	ConfigFlag,
	InterpreterFlag,
	StepLimitFlag,
	TraceFlag,
}

// AddCommonFlags extends the given command by the flags shared by all
// program executing commands and starts CPU profiling if requested.
func AddCommonFlags(command cli.Command) cli.Command {
	command.Flags = append(command.Flags, commonFlags...)

	action := command.Action
	command.Action = func(ctx *cli.Context) (err error) {

		if cpuprofileFilename := CpuProfileFlag.Fetch(ctx); cpuprofileFilename != "" {
			f, err := os.Create(cpuprofileFilename)
			if err != nil {
				return fmt.Errorf("could not create CPU profile: %w", err)
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				return fmt.Errorf("could not start CPU profile: %w", err)
			}
			defer pprof.StopCPUProfile()
		}

		return action(ctx)
	}
	return command
}
