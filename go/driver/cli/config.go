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
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/intcode-vm/intcode/go/intcode"
	"github.com/urfave/cli/v2"
)

// Job is the content of a TOML job file describing a program run. All
// fields are optional; command line flags take precedence over them.
type Job struct {
	Program     string         `toml:"program"`
	Interpreter string         `toml:"interpreter"`
	StepLimit   uint64         `toml:"step-limit"`
	Trace       bool           `toml:"trace"`
	Inputs      []intcode.Word `toml:"inputs"`
	Phases      []intcode.Word `toml:"phases"`
	Signal      intcode.Word   `toml:"signal"`
	Feedback    bool           `toml:"feedback"`
	Jobs        int            `toml:"jobs"`
	Target      intcode.Word   `toml:"target"`

	// Dir is the directory containing the job file (set at load time).
	Dir string `toml:"-"`
}

// LoadJob parses the job file at the given path. Unknown keys are rejected.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var job Job
	meta, err := toml.Decode(string(data), &job)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	job.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}
	return &job, nil
}

// ProgramPath returns the path of the program file, resolved relative to
// the directory of the job file.
func (j *Job) ProgramPath() string {
	if j.Program == "" || filepath.IsAbs(j.Program) {
		return j.Program
	}
	return filepath.Join(j.Dir, j.Program)
}

// Settings are the effective parameters of a command, merged from the job
// file and the command line.
type Settings struct {
	ProgramFile string
	Interpreter string
	StepLimit   uint64
	Trace       bool
	Inputs      []intcode.Word
	Phases      []intcode.Word
	Signal      intcode.Word
	Feedback    bool
	Jobs        int
	Target      intcode.Word
}

// FetchSettings merges the job file named by --config, if any, with the
// flags of the given context. Flags set on the command line override job
// values, job values override flag defaults. The program file is taken from
// the first positional argument, or from the job.
func FetchSettings(context *cli.Context) (Settings, error) {
	job := &Job{}
	if path := ConfigFlag.Fetch(context); path != "" {
		loaded, err := LoadJob(path)
		if err != nil {
			return Settings{}, err
		}
		job = loaded
	}

	inputs, err := InputFlag.Fetch(context)
	if err != nil {
		return Settings{}, err
	}
	phases, err := PhasesFlag.Fetch(context)
	if err != nil {
		return Settings{}, err
	}

	res := Settings{
		ProgramFile: job.ProgramPath(),
		Interpreter: pick(context, InterpreterFlag.Name, InterpreterFlag.Fetch(context), job.Interpreter, ""),
		StepLimit:   pick(context, StepLimitFlag.Name, StepLimitFlag.Fetch(context), job.StepLimit, 0),
		Trace:       pick(context, TraceFlag.Name, TraceFlag.Fetch(context), job.Trace, false),
		Inputs:      pickSlice(context, InputFlag.Name, inputs, job.Inputs),
		Phases:      pickSlice(context, PhasesFlag.Name, phases, job.Phases),
		Signal:      pick(context, SignalFlag.Name, SignalFlag.Fetch(context), job.Signal, 0),
		Feedback:    pick(context, FeedbackFlag.Name, FeedbackFlag.Fetch(context), job.Feedback, false),
		Jobs:        pick(context, JobsFlag.Name, JobsFlag.Fetch(context), job.Jobs, 0),
		Target:      pick(context, TargetFlag.Name, TargetFlag.Fetch(context), job.Target, 0),
	}
	if context.Args().Present() {
		res.ProgramFile = context.Args().First()
	}
	if res.Interpreter == "" {
		res.Interpreter = InterpreterFlag.Value
	}
	return res, nil
}

// pick returns the flag value if the flag was set explicitly, the job value
// if it differs from zero, and the flag value otherwise.
func pick[T comparable](context *cli.Context, name string, flag, job, zero T) T {
	if context.IsSet(name) || job == zero {
		return flag
	}
	return job
}

func pickSlice(context *cli.Context, name string, flag, job []intcode.Word) []intcode.Word {
	if context.IsSet(name) || len(job) == 0 {
		return flag
	}
	return job
}

// LoadProgram reads a program in its comma separated textual form.
func LoadProgram(path string) (intcode.Program, error) {
	if path == "" {
		return nil, fmt.Errorf("no program file provided")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	program, err := intcode.ParseProgram(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	return program, nil
}
