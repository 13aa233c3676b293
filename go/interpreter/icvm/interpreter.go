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
	"fmt"
	"io"

	"github.com/intcode-vm/intcode/go/intcode"
)

// Config summarizes the configuration options of an Interpreter.
type Config struct {
	// DecodeCacheSize is the number of decoded instructions retained by the
	// decode cache shared by all machines of an interpreter. If set to 0, a
	// default size is used. If negative, no cache is used.
	DecodeCacheSize int
	// StepLimit is the maximum number of steps a single machine may execute
	// before failing with ErrStepLimitExceeded. Zero means unlimited.
	StepLimit uint64
	// Trace, if not nil, receives one line per executed instruction.
	Trace io.Writer
	// WithStatistics enables the collection of instruction statistics.
	WithStatistics bool

	runner runner
}

// Interpreter creates and runs machines executing programs of the integer
// instruction set. It is thread-safe; machines created by it are not.
type Interpreter struct {
	config  Config
	decoder *decoder
	runner  runner
}

var _ intcode.Interpreter = (*Interpreter)(nil)

// NewInterpreter creates an interpreter using the given configuration.
func NewInterpreter(config Config) (*Interpreter, error) {
	decoder, err := newDecoder(config.DecodeCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	runner := config.runner
	if runner == nil {
		switch {
		case config.WithStatistics:
			runner = &statisticRunner{stats: newStatistics()}
		case config.Trace != nil:
			runner = newLogger(config.Trace)
		default:
			runner = vanillaRunner{}
		}
	}
	return &Interpreter{config: config, decoder: decoder, runner: runner}, nil
}

// NewMachine creates a machine for the given program with the given values
// queued as pending inputs.
func (v *Interpreter) NewMachine(program intcode.Program, inputs ...intcode.Word) intcode.Machine {
	return newMachine(program, inputs, v.decoder, v.runner, v.config.StepLimit)
}

// Restore creates a machine continuing the execution captured by the given
// snapshot.
func (v *Interpreter) Restore(snapshot intcode.Snapshot) intcode.Machine {
	m := newMachine(snapshot.Memory, snapshot.Inputs, v.decoder, v.runner, v.config.StepLimit)
	m.pc = snapshot.Pc
	m.relativeBase = snapshot.RelativeBase
	m.halted = snapshot.Halted
	return m
}

// Run executes the program to completion with the given inputs and returns
// the produced outputs in emission order.
func (v *Interpreter) Run(program intcode.Program, inputs ...intcode.Word) ([]intcode.Word, error) {
	return intcode.Drain(v.NewMachine(program, inputs...))
}

// DumpProfile writes the collected instruction statistics, if enabled.
func (v *Interpreter) DumpProfile(out io.Writer) error {
	if statsRunner, ok := v.runner.(*statisticRunner); ok {
		_, err := io.WriteString(out, statsRunner.getSummary())
		return err
	}
	return nil
}

// ResetProfile clears the collected instruction statistics, if enabled.
func (v *Interpreter) ResetProfile() {
	if statsRunner, ok := v.runner.(*statisticRunner); ok {
		statsRunner.reset()
	}
}

var defaultInterpreter = func() *Interpreter {
	res, err := NewInterpreter(Config{})
	if err != nil {
		panic(fmt.Sprintf("failed to create default interpreter: %v", err))
	}
	return res
}()

// RunToCompletion runs the program with the given inputs on a fresh machine
// of the default interpreter until it halts. Outputs are returned in
// emission order. Running out of inputs is reported as
// intcode.ErrInputStarvation.
func RunToCompletion(program intcode.Program, inputs ...intcode.Word) ([]intcode.Word, error) {
	return defaultInterpreter.Run(program, inputs...)
}

// --- Runners ---

type runner interface {
	// step executes the instruction at the program counter of the given
	// machine. Any error returned is fatal for the machine.
	step(*machine) (intcode.Signal, error)
}

// vanillaRunner is the default runner that executes instructions without
// any additional features.
type vanillaRunner struct{}

func (vanillaRunner) step(m *machine) (intcode.Signal, error) {
	return execute(m)
}

// --- Execution ---

// execute decodes and executes the instruction at the program counter.
func execute(m *machine) (intcode.Signal, error) {
	cell, err := m.memory.read(m.pc)
	if err != nil {
		return intcode.Signal{}, err
	}
	in, err := m.decoder.decode(cell)
	if err != nil {
		return intcode.Signal{}, err
	}

	signal := intcode.DefaultSignal()
	switch in.opcode {
	case ADD:
		err = opAdd(m, in)
	case MUL:
		err = opMul(m, in)
	case IN:
		signal, err = opInput(m, in)
	case OUT:
		signal, err = opOutput(m, in)
	case JNZ:
		err = opJumpIfTrue(m, in)
	case JZ:
		err = opJumpIfFalse(m, in)
	case LT:
		err = opLessThan(m, in)
	case EQ:
		err = opEquals(m, in)
	case ARB:
		err = opAdjustRelativeBase(m, in)
	case HALT:
		signal = opHalt(m)
	default:
		err = fmt.Errorf("%w: %v", intcode.ErrInvalidOpCode, in.opcode)
	}
	if err != nil {
		return intcode.Signal{}, err
	}
	// a blocked input did not execute, it is retried on the next step
	if m.blocked {
		return signal, nil
	}
	m.steps++
	m.lastOp = in.opcode
	return signal, nil
}
