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
	"os"

	cliUtils "github.com/intcode-vm/intcode/go/driver/cli"
	"github.com/intcode-vm/intcode/go/intcode"
	"github.com/intcode-vm/intcode/go/interpreter/icvm"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("intcode.driver")

// newInterpreter creates the interpreter selected by the settings.
func newInterpreter(settings cliUtils.Settings) (intcode.Interpreter, error) {
	config := icvm.Config{StepLimit: settings.StepLimit}
	if settings.Trace {
		config.Trace = os.Stderr
	}
	interpreter, err := intcode.NewInterpreter(settings.Interpreter, config)
	if err != nil {
		return nil, err
	}
	log.Debugf("using interpreter %s, step limit %d", settings.Interpreter, settings.StepLimit)
	return interpreter, nil
}

// loadProgram reads the program file selected by the settings.
func loadProgram(settings cliUtils.Settings) (intcode.Program, error) {
	program, err := cliUtils.LoadProgram(settings.ProgramFile)
	if err != nil {
		return nil, err
	}
	log.Infof("loaded %s: %d cells, hash %v", settings.ProgramFile, len(program), program.Hash())
	return program, nil
}

// writeSnapshot stores the state of the machine in the given file.
func writeSnapshot(path string, m intcode.Machine) error {
	data, err := intcode.EncodeSnapshot(m.Snapshot())
	if err != nil {
		return fmt.Errorf("could not encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not write snapshot: %w", err)
	}
	log.Noticef("machine state stored in %s", path)
	return nil
}

// readSnapshot loads a machine state stored by writeSnapshot.
func readSnapshot(path string) (intcode.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return intcode.Snapshot{}, fmt.Errorf("could not read snapshot: %w", err)
	}
	return intcode.DecodeSnapshot(data)
}

// restorer is implemented by interpreters able to resume a snapshot.
type restorer interface {
	Restore(intcode.Snapshot) intcode.Machine
}
