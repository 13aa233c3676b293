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
	"bytes"
	"strings"
	"testing"

	"github.com/intcode-vm/intcode/go/intcode"
)

func TestStatisticsRunner_CollectsSinglesAndPairs(t *testing.T) {
	interpreter, err := NewInterpreter(Config{WithStatistics: true})
	if err != nil {
		t.Fatalf("failed to create interpreter: %v", err)
	}
	runner, ok := interpreter.runner.(*statisticRunner)
	if !ok {
		t.Fatalf("unexpected runner type %T", interpreter.runner)
	}

	program := intcode.Program{1101, 2, 3, 5, 99, 0}
	for i := 0; i < 2; i++ {
		if _, err := interpreter.Run(program); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	stats := runner.stats
	if stats.count != 4 {
		t.Errorf("unexpected step count, wanted 4, got %d", stats.count)
	}
	if stats.runs != 2 {
		t.Errorf("unexpected number of runs, wanted 2, got %d", stats.runs)
	}
	if got := stats.singleCount[ADD]; got != 2 {
		t.Errorf("unexpected ADD count, wanted 2, got %d", got)
	}
	if got := stats.singleCount[HALT]; got != 2 {
		t.Errorf("unexpected HALT count, wanted 2, got %d", got)
	}
	if got := stats.pairCount[[2]OpCode{ADD, HALT}]; got != 2 {
		t.Errorf("unexpected ADD-HALT count, wanted 2, got %d", got)
	}
	// the runs are independent, no pair spans two machines
	if got := stats.pairCount[[2]OpCode{HALT, ADD}]; got != 0 {
		t.Errorf("pair across machines was recorded %d times", got)
	}
}

func TestStatisticsRunner_FailedStepsAreNotRecorded(t *testing.T) {
	runner := &statisticRunner{}
	interpreter, err := NewInterpreter(Config{runner: runner})
	if err != nil {
		t.Fatalf("failed to create interpreter: %v", err)
	}
	if _, err := interpreter.Run(intcode.Program{104, 1, 42}); err == nil {
		t.Fatalf("expected invalid opcode error")
	}
	if runner.stats.count != 1 {
		t.Errorf("unexpected step count, wanted 1, got %d", runner.stats.count)
	}
	if runner.stats.runs != 0 {
		t.Errorf("failed run was counted as halted")
	}
}

func TestStatisticsRunner_BlockedInputsAreNotRecorded(t *testing.T) {
	runner := &statisticRunner{}
	interpreter, err := NewInterpreter(Config{runner: runner})
	if err != nil {
		t.Fatalf("failed to create interpreter: %v", err)
	}
	m := interpreter.NewMachine(intcode.Program{3, 0, 4, 0, 99})
	for i := 0; i < 3; i++ {
		if _, err := m.Step(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	m.PushInput(1)
	if _, err := intcode.Drain(m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if runner.stats.count != 3 {
		t.Errorf("unexpected step count, wanted 3, got %d", runner.stats.count)
	}
	if got := runner.stats.singleCount[IN]; got != 1 {
		t.Errorf("unexpected IN count, wanted 1, got %d", got)
	}
	if got := runner.stats.pairCount[[2]OpCode{IN, OUT}]; got != 1 {
		t.Errorf("unexpected IN-OUT count, wanted 1, got %d", got)
	}
}

func TestStatisticsRunner_DumpAndResetProfile(t *testing.T) {
	interpreter, err := NewInterpreter(Config{WithStatistics: true})
	if err != nil {
		t.Fatalf("failed to create interpreter: %v", err)
	}
	if _, err := interpreter.Run(intcode.Program{1101, 2, 3, 7, 104, 7, 99, 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out bytes.Buffer
	if err := interpreter.DumpProfile(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	summary := out.String()
	for _, want := range []string{"Steps:", "(3)", "Halted runs: 1", "ADD", "OUT", "HALT"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary does not contain %q:\n%s", want, summary)
		}
	}

	interpreter.ResetProfile()
	out.Reset()
	if err := interpreter.DumpProfile(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Halted runs: 0") {
		t.Errorf("statistics were not reset:\n%s", out.String())
	}
}

func TestStatisticsRunner_ProfileOfPlainInterpreterIsEmpty(t *testing.T) {
	interpreter, err := NewInterpreter(Config{})
	if err != nil {
		t.Fatalf("failed to create interpreter: %v", err)
	}
	var out bytes.Buffer
	if err := interpreter.DumpProfile(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected profile output: %q", out.String())
	}
	interpreter.ResetProfile()
}

func TestStatistics_PrintListsTopPairsOnly(t *testing.T) {
	stats := newStatistics()
	ops := []OpCode{ADD, MUL, IN, OUT, JNZ, JZ, LT, EQ, ARB, HALT}
	for i, op := range ops {
		stats.record(ops[(i+len(ops)-1)%len(ops)], op, i == 0)
	}
	summary := stats.print()
	pairs := summary[strings.Index(summary, "Pairs:"):]
	if got := strings.Count(pairs, "\n\t"); got != 5 {
		t.Errorf("expected 5 listed pairs, got %d:\n%s", got, pairs)
	}
}
