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
	"slices"
	"testing"

	"github.com/intcode-vm/intcode/go/intcode"
)

func TestDisassemble_ProducesListing(t *testing.T) {
	program := intcode.Program{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99, 3}

	want := []string{
		"0000: ARB 1",
		"0002: OUT [rb-1]",
		"0004: ADD [100], 1, [100]",
		"0008: EQ [100], 16, [101]",
		"0012: JZ [101], 0",
		"0015: HALT",
		"0016: DATA 3",
	}

	lines := Disassemble(program)
	got := make([]string, 0, len(lines))
	for _, line := range lines {
		got = append(got, line.String())
	}
	if !slices.Equal(want, got) {
		t.Errorf("unexpected listing\nwanted %q\ngot    %q", want, got)
	}
}

func TestDisassemble_CoversEveryCellOnce(t *testing.T) {
	program := intcode.Program{1, 0, 0, 0, 42, 21101, 1, 2, 3, -7, 4}
	next := 0
	for _, line := range Disassemble(program) {
		if line.Address != next {
			t.Fatalf("gap or overlap at %d, expected %d", line.Address, next)
		}
		if !slices.Equal(line.Cells, program[line.Address:line.Address+len(line.Cells)]) {
			t.Errorf("cells of line %v do not match program", line)
		}
		next += len(line.Cells)
	}
	if next != len(program) {
		t.Errorf("listing ends at %d, program has %d cells", next, len(program))
	}
}

func TestDisassemble_InvalidAndTruncatedInstructionsAreData(t *testing.T) {
	tests := map[string]struct {
		program intcode.Program
		want    string
	}{
		"invalid opcode":        {intcode.Program{42}, "0000: DATA 42"},
		"invalid mode":          {intcode.Program{304, 1}, "0000: DATA 304"},
		"immediate destination": {intcode.Program{11101, 1, 1, 1}, "0000: DATA 11101"},
		"truncated":             {intcode.Program{1101, 1}, "0000: DATA 1101"},
		"negative opcode":       {intcode.Program{-99}, "0000: HALT"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			lines := Disassemble(test.program)
			if len(lines) == 0 {
				t.Fatalf("empty listing")
			}
			if got := lines[0].String(); got != test.want {
				t.Errorf("unexpected line, wanted %q, got %q", test.want, got)
			}
		})
	}
}

func TestDisassemble_EmptyProgram(t *testing.T) {
	if lines := Disassemble(nil); len(lines) != 0 {
		t.Errorf("unexpected listing for empty program: %v", lines)
	}
}
