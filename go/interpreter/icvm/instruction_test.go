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
	"errors"
	"math"
	"testing"

	"github.com/intcode-vm/intcode/go/intcode"
)

func TestInstruction_DecodesOpCodeAndModes(t *testing.T) {
	tests := map[string]struct {
		cell  intcode.Word
		op    OpCode
		modes [3]Mode
	}{
		"1002":     {1002, MUL, [3]Mode{Position, Immediate, Position}},
		"11002":    {11002, MUL, [3]Mode{Position, Immediate, Immediate}},
		"1":        {1, ADD, [3]Mode{Position, Position, Position}},
		"1101":     {1101, ADD, [3]Mode{Immediate, Immediate, Position}},
		"21101":    {21101, ADD, [3]Mode{Immediate, Immediate, Relative}},
		"203":      {203, IN, [3]Mode{Relative}},
		"104":      {104, OUT, [3]Mode{Immediate}},
		"204":      {204, OUT, [3]Mode{Relative}},
		"1105":     {1105, JNZ, [3]Mode{Immediate, Immediate}},
		"2206":     {2206, JZ, [3]Mode{Relative, Relative}},
		"109":      {109, ARB, [3]Mode{Immediate}},
		"99":       {99, HALT, [3]Mode{}},
		"negative": {-1002, MUL, [3]Mode{Position, Immediate, Position}},
		"unused":   {999999, HALT, [3]Mode{}},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := decodeInstruction(test.cell)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.OpCode() != test.op {
				t.Errorf("unexpected opcode, wanted %v, got %v", test.op, got.OpCode())
			}
			for n := 1; n <= got.OpCode().NumParameters(); n++ {
				if want, got := test.modes[n-1], got.Mode(n); want != got {
					t.Errorf("unexpected mode of parameter %d, wanted %v, got %v", n, want, got)
				}
			}
		})
	}
}

func TestInstruction_DecodingErrors(t *testing.T) {
	tests := map[string]struct {
		cell intcode.Word
		want error
	}{
		"unknown opcode":   {0, intcode.ErrInvalidOpCode},
		"opcode 10":        {10, intcode.ErrInvalidOpCode},
		"opcode 98":        {98, intcode.ErrInvalidOpCode},
		"mode 3":           {301, intcode.ErrInvalidMode},
		"mode 9 on second": {9002, intcode.ErrInvalidMode},
		"min int":          {math.MinInt64, intcode.ErrInvalidMode},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := decodeInstruction(test.cell); !errors.Is(err, test.want) {
				t.Errorf("expected %v, got %v", test.want, err)
			}
		})
	}
}

func TestInstruction_ImmediateDestinationIsDecoded(t *testing.T) {
	tests := map[string]intcode.Word{
		"add target":    10001,
		"input target":  103,
		"equals target": 11108,
	}
	for name, cell := range tests {
		t.Run(name, func(t *testing.T) {
			in, err := decodeInstruction(cell)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !in.writesImmediate() {
				t.Errorf("expected %v to write to an immediate destination", in)
			}
		})
	}
	for _, cell := range []intcode.Word{1002, 21101, 203, 104, 1105, 99} {
		in, err := decodeInstruction(cell)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.writesImmediate() {
			t.Errorf("%v does not write to an immediate destination", in)
		}
	}
}

func TestInstruction_String(t *testing.T) {
	tests := map[intcode.Word]string{
		1002:  "MUL pos,imm,pos",
		21101: "ADD imm,imm,rel",
		204:   "OUT rel",
		99:    "HALT",
	}
	for cell, want := range tests {
		instruction, err := decodeInstruction(cell)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := instruction.String(); got != want {
			t.Errorf("unexpected string for %d, wanted %q, got %q", cell, want, got)
		}
	}
}

func TestMode_String(t *testing.T) {
	tests := map[Mode]string{
		Position:  "pos",
		Immediate: "imm",
		Relative:  "rel",
		Mode(7):   "mode(7)",
	}
	for mode, want := range tests {
		if got := mode.String(); got != want {
			t.Errorf("wanted %q, got %q", want, got)
		}
	}
}
