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

import "fmt"

// OpCode is the operation code of an instruction, the two least significant
// decimal digits of an instruction cell.
type OpCode byte

const (
	ADD  OpCode = 1
	MUL  OpCode = 2
	IN   OpCode = 3
	OUT  OpCode = 4
	JNZ  OpCode = 5 // < jump-if-true
	JZ   OpCode = 6 // < jump-if-false
	LT   OpCode = 7
	EQ   OpCode = 8
	ARB  OpCode = 9 // < adjust relative base
	HALT OpCode = 99
)

// opMask is the decimal modulus separating the OpCode from the parameter
// modes in an instruction cell.
const opMask = 100

// numOpCodes is the number of distinct values an OpCode decoded from a cell
// can take.
const numOpCodes = opMask

var toString = map[OpCode]string{
	ADD:  "ADD",
	MUL:  "MUL",
	IN:   "IN",
	OUT:  "OUT",
	JNZ:  "JNZ",
	JZ:   "JZ",
	LT:   "LT",
	EQ:   "EQ",
	ARB:  "ARB",
	HALT: "HALT",
}

// String returns the mnemonic of the OpCode.
func (o OpCode) String() string {
	if str, ok := toString[o]; ok {
		return str
	}
	return fmt.Sprintf("op(%d)", byte(o))
}

// IsValid reports whether the OpCode is part of the instruction set.
func (o OpCode) IsValid() bool {
	return _opCodeProperties.get(o).valid
}

// NumParameters is the number of operands following the OpCode in memory.
func (o OpCode) NumParameters() int {
	return _opCodeProperties.get(o).parameters
}

// Width is the number of cells occupied by an instruction with this OpCode.
func (o OpCode) Width() int {
	return o.NumParameters() + 1
}

// destination returns the 1-based position of the parameter the OpCode
// writes to, or 0 if it does not write to memory.
func (o OpCode) destination() int {
	return _opCodeProperties.get(o).destination
}

type opCodeProperties struct {
	valid       bool
	parameters  int
	destination int
}

var _opCodeProperties = newOpCodePropertyMap(func(op OpCode) opCodeProperties {
	switch op {
	case ADD, MUL, LT, EQ:
		return opCodeProperties{valid: true, parameters: 3, destination: 3}
	case IN:
		return opCodeProperties{valid: true, parameters: 1, destination: 1}
	case OUT, ARB:
		return opCodeProperties{valid: true, parameters: 1}
	case JNZ, JZ:
		return opCodeProperties{valid: true, parameters: 2}
	case HALT:
		return opCodeProperties{valid: true}
	}
	return opCodeProperties{}
})

// opCodePropertyMap is a generic property map for precomputed values.
// Its purpose is to provide a precomputed lookup table for OpCode properties
// that can be generated from a function that takes an OpCode as input.
type opCodePropertyMap[T any] struct {
	lookup [numOpCodes]T
}

// newOpCodePropertyMap creates a new OpCode property map.
// The property function shall be resilient to undefined OpCode values, and not
// panic. The zero values or a sentinel value shall be used in such cases.
func newOpCodePropertyMap[T any](property func(op OpCode) T) opCodePropertyMap[T] {
	lookup := [numOpCodes]T{}
	for i := 0; i < numOpCodes; i++ {
		lookup[i] = property(OpCode(i))
	}
	return opCodePropertyMap[T]{lookup}
}

func (p *opCodePropertyMap[T]) get(op OpCode) T {
	return p.lookup[op%opMask]
}
