// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package intcode is the public interface of the project. It defines the
// value types shared by all machine implementations, the Machine and
// Interpreter abstractions used by harnesses, and a registry through which
// implementations are made available to client code.
package intcode

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Word is the content of a single memory cell.
type Word = int64

// Program is the initial memory image of a machine. Machines never modify
// the program they were created from; each one works on its own copy.
type Program []Word

// Hash is a 32-byte fingerprint of a program.
type Hash [32]byte

// ParseProgram parses the comma separated textual form of a program.
// Surrounding whitespace, including the trailing newline of input files, is
// ignored.
func ParseProgram(text string) (Program, error) {
	words, err := ParseWords(text)
	if err != nil {
		return nil, err
	}
	return Program(words), nil
}

// ParseWords parses a comma separated list of decimal integers. An empty or
// blank text yields an empty list.
func ParseWords(text string) ([]Word, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	parts := strings.Split(text, ",")
	res := make([]Word, 0, len(parts))
	for i, part := range parts {
		value, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value at position %d: %w", i, err)
		}
		res = append(res, value)
	}
	return res, nil
}

// Clone returns an independent copy of the program.
func (p Program) Clone() Program {
	if p == nil {
		return nil
	}
	res := make(Program, len(p))
	copy(res, p)
	return res
}

// With returns a copy of the program where the cell at the given address is
// replaced by value. The copy is extended with zeros if needed.
func (p Program) With(address int, value Word) Program {
	size := len(p)
	if address >= size {
		size = address + 1
	}
	res := make(Program, size)
	copy(res, p)
	res[address] = value
	return res
}

func (p Program) String() string {
	var builder strings.Builder
	for i, word := range p {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(strconv.FormatInt(word, 10))
	}
	return builder.String()
}

// Hash computes the Keccak-256 hash of the canonical textual form of the
// program.
func (p Program) Hash() Hash {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(p.String()))
	var res Hash
	hasher.Sum(res[:0])
	return res
}

func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}
