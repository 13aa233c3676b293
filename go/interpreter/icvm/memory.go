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

	"github.com/intcode-vm/intcode/go/intcode"
)

// MaxMemorySize is the maximum number of cells a memory may grow to. Reads
// beyond it yield zero like any other unwritten cell, writes fail.
const MaxMemorySize = 1 << 27

// Memory is the logically infinite, zero initialized cell store of a
// machine. Reads beyond the current size yield zero, writes beyond it grow
// the store. Memory never shrinks.
type Memory struct {
	store []intcode.Word
}

// NewMemory creates a memory holding a copy of the given image.
func NewMemory(image []intcode.Word) *Memory {
	store := make([]intcode.Word, len(image))
	copy(store, image)
	return &Memory{store: store}
}

// Len returns the number of cells currently backed by storage.
func (m *Memory) Len() int {
	return len(m.store)
}

// Snapshot returns a copy of all cells backed by storage.
func (m *Memory) Snapshot() []intcode.Word {
	res := make([]intcode.Word, len(m.store))
	copy(res, m.store)
	return res
}

// read returns the value of the cell at the given address.
func (m *Memory) read(address intcode.Word) (intcode.Word, error) {
	if address < 0 {
		return 0, fmt.Errorf("%w: read at %d", intcode.ErrNegativeAddress, address)
	}
	if address >= intcode.Word(len(m.store)) {
		return 0, nil
	}
	return m.store[address], nil
}

// write stores value in the cell at the given address, expanding the
// memory with zero filled cells if needed.
func (m *Memory) write(address, value intcode.Word) error {
	if address < 0 {
		return fmt.Errorf("%w: write at %d", intcode.ErrNegativeAddress, address)
	}
	if address >= MaxMemorySize {
		return fmt.Errorf("%w: write at %d", intcode.ErrAddressOutOfRange, address)
	}
	m.expand(address + 1)
	m.store[address] = value
	return nil
}

// expand grows the memory to hold at least size cells.
func (m *Memory) expand(size intcode.Word) {
	current := intcode.Word(len(m.store))
	if current < size {
		m.store = append(m.store, make([]intcode.Word, size-current)...)
	}
}
