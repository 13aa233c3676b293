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
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/intcode-vm/intcode/go/intcode"
)

// defaultDecodeCacheSize is the number of decoded instructions retained if
// no explicit cache size is configured. Well-formed programs use only a few
// hundred distinct instruction cells.
const defaultDecodeCacheSize = 1 << 10

// decoder translates instruction cells into Instructions. Results are
// memoized in an LRU cache keyed by the cell value. Since decoding is a pure
// function of the cell value, cached results stay valid even if a program
// modifies its own code. A decoder is thread-safe and may be shared by
// machines running in parallel.
type decoder struct {
	cache *lru.Cache[intcode.Word, Instruction]
}

// newDecoder creates a decoder with a cache of the given number of entries.
// If size is 0, a default size is used. If negative, no cache is used.
func newDecoder(size int) (*decoder, error) {
	if size == 0 {
		size = defaultDecodeCacheSize
	}
	if size < 0 {
		return &decoder{}, nil
	}
	cache, err := lru.New[intcode.Word, Instruction](size)
	if err != nil {
		return nil, err
	}
	return &decoder{cache: cache}, nil
}

// decode returns the Instruction encoded by the given cell. Cells that fail
// to decode are not cached.
func (d *decoder) decode(cell intcode.Word) (Instruction, error) {
	if d == nil || d.cache == nil {
		return decodeInstruction(cell)
	}
	if res, found := d.cache.Get(cell); found {
		return res, nil
	}
	res, err := decodeInstruction(cell)
	if err != nil {
		return res, err
	}
	d.cache.Add(cell, res)
	return res, nil
}
