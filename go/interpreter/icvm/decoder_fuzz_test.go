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
	"math"
	"testing"

	"github.com/intcode-vm/intcode/go/intcode"
	"pgregory.net/rand"
)

func FuzzDecodeInstruction(f *testing.F) {
	for _, cell := range []int64{0, 1, 99, 1002, 11101, 21101, 204, 304, -1101, math.MaxInt64, math.MinInt64} {
		f.Add(cell)
	}
	rnd := rand.New(0)
	for i := 0; i < 32; i++ {
		f.Add(rnd.Int63n(100000) - 50000)
	}

	decoder, err := newDecoder(16)
	if err != nil {
		f.Fatalf("failed to create decoder: %v", err)
	}

	f.Fuzz(func(t *testing.T, cell int64) {
		in, err := decodeInstruction(intcode.Word(cell))
		cached, cachedErr := decoder.decode(intcode.Word(cell))
		if (err == nil) != (cachedErr == nil) || in != cached {
			t.Fatalf("cached decoding of %d differs: %v/%v vs %v/%v", cell, in, err, cached, cachedErr)
		}
		if err != nil {
			return
		}
		if !in.OpCode().IsValid() {
			t.Errorf("decoded invalid opcode %v from %d", in.OpCode(), cell)
		}
		for n := 1; n <= in.OpCode().NumParameters(); n++ {
			mode := in.Mode(n)
			if mode > Relative {
				t.Errorf("decoded invalid mode %v for parameter %d of %d", mode, n, cell)
			}
		}
		if cell != math.MinInt64 {
			if negated, err := decodeInstruction(intcode.Word(-cell)); err != nil || negated != in {
				t.Errorf("decoding of %d and %d differs", cell, -cell)
			}
		}
	})
}
