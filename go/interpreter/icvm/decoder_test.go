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
	"sync"
	"testing"

	"github.com/intcode-vm/intcode/go/intcode"
)

func TestDecoder_CachesSuccessfulDecodings(t *testing.T) {
	d, err := newDecoder(4)
	if err != nil {
		t.Fatalf("failed to create decoder: %v", err)
	}

	want, _ := decodeInstruction(1002)
	got, err := d.decode(1002)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want != got {
		t.Errorf("unexpected instruction, wanted %v, got %v", want, got)
	}
	if cached, found := d.cache.Peek(1002); !found || cached != want {
		t.Errorf("instruction was not cached")
	}
}

func TestDecoder_FailuresAreNotCached(t *testing.T) {
	d, err := newDecoder(4)
	if err != nil {
		t.Fatalf("failed to create decoder: %v", err)
	}
	if _, err := d.decode(42); !errors.Is(err, intcode.ErrInvalidOpCode) {
		t.Errorf("expected invalid opcode error, got %v", err)
	}
	if d.cache.Contains(42) {
		t.Errorf("failed decoding was cached")
	}
}

func TestDecoder_CapacityIsBounded(t *testing.T) {
	d, err := newDecoder(2)
	if err != nil {
		t.Fatalf("failed to create decoder: %v", err)
	}
	for _, cell := range []intcode.Word{1, 2, 1101, 1002} {
		if _, err := d.decode(cell); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := d.cache.Len(); got != 2 {
		t.Errorf("unexpected number of cached entries: %d", got)
	}
}

func TestDecoder_NegativeSizeDisablesCache(t *testing.T) {
	d, err := newDecoder(-1)
	if err != nil {
		t.Fatalf("failed to create decoder: %v", err)
	}
	if d.cache != nil {
		t.Errorf("cache should be disabled")
	}
	if got, err := d.decode(1101); err != nil || got.OpCode() != ADD {
		t.Errorf("decoding without cache failed: %v, %v", got, err)
	}
}

func TestDecoder_DefaultSizeIsUsedForZero(t *testing.T) {
	d, err := newDecoder(0)
	if err != nil {
		t.Fatalf("failed to create decoder: %v", err)
	}
	for i := 0; i < 2*defaultDecodeCacheSize; i++ {
		if _, err := d.decode(intcode.Word(i*opMask + int(HALT))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := d.cache.Len(); got != defaultDecodeCacheSize {
		t.Errorf("unexpected cache size, wanted %d, got %d", defaultDecodeCacheSize, got)
	}
}

func TestDecoder_CanBeSharedBetweenGoroutines(t *testing.T) {
	d, err := newDecoder(8)
	if err != nil {
		t.Fatalf("failed to create decoder: %v", err)
	}
	cells := []intcode.Word{1, 2, 3, 4, 5, 6, 7, 8, 9, 99, 1002, 1101, 204, 109}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				for _, cell := range cells {
					want, _ := decodeInstruction(cell)
					got, err := d.decode(cell)
					if err != nil || got != want {
						t.Errorf("unexpected decoding of %d: %v, %v", cell, got, err)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
