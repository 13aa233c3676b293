// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package intcode

import (
	"fmt"
	"slices"

	"github.com/fxamacker/cbor/v2"
)

// Snapshot is a self-contained copy of the execution state of a machine. It
// can be used to inspect a failed or suspended machine, or to resume it in
// another process.
type Snapshot struct {
	Memory       []Word `cbor:"1,keyasint"`
	Pc           Word   `cbor:"2,keyasint"`
	RelativeBase Word   `cbor:"3,keyasint"`
	Inputs       []Word `cbor:"4,keyasint,omitempty"`
	Halted       bool   `cbor:"5,keyasint,omitempty"`
}

// Equal reports whether the two snapshots describe the same machine state.
// Nil and empty slices are considered equal.
func (s Snapshot) Equal(other Snapshot) bool {
	return s.Pc == other.Pc &&
		s.RelativeBase == other.RelativeBase &&
		s.Halted == other.Halted &&
		slices.Equal(s.Memory, other.Memory) &&
		slices.Equal(s.Inputs, other.Inputs)
}

var snapshotEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("intcode: failed to create CBOR enc mode: %v", err))
	}
	snapshotEncMode = em
}

// EncodeSnapshot serializes a snapshot into its canonical CBOR form.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	return snapshotEncMode.Marshal(s)
}

// DecodeSnapshot deserializes a snapshot from CBOR bytes.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("intcode: unmarshal snapshot: %w", err)
	}
	return s, nil
}
