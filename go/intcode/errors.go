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

// ConstError is a error type that can be used to define immutable
// error constants.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

// All of the following errors are fatal for the machine reporting them. There
// is no way to resume an execution after one of them has been returned.
const (
	ErrInvalidOpCode        = ConstError("invalid opcode")
	ErrInvalidMode          = ConstError("invalid parameter mode")
	ErrImmediateDestination = ConstError("immediate mode used for destination parameter")
	ErrInputStarvation      = ConstError("input requested but none available")
	ErrNegativeAddress      = ConstError("negative memory address")
	ErrAddressOutOfRange    = ConstError("memory address beyond addressable range")

	// ErrStepLimitExceeded is reported when a configured step budget is
	// exhausted before the machine halted.
	ErrStepLimitExceeded = ConstError("step limit exceeded")
)
