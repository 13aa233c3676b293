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

import "fmt"

// SignalKind enumerates the outcomes of a single execution step.
type SignalKind byte

const (
	Default        SignalKind = iota // < instruction executed, no I/O event
	InputRequested                   // < an input instruction was reached
	OutputProduced                   // < a value was emitted
	Halted                           // < the machine reached its halt instruction
)

func (k SignalKind) String() string {
	switch k {
	case Default:
		return "Default"
	case InputRequested:
		return "InputRequested"
	case OutputProduced:
		return "OutputProduced"
	case Halted:
		return "Halted"
	}
	return fmt.Sprintf("SignalKind(%d)", byte(k))
}

// Signal is the suspend signal returned by each step of a machine. Address is
// only meaningful for InputRequested signals and Value only for
// OutputProduced signals.
type Signal struct {
	Kind    SignalKind
	Address Word
	Value   Word
}

// DefaultSignal is returned by steps without any I/O event.
func DefaultSignal() Signal {
	return Signal{Kind: Default}
}

// InputSignal is returned by an input instruction targeting the given address.
func InputSignal(address Word) Signal {
	return Signal{Kind: InputRequested, Address: address}
}

// OutputSignal is returned by an output instruction emitting value.
func OutputSignal(value Word) Signal {
	return Signal{Kind: OutputProduced, Value: value}
}

// HaltSignal is returned by every step of a halted machine.
func HaltSignal() Signal {
	return Signal{Kind: Halted}
}

func (s Signal) String() string {
	switch s.Kind {
	case InputRequested:
		return fmt.Sprintf("InputRequested(%d)", s.Address)
	case OutputProduced:
		return fmt.Sprintf("OutputProduced(%d)", s.Value)
	}
	return s.Kind.String()
}
