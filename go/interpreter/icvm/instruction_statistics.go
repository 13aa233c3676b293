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
	"sort"
	"strings"
	"sync"

	"github.com/dsnet/golib/unitconv"
	"github.com/intcode-vm/intcode/go/intcode"
)

// statisticRunner is a runner that collects statistics about the instruction
// sequences executed by all machines of an interpreter.
type statisticRunner struct {
	mutex sync.Mutex
	stats *statistics
}

func (s *statisticRunner) step(m *machine) (intcode.Signal, error) {
	previous, first := m.lastOp, m.steps == 0
	signal, err := execute(m)
	if err != nil || m.blocked {
		return signal, err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.stats == nil {
		s.stats = newStatistics()
	}
	s.stats.record(previous, m.lastOp, first)
	if signal.Kind == intcode.Halted {
		s.stats.runs++
	}
	return signal, nil
}

// getSummary returns a summary of the collected statistics in a human-readable
// format.
func (s *statisticRunner) getSummary() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.stats == nil {
		s.stats = newStatistics()
	}
	return s.stats.print()
}

// reset clears the collected statistics.
func (s *statisticRunner) reset() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.stats = newStatistics()
}

// statistics counts the number of times each instruction is executed, as
// well as the number of times each pair of consecutive instructions is
// executed.
type statistics struct {
	count       uint64
	runs        uint64
	singleCount map[OpCode]uint64
	pairCount   map[[2]OpCode]uint64
}

func newStatistics() *statistics {
	return &statistics{
		singleCount: map[OpCode]uint64{},
		pairCount:   map[[2]OpCode]uint64{},
	}
}

// record registers the execution of op, which was preceded by previous
// unless it is the first instruction executed by its machine.
func (s *statistics) record(previous, op OpCode, first bool) {
	s.count++
	s.singleCount[op]++
	if !first {
		s.pairCount[[2]OpCode{previous, op}]++
	}
}

// print returns a human-readable summary of the collected statistics.
func (s *statistics) print() string {

	type singleEntry struct {
		key   OpCode
		count uint64
	}
	type pairEntry struct {
		key   [2]OpCode
		count uint64
	}

	builder := strings.Builder{}
	write := func(format string, args ...interface{}) {
		builder.WriteString(fmt.Sprintf(format, args...))
	}
	percent := func(count uint64) float32 {
		return float32(count*100) / float32(s.count)
	}

	singles := make([]singleEntry, 0, len(s.singleCount))
	for k, c := range s.singleCount {
		singles = append(singles, singleEntry{k, c})
	}
	sort.Slice(singles, func(i, j int) bool {
		if singles[i].count != singles[j].count {
			return singles[i].count > singles[j].count
		}
		return singles[i].key < singles[j].key
	})

	pairs := make([]pairEntry, 0, len(s.pairCount))
	for k, c := range s.pairCount {
		pairs = append(pairs, pairEntry{k, c})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}
		if pairs[i].key[0] != pairs[j].key[0] {
			return pairs[i].key[0] < pairs[j].key[0]
		}
		return pairs[i].key[1] < pairs[j].key[1]
	})
	if len(pairs) > 5 {
		pairs = pairs[:5]
	}

	write("\n----- Statistics ------\n")
	write("\nSteps: %s (%d)\n", unitconv.FormatPrefix(float64(s.count), unitconv.SI, 1), s.count)
	write("Halted runs: %d\n", s.runs)
	write("\nSingles:\n")
	for _, e := range singles {
		write("\t%-10v: %d (%.2f%%)\n", e.key, e.count, percent(e.count))
	}
	write("\nPairs:\n")
	for _, e := range pairs {
		write("\t%-10v%-10v: %d (%.2f%%)\n", e.key[0], e.key[1], e.count, percent(e.count))
	}
	write("\n")

	return builder.String()
}
