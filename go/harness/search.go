// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package harness

import (
	"fmt"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/intcode-vm/intcode/go/intcode"
)

// Evaluator computes the signal produced by a topology configured with the
// given phase order.
type Evaluator func(phases []intcode.Word) (intcode.Word, error)

// Chain returns an Evaluator running the program as a series chain, see
// RunChain.
func Chain(interpreter intcode.Interpreter, program intcode.Program, signal intcode.Word) Evaluator {
	return func(phases []intcode.Word) (intcode.Word, error) {
		return RunChain(interpreter, program, phases, signal)
	}
}

// Feedback returns an Evaluator running the program as a feedback ring, see
// NewFeedbackRing.
func Feedback(interpreter intcode.Interpreter, program intcode.Program, signal intcode.Word) Evaluator {
	return func(phases []intcode.Word) (intcode.Word, error) {
		return NewFeedbackRing(interpreter, program, phases, signal).Run()
	}
}

// SearchConfig controls the execution of MaxSignal.
type SearchConfig struct {
	// Jobs is the number of permutations evaluated in parallel. If not
	// positive, the number of CPUs is used.
	Jobs int
	// Progress, if set, is called periodically and once at the end of the
	// search with the elapsed time, the evaluation rate per second, and the
	// number of evaluated permutations.
	Progress func(elapsed time.Duration, rate float64, evaluated int64)
	// ProgressInterval is the period of Progress calls, 5s if not set.
	ProgressInterval time.Duration
}

// SearchResult is the best phase order found by MaxSignal.
type SearchResult struct {
	Signal    intcode.Word
	Phases    []intcode.Word
	Evaluated int64
}

// MaxSignal evaluates every distinct permutation of the given phases and
// returns the one producing the highest signal. Among equally good orders,
// the lexicographically smallest one is reported. The first failing
// evaluation aborts the search.
func MaxSignal(evaluate Evaluator, phases []intcode.Word, config SearchConfig) (SearchResult, error) {
	if len(phases) == 0 {
		return SearchResult{}, ErrNoMachines
	}
	numJobs := config.Jobs
	if numJobs <= 0 {
		numJobs = runtime.NumCPU()
	}
	interval := config.ProgressInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}

	// Permutations are produced by this goroutine in lexicographic order and
	// consumed by a team of workers, each evaluating its candidates in
	// isolation. A progress reporter runs alongside if requested.

	type candidate struct {
		index  int
		phases []intcode.Word
	}

	var counter atomic.Int64
	var abort atomic.Bool

	done := make(chan bool)
	printerDone := make(chan bool)
	go func() {
		defer close(printerDone)
		if config.Progress == nil {
			<-done
			return
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		startTime := time.Now()
		lastTime := startTime
		lastCounter := int64(0)

		checkTimingAndPrint := func(now time.Time) {
			cur := counter.Load()
			diffCounter := cur - lastCounter
			diffTime := now.Sub(lastTime)
			lastTime = now
			lastCounter = cur
			rate := 0.0
			if diffTime > 0 {
				rate = float64(diffCounter) / diffTime.Seconds()
			}
			config.Progress(now.Sub(startTime), rate, cur)
		}

		for {
			select {
			case <-done:
				checkTimingAndPrint(time.Now())
				return
			case now := <-ticker.C:
				checkTimingAndPrint(now)
			}
		}
	}()

	var mutex sync.Mutex
	best := SearchResult{}
	bestIndex := -1
	var returnError error
	errorIndex := -1

	var wg sync.WaitGroup
	wg.Add(numJobs)
	candidates := make(chan candidate, 10*numJobs)
	for i := 0; i < numJobs; i++ {
		go func() {
			defer wg.Done()
			for c := range candidates {
				if abort.Load() {
					continue // keep consuming candidates
				}
				signal, err := evaluate(c.phases)
				counter.Add(1)

				mutex.Lock()
				if err != nil {
					abort.Store(true)
					if errorIndex < 0 || c.index < errorIndex {
						errorIndex = c.index
						returnError = fmt.Errorf("phases %v: %w", c.phases, err)
					}
				} else if bestIndex < 0 || signal > best.Signal || (signal == best.Signal && c.index < bestIndex) {
					best.Signal = signal
					best.Phases = c.phases
					bestIndex = c.index
				}
				mutex.Unlock()
			}
		}()
	}

	current := slices.Clone(phases)
	slices.Sort(current)
	for index := 0; ; index++ {
		if abort.Load() {
			break
		}
		candidates <- candidate{index: index, phases: slices.Clone(current)}
		if !nextPermutation(current) {
			break
		}
	}
	close(candidates)
	wg.Wait()

	close(done)   // < signals progress printer to stop
	<-printerDone // < blocks until the final report is printed

	best.Evaluated = counter.Load()
	if returnError != nil {
		return SearchResult{Evaluated: best.Evaluated}, returnError
	}
	return best, nil
}

// nextPermutation rearranges values into the lexicographically next greater
// permutation. The result is false if values was the last permutation.
func nextPermutation(values []intcode.Word) bool {
	i := len(values) - 2
	for i >= 0 && values[i] >= values[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(values) - 1
	for values[j] <= values[i] {
		j--
	}
	values[i], values[j] = values[j], values[i]
	slices.Reverse(values[i+1:])
	return true
}
