// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"time"

	"github.com/dsnet/golib/unitconv"
	cliUtils "github.com/intcode-vm/intcode/go/driver/cli"
	"github.com/intcode-vm/intcode/go/harness"
	"github.com/intcode-vm/intcode/go/intcode"
	"github.com/urfave/cli/v2"
)

var SearchCmd = cli.Command{
	Action:    doSearch,
	Name:      "search",
	Usage:     "Find the phase order producing the highest signal",
	ArgsUsage: "<program file>",
	Flags: []cli.Flag{
		cliUtils.PhasesFlag,
		cliUtils.SignalFlag,
		cliUtils.FeedbackFlag,
		cliUtils.JobsFlag,
	},
}

var (
	chainPhases    = []intcode.Word{0, 1, 2, 3, 4}
	feedbackPhases = []intcode.Word{5, 6, 7, 8, 9}
)

func doSearch(context *cli.Context) error {
	settings, err := cliUtils.FetchSettings(context)
	if err != nil {
		return err
	}
	interpreter, err := newInterpreter(settings)
	if err != nil {
		return err
	}
	program, err := loadProgram(settings)
	if err != nil {
		return err
	}

	evaluate := harness.Chain(interpreter, program, settings.Signal)
	phases := chainPhases
	if settings.Feedback {
		evaluate = harness.Feedback(interpreter, program, settings.Signal)
		phases = feedbackPhases
	}
	if len(settings.Phases) > 0 {
		phases = settings.Phases
	}

	printProgress := func(relativeTime time.Duration, rate float64, current int64) {
		log.Infof(
			"[t=%4d:%02d] - Processing ~%s permutations per second, total %d",
			int(relativeTime.Seconds())/60, int(relativeTime.Seconds())%60,
			unitconv.FormatPrefix(rate, unitconv.SI, 0), current,
		)
	}

	res, err := harness.MaxSignal(evaluate, phases, harness.SearchConfig{
		Jobs:     settings.Jobs,
		Progress: printProgress,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(context.App.Writer, "%d (phases %v)\n", res.Signal, intcode.Program(res.Phases))
	return nil
}
