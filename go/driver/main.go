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
	"os"

	cliUtils "github.com/intcode-vm/intcode/go/driver/cli"
	"github.com/tliron/commonlog"
	"github.com/urfave/cli/v2"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	runCmd := cliUtils.AddCommonFlags(RunCmd)
	ringCmd := cliUtils.AddCommonFlags(RingCmd)
	chainCmd := cliUtils.AddCommonFlags(ChainCmd)
	searchCmd := cliUtils.AddCommonFlags(SearchCmd)
	nounVerbCmd := cliUtils.AddCommonFlags(NounVerbCmd)
	statsCmd := cliUtils.AddCommonFlags(StatsCmd)
	return &cli.App{
		Name:      "intcode",
		Usage:     "Intcode virtual machine driver",
		Copyright: "(c) 2024 Fantom Foundation",
		Flags: []cli.Flag{
			cliUtils.VerbosityFlag,
		},
		Before: func(context *cli.Context) error {
			commonlog.Configure(cliUtils.VerbosityFlag.Fetch(context), nil)
			return nil
		},
		Commands: []*cli.Command{
			&runCmd,
			&ringCmd,
			&chainCmd,
			&searchCmd,
			&nounVerbCmd,
			&DisasmCmd,
			&statsCmd,
			&ListCmd,
		},
	}
}
