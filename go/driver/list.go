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
	"sort"

	"github.com/intcode-vm/intcode/go/intcode"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"
)

var ListCmd = cli.Command{
	Action: doList,
	Name:   "list",
	Usage:  "List all registered interpreters by name",
}

func doList(context *cli.Context) error {
	names := maps.Keys(intcode.GetAllRegisteredInterpreters())
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(context.App.Writer, name)
	}
	return nil
}
