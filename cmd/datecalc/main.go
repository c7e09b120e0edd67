// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command datecalc provides simple calendar date calculations using
// the fixed ISO-8601 'YYYY-MM-DD' format for all input and output.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

type addFlags struct {
	Days   int `subcmd:"days,0,number of days to add (may be negative)"`
	Months int `subcmd:"months,0,number of months to add (may be negative)"`
	Years  int `subcmd:"years,0,number of years to add (may be negative)"`
}

func init() {
	addFlagSet := subcmd.NewFlagSet()
	addFlagSet.MustRegisterFlagStruct(&addFlags{}, nil, nil)

	addCmd := subcmd.NewCommand("add", addFlagSet, add)
	addCmd.Document("add days, months and years to each date", "<date>+")

	diffCmd := subcmd.NewCommand("diff", subcmd.NewFlagSet(), diff, subcmd.ExactlyNumArguments(2))
	diffCmd.Document("print the number of days from one date to another", "<from> <to>")

	infoCmd := subcmd.NewCommand("info", subcmd.NewFlagSet(), info)
	infoCmd.Document("print the weekday, day of year and leap year status of each date", "<date>+")

	sortCmd := subcmd.NewCommand("sort", subcmd.NewFlagSet(), sortDates)
	sortCmd.Document("print the dates in chronological order without duplicates", "<date>+")

	cmdSet = subcmd.NewCommandSet(addCmd, diffCmd, infoCmd, sortCmd)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
