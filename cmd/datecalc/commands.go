// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strings"

	"cloudeng.io/date"
	"cloudeng.io/errors"
)

func add(_ context.Context, values interface{}, args []string) error {
	fv := values.(*addFlags)
	errs := errors.M{}
	for _, arg := range args {
		var d date.Date
		if err := d.Parse(arg); err != nil {
			errs.Append(err)
			continue
		}
		d = d.AddDays(fv.Days).AddMonths(fv.Months).AddYears(fv.Years)
		fmt.Println(d)
	}
	return errs.Err()
}

func diff(_ context.Context, _ interface{}, args []string) error {
	var from, to date.Date
	if err := from.Parse(args[0]); err != nil {
		return err
	}
	if err := to.Parse(args[1]); err != nil {
		return err
	}
	fmt.Println(to.Sub(from))
	return nil
}

func info(_ context.Context, _ interface{}, args []string) error {
	errs := errors.M{}
	for _, arg := range args {
		var d date.Date
		if err := d.Parse(arg); err != nil {
			errs.Append(err)
			continue
		}
		fmt.Printf("%v: %v, day %v of %v, leap year %v\n",
			d, d.Weekday(), d.DayOfYear(), date.DaysInYear(d.Year()), d.IsLeapYear())
	}
	return errs.Err()
}

func sortDates(_ context.Context, _ interface{}, args []string) error {
	var dl date.DateList
	if err := dl.Parse(strings.Join(args, ",")); err != nil {
		return err
	}
	for _, d := range dl {
		fmt.Println(d)
	}
	return nil
}
