// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package date_test

import (
	"cloudeng.io/date"
)

func newDate(year int, month date.Month, day int) date.Date {
	d, err := date.NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

func parseDate(val string) date.Date {
	d, err := date.Parse(val)
	if err != nil {
		panic(err)
	}
	return d
}
