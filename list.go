// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package date

import (
	"slices"
	"strings"
)

// DateList represents a list of dates.
type DateList []Date

// Parse a comma separated list of dates in the format expected by
// Date.Parse. The parsed list is sorted and without duplicates. An
// empty value yields a nil list.
func (dl *DateList) Parse(val string) error {
	if len(val) == 0 {
		*dl = nil
		return nil
	}
	parts := strings.Split(val, ",")
	dates := make(DateList, 0, len(parts))
	seen := map[Date]struct{}{}
	for _, part := range parts {
		var d Date
		if err := d.Parse(strings.TrimSpace(part)); err != nil {
			return err
		}
		if _, ok := seen[d]; ok {
			continue
		}
		dates = append(dates, d)
		seen[d] = struct{}{}
	}
	slices.Sort(dates)
	*dl = dates
	return nil
}

func (dl DateList) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

func (dl DateList) Contains(d Date) bool {
	return slices.Contains(dl, d)
}
