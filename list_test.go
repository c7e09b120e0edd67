// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package date_test

import (
	"slices"
	"testing"

	"cloudeng.io/date"
)

func TestDateListParse(t *testing.T) {
	nd := newDate
	var dl date.DateList
	if err := dl.Parse("2010-01-01, 2001-01-01,2005-01-01,2001-01-01"); err != nil {
		t.Fatalf("failed: %v", err)
	}
	want := date.DateList{nd(2001, 1, 1), nd(2005, 1, 1), nd(2010, 1, 1)}
	if got := dl; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if err := dl.Parse(""); err != nil {
		t.Fatalf("failed: %v", err)
	}
	if dl != nil {
		t.Errorf("got %v, want nil", dl)
	}

	for _, tc := range []string{
		"2001-01-01,01-01-2005",
		"2001-02-30",
		"2001-01-01,,2005-01-01",
	} {
		if err := dl.Parse(tc); err == nil {
			t.Errorf("failed to return an error: %q", tc)
		}
	}
}

func TestDateListContainsString(t *testing.T) {
	var dl date.DateList
	if err := dl.Parse("2005-01-01,2001-01-01"); err != nil {
		t.Fatalf("failed: %v", err)
	}
	if !dl.Contains(newDate(2005, 1, 1)) {
		t.Errorf("missing date")
	}
	if dl.Contains(newDate(2005, 1, 2)) {
		t.Errorf("unexpected date")
	}
	if got, want := dl.String(), "2001-01-01, 2005-01-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
