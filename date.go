// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package date provides an immutable calendar date value type for the
// proleptic Gregorian calendar, that is, a year, month and day with no
// time of day and no time zone. Date values are ordered chronologically,
// are directly comparable and hence usable as map keys, and support
// parsing and formatting in the fixed ISO-8601 'YYYY-MM-DD' form.
package date

import (
	"cmp"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"time"
)

// Date represents a calendar date as a packed year, month and day
// (year<<16 | month<<8 | day). The packed form orders dates
// chronologically so the native comparison operators can be used
// directly. The supported year range is 1 to 9999; the zero value of
// Date is not a valid date.
type Date uint32

const (
	// MinDate is the earliest supported date, 0001-01-01.
	MinDate = Date(1<<16 | 1<<8 | 1)
	// MaxDate is the latest supported date, 9999-12-31.
	MaxDate = Date(9999<<16 | 12<<8 | 31)
)

// ErrInvalidDate is returned, wrapped, for any year/month/day
// combination that does not exist in the proleptic Gregorian calendar
// or falls outside the supported year range.
var ErrInvalidDate = errors.New("invalid date")

func newDate8(year uint16, month Month, day uint8) Date {
	return Date(year)<<16 | Date(month)<<8 | Date(day)
}

// NewDate returns the Date for the given year, month and day. The day
// is validated against the month and year, taking leap years into
// account.
func NewDate(year int, month Month, day int) (Date, error) {
	if year < 1 || year > 9999 {
		return 0, fmt.Errorf("year %d is not in the range 1-9999: %w", year, ErrInvalidDate)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("month %d is not in the range 1-12: %w", month, ErrInvalidDate)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return 0, fmt.Errorf("day %d does not exist in %s %04d: %w", day, month, year, ErrInvalidDate)
	}
	return newDate8(uint16(year), month, uint8(day)), nil
}

// Year returns the year, 1-9999.
func (d Date) Year() int {
	return int(d >> 16 & 0xffff)
}

// Month returns the month, January is 1.
func (d Date) Month() Month {
	return Month(d >> 8 & 0xff)
}

// Day returns the day of the month, 1-31.
func (d Date) Day() int {
	return int(d & 0xff)
}

// Date returns the year, month and day, following the convention of
// time.Time.Date.
func (d Date) Date() (year int, month Month, day int) {
	return d.Year(), d.Month(), d.Day()
}

// IsZero returns true for the zero value of Date, which is not a valid
// date.
func (d Date) IsZero() bool {
	return d == 0
}

// FromTime returns the Date for the calendar day of t in t's location.
// Years before 1 or after 9999 are clamped to MinDate or MaxDate.
func FromTime(t time.Time) Date {
	year, month, day := t.Date()
	if year < 1 {
		return MinDate
	}
	if year > 9999 {
		return MaxDate
	}
	return newDate8(uint16(year), Month(month), uint8(day))
}

// Today returns the current date in the local time zone.
func Today() Date {
	return FromTime(time.Now())
}

// Time returns midnight at the start of d in the specified location,
// or in time.Local if loc is nil.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year(), time.Month(d.Month()), d.Day(), 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), d.Month(), d.Day())
}

// Parse parses a date in the fixed ISO-8601 format 'YYYY-MM-DD', ie.
// a zero padded 4 digit year, 2 digit month and 2 digit day separated
// by hyphens. Any other length, separator, field order or non-digit
// content is rejected, as are month/day values that do not exist in
// the calendar.
func Parse(val string) (Date, error) {
	if len(val) != 10 || val[4] != '-' || val[7] != '-' {
		return 0, fmt.Errorf("invalid date %q, expected the format 'YYYY-MM-DD': %w", val, ErrInvalidDate)
	}
	year, okY := parseDecimal(val[0:4])
	month, okM := parseDecimal(val[5:7])
	day, okD := parseDecimal(val[8:10])
	if !okY || !okM || !okD {
		return 0, fmt.Errorf("invalid date %q, expected the format 'YYYY-MM-DD': %w", val, ErrInvalidDate)
	}
	return NewDate(year, Month(month), day)
}

// Parse parses val as per the package level Parse function.
func (d *Date) Parse(val string) error {
	date, err := Parse(val)
	if err != nil {
		return err
	}
	*d = date
	return nil
}

// parseDecimal parses a fixed width run of ASCII digits. Unlike
// strconv.Atoi it rejects signs and any non-digit byte.
func parseDecimal(val string) (int, bool) {
	n := 0
	for i := 0; i < len(val); i++ {
		c := val[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// Weekday returns the day of the week for d using the proleptic
// Gregorian calendar, eg. 2020-01-01 is a Wednesday.
func (d Date) Weekday() time.Weekday {
	return time.Weekday(d.rataDie() % 7)
}

// DayOfYear returns the day of the year, 1 for January 1st, as 1-365,
// or 1-366 for leap years.
func (d Date) DayOfYear() int {
	if IsLeap(d.Year()) {
		return dayOfYearLeap[d.Month()-1] + d.Day()
	}
	return dayOfYear[d.Month()-1] + d.Day()
}

// IsLeapYear returns true if d falls within a leap year.
func (d Date) IsLeapYear() bool {
	return IsLeap(d.Year())
}

// Compare returns -1 if d is before other, 0 if they are the same date
// and 1 if d is after other. The native comparison operators give the
// same ordering; Compare exists for use with slices.SortFunc and
// friends.
func (d Date) Compare(other Date) int {
	return cmp.Compare(d, other)
}

// Hash returns a 64-bit FNV-1a hash of the date. Equal dates always
// hash equally and the hash depends only on the year, month and day.
// Note that Date is comparable and can be used as a map key directly;
// Hash exists for use with external hashing schemes.
func (d Date) Hash() uint64 {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(d))
	h := fnv.New64a()
	h.Write(buf[:])
	return h.Sum64()
}

// IsLeap returns true if the year is a leap year in the proleptic
// Gregorian calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month, taking
// leap years into account.
func DaysInMonth(year int, month Month) int {
	return daysInMonthForYear(year)[month-1]
}

// DaysInYear returns 365, or 366 for leap years.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

var (
	daysInMonth     = []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	daysInMonthLeap = []int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	dayOfYear       = []int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
	dayOfYearLeap   = []int{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}
)

func daysInMonthForYear(year int) []int {
	if IsLeap(year) {
		return daysInMonthLeap
	}
	return daysInMonth
}
