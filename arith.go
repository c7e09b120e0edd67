// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package date

// Date arithmetic operates on the proleptic Gregorian calendar via a
// rata die day number, ie. the count of days since 0000-12-31 so that
// 0001-01-01 is day 1. Results that would fall outside the supported
// year range are clamped to MinDate or MaxDate.

var maxRataDie = MaxDate.rataDie()

func (d Date) rataDie() int {
	y := d.Year() - 1
	return 365*y + y/4 - y/100 + y/400 + d.DayOfYear()
}

func fromRataDie(rd int) Date {
	if rd < 1 {
		return MinDate
	}
	if rd > maxRataDie {
		return MaxDate
	}
	// Shift the epoch to 0000-03-01 so that leap days fall at the end
	// of the 400 year Gregorian cycle.
	z := rd + 305
	era := z / 146097
	doe := z % 146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := doy - (153*mp+2)/5 + 1
	month := mp + 3
	if mp >= 10 {
		month = mp - 9
	}
	year := yoe + era*400
	if month <= 2 {
		year++
	}
	return newDate8(uint16(year), Month(month), uint8(day))
}

// AddDays returns the date n calendar days after d, or before d for
// negative n, crossing month and year boundaries as needed.
func (d Date) AddDays(n int) Date {
	return fromRataDie(d.rataDie() + n)
}

// AddMonths returns the date n months after d, or before d for
// negative n. The day of the month is clamped to the last day of the
// target month, eg. adding one month to Jan 31 yields Feb 28, or
// Feb 29 in a leap year.
func (d Date) AddMonths(n int) Date {
	year, month, day := d.Date()
	m := year*12 + int(month) - 1 + n
	if m < 12 {
		return MinDate
	}
	if m > 9999*12+11 {
		return MaxDate
	}
	year, month = m/12, Month(m%12+1)
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return newDate8(uint16(year), month, uint8(day))
}

// AddYears returns the date n years after d, or before d for negative
// n. Feb 29 is clamped to Feb 28 when the target year is not a leap
// year.
func (d Date) AddYears(n int) Date {
	return d.AddMonths(n * 12)
}

// Tomorrow returns the next day, clamped at MaxDate.
func (d Date) Tomorrow() Date {
	return d.AddDays(1)
}

// Yesterday returns the previous day, clamped at MinDate.
func (d Date) Yesterday() Date {
	return d.AddDays(-1)
}

// Sub returns the number of whole calendar days from other to d,
// negative if d is before other.
func (d Date) Sub(other Date) int {
	return d.rataDie() - other.rataDie()
}
