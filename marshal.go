// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package date

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"time"
)

// MarshalText implements encoding.TextMarshaler using the fixed
// 'YYYY-MM-DD' format. This also provides the JSON encoding, including
// for Date valued map keys.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler as per Parse.
func (d *Date) UnmarshalText(data []byte) error {
	return d.Parse(string(data))
}

// AppendBinary implements encoding.BinaryAppender. The binary form is
// the 4 byte big-endian packed date.
func (d Date) AppendBinary(data []byte) ([]byte, error) {
	return binary.BigEndian.AppendUint32(data, uint32(d)), nil
}

// MarshalBinary implements encoding.BinaryMarshaler as per
// AppendBinary.
func (d Date) MarshalBinary() ([]byte, error) {
	return d.AppendBinary(make([]byte, 0, 4))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The encoded
// date is validated so that a corrupt payload cannot produce an
// invalid Date.
func (d *Date) UnmarshalBinary(data []byte) error {
	if len(data) != 4 {
		return fmt.Errorf("binary date is %d bytes, expected 4: %w", len(data), ErrInvalidDate)
	}
	packed := Date(binary.BigEndian.Uint32(data))
	date, err := NewDate(packed.Year(), packed.Month(), packed.Day())
	if err != nil {
		return err
	}
	*d = date
	return nil
}

// Value implements driver.Valuer using the 'YYYY-MM-DD' form.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner, accepting the 'YYYY-MM-DD' textual form
// as a string or byte slice, or a time.Time as returned by drivers
// that parse date columns themselves.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return d.Parse(v)
	case []byte:
		return d.Parse(string(v))
	case time.Time:
		*d = FromTime(v)
		return nil
	}
	return fmt.Errorf("cannot scan a value of type %T into a date", src)
}
