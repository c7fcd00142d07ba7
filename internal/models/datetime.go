package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WireTimeLayout is the timestamp format the desktop client was built
// against (MySQL DATETIME style).
const WireTimeLayout = "2006-01-02 15:04:05"

// DateTime wraps time.Time to keep the legacy wire format: it marshals as
// "2006-01-02 15:04:05" and accepts that layout, RFC 3339 or a bare date on
// input.
type DateTime struct {
	time.Time
}

// NewDateTime wraps a time.Time.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

var parseLayouts = []string{WireTimeLayout, time.RFC3339, "2006-01-02"}

// MarshalJSON renders the wire layout, or null for the zero value.
func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.Format(WireTimeLayout))), nil
}

// UnmarshalJSON accepts any supported layout; null and "" decode to the zero
// value.
func (d *DateTime) UnmarshalJSON(raw []byte) error {
	s := strings.Trim(string(raw), `"`)
	if s == "" || s == "null" {
		*d = DateTime{}
		return nil
	}
	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			*d = DateTime{Time: t}
			return nil
		}
	}
	return fmt.Errorf("data/hora inválida: %q", s)
}

// Scan implements sql.Scanner.
func (d *DateTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = DateTime{}
		return nil
	case time.Time:
		*d = DateTime{Time: v}
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into DateTime", src)
	}
}

func (d *DateTime) parse(s string) error {
	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			*d = DateTime{Time: t}
			return nil
		}
	}
	return fmt.Errorf("cannot scan %q into DateTime", s)
}

// Value implements driver.Valuer. The zero value persists as NULL.
func (d DateTime) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}
