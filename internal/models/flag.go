package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
)

// Flag is the completion marker. It travels as 0/1 on the wire (the storage
// column is a SMALLINT) but tolerates JSON booleans and numeric strings on
// input, because the older client builds sent true/false.
type Flag int

// Bool reports whether the flag is set.
func (f Flag) Bool() bool {
	return f != 0
}

// UnmarshalJSON accepts true/false, numbers and quoted numbers. Any non-zero
// value normalises to 1.
func (f *Flag) UnmarshalJSON(raw []byte) error {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	switch s {
	case "true":
		*f = 1
		return nil
	case "false", "null", "":
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("valor inválido para concluido: %s", raw)
	}
	if n != 0 {
		*f = 1
	} else {
		*f = 0
	}
	return nil
}

// Scan implements sql.Scanner.
func (f *Flag) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*f = 0
	case int64:
		if v != 0 {
			*f = 1
		} else {
			*f = 0
		}
	case bool:
		if v {
			*f = 1
		} else {
			*f = 0
		}
	case []byte:
		return f.UnmarshalJSON(v)
	default:
		return fmt.Errorf("cannot scan %T into Flag", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (f Flag) Value() (driver.Value, error) {
	return int64(f), nil
}
