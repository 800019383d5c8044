package models

import (
	"cmp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capacity is the capacity token of a tank as it appears in the spreadsheet.
// Numeric tokens keep their parsed value so they can be ordered numerically.
type Capacity struct {
	Raw     string
	Value   float64
	Numeric bool
}

// ParseCapacity reads a capacity cell. Spreadsheet empties ("", "nan", "none") yield the zero Capacity.
func ParseCapacity(raw string) Capacity {
	raw = strings.TrimSpace(raw)
	if isBlank(raw) {
		return Capacity{}
	}

	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return Capacity{Raw: raw, Value: v, Numeric: true}
	}

	return Capacity{Raw: raw}
}

func (c Capacity) IsZero() bool {
	return c.Raw == ""
}

// String prints numeric capacities without a trailing ".0"
func (c Capacity) String() string {
	if c.Numeric {
		return strconv.FormatFloat(c.Value, 'f', -1, 64)
	}
	return c.Raw
}

// Compare orders numbers numerically and text tokens by text. Any number sorts above
// any text token, so a descending order lists numeric capacities first.
func (c Capacity) Compare(o Capacity) int {
	switch {
	case c.Numeric && o.Numeric:
		return cmp.Compare(c.Value, o.Value)
	case c.Numeric:
		return 1
	case o.Numeric:
		return -1
	}
	return strings.Compare(c.Raw, o.Raw)
}

type TankRecord struct {
	Type     string
	Capacity Capacity
	Serial   string
}

// NewTankRecord builds a record from raw cell text, upper-casing the type.
func NewTankRecord(tankType, capacity, serial string) TankRecord {
	tankType = strings.TrimSpace(tankType)
	if isBlank(tankType) {
		tankType = ""
	}
	serial = strings.TrimSpace(serial)
	if isBlank(serial) {
		serial = ""
	}

	return TankRecord{
		Type:     cases.Upper(language.Spanish).String(tankType),
		Capacity: ParseCapacity(capacity),
		Serial:   serial,
	}
}

// TankCheck is the outcome of validating a TankRecord
type TankCheck int

const (
	TankValid TankCheck = iota
	TankMissingType
	TankMissingCapacity
	TankMissingSerial
)

func (c TankCheck) String() string {
	switch c {
	case TankValid:
		return "valid"
	case TankMissingType:
		return "skipped: missing type"
	case TankMissingCapacity:
		return "skipped: missing capacity"
	case TankMissingSerial:
		return "skipped: missing serial"
	}
	return "unknown"
}

func (t TankRecord) Check() TankCheck {
	switch {
	case t.Type == "":
		return TankMissingType
	case t.Capacity.IsZero():
		return TankMissingCapacity
	case t.Serial == "":
		return TankMissingSerial
	}
	return TankValid
}

func isBlank(s string) bool {
	switch strings.ToLower(s) {
	case "", "nan", "none", "<nil>":
		return true
	}
	return false
}
