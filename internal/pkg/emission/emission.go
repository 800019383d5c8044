// Package emission derives the date printed on a certificate from its inspection date.
package emission

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// InspectionLayout is the layout sent by <input type="date">
const InspectionLayout = "2006-01-02"

// OffsetDays is the number of calendar days between inspection and emission
const OffsetDays = 7

var ErrInvalidDate = errors.New("invalid inspection date")

var monthNames = [...]string{
	time.January:   "enero",
	time.February:  "febrero",
	time.March:     "marzo",
	time.April:     "abril",
	time.May:       "mayo",
	time.June:      "junio",
	time.July:      "julio",
	time.August:    "agosto",
	time.September: "setiembre",
	time.October:   "octubre",
	time.November:  "noviembre",
	time.December:  "diciembre",
}

type Emission struct {
	Date    time.Time
	Year    int
	Display string // "Lima, 19 de julio de 2022"
}

func ParseInspectionDate(s string) (time.Time, error) {
	t, err := time.Parse(InspectionLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// Compute returns inspection + 7 days, or today when that date has not been reached yet.
// Both dates are compared as calendar days; the time of day is ignored.
func Compute(inspection, today time.Time, city string) Emission {
	candidate := civil(inspection).AddDate(0, 0, OffsetDays)
	effective := candidate
	if now := civil(today); candidate.After(now) {
		effective = now
	}

	return Emission{
		Date:    effective,
		Year:    effective.Year(),
		Display: fmt.Sprintf("%s, %d de %s de %d", city, effective.Day(), MonthName(effective.Month()), effective.Year()),
	}
}

// MonthName returns the lower-case Spanish name of m.
func MonthName(m time.Month) string {
	if m >= time.January && m <= time.December {
		return monthNames[m]
	}
	return strings.ToLower(m.String())
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
