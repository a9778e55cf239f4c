package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Date is a calendar date that may be partially known, e.g. 2013-04-00.
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate reads a YYYY-MM-DD date. Missing or unparsable parts are left at zero.
func ParseDate(s string) Date {
	var d Date
	parts := strings.SplitN(strings.TrimSpace(s), "-", 3)
	fields := []*int{&d.Year, &d.Month, &d.Day}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			continue
		}
		*fields[i] = n
	}
	return d
}

// IsZero reports whether no part of the date is known.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// IsValid reports whether the year is known.
func (d Date) IsValid() bool {
	return d.Year > 0
}

// HasYearMonth reports whether both year and month are known.
func (d Date) HasYearMonth() bool {
	return d.Year != 0 && d.Month != 0
}

// Compare returns -1, 0 or +1 ordering by year, month, then day.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(d.Month, o.Month)
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

// Within reports whether start <= d <= end.
func (d Date) Within(start, end Date) bool {
	return !d.Before(start) && !d.After(end)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	*d = ParseDate(string(b))
	return nil
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
