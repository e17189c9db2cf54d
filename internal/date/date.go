// Package date implements the calendar arithmetic and strict YYYY-MM-DD
// parsing the rest of the tool depends on. Dates are plain calendar values
// with no time-of-day or timezone component; "today" is the local wall clock.
package date

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/htrackr/internal/apperror"
)

type Date struct {
	Year  int
	Month int
	Day   int
}

// DaysInMonth returns the day count for the given month per the Gregorian
// leap-year rule, or 0 for a month outside 1..12.
func DaysInMonth(year, month int) int {
	leap := (year%4 == 0 && year%100 != 0) || year%400 == 0

	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if leap {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// Parse accepts strictly YYYY-MM-DD: three hyphen-separated fields of widths
// 4, 2 and 2, all numeric, naming a real calendar date. The literals
// "yesterday" and "y" resolve to the current local date minus one day.
func Parse(text string) (Date, error) {
	trimmed := strings.TrimSpace(text)

	if trimmed == "yesterday" || trimmed == "y" {
		return Yesterday(), nil
	}

	parts := strings.SplitN(trimmed, "-", 3)
	if len(parts) != 3 {
		return Date{}, apperror.Parse("failed to parse date %s, expected YYYY-MM-DD format", text)
	}

	if len(parts[0]) != 4 {
		return Date{}, apperror.Parse("failed to parse year %s, expected YYYY", parts[0])
	}
	if len(parts[1]) != 2 {
		return Date{}, apperror.Parse("failed to parse month %s, expected MM", parts[1])
	}
	if len(parts[2]) != 2 {
		return Date{}, apperror.Parse("failed to parse day %s, expected DD", parts[2])
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, apperror.Parse("failed to parse year %s: %v", parts[0], err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, apperror.Parse("failed to parse month %s: %v", parts[1], err)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, apperror.Parse("failed to parse day %s: %v", parts[2], err)
	}

	d := Date{Year: year, Month: month, Day: day}
	if !d.IsValid() {
		return Date{}, apperror.Validation("invalid date %s", trimmed)
	}

	return d, nil
}

// IsValid reports whether the value names a real calendar date.
func (d Date) IsValid() bool {
	if d.Year < 1 {
		return false
	}
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	if d.Day < 1 || d.Day > DaysInMonth(d.Year, d.Month) {
		return false
	}
	return true
}

// Format returns the zero-padded YYYY-MM-DD form. Validity is recomputed
// here rather than trusted from construction, so an invalid value never
// reaches storage or a query.
func (d Date) Format() (string, error) {
	s := fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	if !d.IsValid() {
		return "", apperror.Validation("invalid date %s", s)
	}
	return s, nil
}

// Today returns the current local calendar date.
func Today() Date {
	return fromTime(time.Now())
}

// Yesterday returns the local calendar date one day before today.
func Yesterday() Date {
	return fromTime(time.Now().AddDate(0, 0, -1))
}

func fromTime(t time.Time) Date {
	return Date{
		Year:  t.Year(),
		Month: int(t.Month()),
		Day:   t.Day(),
	}
}
