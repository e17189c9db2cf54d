// Package grid renders the monthly habit listing: one digit-ruler header
// line and one row per habit with an X on each marked day.
package grid

import (
	"fmt"
	"io"
	"strings"

	"github.com/julianstephens/htrackr/internal/date"
)

// DayQuerier is the single storage capability the renderer needs.
type DayQuerier interface {
	MarkedDays(name string, start, end date.Date) ([]date.Date, error)
}

// Render writes the grid for the given month. A failed per-habit query
// produces an inline "error <message>" line for that habit and rendering
// continues with the rest of the list.
func Render(w io.Writer, q DayQuerier, year, month int, names []string) error {
	numDays := date.DaysInMonth(year, month)
	if numDays == 0 {
		return fmt.Errorf("invalid month: %d", month)
	}

	start := date.Date{Year: year, Month: month, Day: 1}
	end := date.Date{Year: year, Month: month, Day: numDays}

	label := fmt.Sprintf("%04d-%02d", year, month)

	// All rows share one left-column width.
	width := len(label) + 2
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}

	var header strings.Builder
	header.WriteString(label)
	header.WriteString(strings.Repeat(" ", width-len(label)))
	header.WriteString("| ")
	for day := 1; day <= numDays; day++ {
		// Repeating 0-9 ruler, not the two-digit day.
		fmt.Fprintf(&header, "%d", day%10)
	}
	if _, err := fmt.Fprintln(w, header.String()); err != nil {
		return err
	}

	for _, name := range names {
		days, err := q.MarkedDays(name, start, end)
		if err != nil {
			if _, werr := fmt.Fprintf(w, "error %v\n", err); werr != nil {
				return werr
			}
			continue
		}

		marked := make(map[int]bool, len(days))
		for _, d := range days {
			marked[d.Day] = true
		}

		var row strings.Builder
		row.WriteString(name)
		row.WriteString(strings.Repeat(" ", width-len(name)))
		row.WriteString("| ")
		for day := 1; day <= numDays; day++ {
			if marked[day] {
				row.WriteByte('X')
			} else {
				row.WriteByte(' ')
			}
		}
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
	}

	return nil
}
