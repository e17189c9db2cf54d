package grid

import (
	"errors"
	"strings"
	"testing"

	"github.com/julianstephens/htrackr/internal/date"
)

// fakeQuerier serves canned marked days (or an error) per habit name.
type fakeQuerier struct {
	days map[string][]int
	errs map[string]error
}

func (f *fakeQuerier) MarkedDays(name string, start, end date.Date) ([]date.Date, error) {
	if err, ok := f.errs[name]; ok {
		return nil, err
	}
	var out []date.Date
	for _, day := range f.days[name] {
		out = append(out, date.Date{Year: start.Year, Month: start.Month, Day: day})
	}
	return out, nil
}

func render(t *testing.T, q DayQuerier, year, month int, names []string) []string {
	t.Helper()
	var buf strings.Builder
	if err := Render(&buf, q, year, month, names); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := strings.TrimSuffix(buf.String(), "\n")
	return strings.Split(out, "\n")
}

func TestRenderHeader(t *testing.T) {
	lines := render(t, &fakeQuerier{}, 2006, 6, nil)

	want := "2006-06  | 123456789012345678901234567890"
	if len(lines) != 1 || lines[0] != want {
		t.Errorf("header = %q, want %q", lines[0], want)
	}
}

func TestRenderRulerWrapsAtTen(t *testing.T) {
	lines := render(t, &fakeQuerier{}, 2024, 2, nil)

	// 29 days in February 2024; days 10 and 20 print as 0.
	want := "2024-02  | 12345678901234567890123456789"
	if lines[0] != want {
		t.Errorf("header = %q, want %q", lines[0], want)
	}
}

func TestRenderMarkedDays(t *testing.T) {
	q := &fakeQuerier{days: map[string][]int{
		"read": {7, 9, 30},
	}}

	lines := render(t, q, 2006, 6, []string{"read"})

	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	want := "read     |       X X                    X"
	if lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
}

func TestRenderLongNameWidensColumn(t *testing.T) {
	q := &fakeQuerier{days: map[string][]int{
		"go for a long walk": {1},
		"read":               {2},
	}}

	lines := render(t, q, 2006, 6, []string{"go for a long walk", "read"})

	want := []string{
		"2006-06           | 123456789012345678901234567890",
		"go for a long walk| X                             ",
		"read              |  X                            ",
	}
	for i, line := range want {
		if lines[i] != line {
			t.Errorf("line %d = %q, want %q", i, lines[i], line)
		}
	}
}

func TestRenderContinuesPastQueryError(t *testing.T) {
	q := &fakeQuerier{
		days: map[string][]int{"read": {1}},
		errs: map[string]error{"broken": errors.New("habit broken not found")},
	}

	lines := render(t, q, 2006, 6, []string{"broken", "read"})

	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[1] != "error habit broken not found" {
		t.Errorf("error line = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "read") {
		t.Errorf("rendering did not continue after error: %q", lines[2])
	}
}

func TestRenderInvalidMonth(t *testing.T) {
	var buf strings.Builder
	if err := Render(&buf, &fakeQuerier{}, 2006, 13, nil); err == nil {
		t.Error("Render() with month 13 succeeded, want error")
	}
}
