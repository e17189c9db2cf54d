package cli

import (
	"fmt"

	"github.com/julianstephens/htrackr/internal/apperror"
	"github.com/julianstephens/htrackr/internal/date"
	"github.com/julianstephens/htrackr/internal/storage"
)

type Context struct {
	Store storage.Provider

	// Compact is the config-file default for the list command's reserved
	// dense mode.
	Compact bool
}

// resolveDate turns an optional date argument into a concrete date:
// empty means today, "yesterday"/"y" means yesterday, anything else must
// be strict YYYY-MM-DD.
func resolveDate(arg string) (date.Date, error) {
	if arg == "" {
		return date.Today(), nil
	}
	return date.Parse(arg)
}

// resolveMonth turns an optional YYYY-MM argument into a year and month,
// defaulting to the current local month. The argument is parsed by
// appending an implicit day of 1.
func resolveMonth(arg string) (year, month int, err error) {
	if arg == "" {
		today := date.Today()
		return today.Year, today.Month, nil
	}

	d, err := date.Parse(arg + "-01")
	if err != nil {
		return 0, 0, apperror.Parse("failed to parse month %s, expected YYYY-MM format", arg)
	}
	return d.Year, d.Month, nil
}

func feedback(format string, args ...any) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}
