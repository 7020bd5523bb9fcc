// Package layout holds the pure geometry decisions behind the dashboard:
// terminal size detection, centering, and how many heat-map columns fit.
package layout

import (
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// maxWeekColumns caps the heat-map at one year of weeks.
	maxWeekColumns = 53

	// calendarMargin is the width reserved for labels and surrounding text.
	calendarMargin = 40
)

// Geometry is the terminal size the renderer works against.
type Geometry struct {
	Width  int
	Height int
}

// Detect probes fd for the terminal size, falling back to 80x24 when fd is
// not a terminal or the size cannot be determined.
func Detect(fd uintptr) Geometry {
	if !isatty.IsTerminal(fd) {
		return Geometry{Width: defaultWidth, Height: defaultHeight}
	}

	w, h, err := term.GetSize(int(fd))
	if err != nil || w <= 0 || h <= 0 {
		return Geometry{Width: defaultWidth, Height: defaultHeight}
	}

	return Geometry{Width: w, Height: h}
}

// CenterPad returns the left padding that centers a line of the given length.
// Integer division leaves a one-column right bias on odd remainders.
func CenterPad(width, length int) int {
	if length >= width {
		return 0
	}
	return (width - length) / 2
}

// ColumnBudget returns how many week columns fit in a terminal of the given
// width, leaving margin for labels and capping at one year.
func ColumnBudget(width int) int {
	budget := 0
	if width > calendarMargin {
		budget = (width - calendarMargin) / 2
	}
	if budget > maxWeekColumns {
		budget = maxWeekColumns
	}
	return budget
}

// WeeksShown clamps the number of calendar weeks to the column budget.
func WeeksShown(weekCount, budget int) int {
	if weekCount < budget {
		return weekCount
	}
	return budget
}

// Bucket maps a daily contribution count to one of five intensity levels.
func Bucket(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 2:
		return 1
	case count <= 5:
		return 2
	case count <= 10:
		return 3
	default:
		return 4
	}
}
