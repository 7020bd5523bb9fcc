package core

// Day is a single calendar day of activity.
type Day struct {
	Date  string
	Count int
	// Color is the hex color GitHub suggests for this day. The terminal
	// renderer computes its own palette, so this is carried but unused.
	Color string
}

// Week groups up to seven consecutive days, index 0 being the first day of
// the week as reported by the API.
type Week struct {
	Days []Day
}

// ContributionCalendar is a year of daily contribution counts grouped into
// weeks, kept in the chronological order the API returned them.
type ContributionCalendar struct {
	TotalContributions int
	Weeks              []Week
}

// ActiveDays counts the days with at least one contribution.
func (c ContributionCalendar) ActiveDays() int {
	var n int
	for _, w := range c.Weeks {
		for _, d := range w.Days {
			if d.Count > 0 {
				n++
			}
		}
	}
	return n
}

// MaxPerDay returns the highest single-day count, or 0 for an empty calendar.
func (c ContributionCalendar) MaxPerDay() int {
	var max int
	for _, w := range c.Weeks {
		for _, d := range w.Days {
			if d.Count > max {
				max = d.Count
			}
		}
	}
	return max
}

// AvgPerActiveDay divides the total by the number of active days.
// It returns 0.0 when no day is active.
func (c ContributionCalendar) AvgPerActiveDay() float64 {
	active := c.ActiveDays()
	if active == 0 {
		return 0.0
	}
	return float64(c.TotalContributions) / float64(active)
}
