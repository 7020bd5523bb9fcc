package core

import "time"

// demoPattern cycles through counts that touch every intensity level.
var demoPattern = []int{0, 1, 3, 0, 6, 12, 2, 0, 4, 8, 1, 0, 15, 5}

// DemoProfile returns a synthetic profile for offline runs.
func DemoProfile(username string) Profile {
	return Profile{
		Login:       username,
		Name:        "Demo Developer",
		PublicRepos: 12,
		Followers:   10,
		Following:   5,
	}
}

// DemoCalendar returns a deterministic 52-week calendar ending today.
// Counts follow a fixed repeating pattern so repeated runs render the same
// grid.
func DemoCalendar() ContributionCalendar {
	const weeks = 52

	start := time.Now().AddDate(0, 0, -weeks*7+1)

	var cal ContributionCalendar
	cal.Weeks = make([]Week, 0, weeks)

	for w := 0; w < weeks; w++ {
		week := Week{Days: make([]Day, 0, 7)}
		for d := 0; d < 7; d++ {
			idx := w*7 + d
			count := demoPattern[idx%len(demoPattern)]
			day := start.AddDate(0, 0, idx)
			week.Days = append(week.Days, Day{
				Date:  day.Format(time.DateOnly),
				Count: count,
			})
			cal.TotalContributions += count
		}
		cal.Weeks = append(cal.Weeks, week)
	}

	return cal
}
