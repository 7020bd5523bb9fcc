// Package render draws the terminal dashboard: header, contribution
// heat-map, and summary statistics, in that order.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vukan322/gitstat/internal/core"
	"github.com/vukan322/gitstat/internal/layout"
)

const (
	cellGlyph   = "■"
	legendWidth = 35

	// gridGutter is the label column to the left of the heat-map.
	gridGutter = 8
)

var (
	ruleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)

	// bucketStyles is the five-level ramp, ascending in brightness.
	bucketStyles = [5]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("#2d333b")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#0e4479")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#216eb1")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#74b9ff")),
	}

	months   = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	weekdays = [3]string{"Mon", "Wed", "Fri"}
)

// Dashboard writes the three dashboard sections to w. Rendering is a
// straight emission over immutable inputs; nothing here touches the network.
func Dashboard(w io.Writer, profile core.Profile, calendar core.ContributionCalendar, geo layout.Geometry) {
	budget := layout.ColumnBudget(geo.Width)

	drawHeader(w, profile, geo.Width)
	drawCalendar(w, calendar, budget, geo.Width)
	drawStatistics(w, calendar, geo.Width)
}

func drawHeader(w io.Writer, profile core.Profile, width int) {
	rule := ruleStyle.Render(strings.Repeat("─", width))
	fmt.Fprintln(w, rule)

	title := fmt.Sprintf(" %s ", profile.Login)
	pad := layout.CenterPad(width, len(title))
	right := width - pad - len(title)
	if right < 0 {
		right = 0
	}
	fmt.Fprintf(w, "%s%s%s\n",
		strings.Repeat(" ", pad),
		titleStyle.Render(title),
		strings.Repeat(" ", right))

	info := fmt.Sprintf("Name: %s  |  Repos: %d  |  Followers: %d  |  Following: %d",
		profile.DisplayName(), profile.PublicRepos, profile.Followers, profile.Following)
	writeCentered(w, width, info, infoStyle)

	fmt.Fprintln(w, rule)
}

func drawCalendar(w io.Writer, calendar core.ContributionCalendar, budget, width int) {
	writeCentered(w, width, " GitHub Activity (Last Year) ", titleStyle)

	total := fmt.Sprintf("Total Contributions: %d", calendar.TotalContributions)
	writeCentered(w, width, total, infoStyle)
	fmt.Fprintln(w)

	gridPad := layout.CenterPad(width, budget+gridGutter)
	weeks := layout.WeeksShown(len(calendar.Weeks), budget)

	// Month labels every fourth column.
	fmt.Fprint(w, strings.Repeat(" ", gridPad))
	fmt.Fprint(w, strings.Repeat(" ", gridGutter))
	for i := 0; i < weeks; i++ {
		if i%4 == 0 && i/4 < len(months) {
			fmt.Fprint(w, labelStyle.Render(months[i/4]))
		} else {
			fmt.Fprint(w, " ")
		}
	}
	fmt.Fprintln(w)

	// Seven rows, Monday first; every second row carries a weekday label.
	for row := 0; row < 7; row++ {
		fmt.Fprint(w, strings.Repeat(" ", gridPad))

		if row%2 == 1 && row/2 < len(weekdays) {
			fmt.Fprintf(w, "%s ", labelStyle.Render(fmt.Sprintf("%3s", weekdays[row/2])))
		} else {
			fmt.Fprint(w, "    ")
		}

		for i := 0; i < weeks; i++ {
			days := calendar.Weeks[i].Days
			if row < len(days) {
				bucket := layout.Bucket(days[row].Count)
				fmt.Fprint(w, bucketStyles[bucket].Render(cellGlyph))
			} else {
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprintln(w)
	}

	legendPad := layout.CenterPad(width, legendWidth)
	fmt.Fprintf(w, "\n%s   Less  ", strings.Repeat(" ", legendPad))
	for _, style := range bucketStyles {
		fmt.Fprint(w, style.Render(cellGlyph))
	}
	fmt.Fprintln(w, "  More")
}

func drawStatistics(w io.Writer, calendar core.ContributionCalendar, width int) {
	fmt.Fprintln(w)
	writeCentered(w, width, " Statistics ", titleStyle)

	stats := fmt.Sprintf("Active Days: %d  |  Max/Day: %d  |  Avg/Active Day: %.1f",
		calendar.ActiveDays(), calendar.MaxPerDay(), calendar.AvgPerActiveDay())
	writeCentered(w, width, stats, infoStyle)

	fmt.Fprintln(w, ruleStyle.Render(strings.Repeat("─", width)))
}

func writeCentered(w io.Writer, width int, plain string, style lipgloss.Style) {
	pad := layout.CenterPad(width, len(plain))
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", pad), style.Render(plain))
}
