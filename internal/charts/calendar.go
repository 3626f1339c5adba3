package charts

import (
	"fmt"
	"strings"
	"time"

	"github.com/ebochsler/personal-site/internal/model"
	"github.com/ebochsler/personal-site/internal/scale"
)

// IntensityFloor keeps low-activity days visible on the heatmap.
const IntensityFloor = 0.2

// HeatCell is one day cell of the 7-wide calendar grid. Blank cells pad the
// first week so day 1 lands on its weekday column.
type HeatCell struct {
	Blank     bool
	Day       int
	Intensity float64
	Active    bool
	Tooltip   string
}

// HeatMonth is a month label plus its padded grid of cells.
type HeatMonth struct {
	Label string
	Cells []HeatCell
}

// Calendars derives heatmap grids for all months of a batch. Intensity is
// normalized against the single maximum across the whole batch so the two
// displayed months share a scale.
func Calendars(months []model.CalendarMonth) []HeatMonth {
	var minutes []float64
	for _, m := range months {
		for _, d := range m.Days {
			minutes = append(minutes, float64(d.ActiveMinutes))
		}
	}
	bound := scale.Bound(minutes)

	out := make([]HeatMonth, 0, len(months))
	for _, m := range months {
		out = append(out, calendarMonth(m, bound))
	}
	return out
}

func calendarMonth(m model.CalendarMonth, bound float64) HeatMonth {
	hm := HeatMonth{Label: m.Month}
	if len(m.Days) == 0 {
		return hm
	}

	// Monday-first grid: a month starting on Wednesday gets 2 leading blanks.
	for i := 0; i < leadingOffset(m.Days[0].Date); i++ {
		hm.Cells = append(hm.Cells, HeatCell{Blank: true})
	}

	// Day numbers come from the dates, not slice positions, and gaps in a
	// sparse days array become blank cells so weekday columns stay aligned.
	next := 1
	for _, d := range m.Days {
		day := dayOfMonth(d.Date, next)
		for ; next < day; next++ {
			hm.Cells = append(hm.Cells, HeatCell{Blank: true})
		}
		cell := HeatCell{Day: day, Tooltip: dayTooltip(d)}
		if d.ActiveMinutes > 0 {
			cell.Active = true
			cell.Intensity = scale.Proportion(float64(d.ActiveMinutes), bound)
			if cell.Intensity < IntensityFloor {
				cell.Intensity = IntensityFloor
			}
		}
		hm.Cells = append(hm.Cells, cell)
		next = day + 1
	}
	return hm
}

// dayOfMonth extracts the day number, falling back to the given sequential
// value when the date does not parse.
func dayOfMonth(date string, fallback int) int {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fallback
	}
	return t.Day()
}

// leadingOffset returns the zero-indexed Monday-first weekday of a date.
func leadingOffset(date string) int {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0
	}
	return (int(t.Weekday()) + 6) % 7
}

func dayTooltip(d model.CalendarDay) string {
	if d.ActiveMinutes == 0 {
		return d.Date
	}
	parts := []string{strings.Join(d.Activities, ", ")}
	if d.DistanceMi > 0 {
		parts = append(parts, fmt.Sprintf("%.1f mi", d.DistanceMi))
	}
	parts = append(parts, fmt.Sprintf("%d min", d.ActiveMinutes))
	return d.Date + " — " + strings.Join(parts, " · ")
}
