// Package charts builds the row and cell structures behind every bar chart
// and calendar heatmap. Output is pure data; templates in the site package
// turn it into markup.
package charts

import (
	"github.com/ebochsler/personal-site/internal/anim"
	"github.com/ebochsler/personal-site/internal/model"
	"github.com/ebochsler/personal-site/internal/scale"
)

const (
	// StaggerStep is the per-row animation delay so bars cascade in.
	StaggerStep = 0.08
	// BarsThreshold arms the cascade when a fifth of the chart is visible.
	BarsThreshold = 0.2
	// LeaderboardSize caps leaderboard charts at the top ten rows.
	LeaderboardSize = 10
	// MonthlyWindow caps month charts at the most recent twelve entries.
	MonthlyWindow = 12
)

// Item is one labeled magnitude handed to a bar chart.
type Item struct {
	Label    string
	Value    float64
	Category model.VenueCategory
}

// Row is a fully derived bar: proportional width, staggered delay, display
// text, and (for category-colored variants) the category the fill color
// keys off. The color itself lives in the generated palette stylesheet so
// bars restyle on theme toggle without a rebuild.
type Row struct {
	Label        string
	Value        float64
	Display      string
	FillPercent  float64
	DelaySeconds float64
	Category     model.VenueCategory
}

// Chart is an ordered set of rows plus the trigger threshold the page embeds.
type Chart struct {
	Rows      []Row
	Threshold float64
}

// Options tunes a bar chart build.
type Options struct {
	Style   anim.Style // display formatting for the value text
	Colored bool       // carry per-category fill classes
	Limit   int        // keep only the first Limit rows; 0 keeps all
}

// Bars derives a chart from items in caller-supplied order. Truncation
// happens before scaling: the proportional bound only reflects the rows
// actually rendered.
func Bars(items []Item, opts Options) Chart {
	if opts.Limit > 0 && len(items) > opts.Limit {
		items = items[:opts.Limit]
	}
	values := make([]float64, len(items))
	for i, it := range items {
		values[i] = it.Value
	}
	bound := scale.Bound(values)

	rows := make([]Row, len(items))
	for i, it := range items {
		row := Row{
			Label:        it.Label,
			Value:        it.Value,
			Display:      opts.Style.Render(it.Value),
			FillPercent:  scale.Proportion(it.Value, bound) * 100,
			DelaySeconds: float64(i) * StaggerStep,
		}
		if opts.Colored {
			row.Category = model.ParseCategory(string(it.Category))
		}
		rows[i] = row
	}
	return Chart{Rows: rows, Threshold: BarsThreshold}
}

// Leaderboard renders the top ten of a pre-sorted sequence. Sorting is the
// caller's responsibility; this only truncates.
func Leaderboard(items []Item, style anim.Style) Chart {
	return Bars(items, Options{Style: style, Colored: true, Limit: LeaderboardSize})
}

// Monthly renders the most recent twelve entries of a month sequence.
func Monthly(months []model.MonthCount) Chart {
	if len(months) > MonthlyWindow {
		months = months[len(months)-MonthlyWindow:]
	}
	items := make([]Item, len(months))
	for i, m := range months {
		items[i] = Item{Label: m.Month, Value: float64(m.Count)}
	}
	return Bars(items, Options{Style: anim.Style{Format: anim.FormatZeroDecimal}})
}
