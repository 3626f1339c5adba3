package charts

import (
	"fmt"
	"testing"

	"github.com/ebochsler/personal-site/internal/anim"
	"github.com/ebochsler/personal-site/internal/model"
)

func TestBarsProportionsAndStagger(t *testing.T) {
	items := []Item{
		{Label: "Week 1", Value: 5},
		{Label: "Week 2", Value: 20},
		{Label: "Week 3", Value: 10},
	}
	chart := Bars(items, Options{Style: anim.Style{Format: anim.FormatPlain, Decimals: 1}})

	if len(chart.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(chart.Rows))
	}
	if chart.Rows[1].FillPercent != 100 {
		t.Errorf("max row fill = %v, want 100", chart.Rows[1].FillPercent)
	}
	if chart.Rows[0].FillPercent != 25 {
		t.Errorf("row 0 fill = %v, want 25", chart.Rows[0].FillPercent)
	}
	for i, row := range chart.Rows {
		if row.FillPercent < 0 || row.FillPercent > 100 {
			t.Errorf("row %d fill %v outside [0,100]", i, row.FillPercent)
		}
		wantDelay := float64(i) * StaggerStep
		if row.DelaySeconds != wantDelay {
			t.Errorf("row %d delay = %v, want %v", i, row.DelaySeconds, wantDelay)
		}
	}
	if chart.Threshold != BarsThreshold {
		t.Errorf("threshold = %v, want %v", chart.Threshold, BarsThreshold)
	}
}

func TestBarsMonotonicInValue(t *testing.T) {
	items := []Item{{Value: 1}, {Value: 3}, {Value: 3}, {Value: 9}}
	chart := Bars(items, Options{})
	for i := 1; i < len(chart.Rows); i++ {
		if chart.Rows[i].FillPercent < chart.Rows[i-1].FillPercent {
			t.Fatalf("fill not monotonic in value: %v after %v",
				chart.Rows[i].FillPercent, chart.Rows[i-1].FillPercent)
		}
	}
}

func TestBarsAllZeroValues(t *testing.T) {
	chart := Bars([]Item{{Value: 0}, {Value: 0}}, Options{})
	for _, row := range chart.Rows {
		if row.FillPercent != 0 {
			t.Errorf("zero value rendered with fill %v", row.FillPercent)
		}
	}
}

func TestLeaderboardTruncatesBeforeScaling(t *testing.T) {
	// 25 records in caller order; record 15 has the global maximum, but it
	// falls outside the top ten so it must not influence the bound.
	items := make([]Item, 25)
	for i := range items {
		items[i] = Item{
			Label:    fmt.Sprintf("Venue %d", i),
			Value:    float64(50 - i),
			Category: model.CategoryBrewery,
		}
	}
	items[15].Value = 1000

	chart := Leaderboard(items, anim.Style{Format: anim.FormatZeroDecimal})
	if len(chart.Rows) != LeaderboardSize {
		t.Fatalf("expected %d rows, got %d", LeaderboardSize, len(chart.Rows))
	}
	if chart.Rows[0].Label != "Venue 0" || chart.Rows[9].Label != "Venue 9" {
		t.Error("leaderboard reordered the caller-supplied sequence")
	}
	// Bound must come from the rendered ten (max 50), not all 25 (max 1000).
	if chart.Rows[0].FillPercent != 100 {
		t.Errorf("top row fill = %v, want 100 (bound from rendered rows only)", chart.Rows[0].FillPercent)
	}
}

func TestLeaderboardCategories(t *testing.T) {
	items := []Item{
		{Label: "Fremont", Value: 12, Category: model.CategoryBrewery},
		{Label: "Canon", Value: 8, Category: model.CategoryBar},
		{Label: "Pop-up", Value: 3, Category: "speakeasy"},
	}
	chart := Leaderboard(items, anim.Style{Format: anim.FormatZeroDecimal})
	if chart.Rows[0].Category != model.CategoryBrewery {
		t.Errorf("row category = %q, want brewery", chart.Rows[0].Category)
	}
	if chart.Rows[1].Category != model.CategoryBar {
		t.Errorf("row category = %q, want bar", chart.Rows[1].Category)
	}
	if chart.Rows[2].Category != model.CategoryOther {
		t.Errorf("unrecognized category = %q, want other", chart.Rows[2].Category)
	}
}

func TestUncoloredBarsCarryNoCategory(t *testing.T) {
	chart := Bars([]Item{{Label: "Week 1", Value: 5, Category: model.CategoryBrewery}},
		Options{Style: anim.Style{Format: anim.FormatZeroDecimal}})
	if chart.Rows[0].Category != "" {
		t.Errorf("uncolored row category = %q, want empty", chart.Rows[0].Category)
	}
}

func TestMonthlyKeepsLastTwelve(t *testing.T) {
	months := make([]model.MonthCount, 18)
	for i := range months {
		months[i] = model.MonthCount{Month: fmt.Sprintf("2024-%02d", i+1), Count: i + 1}
	}
	chart := Monthly(months)
	if len(chart.Rows) != MonthlyWindow {
		t.Fatalf("expected %d rows, got %d", MonthlyWindow, len(chart.Rows))
	}
	if chart.Rows[0].Label != "2024-07" {
		t.Errorf("first row = %q, want 2024-07 (most recent twelve)", chart.Rows[0].Label)
	}
}
