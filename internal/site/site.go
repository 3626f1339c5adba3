// Package site assembles the static pages: it runs every renderer over the
// fetched datasets and writes the finished HTML, per-theme map specs, and
// shared assets to the output directory.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/ebochsler/personal-site/internal/anim"
	"github.com/ebochsler/personal-site/internal/charts"
	"github.com/ebochsler/personal-site/internal/geomap"
	"github.com/ebochsler/personal-site/internal/model"
	"github.com/ebochsler/personal-site/internal/regional"
	"github.com/ebochsler/personal-site/internal/theme"
)

// CounterThreshold arms stat counters when 40% of the card is visible.
const CounterThreshold = 0.4

// Regional map viewport in pixels.
const (
	regionalWidth  = 640
	regionalHeight = 400
)

// Builder writes the site into OutDir.
type Builder struct {
	OutDir  string
	BaseURL string
	Title   string
}

// Data carries everything the build has managed to load. Nil fields render
// as fallbacks or disappear; errors on the primary datasets surface as
// status-region messages, never as build failures.
type Data struct {
	Running    *model.RunningData
	RunningErr error
	Venues     *model.VenueData
	VenuesErr  error
	Featured   []model.FeaturedRoute
	Topology   *regional.Topology
}

// Build renders all pages and assets.
func (b *Builder) Build(data Data) error {
	if err := os.MkdirAll(filepath.Join(b.OutDir, "assets"), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := b.writeAssets(); err != nil {
		return err
	}

	pages := []struct {
		name   string
		render func() (any, error)
		tmpl   string
	}{
		{"index.html", func() (any, error) { return b.indexView(), nil }, "index"},
		{"running.html", func() (any, error) { return b.runningView(data), nil }, "running"},
		{"breweries.html", func() (any, error) { return b.breweriesView(data), nil }, "breweries"},
	}
	for _, p := range pages {
		view, err := p.render()
		if err != nil {
			return err
		}
		if err := b.writePage(p.name, p.tmpl, view); err != nil {
			return err
		}
		if err := b.writeShareQR(p.name); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) writePage(name, tmpl string, view any) error {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, tmpl, view); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	path := filepath.Join(b.OutDir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// writeShareQR drops a scannable permalink for the page into assets.
func (b *Builder) writeShareQR(page string) error {
	path := filepath.Join(b.OutDir, "assets", "qr-"+page+".png")
	url := b.BaseURL + "/" + page
	if err := qrcode.WriteFile(url, qrcode.Medium, 128, path); err != nil {
		return fmt.Errorf("writing share QR for %s: %w", page, err)
	}
	return nil
}

// statCard is one animated counter with its precomputed keyframes.
type statCard struct {
	ID        string
	Label     string
	Frames    []string
	Final     string
	Threshold float64
}

func newStatCard(id, label string, target float64, style anim.Style) statCard {
	return statCard{
		ID:        id,
		Label:     label,
		Frames:    anim.Keyframes(target, style, 30),
		Final:     style.Render(target),
		Threshold: CounterThreshold,
	}
}

// mapSlot is one embedded map: a slot name plus both theme specs, so a
// toggle can tear down the live instance and rebuild from the other spec.
type mapSlot struct {
	Slot  string
	Specs map[theme.Mode]geomap.Spec
}

// regionalPair is one continent map rendered for both themes.
type regionalPair struct {
	Continent string
	Label     string
	SVG       map[theme.Mode]template.HTML
}

type basePage struct {
	Title   string
	BaseURL string
	Page    string
}

type runningPage struct {
	basePage
	Err          bool
	Year         int
	Stats        []statCard
	Calendars    []charts.HeatMonth
	WeeklyMiles  charts.Chart
	WorkoutTypes charts.Chart
	RecentRuns   []runCard
	Featured     []featuredCard
	Regionals    []regionalPair
}

type runCard struct {
	Run model.ActivityRecord
	Map mapSlot
}

type featuredCard struct {
	Route model.FeaturedRoute
	Map   mapSlot
}

type breweriesPage struct {
	basePage
	Err         bool
	Stats       []statCard
	Breakdown   charts.Chart
	ByMonth     charts.Chart
	TopByVisits charts.Chart
	TopByHours  charts.Chart
	VenueMap    *mapSlot
}

type indexPage struct {
	basePage
}

func (b *Builder) base(page string) basePage {
	return basePage{Title: b.Title, BaseURL: b.BaseURL, Page: page}
}

func (b *Builder) indexView() indexPage {
	return indexPage{basePage: b.base("index.html")}
}

func (b *Builder) runningView(data Data) runningPage {
	view := runningPage{basePage: b.base("running.html")}
	if data.Running == nil {
		view.Err = true
	} else {
		r := data.Running
		view.Year = r.Year
		view.Stats = []statCard{
			newStatCard("total-distance", "Miles", r.Summary.TotalDistanceMi, anim.Style{Format: anim.FormatPlain, Decimals: 1}),
			newStatCard("total-runs", "Runs", float64(r.Summary.TotalRuns), anim.Style{Format: anim.FormatZeroDecimal}),
			newStatCard("avg-pace", "Avg Pace", r.Summary.AvgPaceMin, anim.Style{Format: anim.FormatPace}),
			newStatCard("total-time", "Hours", r.Summary.TotalTimeHours, anim.Style{Format: anim.FormatPlain, Decimals: 1}),
			newStatCard("total-elevation", "Elevation Ft", r.Summary.TotalElevationFt, anim.Style{Format: anim.FormatGrouped}),
		}
		view.Calendars = charts.Calendars(r.Calendars)

		weekly := make([]charts.Item, len(r.WeeklyMiles))
		for i, w := range r.WeeklyMiles {
			weekly[i] = charts.Item{Label: w.Week, Value: w.Miles}
		}
		view.WeeklyMiles = charts.Bars(weekly, charts.Options{Style: anim.Style{Format: anim.FormatPlain, Decimals: 1}})

		types := make([]charts.Item, len(r.WorkoutTypes))
		for i, w := range r.WorkoutTypes {
			types[i] = charts.Item{Label: w.Type, Value: float64(w.Count)}
		}
		view.WorkoutTypes = charts.Bars(types, charts.Options{Style: anim.Style{Format: anim.FormatZeroDecimal}})

		for _, run := range r.RecentRuns {
			view.RecentRuns = append(view.RecentRuns, runCard{
				Run: run,
				Map: buildMapSlot("route-map-"+run.ID, func(m theme.Mode) geomap.Spec {
					return geomap.RouteMap("route-map-"+run.ID, run, m)
				}),
			})
		}
	}

	// The featured section tolerates the featured fetch arriving or failing
	// independently of the primary dataset.
	if len(data.Featured) > 0 {
		for _, tag := range []struct{ code, label string }{{"na", "North America"}, {"eu", "Europe"}} {
			pair := regionalPair{Continent: tag.code, Label: tag.label, SVG: make(map[theme.Mode]template.HTML)}
			for _, mode := range theme.Modes {
				pair.SVG[mode] = template.HTML(regional.Render(data.Featured, tag.code, data.Topology, regionalWidth, regionalHeight, mode))
			}
			view.Regionals = append(view.Regionals, pair)
		}
		for _, route := range data.Featured {
			view.Featured = append(view.Featured, featuredCard{
				Route: route,
				Map: buildMapSlot("featured-map-"+route.ID, func(m theme.Mode) geomap.Spec {
					return geomap.RouteMap("featured-map-"+route.ID, route.FeaturedRun, m)
				}),
			})
		}
	}
	return view
}

func (b *Builder) breweriesView(data Data) breweriesPage {
	view := breweriesPage{basePage: b.base("breweries.html")}
	if data.Venues == nil {
		view.Err = true
		return view
	}
	v := data.Venues

	view.Stats = []statCard{
		newStatCard("total-venues", "Venues", float64(v.Summary.TotalVenues), anim.Style{Format: anim.FormatZeroDecimal}),
		newStatCard("total-visits", "Visits", float64(v.Summary.TotalVisits), anim.Style{Format: anim.FormatGrouped}),
		newStatCard("total-hours", "Hours", v.Summary.TotalHours, anim.Style{Format: anim.FormatGrouped}),
		newStatCard("unique-cities", "Cities", float64(v.Summary.UniqueCities), anim.Style{Format: anim.FormatZeroDecimal}),
	}

	breakdown := make([]charts.Item, len(v.Summary.CategoryBreakdown))
	for i, c := range v.Summary.CategoryBreakdown {
		breakdown[i] = charts.Item{
			Label:    c.Category,
			Value:    float64(c.Count),
			Category: model.ParseCategory(c.Category),
		}
	}
	// Fill colors ride on category classes backed by the generated palette
	// stylesheet, so one chart build serves both themes.
	view.Breakdown = charts.Bars(breakdown, charts.Options{
		Style: anim.Style{Format: anim.FormatZeroDecimal}, Colored: true,
	})
	view.ByMonth = charts.Monthly(v.VisitsByMonth)
	view.TopByVisits = charts.Leaderboard(venueItems(v.TopByVisits, func(r model.VenueRecord) float64 {
		return float64(r.VisitCount)
	}), anim.Style{Format: anim.FormatZeroDecimal})
	view.TopByHours = charts.Leaderboard(venueItems(v.TopByHours, func(r model.VenueRecord) float64 {
		return r.TotalHours
	}), anim.Style{Format: anim.FormatPlain, Decimals: 1})

	slot := buildMapSlot("venue-map", func(m theme.Mode) geomap.Spec {
		return geomap.VenueMap("venue-map", v.AllVenues, m)
	})
	view.VenueMap = &slot
	return view
}

func venueItems(records []model.VenueRecord, value func(model.VenueRecord) float64) []charts.Item {
	items := make([]charts.Item, len(records))
	for i, r := range records {
		items[i] = charts.Item{
			Label:    r.Name,
			Value:    value(r),
			Category: model.ParseCategory(r.Category),
		}
	}
	return items
}

// buildMapSlot renders a map spec for every theme through the subscription
// bus and slot registry, so a build follows the exact release-then-recreate
// path the runtime takes on a toggle.
func buildMapSlot(slot string, build func(theme.Mode) geomap.Spec) mapSlot {
	ms := mapSlot{Slot: slot, Specs: make(map[theme.Mode]geomap.Spec)}
	reg := geomap.NewRegistry()
	var bus theme.Bus
	bus.Subscribe(func(m theme.Mode) {
		inst := reg.Render(build(m))
		ms.Specs[m] = inst.Spec
	})
	for _, m := range theme.Modes {
		bus.Broadcast(m)
	}
	return ms
}
