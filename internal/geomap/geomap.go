// Package geomap builds the tile-map bootstrap specs embedded in the pages:
// theme tile sources, magnitude-scaled circle markers, glow polylines, and
// viewport fits. The page runtime plays a spec back verbatim; every visual
// decision is made here.
package geomap

import (
	"fmt"
	"html"

	"github.com/ebochsler/personal-site/internal/model"
	"github.com/ebochsler/personal-site/internal/palette"
	"github.com/ebochsler/personal-site/internal/scale"
	"github.com/ebochsler/personal-site/internal/theme"
)

const (
	// MinRadius and MaxRadius bound marker size in pixels.
	MinRadius = 6
	MaxRadius = 20
	// FitPadding is the pixel padding applied when fitting the viewport.
	FitPadding = 32
	// FitMaxZoom caps how far a fit may zoom in.
	FitMaxZoom = 13
)

var tileURLs = map[theme.Mode]string{
	theme.Dark:  "https://{s}.basemaps.cartocdn.com/dark_all/{z}/{x}/{y}{r}.png",
	theme.Light: "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png",
}

const tileAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> &copy; <a href="https://carto.com/">CARTO</a>`

// Marker is one circle marker of a map spec.
type Marker struct {
	ID          string  `json:"id"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Radius      float64 `json:"radius"`
	Color       string  `json:"color"`
	FillOpacity float64 `json:"fillOpacity"`
	Weight      float64 `json:"weight"`
	Popup       string  `json:"popup"`
}

// Stroke is one layer of a polyline.
type Stroke struct {
	Color   string  `json:"color"`
	Weight  float64 `json:"weight"`
	Opacity float64 `json:"opacity"`
}

// Polyline is an ordered route drawn as stacked strokes. Three layers (wide
// translucent, medium, bright core) produce the glow effect.
type Polyline struct {
	Coords []model.Coordinate `json:"coords"`
	Layers []Stroke           `json:"layers"`
}

// Bounds is the box a map viewport fits to.
type Bounds struct {
	MinLat  float64 `json:"minLat"`
	MinLng  float64 `json:"minLng"`
	MaxLat  float64 `json:"maxLat"`
	MaxLng  float64 `json:"maxLng"`
	Padding int     `json:"padding"`
	MaxZoom int     `json:"maxZoom"`
}

// Spec is everything the page runtime needs to construct one map instance.
// Tile source and colors are baked in at build time, which is why a theme
// change requires a full rebuild rather than an incremental update.
type Spec struct {
	Slot        string     `json:"slot"`
	Theme       theme.Mode `json:"theme"`
	TileURL     string     `json:"tileUrl"`
	Attribution string     `json:"attribution"`
	Markers     []Marker   `json:"markers"`
	Polylines   []Polyline `json:"polylines"`
	Fit         *Bounds    `json:"fit,omitempty"`
}

// VenueMap builds the all-venues map. Marker radius interpolates between
// MinRadius and MaxRadius by visit count against the batch bound; records
// without plottable coordinates are skipped and never abort the batch.
func VenueMap(slot string, venues []model.VenueRecord, mode theme.Mode) Spec {
	spec := Spec{
		Slot:        slot,
		Theme:       mode,
		TileURL:     tileURLs[mode],
		Attribution: tileAttribution,
	}

	values := make([]float64, len(venues))
	for i, v := range venues {
		values[i] = float64(v.VisitCount)
	}
	bound := scale.Bound(values)

	fillOpacity := 0.75
	if mode == theme.Light {
		fillOpacity = 0.85
	}

	var plotted []model.Coordinate
	for _, v := range venues {
		c := v.Coord()
		if !c.Valid() {
			continue
		}
		t := scale.Proportion(float64(v.VisitCount), bound)
		spec.Markers = append(spec.Markers, Marker{
			ID:          v.ID,
			Lat:         v.Lat,
			Lng:         v.Lng,
			Radius:      scale.Lerp(MinRadius, MaxRadius, t),
			Color:       palette.ResolveRaw(v.Category, mode),
			FillOpacity: fillOpacity,
			Weight:      1,
			Popup:       venuePopup(v),
		})
		plotted = append(plotted, c)
	}
	spec.Fit = fitBounds(plotted)
	return spec
}

// RouteMap builds a glow-polyline preview for a single run, fit to the
// route's own bounding box.
func RouteMap(slot string, run model.ActivityRecord, mode theme.Mode) Spec {
	spec := Spec{
		Slot:        slot,
		Theme:       mode,
		TileURL:     tileURLs[mode],
		Attribution: tileAttribution,
	}

	var coords []model.Coordinate
	for _, c := range run.Coordinates {
		if c.Valid() {
			coords = append(coords, c)
		}
	}
	if len(coords) > 0 {
		spec.Polylines = append(spec.Polylines, glowPolyline(coords, mode))
	}
	spec.Fit = fitBounds(coords)
	return spec
}

// glowPolyline stacks a wide translucent halo, a medium stroke, and a bright
// core line over the same coordinates.
func glowPolyline(coords []model.Coordinate, mode theme.Mode) Polyline {
	core := "#ff6b35"
	if mode == theme.Light {
		core = "#d84a0f"
	}
	return Polyline{
		Coords: coords,
		Layers: []Stroke{
			{Color: core, Weight: 9, Opacity: 0.15},
			{Color: core, Weight: 5, Opacity: 0.4},
			{Color: core, Weight: 2.5, Opacity: 1},
		},
	}
}

// fitBounds returns the box around the plotted coordinates, or nil when
// nothing was plotted so the runtime skips the fit instead of crashing.
func fitBounds(coords []model.Coordinate) *Bounds {
	if len(coords) == 0 {
		return nil
	}
	b := &Bounds{
		MinLat: coords[0].Lat(), MaxLat: coords[0].Lat(),
		MinLng: coords[0].Lng(), MaxLng: coords[0].Lng(),
		Padding: FitPadding, MaxZoom: FitMaxZoom,
	}
	for _, c := range coords[1:] {
		if c.Lat() < b.MinLat {
			b.MinLat = c.Lat()
		}
		if c.Lat() > b.MaxLat {
			b.MaxLat = c.Lat()
		}
		if c.Lng() < b.MinLng {
			b.MinLng = c.Lng()
		}
		if c.Lng() > b.MaxLng {
			b.MaxLng = c.Lng()
		}
	}
	return b
}

func venuePopup(v model.VenueRecord) string {
	visits := "visits"
	if v.VisitCount == 1 {
		visits = "visit"
	}
	return fmt.Sprintf("<strong>%s</strong><br>%s<br>%d %s · %.1f hours",
		html.EscapeString(v.Name), model.ParseCategory(v.Category), v.VisitCount, visits, v.TotalHours)
}
