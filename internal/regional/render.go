package regional

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/ebochsler/personal-site/internal/model"
	"github.com/ebochsler/personal-site/internal/theme"
)

var colors = map[theme.Mode]struct{ ocean, land, grid, glow, dot string }{
	theme.Dark:  {ocean: "#10151d", land: "#1d2633", grid: "#263142", glow: "#ff6b35", dot: "#ffb38a"},
	theme.Light: {ocean: "#dfe9f2", land: "#c4d2de", grid: "#b3c2d1", glow: "#d84a0f", dot: "#9c3409"},
}

// Render draws the regional map for one continent tag as an SVG fragment.
// Routes outside the tag are filtered out; the viewport fits the padded
// bounding box of the remaining start coordinates. topo may be nil — the map
// degrades to ocean and graticule while the topology payload is in flight.
func Render(routes []model.FeaturedRoute, continent string, topo *Topology, w, h int, mode theme.Mode) string {
	var subset []model.FeaturedRoute
	var points []model.Coordinate
	for _, r := range routes {
		if r.Continent != continent {
			continue
		}
		subset = append(subset, r)
		points = append(points, r.StartLatLng)
	}

	c := colors[mode]
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg" role="img">`, w, h)
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="%s"/>`, w, h, c.ocean)

	box, ok := BoundingBox(points)
	if !ok {
		sb.WriteString("</svg>")
		return sb.String()
	}
	proj := Fit(box.Pad(), w, h)

	writeLand(&sb, proj, topo, c.land)
	writeGraticule(&sb, proj, c.grid)

	for _, r := range subset {
		x, y, ok := proj.Project(r.StartLatLng.Lat(), r.StartLatLng.Lng())
		if !ok {
			continue
		}
		tip := tooltip(r)
		fmt.Fprintf(&sb, `<a href="#route-%s" class="regional-marker" data-scroll-target="route-%s">`, r.ID, r.ID)
		fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="10" fill="%s" opacity="0.25"/>`, x, y, c.glow)
		fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="4" fill="%s"><title>%s</title></circle>`, x, y, c.dot, tip)
		sb.WriteString("</a>")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// tooltip formats the hover content with a singular or plural unit label.
func tooltip(r model.FeaturedRoute) string {
	unit := "runs"
	if r.TotalRuns == 1 {
		unit = "run"
	}
	return html.EscapeString(fmt.Sprintf("%s — %.1f mi · %d %s", r.City, r.TotalMiles, r.TotalRuns, unit))
}

func writeLand(sb *strings.Builder, proj Projection, topo *Topology, fill string) {
	for _, ring := range topo.Rings() {
		var path strings.Builder
		started := false
		for _, pt := range ring {
			// GeoJSON stores [lng, lat]. Land paths are drawn unclipped;
			// the viewBox crops them.
			x := proj.offsetX + (pt[0]-proj.box.MinLng)*proj.scale
			y := proj.offsetY + (proj.box.MaxLat-pt[1])*proj.scale
			if !started {
				fmt.Fprintf(&path, "M%.1f %.1f", x, y)
				started = true
			} else {
				fmt.Fprintf(&path, "L%.1f %.1f", x, y)
			}
		}
		if !started {
			continue
		}
		path.WriteString("Z")
		fmt.Fprintf(sb, `<path d="%s" fill="%s" class="landmass"/>`, path.String(), fill)
	}
}

func writeGraticule(sb *strings.Builder, proj Projection, stroke string) {
	b := proj.box
	for lng := math.Ceil(b.MinLng/GraticuleStep) * GraticuleStep; lng <= b.MaxLng; lng += GraticuleStep {
		x1, y1, _ := proj.Project(b.MaxLat, lng)
		x2, y2, _ := proj.Project(b.MinLat, lng)
		fmt.Fprintf(sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="0.5" class="graticule"/>`,
			x1, y1, x2, y2, stroke)
	}
	for lat := math.Ceil(b.MinLat/GraticuleStep) * GraticuleStep; lat <= b.MaxLat; lat += GraticuleStep {
		x1, y1, _ := proj.Project(lat, b.MinLng)
		x2, y2, _ := proj.Project(lat, b.MaxLng)
		fmt.Fprintf(sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="0.5" class="graticule"/>`,
			x1, y1, x2, y2, stroke)
	}
}
