// Package regional renders the flat continent maps on the featured-routes
// section: a small set of cities projected onto an SVG with a graticule and
// an optional world landmass layer.
package regional

import (
	"math"

	"github.com/ebochsler/personal-site/internal/model"
)

const (
	// PadRatio expands the bounding box by 20% of its span on each side.
	PadRatio = 0.2
	// MinPadDeg floors the padding so tightly clustered points never
	// produce a degenerate box.
	MinPadDeg = 4.0
	// GraticuleStep is the reference grid spacing in degrees.
	GraticuleStep = 10.0
)

// Box is a geographic bounding box.
type Box struct {
	MinLat, MinLng, MaxLat, MaxLng float64
}

// BoundingBox computes the box around the valid points of a batch. ok is
// false when nothing was plottable.
func BoundingBox(points []model.Coordinate) (Box, bool) {
	var b Box
	found := false
	for _, p := range points {
		if !p.Valid() {
			continue
		}
		if !found {
			b = Box{MinLat: p.Lat(), MaxLat: p.Lat(), MinLng: p.Lng(), MaxLng: p.Lng()}
			found = true
			continue
		}
		b.MinLat = math.Min(b.MinLat, p.Lat())
		b.MaxLat = math.Max(b.MaxLat, p.Lat())
		b.MinLng = math.Min(b.MinLng, p.Lng())
		b.MaxLng = math.Max(b.MaxLng, p.Lng())
	}
	return b, found
}

// Pad expands the box by PadRatio of each span, floored at MinPadDeg, then
// clamps to valid coordinates.
func (b Box) Pad() Box {
	padLat := math.Max((b.MaxLat-b.MinLat)*PadRatio, MinPadDeg)
	padLng := math.Max((b.MaxLng-b.MinLng)*PadRatio, MinPadDeg)
	out := Box{
		MinLat: math.Max(b.MinLat-padLat, -90),
		MaxLat: math.Min(b.MaxLat+padLat, 90),
		MinLng: math.Max(b.MinLng-padLng, -180),
		MaxLng: math.Min(b.MaxLng+padLng, 180),
	}
	return out
}

// Projection is an equirectangular fit of a box onto a pixel viewport.
type Projection struct {
	box     Box
	w, h    float64
	scale   float64
	offsetX float64
	offsetY float64
}

// Fit computes the projection mapping box onto a w×h container, preserving
// aspect ratio and centering the box.
func Fit(box Box, w, h int) Projection {
	p := Projection{box: box, w: float64(w), h: float64(h)}
	lngSpan := box.MaxLng - box.MinLng
	latSpan := box.MaxLat - box.MinLat
	if lngSpan <= 0 || latSpan <= 0 {
		p.scale = 1
		return p
	}
	p.scale = math.Min(p.w/lngSpan, p.h/latSpan)
	p.offsetX = (p.w - lngSpan*p.scale) / 2
	p.offsetY = (p.h - latSpan*p.scale) / 2
	return p
}

// Project maps a coordinate to pixel space. ok is false when the point lands
// outside the viewport; callers skip those markers rather than drawing them
// clipped — the padded box and the container aspect ratio can diverge.
func (p Projection) Project(lat, lng float64) (x, y float64, ok bool) {
	x = p.offsetX + (lng-p.box.MinLng)*p.scale
	y = p.offsetY + (p.box.MaxLat-lat)*p.scale
	ok = x >= 0 && x <= p.w && y >= 0 && y <= p.h
	return x, y, ok
}
