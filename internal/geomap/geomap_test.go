package geomap

import (
	"strings"
	"testing"

	"github.com/ebochsler/personal-site/internal/model"
	"github.com/ebochsler/personal-site/internal/theme"
)

func venue(name string, lat, lng float64, visits int) model.VenueRecord {
	return model.VenueRecord{
		ID: name, Name: name, Category: "brewery",
		Lat: lat, Lng: lng, VisitCount: visits, TotalHours: float64(visits) * 1.5,
	}
}

func TestVenueMapRadiusInterpolation(t *testing.T) {
	venues := []model.VenueRecord{
		venue("min", 47.6, -122.3, 0),
		venue("max", 47.7, -122.4, 10),
	}
	spec := VenueMap("venues", venues, theme.Dark)
	if len(spec.Markers) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(spec.Markers))
	}
	if spec.Markers[0].Radius != MinRadius {
		t.Errorf("zero-visit radius = %v, want %v", spec.Markers[0].Radius, MinRadius)
	}
	if spec.Markers[1].Radius != MaxRadius {
		t.Errorf("max-visit radius = %v, want %v", spec.Markers[1].Radius, MaxRadius)
	}
}

func TestVenueMapSkipsInvalidCoordinates(t *testing.T) {
	venues := []model.VenueRecord{
		venue("good", 47.6, -122.3, 3),
		venue("missing", 0, 0, 5),
	}
	spec := VenueMap("venues", venues, theme.Dark)
	if len(spec.Markers) != 1 {
		t.Fatalf("expected 1 marker, got %d", len(spec.Markers))
	}
	if spec.Markers[0].ID != "good" {
		t.Errorf("wrong record plotted: %s", spec.Markers[0].ID)
	}
	if spec.Fit == nil {
		t.Error("one plotted point should still produce a fit")
	}
}

func TestVenueMapEmptySkipsFit(t *testing.T) {
	spec := VenueMap("venues", nil, theme.Dark)
	if len(spec.Markers) != 0 {
		t.Fatalf("expected no markers, got %d", len(spec.Markers))
	}
	if spec.Fit != nil {
		t.Error("fit must be skipped when zero points were plotted")
	}

	// All-invalid input behaves the same as empty input.
	spec = VenueMap("venues", []model.VenueRecord{venue("bad", 0, 0, 2)}, theme.Dark)
	if spec.Fit != nil {
		t.Error("fit must be skipped when every record was unplottable")
	}
}

func TestRouteMapGlowLayers(t *testing.T) {
	run := model.ActivityRecord{
		Name: "Lake Loop", Date: "2025-06-01",
		Coordinates: []model.Coordinate{{47.6, -122.3}, {47.61, -122.31}, {47.62, -122.32}},
	}
	spec := RouteMap("route-0", run, theme.Dark)
	if len(spec.Polylines) != 1 {
		t.Fatalf("expected 1 polyline, got %d", len(spec.Polylines))
	}
	layers := spec.Polylines[0].Layers
	if len(layers) != 3 {
		t.Fatalf("expected 3 glow layers, got %d", len(layers))
	}
	if !(layers[0].Weight > layers[1].Weight && layers[1].Weight > layers[2].Weight) {
		t.Error("layers should narrow from halo to core")
	}
	if !(layers[0].Opacity < layers[2].Opacity) {
		t.Error("core should be brighter than the halo")
	}
	if spec.Fit == nil {
		t.Fatal("route map should fit to its own bounds")
	}
	if spec.Fit.MinLat != 47.6 || spec.Fit.MaxLng != -122.3 {
		t.Errorf("unexpected fit box: %+v", spec.Fit)
	}
}

func TestRouteMapNoCoordinates(t *testing.T) {
	spec := RouteMap("route-0", model.ActivityRecord{Name: "Treadmill"}, theme.Dark)
	if len(spec.Polylines) != 0 || spec.Fit != nil {
		t.Error("a run without GPS data should render nothing and skip the fit")
	}
}

func TestThemeChangesTileAndColors(t *testing.T) {
	venues := []model.VenueRecord{venue("a", 47.6, -122.3, 2)}
	dark := VenueMap("venues", venues, theme.Dark)
	light := VenueMap("venues", venues, theme.Light)
	if dark.TileURL == light.TileURL {
		t.Error("themes should use different basemaps")
	}
	if !strings.Contains(dark.TileURL, "dark_all") {
		t.Errorf("dark tile url = %q", dark.TileURL)
	}
	if dark.Markers[0].Color == light.Markers[0].Color {
		t.Error("marker colors should be theme dependent")
	}
}

func TestRegistryReleaseThenRecreate(t *testing.T) {
	r := NewRegistry()

	// Teardown of an empty slot is a no-op.
	r.Teardown("venues")
	if d, _ := r.Counts("venues"); d != 0 {
		t.Fatalf("empty teardown counted: %d", d)
	}

	first := r.Render(Spec{Slot: "venues", Theme: theme.Dark})
	second := r.Render(Spec{Slot: "venues", Theme: theme.Light})

	if !first.Destroyed() {
		t.Error("previous instance was not destroyed on re-render")
	}
	if second.Destroyed() {
		t.Error("fresh instance should be live")
	}
	if r.Live("venues") != second {
		t.Error("registry should hold the replacement")
	}
	destroys, creates := r.Counts("venues")
	if destroys != 1 || creates != 2 {
		t.Errorf("destroys=%d creates=%d, want 1 and 2", destroys, creates)
	}
}

func TestPopupEscapesName(t *testing.T) {
	v := venue(`<script>alert(1)</script>`, 47.6, -122.3, 1)
	spec := VenueMap("venues", []model.VenueRecord{v}, theme.Dark)
	if strings.Contains(spec.Markers[0].Popup, "<script>") {
		t.Error("popup must escape venue names")
	}
	if !strings.Contains(spec.Markers[0].Popup, "1 visit") {
		t.Errorf("singular unit label missing: %q", spec.Markers[0].Popup)
	}
}
