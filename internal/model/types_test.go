package model

import "testing"

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want VenueCategory
	}{
		{"brewery", CategoryBrewery},
		{"bar", CategoryBar},
		{"winery", CategoryWinery},
		{"distillery", CategoryDistillery},
		{"cidery", CategoryCidery},
		{"other", CategoryOther},
		{"speakeasy", CategoryOther},
		{"", CategoryOther},
	}
	for _, c := range cases {
		if got := ParseCategory(c.in); got != c.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCoordinateValid(t *testing.T) {
	if (Coordinate{0, 0}).Valid() {
		t.Error("zero pair should be invalid")
	}
	if !(Coordinate{47.61, -122.33}).Valid() {
		t.Error("Seattle should be valid")
	}
	if (Coordinate{91, 0}).Valid() {
		t.Error("latitude out of range should be invalid")
	}
	if (Coordinate{0, -181}).Valid() {
		t.Error("longitude out of range should be invalid")
	}
}

func TestStableIDDeterministic(t *testing.T) {
	a := StableID("run", "Morning Run", "2025-06-01")
	b := StableID("run", "Morning Run", "2025-06-01")
	if a != b {
		t.Errorf("same parts produced different IDs: %q vs %q", a, b)
	}
	c := StableID("run", "Morning Run", "2025-06-02")
	if a == c {
		t.Error("different parts produced the same ID")
	}
	if len(a) != 8 {
		t.Errorf("expected 8-char ID, got %q", a)
	}
}

func TestAssignFeaturedIDs(t *testing.T) {
	routes := []FeaturedRoute{
		{City: "Paris", Continent: "eu", FeaturedRun: ActivityRecord{Name: "Seine Loop", Date: "2024-05-03"}},
		{City: "Seattle", Continent: "na", FeaturedRun: ActivityRecord{Name: "Lake Union", Date: "2024-07-11"}},
	}
	AssignFeaturedIDs(routes)
	if routes[0].ID == "" || routes[1].ID == "" {
		t.Fatal("expected IDs assigned")
	}
	if routes[0].ID == routes[1].ID {
		t.Error("distinct routes share an ID")
	}
	if routes[0].FeaturedRun.ID == "" {
		t.Error("featured run should get an ID too")
	}
}
