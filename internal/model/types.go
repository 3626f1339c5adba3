package model

// Coordinate is a [lat, lng] pair as it appears in the dataset JSON.
type Coordinate [2]float64

// Lat returns the latitude component.
func (c Coordinate) Lat() float64 { return c[0] }

// Lng returns the longitude component.
func (c Coordinate) Lng() float64 { return c[1] }

// Valid reports whether the coordinate is plottable. A zero pair means the
// upstream generator had no location for the record.
func (c Coordinate) Valid() bool {
	if c[0] == 0 && c[1] == 0 {
		return false
	}
	return c[0] >= -90 && c[0] <= 90 && c[1] >= -180 && c[1] <= 180
}

// VenueCategory classifies a drinking venue.
type VenueCategory string

const (
	CategoryBrewery    VenueCategory = "brewery"
	CategoryBar        VenueCategory = "bar"
	CategoryWinery     VenueCategory = "winery"
	CategoryDistillery VenueCategory = "distillery"
	CategoryCidery     VenueCategory = "cidery"
	CategoryOther      VenueCategory = "other"
)

// Categories lists every known category in display order.
var Categories = []VenueCategory{
	CategoryBrewery, CategoryBar, CategoryWinery,
	CategoryDistillery, CategoryCidery, CategoryOther,
}

// ParseCategory maps a raw category string onto the closed enumeration.
// Unrecognized values fall back to "other".
func ParseCategory(s string) VenueCategory {
	switch VenueCategory(s) {
	case CategoryBrewery, CategoryBar, CategoryWinery, CategoryDistillery, CategoryCidery:
		return VenueCategory(s)
	}
	return CategoryOther
}

// RunningData is the running dataset produced by the Strava export.
type RunningData struct {
	Year         int              `json:"year"`
	GeneratedAt  string           `json:"generated_at"`
	Summary      RunningSummary   `json:"summary"`
	Calendars    []CalendarMonth  `json:"calendars"`
	WeeklyMiles  []WeekMileage    `json:"weekly_mileage"`
	WorkoutTypes []WorkoutType    `json:"workout_types"`
	RecentRuns   []ActivityRecord `json:"recent_runs"`
}

// RunningSummary holds the year-to-date stat card values.
type RunningSummary struct {
	TotalDistanceMi  float64 `json:"total_distance_mi"`
	TotalRuns        int     `json:"total_runs"`
	AvgPaceMin       float64 `json:"avg_pace_min"`
	TotalTimeHours   float64 `json:"total_time_hours"`
	TotalElevationFt float64 `json:"total_elevation_ft"`
}

// CalendarMonth is one month of the activity heatmap.
type CalendarMonth struct {
	Month string        `json:"month"`
	Days  []CalendarDay `json:"days"`
}

// CalendarDay aggregates all activity on one date.
type CalendarDay struct {
	Date          string   `json:"date"`
	ActiveMinutes int      `json:"active_minutes"`
	DistanceMi    float64  `json:"distance_mi"`
	Activities    []string `json:"activities"`
}

// WeekMileage is one bar of the weekly mileage chart.
type WeekMileage struct {
	Week  string  `json:"week"`
	Miles float64 `json:"miles"`
}

// WorkoutType is one bar of the workout type breakdown.
type WorkoutType struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// ActivityRecord is a single run with its GPS trace.
type ActivityRecord struct {
	ID             string       `json:"-"`
	Name           string       `json:"name"`
	Date           string       `json:"date"`
	DistanceMi     float64      `json:"distance_mi"`
	PaceMin        float64      `json:"pace_min"`
	ElapsedTimeMin float64      `json:"elapsed_time_min"`
	ElevationFt    float64      `json:"elevation_ft"`
	WorkoutType    string       `json:"workout_type,omitempty"`
	Coordinates    []Coordinate `json:"coordinates"`
}

// VenueData is the brewery tracker dataset parsed from Timeline exports.
type VenueData struct {
	GeneratedAt   string        `json:"generated_at"`
	Summary       VenueSummary  `json:"summary"`
	TopByVisits   []VenueRecord `json:"top_by_visits"`
	TopByHours    []VenueRecord `json:"top_by_hours"`
	AllVenues     []VenueRecord `json:"all_venues"`
	VisitsByMonth []MonthCount  `json:"visits_by_month"`
}

// VenueSummary holds the brewery tracker stat card values.
type VenueSummary struct {
	TotalVenues       int             `json:"total_venues"`
	TotalVisits       int             `json:"total_visits"`
	TotalHours        float64         `json:"total_hours"`
	UniqueCities      int             `json:"unique_cities"`
	CategoryBreakdown []CategoryCount `json:"category_breakdown"`
}

// CategoryCount is one row of the category breakdown chart.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// MonthCount is one bar of the visits-by-month chart. Month is "YYYY-MM".
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// VenueRecord is a single visited venue.
type VenueRecord struct {
	ID         string  `json:"-"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	VisitCount int     `json:"visit_count"`
	TotalHours float64 `json:"total_hours"`
	City       string  `json:"city,omitempty"`
	FirstVisit string  `json:"first_visit,omitempty"`
	LastVisit  string  `json:"last_visit,omitempty"`
}

// Coord returns the venue position as a Coordinate.
func (v VenueRecord) Coord() Coordinate { return Coordinate{v.Lat, v.Lng} }

// FeaturedRoute aggregates all runs near one target city, with the longest
// run carried as the featured highlight.
type FeaturedRoute struct {
	ID          string         `json:"-"`
	City        string         `json:"city"`
	Continent   string         `json:"continent"` // "na" or "eu"
	TotalMiles  float64        `json:"total_miles"`
	TotalRuns   int            `json:"total_runs"`
	StartLatLng Coordinate     `json:"start_latlng"`
	FeaturedRun ActivityRecord `json:"featured_run"`
}
