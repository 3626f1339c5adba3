package model

import "github.com/google/uuid"

// idNamespace seeds deterministic record IDs so rebuilds of the same dataset
// produce the same anchors. Detail cards and map markers link to each other
// by these IDs instead of positional indices, which break the moment a
// filtered subset is resorted.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://ebochsler.com/records"))

// StableID derives a short deterministic identifier from the given parts.
func StableID(parts ...string) string {
	key := ""
	for _, p := range parts {
		key += p + "\x00"
	}
	id := uuid.NewSHA1(idNamespace, []byte(key))
	return id.String()[:8]
}

// AssignRunningIDs fills in IDs for every record in the running dataset.
func AssignRunningIDs(d *RunningData) {
	if d == nil {
		return
	}
	for i := range d.RecentRuns {
		r := &d.RecentRuns[i]
		r.ID = StableID("run", r.Name, r.Date)
	}
}

// AssignVenueIDs fills in IDs for every venue collection in the dataset.
func AssignVenueIDs(d *VenueData) {
	if d == nil {
		return
	}
	assign := func(vs []VenueRecord) {
		for i := range vs {
			v := &vs[i]
			v.ID = StableID("venue", v.Name)
		}
	}
	assign(d.AllVenues)
	assign(d.TopByVisits)
	assign(d.TopByHours)
}

// AssignFeaturedIDs fills in IDs for featured routes and their runs.
func AssignFeaturedIDs(routes []FeaturedRoute) {
	for i := range routes {
		r := &routes[i]
		r.ID = StableID("route", r.City, r.Continent)
		r.FeaturedRun.ID = StableID("run", r.FeaturedRun.Name, r.FeaturedRun.Date)
	}
}
