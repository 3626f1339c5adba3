package regional

import (
	"encoding/json"
	"fmt"
)

// Topology holds the world landmass outlines decoded from the external
// GeoJSON payload. The regional maps render without it if the fetch has not
// finished (or failed): ocean and graticule only, no error.
type Topology struct {
	rings [][][2]float64 // each ring is a closed [lng, lat] loop
}

type geoFeatureCollection struct {
	Features []struct {
		Geometry struct {
			Type        string          `json:"type"`
			Coordinates json.RawMessage `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// ParseTopology decodes a GeoJSON FeatureCollection of Polygon and
// MultiPolygon landmasses. Only outer rings are kept; holes add nothing at
// the rendered scale.
func ParseTopology(payload []byte) (*Topology, error) {
	var fc geoFeatureCollection
	if err := json.Unmarshal(payload, &fc); err != nil {
		return nil, fmt.Errorf("decoding topology: %w", err)
	}

	t := &Topology{}
	for _, f := range fc.Features {
		switch f.Geometry.Type {
		case "Polygon":
			var poly [][][2]float64
			if err := json.Unmarshal(f.Geometry.Coordinates, &poly); err != nil {
				continue
			}
			if len(poly) > 0 {
				t.rings = append(t.rings, poly[0])
			}
		case "MultiPolygon":
			var multi [][][][2]float64
			if err := json.Unmarshal(f.Geometry.Coordinates, &multi); err != nil {
				continue
			}
			for _, poly := range multi {
				if len(poly) > 0 {
					t.rings = append(t.rings, poly[0])
				}
			}
		}
	}
	if len(t.rings) == 0 {
		return nil, fmt.Errorf("topology payload has no landmass polygons")
	}
	return t, nil
}

// Rings returns the outer rings as [lng, lat] loops.
func (t *Topology) Rings() [][][2]float64 {
	if t == nil {
		return nil
	}
	return t.rings
}
