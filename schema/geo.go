package schema

import "fmt"

var ErrInvalidLocation = fmt.Errorf("invalid location")

// Location is the plain lat/lng pair exchanged with clients
type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Validate checks the coordinate ranges
func (l Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 || l.Longitude < -180 || l.Longitude > 180 {
		return ErrInvalidLocation
	}
	return nil
}

// GeoJSON - mongo point format
type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// NewPoint converts a location into a GeoJSON point. Coordinates are in
// [lng, lat] order as required by 2dsphere indexes.
func NewPoint(l Location) *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{l.Longitude, l.Latitude},
	}
}

// Location converts a GeoJSON point back to a location
func (g *GeoJSON) Location() *Location {
	if g == nil || len(g.Coordinates) < 2 {
		return nil
	}
	return &Location{
		Longitude: g.Coordinates[0],
		Latitude:  g.Coordinates[1],
	}
}

// LineString - mongo line format used for road geometry
type LineString struct {
	Type        string      `json:"type" bson:"type"`
	Coordinates [][]float64 `json:"coordinates" bson:"coordinates"`
}

func NewLineString(points []Location) *LineString {
	coords := make([][]float64, 0, len(points))
	for _, p := range points {
		coords = append(coords, []float64{p.Longitude, p.Latitude})
	}
	return &LineString{
		Type:        "LineString",
		Coordinates: coords,
	}
}

// Points returns the vertices of the line
func (l *LineString) Points() []Location {
	if l == nil {
		return nil
	}
	points := make([]Location, 0, len(l.Coordinates))
	for _, c := range l.Coordinates {
		if len(c) < 2 {
			continue
		}
		points = append(points, Location{Longitude: c[0], Latitude: c[1]})
	}
	return points
}

// Polygon - mongo polygon format used for neighborhood boundaries
type Polygon struct {
	Type        string        `json:"type" bson:"type"`
	Coordinates [][][]float64 `json:"coordinates" bson:"coordinates"`
}

// NewPolygon builds a single-ring polygon and closes the ring if needed
func NewPolygon(ring []Location) *Polygon {
	coords := make([][]float64, 0, len(ring)+1)
	for _, p := range ring {
		coords = append(coords, []float64{p.Longitude, p.Latitude})
	}
	if n := len(coords); n > 0 {
		first, last := coords[0], coords[n-1]
		if first[0] != last[0] || first[1] != last[1] {
			coords = append(coords, []float64{first[0], first[1]})
		}
	}
	return &Polygon{
		Type:        "Polygon",
		Coordinates: [][][]float64{coords},
	}
}
