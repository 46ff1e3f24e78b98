package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/bitmark-inc/cityworks-api/schema"
)

type geoFeature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	} `json:"geometry"`
}

type geoJSON struct {
	Type     string       `json:"type"`
	Name     string       `json:"name"`
	Features []geoFeature `json:"features"`
}

// boundary is a named neighborhood outline read from a feature
type boundary struct {
	Name    string
	Polygon *schema.Polygon
}

// parseBoundaries reads a GeoJSON feature collection. Features without a
// name or with a geometry other than a polygon are returned as skipped. Only
// the largest polygon of a multipolygon is kept.
func parseBoundaries(r io.Reader, nameField string) ([]boundary, []string, error) {
	var collection geoJSON
	if err := json.NewDecoder(r).Decode(&collection); err != nil {
		return nil, nil, err
	}
	if collection.Type != "FeatureCollection" {
		return nil, nil, fmt.Errorf("expect a FeatureCollection, got %q", collection.Type)
	}

	boundaries := make([]boundary, 0, len(collection.Features))
	skipped := make([]string, 0)
	for i, f := range collection.Features {
		name, _ := f.Properties[nameField].(string)
		name = strings.TrimSpace(name)
		if name == "" {
			skipped = append(skipped, fmt.Sprintf("feature #%d: no %q property", i, nameField))
			continue
		}

		polygon, err := toPolygon(f.Geometry.Type, f.Geometry.Coordinates)
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("%s: %s", name, err))
			continue
		}

		boundaries = append(boundaries, boundary{Name: name, Polygon: polygon})
	}

	return boundaries, skipped, nil
}

func toPolygon(geometryType string, raw json.RawMessage) (*schema.Polygon, error) {
	var rings [][][]float64

	switch geometryType {
	case "Polygon":
		if err := json.Unmarshal(raw, &rings); err != nil {
			return nil, err
		}
	case "MultiPolygon":
		var polygons [][][][]float64
		if err := json.Unmarshal(raw, &polygons); err != nil {
			return nil, err
		}
		largest := 0.0
		for _, p := range polygons {
			if len(p) == 0 {
				continue
			}
			if a := ringArea(p[0]); a > largest {
				largest, rings = a, p
			}
		}
	default:
		return nil, fmt.Errorf("unsupported geometry %q", geometryType)
	}

	if len(rings) == 0 {
		return nil, fmt.Errorf("empty geometry")
	}

	// holes are dropped
	outer := make([]schema.Location, 0, len(rings[0]))
	for _, position := range rings[0] {
		if len(position) < 2 {
			return nil, fmt.Errorf("invalid position %v", position)
		}
		loc := schema.Location{Longitude: position[0], Latitude: position[1]}
		if err := loc.Validate(); err != nil {
			return nil, err
		}
		outer = append(outer, loc)
	}

	polygon := schema.NewPolygon(outer)
	if len(polygon.Coordinates[0]) < 4 {
		return nil, fmt.Errorf("a ring needs at least 3 distinct positions")
	}

	return polygon, nil
}

// ringArea is the planar shoelace area of a ring in squared degrees
func ringArea(ring [][]float64) float64 {
	area := 0.0
	for i := range ring {
		j := (i + 1) % len(ring)
		if len(ring[i]) < 2 || len(ring[j]) < 2 {
			return 0
		}
		area += ring[i][0]*ring[j][1] - ring[j][0]*ring[i][1]
	}
	return math.Abs(area) / 2
}
