// Package metadata derives the summary statistics (bounds, geometry type,
// field schema, per-field attribute stats) that both the PMTiles archive's
// JSON metadata and generate_tiles_with_metadata's TileMetadata return value
// are built from.
package metadata

import (
	"fmt"
	"sort"

	"github.com/tilekiln/tilekiln/internal/geo"
	"github.com/tilekiln/tilekiln/internal/tkerr"
)

// FieldType labels the JSON-value type observed for a property key.
type FieldType string

const (
	FieldString  FieldType = "String"
	FieldNumber  FieldType = "Number"
	FieldBoolean FieldType = "Boolean"
)

// Attribute is the per-field statistics record.
type Attribute struct {
	Attribute string   `json:"attribute"`
	Count     int      `json:"count"`
	Type      string   `json:"type"`
	Values    []string `json:"values"`
}

// Metadata is the derived-once-per-generation summary, minus the min/max
// zoom and layer name the caller already knows.
type Metadata struct {
	MinLon, MinLat, MaxLon, MaxLat float64
	CenterLon, CenterLat           float64
	FeatureCount                   int
	GeometryType                   string
	Fields                         map[string]FieldType
	Attributes                     []Attribute
}

const maxAttributeValues = 100

// Analyse scans features once, computing bounds, the dominant geometry
// type, and the field/attribute schema. Returns a NoBounds error for an
// empty feature list or one whose every geometry is degenerate.
func Analyse(features []geo.Feature) (Metadata, error) {
	if len(features) == 0 {
		return Metadata{}, tkerr.New(tkerr.NoBounds, "no features to analyse")
	}
	usable := false
	for _, f := range features {
		if !geo.IsEmpty(f.Geometry) {
			usable = true
			break
		}
	}
	if !usable {
		return Metadata{}, tkerr.New(tkerr.NoBounds, "every feature geometry is degenerate")
	}

	m := Metadata{FeatureCount: len(features)}

	var pointCount, lineCount, polyCount int
	minLon, minLat := float64(1<<31), float64(1<<31)
	maxLon, maxLat := -float64(1<<31), -float64(1<<31)

	fieldTypes := make(map[string]map[FieldType]bool)
	fieldValues := make(map[string]map[string]bool)

	for _, f := range features {
		b := f.Bound()
		if b.Min[0] < minLon {
			minLon = b.Min[0]
		}
		if b.Min[1] < minLat {
			minLat = b.Min[1]
		}
		if b.Max[0] > maxLon {
			maxLon = b.Max[0]
		}
		if b.Max[1] > maxLat {
			maxLat = b.Max[1]
		}

		switch f.Geometry.GeoJSONType() {
		case "Point":
			pointCount++
		case "LineString":
			lineCount++
		case "Polygon":
			polyCount++
		}

		for key, val := range f.Properties {
			ft := jsonFieldType(val)
			if fieldTypes[key] == nil {
				fieldTypes[key] = make(map[FieldType]bool)
			}
			fieldTypes[key][ft] = true

			if fieldValues[key] == nil {
				fieldValues[key] = make(map[string]bool)
			}
			fieldValues[key][coerceToString(val)] = true
		}
	}

	m.MinLon, m.MinLat, m.MaxLon, m.MaxLat = minLon, minLat, maxLon, maxLat
	m.CenterLon = (minLon + maxLon) / 2
	m.CenterLat = (minLat + maxLat) / 2

	// Tie-break on equal counts: polygon > linestring > point.
	switch {
	case polyCount >= pointCount && polyCount >= lineCount:
		m.GeometryType = "Polygon"
	case lineCount >= pointCount:
		m.GeometryType = "LineString"
	default:
		m.GeometryType = "Point"
	}

	m.Fields = make(map[string]FieldType, len(fieldTypes))
	for key, types := range fieldTypes {
		if len(types) == 1 {
			for t := range types {
				m.Fields[key] = t
			}
		} else {
			m.Fields[key] = FieldString
		}
	}

	m.Attributes = make([]Attribute, 0, len(fieldValues))
	for key, values := range fieldValues {
		vals := make([]string, 0, len(values))
		for v := range values {
			vals = append(vals, v)
		}
		sort.Strings(vals)
		if len(vals) > maxAttributeValues {
			vals = vals[:maxAttributeValues]
		}

		attrType := "string"
		if m.Fields[key] == FieldNumber {
			attrType = "number"
		}

		m.Attributes = append(m.Attributes, Attribute{
			Attribute: key,
			Count:     len(vals),
			Type:      attrType,
			Values:    vals,
		})
	}
	sort.Slice(m.Attributes, func(i, j int) bool {
		return m.Attributes[i].Attribute < m.Attributes[j].Attribute
	})

	return m, nil
}

func jsonFieldType(v any) FieldType {
	switch v.(type) {
	case string, nil:
		return FieldString
	case int64, float64:
		return FieldNumber
	case bool:
		return FieldBoolean
	default:
		return FieldString
	}
}

func coerceToString(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case int64:
		return fmt.Sprintf("%d", t)
	case float64:
		return fmt.Sprintf("%g", t)
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
