// Package geo holds the normalised in-memory feature model consumed by the
// tiler: geographic geometry plus a string-keyed, JSON-typed property map.
package geo

import "github.com/paulmach/orb"

// Properties is an insertion-order-irrelevant mapping from property key to a
// JSON-value variant: string, integer (int64), double (float64), bool, or
// nil.
type Properties map[string]any

// Feature pairs a geometry with its properties. Geometry is always one of
// orb.Point, orb.LineString, or orb.Polygon — the only types the input
// contract accepts.
type Feature struct {
	Geometry   orb.Geometry
	Properties Properties
}

// Bound returns the feature's geographic bounding box.
func (f Feature) Bound() orb.Bound {
	return f.Geometry.Bound()
}

// IsEmpty reports whether the geometry carries no usable coordinates: a
// polygon with no ring of at least 4 points, or a linestring with fewer than
// 2 points. Such features are skipped silently during tiling.
func IsEmpty(g orb.Geometry) bool {
	switch t := g.(type) {
	case orb.Point:
		return false
	case orb.LineString:
		return len(t) < 2
	case orb.Polygon:
		for _, ring := range t {
			if len(ring) >= 4 {
				return false
			}
		}
		return true
	default:
		return true
	}
}
