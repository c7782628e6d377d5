package tile

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/tilekiln/tilekiln/internal/geo"
	"github.com/tilekiln/tilekiln/internal/tkerr"
)

// AssignFeatures implements the tiler: for each feature, compute the set of
// tiles its bounding box intersects at zoom z (inclusive on both axes), and
// emit that feature's whole, unclipped, unsimplified geometry — reprojected
// into each covering tile's local frame — into every one of those tiles.
// Deliberately does no clipping or simplification.
func AssignFeatures(features []geo.Feature, z uint8) map[Coord][]Feature {
	result := make(map[Coord][]Feature)

	for _, f := range features {
		if geo.IsEmpty(f.Geometry) {
			continue
		}
		for _, coord := range tilesInBounds(f.Bound(), z) {
			result[coord] = append(result[coord], Feature{
				Geometry:   reproject(f.Geometry, z, coord.X, coord.Y),
				Properties: f.Properties,
			})
		}
	}

	return result
}

// tilesInBounds returns every tile at zoom z that bound intersects,
// inclusive on both axes, clamped to the valid 0..2^z-1 range.
func tilesInBounds(bound orb.Bound, z uint8) []Coord {
	n := uint32(math.Exp2(float64(z)))
	maxIdx := n - 1

	// North-west corner gives the minimum tile x and minimum tile y (tile y
	// grows southward); south-east gives the maxima.
	x0, y0 := geo.TileAt(bound.Min[0], bound.Max[1], z)
	x1, y1 := geo.TileAt(bound.Max[0], bound.Min[1], z)

	if x0 > maxIdx {
		x0 = maxIdx
	}
	if x1 > maxIdx {
		x1 = maxIdx
	}
	if y0 > maxIdx {
		y0 = maxIdx
	}
	if y1 > maxIdx {
		y1 = maxIdx
	}

	coords := make([]Coord, 0, (x1-x0+1)*(y1-y0+1))
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			coords = append(coords, Coord{Z: z, X: x, Y: y})
		}
	}
	return coords
}

// reproject converts a geographic geometry into the tile-local integer grid
// of the tile at (z, tx, ty), vertex by vertex, with no clipping.
func reproject(g orb.Geometry, z uint8, tx, ty uint32) Geometry {
	switch t := g.(type) {
	case orb.Point:
		return projectPoint(t, z, tx, ty)
	case orb.LineString:
		return projectLineString(t, z, tx, ty)
	case orb.Polygon:
		return projectPolygon(t, z, tx, ty)
	default:
		panic(tkerr.New(tkerr.InvalidGeometry, "unsupported geometry in tiler"))
	}
}

func projectPoint(p orb.Point, z uint8, tx, ty uint32) Point {
	x, y := geo.Local(p[0], p[1], z, tx, ty)
	return Point{X: x, Y: y}
}

func projectLineString(ls orb.LineString, z uint8, tx, ty uint32) LineString {
	out := make(LineString, len(ls))
	for i, p := range ls {
		out[i] = projectPoint(orb.Point(p), z, tx, ty)
	}
	return out
}

func projectPolygon(poly orb.Polygon, z uint8, tx, ty uint32) Polygon {
	out := make(Polygon, len(poly))
	for i, ring := range poly {
		r := make(Ring, len(ring))
		for j, p := range ring {
			r[j] = projectPoint(orb.Point(p), z, tx, ty)
		}
		out[i] = r
	}
	return out
}
