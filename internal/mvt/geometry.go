package mvt

import "github.com/tilekiln/tilekiln/internal/tile"

// Geometry command ids.
const (
	cmdMoveTo    = 1
	cmdLineTo    = 2
	cmdClosePath = 7
)

// GeomType mirrors the Tile.GeomType enum: Unknown=0, Point=1, LineString=2,
// Polygon=3.
type GeomType uint32

const (
	GeomUnknown    GeomType = 0
	GeomPoint      GeomType = 1
	GeomLineString GeomType = 2
	GeomPolygon    GeomType = 3
)

// commandInteger packs a command id and repeat count into the single u32 the
// geometry stream alternates with parameter integers.
func commandInteger(id, count int) uint32 {
	return uint32((id & 0x7) | (count << 3))
}

// zigzag encodes a signed delta using the classic protobuf sint32 transform.
func zigzag(n int32) uint32 {
	return uint32((n << 1) ^ (n >> 31))
}

// cursor tracks the running tile-local position the geometry stream's deltas
// are relative to. It starts at (0,0) and is never reset mid-feature: a
// polygon's later rings continue from wherever the previous ring's cursor
// ended.
type cursor struct {
	x, y int32
}

func (c *cursor) moveTo(params []uint32, p tile.Point) []uint32 {
	dx, dy := p.X-c.x, p.Y-c.y
	c.x, c.y = p.X, p.Y
	return append(params, commandInteger(cmdMoveTo, 1), zigzag(dx), zigzag(dy))
}

func (c *cursor) lineTo(params []uint32, pts []tile.Point) []uint32 {
	if len(pts) == 0 {
		return params
	}
	params = append(params, commandInteger(cmdLineTo, len(pts)))
	for _, p := range pts {
		dx, dy := p.X-c.x, p.Y-c.y
		c.x, c.y = p.X, p.Y
		params = append(params, zigzag(dx), zigzag(dy))
	}
	return params
}

// encodeGeometry converts a tile-local geometry into its (type, command
// stream) pair. Returns an error of kind InvalidGeometry for a linestring with
// fewer than 2 points, or a polygon with no ring carrying at least 3 usable
// vertices (ring length >= 4 before the closing duplicate is dropped).
func encodeGeometry(g tile.Geometry) (GeomType, []uint32, error) {
	c := cursor{}
	switch t := g.(type) {
	case tile.Point:
		return GeomPoint, c.moveTo(nil, t), nil

	case tile.LineString:
		if len(t) < 2 {
			return GeomLineString, nil, errInvalidGeometry("linestring has fewer than 2 points")
		}
		params := c.moveTo(nil, t[0])
		params = c.lineTo(params, t[1:])
		return GeomLineString, params, nil

	case tile.Polygon:
		var params []uint32
		anyRing := false
		for _, ring := range t {
			if len(ring) < 4 {
				continue
			}
			anyRing = true
			k := len(ring) - 1 // drop the closing duplicate of the first point
			params = c.moveTo(params, ring[0])
			params = c.lineTo(params, ring[1:k])
			params = append(params, commandInteger(cmdClosePath, 1))
		}
		if !anyRing {
			return GeomPolygon, nil, errInvalidGeometry("polygon has no ring with at least 3 vertices")
		}
		return GeomPolygon, params, nil

	default:
		return GeomUnknown, nil, errInvalidGeometry("unsupported tile geometry")
	}
}
