package tile

import "github.com/tilekiln/tilekiln/internal/geo"

// Point is a tile-local vertex in extent units. Values outside [0, geo.TileExtent]
// are valid and not clipped.
type Point struct {
	X, Y int32
}

// LineString is an ordered run of tile-local vertices.
type LineString []Point

// Ring is a closed tile-local vertex loop; Polygon's first ring is the
// outer boundary and any further rings are holes, mirroring orb.Polygon.
type Ring []Point

// Polygon is a sequence of rings in tile-local units.
type Polygon []Ring

// Geometry is the tile-local counterpart of orb.Geometry: Point, LineString,
// or Polygon expressed in signed 4096-extent integer units instead of
// floating-point degrees.
type Geometry interface {
	isTileGeometry()
}

func (Point) isTileGeometry()      {}
func (LineString) isTileGeometry() {}
func (Polygon) isTileGeometry()    {}

// Feature is the tile-local counterpart of geo.Feature: the same properties,
// geometry reprojected into the owning tile's local frame, unclipped.
type Feature struct {
	Geometry   Geometry
	Properties geo.Properties
}
