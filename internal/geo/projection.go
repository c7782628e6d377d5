package geo

import "math"

// TileExtent is the local coordinate resolution of every tile's geometry
// stream: each tile is a 4096x4096 integer grid.
const TileExtent = 4096

const maxLat = 85.05112878

// clampLat clamps a latitude to the web-mercator projectable range, matching
// the limits used everywhere else in the web-mercator tile pyramid.
func clampLat(lat float64) float64 {
	if lat > maxLat {
		return maxLat
	}
	if lat < -maxLat {
		return -maxLat
	}
	return lat
}

// unit projects a lon/lat pair onto the [0,1]x[0,1] web-mercator unit square.
// At the clamped latitude limits y can fall a few parts in 10^12 outside
// [0,1]; TileAt clamps the resulting tile indices.
func unit(lon, lat float64) (x, y float64) {
	lat = clampLat(lat)
	x = (lon + 180) / 360
	y = 0.5 - math.Log(math.Tan(math.Pi/4+lat*math.Pi/360))/(2*math.Pi)
	return x, y
}

// TileAt returns the (x,y) tile indices containing lon/lat at the given zoom,
// each clamped to 0..2^z-1.
func TileAt(lon, lat float64, z uint8) (x, y uint32) {
	ux, uy := unit(lon, lat)
	n := math.Exp2(float64(z))
	tx := math.Min(math.Max(math.Floor(ux*n), 0), n-1)
	ty := math.Min(math.Max(math.Floor(uy*n), 0), n-1)
	return uint32(tx), uint32(ty)
}

// Local projects a lon/lat pair into the 0..TileExtent integer grid of the
// tile at (z, tx, ty). Coordinates falling outside the tile (features that
// straddle a tile boundary are emitted whole, per the tiler's no-clipping
// rule) come out <0 or >TileExtent; the MVT encoder emits them as-is.
func Local(lon, lat float64, z uint8, tx, ty uint32) (x, y int32) {
	ux, uy := unit(lon, lat)
	n := math.Exp2(float64(z))
	lx := (ux*n - float64(tx)) * TileExtent
	ly := (uy*n - float64(ty)) * TileExtent
	return int32(math.Round(lx)), int32(math.Round(ly))
}
