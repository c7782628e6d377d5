package pmtiles

// hilbertIndex computes the Hilbert-curve distance of tile (x,y) on a
// 2^z x 2^z grid via the standard iterative rotate-and-accumulate algorithm.
//
// The tile addressing convention this curve is built for visits the (x,y)
// axes in swapped order relative to the textbook xy2d presentation, so x and
// y are exchanged once up front before the loop runs.
func hilbertIndex(z uint8, x, y uint32) uint64 {
	if z == 0 {
		return 0
	}
	x, y = y, x

	var d uint64
	s := uint32(1) << (z - 1)
	for s > 0 {
		var rx, ry uint64
		if x&s != 0 {
			rx = 1
		}
		if y&s != 0 {
			ry = 1
		}
		d += uint64(s) * uint64(s) * ((3 * rx) ^ ry)
		if ry == 0 {
			if rx == 1 {
				x = s*2 - 1 - x
				y = s*2 - 1 - y
			}
			x, y = y, x
		}
		s >>= 1
	}
	return d
}

// TileID computes the PMTiles directory sort key for a tile: the zoom in
// the top 8 bits, the Hilbert index of (x,y) within that zoom in the rest.
func TileID(z uint8, x, y uint32) uint64 {
	return uint64(z)<<56 | hilbertIndex(z, x, y)
}
