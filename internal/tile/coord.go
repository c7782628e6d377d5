// Package tile holds the tile-local data model: TileCoord addressing and the
// tile-local TileFeature geometry the tiler produces for the MVT and PMTiles
// encoders to consume.
package tile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tilekiln/tilekiln/internal/tkerr"
)

// Coord addresses a single tile: x, y < 2^z and z <= 30.
type Coord struct {
	Z uint8
	X uint32
	Y uint32
}

// Path returns the canonical "z/x/y.pbf" string form.
func (c Coord) Path() string {
	return fmt.Sprintf("%d/%d/%d.pbf", c.Z, c.X, c.Y)
}

// ParseCoord parses the "z/x/y.pbf" form back into a Coord, the inverse of
// Path. Used when re-deriving tile coordinates from TileFile.Path, the same
// round trip GeneratePMTiles performs over GenerateTiles output.
func ParseCoord(path string) (Coord, error) {
	trimmed := strings.TrimSuffix(path, ".pbf")
	parts := strings.Split(trimmed, "/")
	if len(parts) != 3 {
		return Coord{}, tkerr.New(tkerr.InvalidInput, fmt.Sprintf("malformed tile path %q", path))
	}
	z, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return Coord{}, tkerr.Wrap(tkerr.InvalidInput, fmt.Sprintf("malformed tile path %q", path), err)
	}
	x, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return Coord{}, tkerr.Wrap(tkerr.InvalidInput, fmt.Sprintf("malformed tile path %q", path), err)
	}
	y, err := strconv.ParseUint(parts[2], 10, 32)
	if err != nil {
		return Coord{}, tkerr.Wrap(tkerr.InvalidInput, fmt.Sprintf("malformed tile path %q", path), err)
	}
	return Coord{Z: uint8(z), X: uint32(x), Y: uint32(y)}, nil
}
