// Command tilekiln converts a GeoJSON FeatureCollection into Mapbox Vector
// Tiles or a single PMTiles archive.
package main

import "github.com/tilekiln/tilekiln/cmd/tilekiln/cli"

func main() {
	cli.Execute()
}
