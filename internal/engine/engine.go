// Package engine exposes three pure-function entry points: GenerateTiles,
// GenerateTilesWithMetadata, and GeneratePMTiles. The engine itself takes no
// configuration beyond its arguments and does no I/O or logging; callers
// observe progress through the optional Observer.
package engine

import (
	"fmt"
	"sort"

	"github.com/tilekiln/tilekiln/internal/geo"
	"github.com/tilekiln/tilekiln/internal/metadata"
	"github.com/tilekiln/tilekiln/internal/mvt"
	"github.com/tilekiln/tilekiln/internal/pmtiles"
	"github.com/tilekiln/tilekiln/internal/tile"
	"github.com/tilekiln/tilekiln/internal/tkerr"
)

// Observer receives progress notifications as generation walks zoom levels.
// The default is a no-op.
type Observer interface {
	OnZoomLevel(zoom uint8, tileCount int)
}

type noopObserver struct{}

func (noopObserver) OnZoomLevel(uint8, int) {}

// Option configures a generation call.
type Option func(*options)

type options struct {
	observer Observer
}

// WithObserver registers an Observer to receive per-zoom-level progress
// notifications.
func WithObserver(o Observer) Option {
	return func(opts *options) { opts.observer = o }
}

func resolveOptions(opts []Option) options {
	o := options{observer: noopObserver{}}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// TileFile is one encoded tile keyed by its canonical coordinate path.
type TileFile struct {
	Path string
	Data []byte
}

func validateZoom(minZoom, maxZoom uint8) error {
	if maxZoom > 30 {
		return tkerr.New(tkerr.InvalidZoom, "max_zoom exceeds 30")
	}
	if minZoom > maxZoom {
		return tkerr.New(tkerr.InvalidZoom, "min_zoom exceeds max_zoom")
	}
	return nil
}

// GenerateTiles converts a GeoJSON FeatureCollection into per-tile MVT
// payloads across [minZoom, maxZoom].
func GenerateTiles(input []byte, minZoom, maxZoom uint8, layerName string, opts ...Option) ([]TileFile, error) {
	files, _, err := generate(input, minZoom, maxZoom, layerName, opts)
	return files, err
}

// GenerateTilesWithMetadata is GenerateTiles plus the derived Metadata
// summary.
func GenerateTilesWithMetadata(input []byte, minZoom, maxZoom uint8, layerName string, opts ...Option) ([]TileFile, metadata.Metadata, error) {
	return generate(input, minZoom, maxZoom, layerName, opts)
}

// GeneratePMTiles converts a GeoJSON FeatureCollection directly into a
// single PMTiles v3 archive.
func GeneratePMTiles(input []byte, minZoom, maxZoom uint8, layerName string, opts ...Option) ([]byte, error) {
	files, meta, err := generate(input, minZoom, maxZoom, layerName, opts)
	if err != nil {
		return nil, err
	}

	blobs := make([]pmtiles.TileBlob, 0, len(files))
	for _, f := range files {
		coord, err := tile.ParseCoord(f.Path)
		if err != nil {
			return nil, err
		}
		blobs = append(blobs, pmtiles.TileBlob{Coord: coord, Data: f.Data})
	}

	return pmtiles.Build(blobs, layerName, minZoom, maxZoom, meta)
}

func generate(input []byte, minZoom, maxZoom uint8, layerName string, rawOpts []Option) ([]TileFile, metadata.Metadata, error) {
	opts := resolveOptions(rawOpts)

	if err := validateZoom(minZoom, maxZoom); err != nil {
		return nil, metadata.Metadata{}, err
	}

	features, err := geo.ParseFeatureCollection(input)
	if err != nil {
		return nil, metadata.Metadata{}, err
	}

	meta, err := metadata.Analyse(features)
	if err != nil {
		return nil, metadata.Metadata{}, err
	}

	var files []TileFile
	for z := minZoom; ; z++ {
		byTile := tile.AssignFeatures(features, z)

		for coord, feats := range byTile {
			data, err := mvt.EncodeLayer(layerName, feats)
			if err != nil {
				return nil, metadata.Metadata{}, fmt.Errorf("encoding tile %s: %w", coord.Path(), err)
			}
			files = append(files, TileFile{Path: coord.Path(), Data: data})
		}

		opts.observer.OnZoomLevel(z, len(byTile))
		if z == maxZoom {
			break
		}
	}

	// Map iteration order is randomised per run; sort so the same input
	// always produces the same TileFile ordering.
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	return files, meta, nil
}
