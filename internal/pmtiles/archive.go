package pmtiles

import (
	"bytes"
	"compress/gzip"
	"sort"

	"github.com/tilekiln/tilekiln/internal/metadata"
	"github.com/tilekiln/tilekiln/internal/tile"
	"github.com/tilekiln/tilekiln/internal/tkerr"
)

// TileBlob is one encoded, not-yet-compressed MVT tile bound to its
// coordinate — the input to Build.
type TileBlob struct {
	Coord tile.Coord
	Data  []byte
}

// Build assembles a complete PMTiles v3 archive: the 127-byte header, a
// gzipped directory, gzipped JSON metadata, and the Hilbert-sorted, gzipped
// tiles, concatenated in that order.
func Build(tiles []TileBlob, layerName string, minZoom, maxZoom uint8, meta metadata.Metadata) ([]byte, error) {
	if len(tiles) == 0 {
		return nil, tkerr.New(tkerr.EmptyArchive, "no tiles to archive")
	}
	if maxZoom > 30 {
		return nil, tkerr.New(tkerr.InvalidZoom, "max zoom exceeds 30")
	}

	sorted := make([]TileBlob, len(tiles))
	copy(sorted, tiles)
	sort.Slice(sorted, func(i, j int) bool {
		return TileID(sorted[i].Coord.Z, sorted[i].Coord.X, sorted[i].Coord.Y) <
			TileID(sorted[j].Coord.Z, sorted[j].Coord.X, sorted[j].Coord.Y)
	})

	entries := make([]Entry, len(sorted))
	var tileData bytes.Buffer
	var offset uint64
	for i, t := range sorted {
		gz, err := gzipBytes(t.Data)
		if err != nil {
			return nil, tkerr.Wrap(tkerr.CompressionFailed, "gzipping tile", err)
		}
		entries[i] = Entry{
			TileID:    TileID(t.Coord.Z, t.Coord.X, t.Coord.Y),
			Offset:    offset,
			Length:    uint32(len(gz)),
			RunLength: 1,
		}
		tileData.Write(gz)
		offset += uint64(len(gz))
	}

	dir, err := SerializeDirectory(entries)
	if err != nil {
		return nil, tkerr.Wrap(tkerr.CompressionFailed, "gzipping directory", err)
	}

	metaJSON, err := BuildMetadataJSON(layerName, minZoom, maxZoom, meta)
	if err != nil {
		return nil, tkerr.Wrap(tkerr.CompressionFailed, "gzipping metadata", err)
	}

	rootDirOffset := uint64(HeaderV3LenBytes)
	jsonOffset := rootDirOffset + uint64(len(dir))
	tilesOffset := jsonOffset + uint64(len(metaJSON))

	header := HeaderV3{
		RootOffset:          rootDirOffset,
		RootLength:          uint64(len(dir)),
		MetadataOffset:      jsonOffset,
		MetadataLength:      uint64(len(metaJSON)),
		LeafDirectoryOffset: 0,
		LeafDirectoryLength: 0,
		TileDataOffset:      tilesOffset,
		TileDataLength:      uint64(tileData.Len()),
		AddressedTilesCount: uint64(len(entries)),
		TileEntriesCount:    uint64(len(entries)),
		TileContentsCount:   uint64(len(entries)),
		Clustered:           true,
		InternalCompression: Gzip,
		TileCompression:     Gzip,
		TileType:            Mvt,
		MinZoom:             minZoom,
		MaxZoom:             maxZoom,
		MinLonE7:            toE7(meta.MinLon),
		MinLatE7:            toE7(meta.MinLat),
		MaxLonE7:            toE7(meta.MaxLon),
		MaxLatE7:            toE7(meta.MaxLat),
		CenterZoom:          (minZoom + maxZoom) / 2,
		CenterLonE7:         toE7(meta.CenterLon),
		CenterLatE7:         toE7(meta.CenterLat),
	}

	out := make([]byte, 0, HeaderV3LenBytes+len(dir)+len(metaJSON)+tileData.Len())
	out = append(out, SerializeHeader(header)...)
	out = append(out, dir...)
	out = append(out, metaJSON...)
	out = append(out, tileData.Bytes()...)
	return out, nil
}

func toE7(deg float64) int32 {
	return int32(deg * 1e7)
}

func gzipBytes(data []byte) ([]byte, error) {
	var b bytes.Buffer
	w, err := gzip.NewWriterLevel(&b, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
