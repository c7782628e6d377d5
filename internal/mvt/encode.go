// Package mvt encodes a tile's features into a Mapbox Vector Tile protobuf
// payload by hand, byte by byte, building Tile/Layer/Feature messages with
// encoding/binary rather than a generated-message library.
package mvt

import (
	"encoding/binary"
	"math"

	"github.com/tilekiln/tilekiln/internal/geo"
	"github.com/tilekiln/tilekiln/internal/tile"
	"github.com/tilekiln/tilekiln/internal/tkerr"
)

func errInvalidGeometry(msg string) error {
	return tkerr.New(tkerr.InvalidGeometry, msg)
}

// wire tags: field_number<<3 | wire_type. wire_type 0=varint, 2=len-delimited.
const (
	tagLayerName     = 1<<3 | 2
	tagLayerFeatures = 2<<3 | 2
	tagLayerKeys     = 3<<3 | 2
	tagLayerValues   = 4<<3 | 2
	tagLayerExtent   = 5<<3 | 0
	tagLayerVersion  = 15<<3 | 0

	tagFeatureID       = 1<<3 | 0
	tagFeatureTags     = 2<<3 | 2
	tagFeatureType     = 3<<3 | 0
	tagFeatureGeometry = 4<<3 | 2

	tagValueString = 1<<3 | 2
	tagValueDouble = 3<<3 | 1 // fixed64
	tagValueSint   = 6<<3 | 0
	tagValueBool   = 7<<3 | 0

	tagTileLayers = 3<<3 | 2
)

func appendUvarint(buf []byte, n uint64) []byte {
	var tmp [binary.MaxVarintLen64]byte
	sz := binary.PutUvarint(tmp[:], n)
	return append(buf, tmp[:sz]...)
}

func appendTagged(buf []byte, tag uint64, payload []byte) []byte {
	buf = appendUvarint(buf, tag)
	buf = appendUvarint(buf, uint64(len(payload)))
	return append(buf, payload...)
}

func appendPackedUvarint32(buf []byte, tag uint64, vals []uint32) []byte {
	var packed []byte
	for _, v := range vals {
		packed = appendUvarint(packed, uint64(v))
	}
	return appendTagged(buf, tag, packed)
}

// encodeValue serialises one property value as a Value submessage.
func encodeValue(v any) []byte {
	var payload []byte
	switch t := v.(type) {
	case string:
		payload = appendUvarint(payload, tagValueString)
		payload = appendUvarint(payload, uint64(len(t)))
		payload = append(payload, t...)
	case int64:
		payload = appendUvarint(payload, tagValueSint)
		payload = appendUvarint(payload, uint64(zigzag64(t)))
	case float64:
		payload = appendUvarint(payload, tagValueDouble)
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(t))
		payload = append(payload, b[:]...)
	case bool:
		payload = appendUvarint(payload, tagValueBool)
		if t {
			payload = append(payload, 1)
		} else {
			payload = append(payload, 0)
		}
	default:
		// nil or an unrecognised JSON shape encodes as an empty string.
		payload = appendUvarint(payload, tagValueString)
		payload = appendUvarint(payload, 0)
	}
	return payload
}

func zigzag64(n int64) uint64 {
	return uint64((n << 1) ^ (n >> 63))
}

func encodeFeature(id uint64, f tile.Feature, d *dictionary) ([]byte, error) {
	geomType, params, err := encodeGeometry(f.Geometry)
	if err != nil {
		return nil, err
	}

	var buf []byte
	buf = appendUvarint(buf, tagFeatureID)
	buf = appendUvarint(buf, id)

	if t := tags(d, f.Properties); len(t) > 0 {
		buf = appendPackedUvarint32(buf, tagFeatureTags, t)
	}

	buf = appendUvarint(buf, tagFeatureType)
	buf = appendUvarint(buf, uint64(geomType))

	buf = appendPackedUvarint32(buf, tagFeatureGeometry, params)

	return buf, nil
}

// EncodeLayer serialises a single named layer's features into the MVT
// Layer wire format: version 2, 4096 extent, one feature per input
// tile.Feature with monotonically increasing ids starting at zero. Returns
// an EmptyTile error if features is empty.
func EncodeLayer(layerName string, features []tile.Feature) ([]byte, error) {
	if len(features) == 0 {
		return nil, tkerr.New(tkerr.EmptyTile, "tile has no features")
	}

	d := newDictionary()
	var featureBufs [][]byte
	for i, f := range features {
		fb, err := encodeFeature(uint64(i), f, d)
		if err != nil {
			return nil, err
		}
		featureBufs = append(featureBufs, fb)
	}

	var buf []byte
	buf = appendTagged(buf, tagLayerName, []byte(layerName))
	for _, fb := range featureBufs {
		buf = appendTagged(buf, tagLayerFeatures, fb)
	}
	for _, k := range d.keys {
		buf = appendTagged(buf, tagLayerKeys, []byte(k))
	}
	for _, v := range d.values {
		buf = appendTagged(buf, tagLayerValues, encodeValue(v))
	}
	buf = appendUvarint(buf, tagLayerExtent)
	buf = appendUvarint(buf, geo.TileExtent)
	buf = appendUvarint(buf, tagLayerVersion)
	buf = appendUvarint(buf, 2)

	return buf, nil
}

// EncodeTile wraps a single encoded layer in the top-level Tile message.
func EncodeTile(layerName string, features []tile.Feature) ([]byte, error) {
	layer, err := EncodeLayer(layerName, features)
	if err != nil {
		return nil, err
	}
	return appendTagged(nil, tagTileLayers, layer), nil
}
