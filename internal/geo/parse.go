package geo

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/tilekiln/tilekiln/internal/tkerr"
)

// rawCollection and rawFeature mirror just enough of the GeoJSON interchange
// shape to decode it by hand. encoding/json's interface{} decoding collapses
// every JSON number to float64, which would erase the int/double distinction
// the metadata analyser needs — so properties are decoded via json.Number
// instead of going through a third-party GeoJSON library's already-flattened
// property map.
type rawCollection struct {
	Type     string            `json:"type"`
	Features []json.RawMessage `json:"features"`
}

type rawFeature struct {
	Type       string          `json:"type"`
	Geometry   rawGeometry     `json:"geometry"`
	Properties json.RawMessage `json:"properties"`
}

type rawGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// ParseFeatureCollection decodes a GeoJSON FeatureCollection: top-level type
// "FeatureCollection", a features array, each feature carrying a geometry of
// type Point/LineString/Polygon and an optional properties object.
func ParseFeatureCollection(data []byte) ([]Feature, error) {
	var coll rawCollection
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&coll); err != nil {
		return nil, tkerr.Wrap(tkerr.InvalidInput, "malformed top-level JSON", err)
	}
	if coll.Type != "FeatureCollection" {
		return nil, tkerr.New(tkerr.InvalidInput, fmt.Sprintf("top-level type must be FeatureCollection, got %q", coll.Type))
	}
	if coll.Features == nil {
		return nil, tkerr.New(tkerr.InvalidInput, "missing features array")
	}

	features := make([]Feature, 0, len(coll.Features))
	for i, raw := range coll.Features {
		f, err := decodeFeature(raw)
		if err != nil {
			return nil, tkerr.Wrap(tkerr.InvalidInput, fmt.Sprintf("feature %d", i), err)
		}
		features = append(features, f)
	}
	return features, nil
}

func decodeFeature(raw json.RawMessage) (Feature, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var rf rawFeature
	if err := dec.Decode(&rf); err != nil {
		return Feature{}, err
	}

	geom, err := decodeGeometry(rf.Geometry)
	if err != nil {
		return Feature{}, err
	}

	props := Properties{}
	if len(rf.Properties) > 0 {
		propDec := json.NewDecoder(bytes.NewReader(rf.Properties))
		propDec.UseNumber()
		var raw map[string]json.RawMessage
		if err := propDec.Decode(&raw); err != nil {
			return Feature{}, err
		}
		for k, v := range raw {
			val, err := decodeValue(v)
			if err != nil {
				return Feature{}, err
			}
			props[k] = val
		}
	}

	return Feature{Geometry: geom, Properties: props}, nil
}

func decodeValue(raw json.RawMessage) (any, error) {
	var tok any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&tok); err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return v, nil
	}
}

func decodeGeometry(g rawGeometry) (orb.Geometry, error) {
	switch g.Type {
	case "Point":
		var c [2]float64
		if err := json.Unmarshal(g.Coordinates, &c); err != nil {
			return nil, err
		}
		return orb.Point{c[0], c[1]}, nil
	case "LineString":
		var c [][2]float64
		if err := json.Unmarshal(g.Coordinates, &c); err != nil {
			return nil, err
		}
		ls := make(orb.LineString, len(c))
		for i, p := range c {
			ls[i] = orb.Point{p[0], p[1]}
		}
		return ls, nil
	case "Polygon":
		var c [][][2]float64
		if err := json.Unmarshal(g.Coordinates, &c); err != nil {
			return nil, err
		}
		poly := make(orb.Polygon, len(c))
		for i, ring := range c {
			r := make(orb.Ring, len(ring))
			for j, p := range ring {
				r[j] = orb.Point{p[0], p[1]}
			}
			poly[i] = r
		}
		return poly, nil
	default:
		return nil, tkerr.New(tkerr.InvalidInput, fmt.Sprintf("unsupported geometry type %q", g.Type))
	}
}
