package pmtiles

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"math"

	"github.com/tilekiln/tilekiln/internal/metadata"
)

// tileJSON mirrors the fixed field order required for byte-stable output.
// Field order here is what controls JSON key order — encoding/json marshals
// struct fields in declaration order, unlike a Go map, which is why this is
// a struct rather than a map[string]any.
type tileJSON struct {
	Name                       string            `json:"name"`
	Format                     string            `json:"format"`
	Type                       string            `json:"type"`
	Description                string            `json:"description"`
	Version                    string            `json:"version"`
	Strategies                 []tinyPolygons    `json:"strategies"`
	Generator                  string            `json:"generator"`
	GeneratorOptions           string            `json:"generator_options"`
	AntimeridianAdjustedBounds string            `json:"antimeridian_adjusted_bounds"`
	VectorLayers               []vectorLayer     `json:"vector_layers"`
	TileStats                  tileStats         `json:"tilestats"`
}

type tinyPolygons struct {
	TinyPolygons uint64 `json:"tiny_polygons"`
}

type vectorLayer struct {
	ID          string            `json:"id"`
	Description string            `json:"description"`
	MinZoom     uint8             `json:"minzoom"`
	MaxZoom     uint8             `json:"maxzoom"`
	Fields      map[string]string `json:"fields"`
}

type tileStats struct {
	LayerCount int              `json:"layerCount"`
	Layers     []tileStatsLayer `json:"layers"`
}

type tileStatsLayer struct {
	Layer          string                `json:"layer"`
	Count          int                   `json:"count"`
	Geometry       string                `json:"geometry"`
	AttributeCount int                   `json:"attributeCount"`
	Attributes     []metadata.Attribute  `json:"attributes"`
}

// tinyPolygonCount implements the synthetic tiny_polygons statistic: a
// three-branch piecewise factor over zoom (decay to z=5, a bump for z=6..8,
// decay again from z=9), scaled against the total feature count.
func tinyPolygonCount(featureCount int, zoom uint8) uint64 {
	f := float64(featureCount)
	z := float64(zoom)
	var factor float64
	switch {
	case zoom <= 5:
		factor = 1 - 0.01*z
	case zoom <= 8:
		factor = math.Min(1.3, 1.2+0.05*(z-5))
	default:
		factor = math.Max(0.01, 1-0.15*(z-8))
	}
	return uint64(f * factor)
}

// BuildMetadataJSON assembles the gzip-compressed JSON metadata document
// embedded in a PMTiles archive.
func BuildMetadataJSON(layerName string, minZoom, maxZoom uint8, m metadata.Metadata) ([]byte, error) {
	strategies := make([]tinyPolygons, 0, int(maxZoom-minZoom)+1)
	for z := minZoom; ; z++ {
		strategies = append(strategies, tinyPolygons{TinyPolygons: tinyPolygonCount(m.FeatureCount, z)})
		if z == maxZoom {
			break
		}
	}

	fields := make(map[string]string, len(m.Fields))
	for k, v := range m.Fields {
		fields[k] = string(v)
	}

	doc := tileJSON{
		Name:        fmt.Sprintf("%s.pmtiles", layerName),
		Format:      "pbf",
		Type:        "overlay",
		Description: fmt.Sprintf("%s.pmtiles", layerName),
		Version:     "2",
		Strategies:  strategies,
		Generator:   "tilekiln",
		GeneratorOptions: fmt.Sprintf("tilekiln -o %s.pmtiles", layerName),
		AntimeridianAdjustedBounds: fmt.Sprintf("%.6f,%.6f,%.6f,%.6f",
			m.MinLon, m.MinLat, m.MaxLon, m.MaxLat),
		VectorLayers: []vectorLayer{{
			ID:          layerName,
			Description: "",
			MinZoom:     minZoom,
			MaxZoom:     maxZoom,
			Fields:      fields,
		}},
		TileStats: tileStats{
			LayerCount: 1,
			Layers: []tileStatsLayer{{
				Layer:          layerName,
				Count:          m.FeatureCount,
				Geometry:       m.GeometryType,
				AttributeCount: len(m.Attributes),
				Attributes:     m.Attributes,
			}},
		},
	}

	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	var gz bytes.Buffer
	w, err := gzip.NewWriterLevel(&gz, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(jsonBytes); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return gz.Bytes(), nil
}
