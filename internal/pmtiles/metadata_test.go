package pmtiles

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"testing"

	"github.com/tilekiln/tilekiln/internal/metadata"
)

func TestTinyPolygonCount(t *testing.T) {
	tests := []struct {
		zoom uint8
		want uint64
	}{
		{0, 100},  // 100 * (1 - 0)
		{5, 95},   // 100 * (1 - 0.05)
		{9, 85},   // 100 * max(0.01, 1-0.15)
	}
	for _, tt := range tests {
		got := tinyPolygonCount(100, tt.zoom)
		if got != tt.want {
			t.Errorf("tinyPolygonCount(100,%d) = %d, want %d", tt.zoom, got, tt.want)
		}
	}
}

func TestBuildMetadataJSONKeysAndStrategies(t *testing.T) {
	m := metadata.Metadata{
		MinLon: -1, MinLat: -1, MaxLon: 1, MaxLat: 1,
		FeatureCount: 10,
		GeometryType: "Point",
		Fields:       map[string]metadata.FieldType{"name": metadata.FieldString},
	}

	gz, err := BuildMetadataJSON("roads", 0, 2, m)
	if err != nil {
		t.Fatalf("BuildMetadataJSON() error = %v", err)
	}

	r, err := gzip.NewReader(bytes.NewReader(gz))
	if err != nil {
		t.Fatalf("gzip.NewReader() error = %v", err)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading decompressed metadata: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	for _, key := range []string{"name", "format", "type", "vector_layers", "tilestats", "strategies"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("metadata document missing key %q", key)
		}
	}

	var strategies []tinyPolygons
	if err := json.Unmarshal(doc["strategies"], &strategies); err != nil {
		t.Fatalf("decoding strategies: %v", err)
	}
	if len(strategies) != 3 { // zoom 0,1,2
		t.Errorf("len(strategies) = %d, want 3", len(strategies))
	}
}
