package geo

import (
	"testing"

	"github.com/tilekiln/tilekiln/internal/tkerr"
)

func TestParseFeatureCollection(t *testing.T) {
	data := []byte(`{
		"type": "FeatureCollection",
		"features": [
			{
				"type": "Feature",
				"geometry": {"type": "Point", "coordinates": [1.5, 2.5]},
				"properties": {"name": "a", "count": 3, "score": 1.5, "active": true}
			},
			{
				"type": "Feature",
				"geometry": {"type": "LineString", "coordinates": [[0,0],[1,1]]},
				"properties": {}
			}
		]
	}`)

	features, err := ParseFeatureCollection(data)
	if err != nil {
		t.Fatalf("ParseFeatureCollection() error = %v", err)
	}
	if len(features) != 2 {
		t.Fatalf("len(features) = %d, want 2", len(features))
	}

	if v, ok := features[0].Properties["count"].(int64); !ok || v != 3 {
		t.Errorf("count property = %v (%T), want int64(3)", features[0].Properties["count"], features[0].Properties["count"])
	}
	if v, ok := features[0].Properties["score"].(float64); !ok || v != 1.5 {
		t.Errorf("score property = %v (%T), want float64(1.5)", features[0].Properties["score"], features[0].Properties["score"])
	}
}

func TestParseFeatureCollectionRejectsWrongTopLevelType(t *testing.T) {
	_, err := ParseFeatureCollection([]byte(`{"type":"Feature","features":[]}`))
	if !tkerr.Is(err, tkerr.InvalidInput) {
		t.Errorf("err = %v, want InvalidInput", err)
	}
}

func TestParseFeatureCollectionRejectsMissingFeatures(t *testing.T) {
	_, err := ParseFeatureCollection([]byte(`{"type":"FeatureCollection"}`))
	if !tkerr.Is(err, tkerr.InvalidInput) {
		t.Errorf("err = %v, want InvalidInput", err)
	}
}

func TestParseFeatureCollectionRejectsUnsupportedGeometry(t *testing.T) {
	data := []byte(`{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": {"type": "MultiPoint", "coordinates": []}, "properties": {}}
		]
	}`)
	_, err := ParseFeatureCollection(data)
	if !tkerr.Is(err, tkerr.InvalidInput) {
		t.Errorf("err = %v, want InvalidInput", err)
	}
}

func TestParseFeatureCollectionRejectsMalformedJSON(t *testing.T) {
	_, err := ParseFeatureCollection([]byte(`{not json`))
	if !tkerr.Is(err, tkerr.InvalidInput) {
		t.Errorf("err = %v, want InvalidInput", err)
	}
}
