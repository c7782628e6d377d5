package pmtiles

import (
	"reflect"
	"testing"
)

func TestZigzagRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 1000, -1000, 1 << 40, -(1 << 40)} {
		if got := zigzagDecode(zigzagEncode(n)); got != n {
			t.Errorf("zigzagDecode(zigzagEncode(%d)) = %d", n, got)
		}
	}
}

func TestSerializeDirectoryRoundTrip(t *testing.T) {
	entries := []Entry{
		{TileID: 0, Offset: 0, Length: 100, RunLength: 1},
		{TileID: 3, Offset: 100, Length: 50, RunLength: 1},
		{TileID: 7, Offset: 150, Length: 75, RunLength: 1},
	}

	data, err := SerializeDirectory(entries)
	if err != nil {
		t.Fatalf("SerializeDirectory() error = %v", err)
	}

	got, err := DeserializeDirectory(data)
	if err != nil {
		t.Fatalf("DeserializeDirectory() error = %v", err)
	}
	if !reflect.DeepEqual(got, entries) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, entries)
	}
}

func TestSerializeDirectoryEmpty(t *testing.T) {
	data, err := SerializeDirectory(nil)
	if err != nil {
		t.Fatalf("SerializeDirectory() error = %v", err)
	}
	got, err := DeserializeDirectory(data)
	if err != nil {
		t.Fatalf("DeserializeDirectory() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len(got) = %d, want 0", len(got))
	}
}
