package pmtiles

import "testing"

func TestHilbertIndexZ2(t *testing.T) {
	tests := []struct {
		x, y uint32
		want uint64
	}{
		{0, 0, 0},
		{1, 0, 3},
		{1, 1, 2},
		{0, 1, 1},
	}
	for _, tt := range tests {
		if got := hilbertIndex(2, tt.x, tt.y); got != tt.want {
			t.Errorf("hilbertIndex(2,%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestHilbertIndexZ0(t *testing.T) {
	if got := hilbertIndex(0, 0, 0); got != 0 {
		t.Errorf("hilbertIndex(0,0,0) = %d, want 0", got)
	}
}

func TestTileIDEncodesZoomInTopByte(t *testing.T) {
	id := TileID(2, 1, 0)
	if id>>56 != 2 {
		t.Errorf("TileID zoom bits = %d, want 2", id>>56)
	}
	if id&((1<<56)-1) != 3 {
		t.Errorf("TileID hilbert bits = %d, want 3", id&((1<<56)-1))
	}
}

func TestTileIDOrdersByZoomFirst(t *testing.T) {
	// Every z=1 tile must sort before every z=2 tile regardless of hilbert
	// index, since zoom occupies the most significant byte.
	if TileID(1, 1, 1) > TileID(2, 0, 0) {
		t.Errorf("TileID(1,1,1) > TileID(2,0,0), want zoom to dominate ordering")
	}
}
