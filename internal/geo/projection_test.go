package geo

import "testing"

func TestTileAtOrigin(t *testing.T) {
	x, y := TileAt(0, 0, 1)
	if x != 1 || y != 1 {
		t.Errorf("TileAt(0,0,1) = (%d,%d), want (1,1)", x, y)
	}
}

func TestTileAtCorners(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float64
		z        uint8
		wantX    uint32
		wantY    uint32
	}{
		{"northwest", -180, maxLat, 2, 0, 0},
		{"southeast", 179.999, -maxLat, 2, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := TileAt(tt.lon, tt.lat, tt.z)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("TileAt(%v,%v,%d) = (%d,%d), want (%d,%d)",
					tt.lon, tt.lat, tt.z, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestLocalCentered(t *testing.T) {
	// Tile (0,0) at z=1 covers lon [-180,0], lat [maxLat,0] roughly. The
	// point (-90,0) is centred horizontally (x = 2048) and lies on the tile's
	// southern edge (y = 4096), so both stay within the extent.
	x, y := Local(-90, 0, 1, 0, 0)
	if x < 0 || x > TileExtent {
		t.Errorf("Local x out of extent: %d", x)
	}
	if y < 0 || y > TileExtent {
		t.Errorf("Local y out of extent: %d", y)
	}
}

func TestClampLat(t *testing.T) {
	if got := clampLat(90); got != maxLat {
		t.Errorf("clampLat(90) = %v, want %v", got, maxLat)
	}
	if got := clampLat(-90); got != -maxLat {
		t.Errorf("clampLat(-90) = %v, want %v", got, -maxLat)
	}
	if got := clampLat(10); got != 10 {
		t.Errorf("clampLat(10) = %v, want 10", got)
	}
}
