package mvt

import (
	"reflect"
	"testing"

	"github.com/tilekiln/tilekiln/internal/tile"
)

func TestCommandInteger(t *testing.T) {
	if got := commandInteger(cmdMoveTo, 1); got != 9 { // (1&0x7) | (1<<3) = 1 | 8 = 9
		t.Errorf("commandInteger(MoveTo,1) = %d, want 9", got)
	}
	if got := commandInteger(cmdClosePath, 1); got != 15 { // 7 | 8
		t.Errorf("commandInteger(ClosePath,1) = %d, want 15", got)
	}
}

func TestZigzag(t *testing.T) {
	tests := []struct {
		in   int32
		want uint32
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
	}
	for _, tt := range tests {
		if got := zigzag(tt.in); got != tt.want {
			t.Errorf("zigzag(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestEncodeGeometryPoint(t *testing.T) {
	geomType, params, err := encodeGeometry(tile.Point{X: 25, Y: 17})
	if err != nil {
		t.Fatalf("encodeGeometry() error = %v", err)
	}
	if geomType != GeomPoint {
		t.Errorf("geomType = %v, want GeomPoint", geomType)
	}
	want := []uint32{commandInteger(cmdMoveTo, 1), zigzag(25), zigzag(17)}
	if !reflect.DeepEqual(params, want) {
		t.Errorf("params = %v, want %v", params, want)
	}
}

func TestEncodeGeometryLineString(t *testing.T) {
	ls := tile.LineString{{X: 2, Y: 2}, {X: 2, Y: 10}, {X: 10, Y: 10}}
	geomType, params, err := encodeGeometry(ls)
	if err != nil {
		t.Fatalf("encodeGeometry() error = %v", err)
	}
	if geomType != GeomLineString {
		t.Errorf("geomType = %v, want GeomLineString", geomType)
	}
	want := []uint32{
		commandInteger(cmdMoveTo, 1), zigzag(2), zigzag(2),
		commandInteger(cmdLineTo, 2), zigzag(0), zigzag(8), zigzag(8), zigzag(0),
	}
	if !reflect.DeepEqual(params, want) {
		t.Errorf("params = %v, want %v", params, want)
	}
}

func TestEncodeGeometryPolygonCursorContinuesAcrossRings(t *testing.T) {
	outer := tile.Ring{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0}}
	hole := tile.Ring{{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 4}, {X: 2, Y: 2}}
	poly := tile.Polygon{outer, hole}

	geomType, params, err := encodeGeometry(poly)
	if err != nil {
		t.Fatalf("encodeGeometry() error = %v", err)
	}
	if geomType != GeomPolygon {
		t.Errorf("geomType = %v, want GeomPolygon", geomType)
	}

	// First ring's MoveTo is an absolute delta from (0,0). The second ring's
	// MoveTo must be relative to wherever the first ring's cursor stopped
	// (the outer ring's last emitted vertex, (10,10)), not reset to (0,0).
	holeMoveToIdx := 1 + 2 + 1 + (2 * 2) + 1 // moveTo(3) + lineTo-hdr(1)+2pts(4) + closepath(1)
	holeDX := int32(2) - int32(10)
	holeDY := int32(2) - int32(10)
	if params[holeMoveToIdx+1] != zigzag(holeDX) || params[holeMoveToIdx+2] != zigzag(holeDY) {
		t.Errorf("hole MoveTo deltas = (%d,%d), want (%d,%d)",
			params[holeMoveToIdx+1], params[holeMoveToIdx+2], zigzag(holeDX), zigzag(holeDY))
	}
}

func TestEncodeGeometryPolygonRejectsNoUsableRing(t *testing.T) {
	poly := tile.Polygon{tile.Ring{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}}
	_, _, err := encodeGeometry(poly)
	if err == nil {
		t.Error("encodeGeometry() error = nil, want error")
	}
}
