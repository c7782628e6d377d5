package tile

import "testing"

func TestGeometryVariantsImplementInterface(t *testing.T) {
	var _ Geometry = Point{}
	var _ Geometry = LineString{}
	var _ Geometry = Polygon{}
}

func TestFeatureCarriesGeometry(t *testing.T) {
	f := Feature{Geometry: Point{X: 1, Y: 2}}
	if f.Geometry.(Point).X != 1 {
		t.Errorf("unexpected geometry: %+v", f.Geometry)
	}
}
