package mvt

import (
	"testing"

	"github.com/tilekiln/tilekiln/internal/geo"
)

func TestDictionaryInternsEqualValuesOnce(t *testing.T) {
	d := newDictionary()
	i1 := d.internValue("hello")
	i2 := d.internValue("hello")
	i3 := d.internValue("world")
	if i1 != i2 {
		t.Errorf("equal strings interned to different indices: %d != %d", i1, i2)
	}
	if i1 == i3 {
		t.Errorf("distinct strings interned to the same index")
	}
	if len(d.values) != 2 {
		t.Errorf("len(values) = %d, want 2", len(d.values))
	}
}

func TestDictionaryDistinguishesFloatFromInt(t *testing.T) {
	d := newDictionary()
	i1 := d.internValue(int64(1))
	i2 := d.internValue(float64(1))
	if i1 == i2 {
		t.Errorf("int64(1) and float64(1) interned to the same index")
	}
}

func TestDictionaryInternsFloatsByCanonicalForm(t *testing.T) {
	d := newDictionary()
	i1 := d.internValue(1.5)
	i2 := d.internValue(1.5)
	if i1 != i2 {
		t.Errorf("equal floats interned to different indices: %d != %d", i1, i2)
	}
}

func TestTagsIsDeterministicRegardlessOfMapOrder(t *testing.T) {
	props := geo.Properties{"z": 1, "a": 2, "m": 3}
	d1 := newDictionary()
	out1 := tags(d1, props)
	d2 := newDictionary()
	out2 := tags(d2, props)

	if len(out1) != len(out2) {
		t.Fatalf("len mismatch: %d vs %d", len(out1), len(out2))
	}
	for i := range out1 {
		if out1[i] != out2[i] {
			t.Errorf("tags() not deterministic at index %d: %d vs %d", i, out1[i], out2[i])
		}
	}
	// Keys must come out in sorted order: a, m, z.
	if d1.keys[0] != "a" || d1.keys[1] != "m" || d1.keys[2] != "z" {
		t.Errorf("keys not sorted: %v", d1.keys)
	}
}
