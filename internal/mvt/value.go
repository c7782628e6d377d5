package mvt

import (
	"sort"
	"strconv"

	"github.com/tilekiln/tilekiln/internal/geo"
)

// valueKey is the dictionary-interning key for a property value: equal
// values intern to the same index regardless of which feature contributed
// them. Floats key on their canonical decimal string because float64 is not
// usable as a map key component the way the other variants are.
type valueKey struct {
	kind byte // 's'tring, 'i'nt, 'd'ouble, 'b'ool
	str  string
	i    int64
	b    bool
}

func keyFor(v any) valueKey {
	switch t := v.(type) {
	case string:
		return valueKey{kind: 's', str: t}
	case int64:
		return valueKey{kind: 'i', i: t}
	case float64:
		return valueKey{kind: 'd', str: strconv.FormatFloat(t, 'g', -1, 64)}
	case bool:
		return valueKey{kind: 'b', b: t}
	default:
		// nil or any other JSON-decoded shape keys as the empty string, the
		// same form encodeValue writes for it, so it shares a slot with "".
		return valueKey{kind: 's', str: ""}
	}
}

// dictionary interns keys and values in first-appearance order.
type dictionary struct {
	keys     []string
	keyIndex map[string]uint32
	values   []any
	valIndex map[valueKey]uint32
}

func newDictionary() *dictionary {
	return &dictionary{
		keyIndex: make(map[string]uint32),
		valIndex: make(map[valueKey]uint32),
	}
}

func (d *dictionary) internKey(k string) uint32 {
	if idx, ok := d.keyIndex[k]; ok {
		return idx
	}
	idx := uint32(len(d.keys))
	d.keys = append(d.keys, k)
	d.keyIndex[k] = idx
	return idx
}

func (d *dictionary) internValue(v any) uint32 {
	vk := keyFor(v)
	if idx, ok := d.valIndex[vk]; ok {
		return idx
	}
	idx := uint32(len(d.values))
	d.values = append(d.values, v)
	d.valIndex[vk] = idx
	return idx
}

// tags builds the [key_index, value_index, ...] pairs for one feature's
// properties, interning into d as it goes. Go's map iteration order is
// randomised per run, so properties are visited in sorted key order —
// otherwise the same input could intern keys/values in a different order on
// every run, making the encoded tile non-reproducible.
func tags(d *dictionary, props geo.Properties) []uint32 {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]uint32, 0, len(keys)*2)
	for _, k := range keys {
		out = append(out, d.internKey(k), d.internValue(props[k]))
	}
	return out
}
