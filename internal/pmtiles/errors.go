package pmtiles

import "errors"

var (
	errShortHeader = errors.New("pmtiles: buffer too small for header")
	errBadMagic    = errors.New("pmtiles: magic number not detected")
)
