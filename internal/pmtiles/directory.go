package pmtiles

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/binary"
)

// Entry is one tile's directory record: its Hilbert tile_id, its byte
// offset and length within the tile-data region. RunLength is always 1 —
// this archive never merges duplicate tiles.
type Entry struct {
	TileID    uint64
	Offset    uint64
	Length    uint32
	RunLength uint32
}

func zigzagEncode(n int64) uint64 {
	return uint64((n << 1) ^ (n >> 63))
}

func zigzagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// SerializeDirectory writes the directory as four consecutive sections —
// delta-encoded tile_ids, plain run_lengths, delta-then-zigzag lengths, and
// delta-then-zigzag offsets, each a stream of unsigned varints — then
// gzip-compresses the whole thing.
func SerializeDirectory(entries []Entry) ([]byte, error) {
	var raw bytes.Buffer
	tmp := make([]byte, binary.MaxVarintLen64)

	writeUvarint := func(n uint64) {
		sz := binary.PutUvarint(tmp, n)
		raw.Write(tmp[:sz])
	}
	writeZigzagDelta := func(cur, prev int64) {
		sz := binary.PutUvarint(tmp, zigzagEncode(cur-prev))
		raw.Write(tmp[:sz])
	}

	writeUvarint(uint64(len(entries)))

	var lastID uint64
	for _, e := range entries {
		writeUvarint(e.TileID - lastID)
		lastID = e.TileID
	}

	for _, e := range entries {
		writeUvarint(uint64(e.RunLength))
	}

	var lastLength int64
	for _, e := range entries {
		writeZigzagDelta(int64(e.Length), lastLength)
		lastLength = int64(e.Length)
	}

	var lastOffset int64
	for _, e := range entries {
		writeZigzagDelta(int64(e.Offset), lastOffset)
		lastOffset = int64(e.Offset)
	}

	var gz bytes.Buffer
	w, err := gzip.NewWriterLevel(&gz, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(raw.Bytes()); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return gz.Bytes(), nil
}

// DeserializeDirectory is the inverse of SerializeDirectory, used by the
// archive's own round-trip tests.
func DeserializeDirectory(data []byte) ([]Entry, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	r := bufio.NewReader(gz)

	count, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, count)

	var lastID uint64
	for i := range entries {
		delta, err := binary.ReadUvarint(r)
		if err != nil {
			return nil, err
		}
		lastID += delta
		entries[i].TileID = lastID
	}

	for i := range entries {
		rl, err := binary.ReadUvarint(r)
		if err != nil {
			return nil, err
		}
		entries[i].RunLength = uint32(rl)
	}

	var lastLength int64
	for i := range entries {
		u, err := binary.ReadUvarint(r)
		if err != nil {
			return nil, err
		}
		lastLength += zigzagDecode(u)
		entries[i].Length = uint32(lastLength)
	}

	var lastOffset int64
	for i := range entries {
		u, err := binary.ReadUvarint(r)
		if err != nil {
			return nil, err
		}
		lastOffset += zigzagDecode(u)
		entries[i].Offset = uint64(lastOffset)
	}

	return entries, nil
}
