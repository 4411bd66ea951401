package stackitem

import (
	"encoding/binary"
	"fmt"
)

const (
	varintMarker16 = 0xFD
	varintMarker32 = 0xFE
	varintMarker64 = 0xFF
)

// putVarint appends the self-delimiting length prefix described in the
// glossary: one byte for values below 0xFD, otherwise a marker byte plus 2,
// 4, or 8 little-endian bytes.
func putVarint(buf []byte, n uint64) []byte {
	switch {
	case n < varintMarker16:
		return append(buf, byte(n))
	case n <= 0xFFFF:
		buf = append(buf, varintMarker16)
		return appendUint16(buf, uint16(n))
	case n <= 0xFFFFFFFF:
		buf = append(buf, varintMarker32)
		return appendUint32(buf, uint32(n))
	default:
		buf = append(buf, varintMarker64)
		return appendUint64(buf, n)
	}
}

func appendUint16(buf []byte, v uint16) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendUint32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendUint64(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}

// readVarint reads a length prefix from buf starting at off, returning the
// value and the offset of the first byte after it.
func readVarint(buf []byte, off int) (uint64, int, error) {
	if off >= len(buf) {
		return 0, off, fmt.Errorf("truncated stream: expected varint marker")
	}
	b := buf[off]
	off++
	switch {
	case b < varintMarker16:
		return uint64(b), off, nil
	case b == varintMarker16:
		if off+2 > len(buf) {
			return 0, off, fmt.Errorf("truncated stream: expected 2 varint bytes")
		}
		return uint64(binary.LittleEndian.Uint16(buf[off : off+2])), off + 2, nil
	case b == varintMarker32:
		if off+4 > len(buf) {
			return 0, off, fmt.Errorf("truncated stream: expected 4 varint bytes")
		}
		return uint64(binary.LittleEndian.Uint32(buf[off : off+4])), off + 4, nil
	default:
		if off+8 > len(buf) {
			return 0, off, fmt.Errorf("truncated stream: expected 8 varint bytes")
		}
		return binary.LittleEndian.Uint64(buf[off : off+8]), off + 8, nil
	}
}
