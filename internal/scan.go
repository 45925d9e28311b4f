package internal

import (
	"bytes"

	"github.com/q191201771/naza/pkg/bele"
)

// ScanMode selects how NAL units are framed inside a buffer.
type ScanMode int

const (
	// LengthPrefixed framing: each NAL unit is preceded by a 4-byte
	// big-endian size (FLV/MP4 convention).
	LengthPrefixed ScanMode = iota
	// StartCode framing: NAL units are delimited by 3- or 4-byte
	// start codes (Annex-B convention).
	StartCode
)

// NaluScanner walks a byte buffer and yields NAL unit payloads as
// sub-slices of the buffer. Malformed or truncated framing ends the
// scan early; it is never an error.
type NaluScanner struct {
	buf  []byte
	mode ScanMode
	pos  int
}

func NewNaluScanner(buf []byte, mode ScanMode) *NaluScanner {
	return &NaluScanner{buf: buf, mode: mode}
}

// Reset rewinds the scanner so the same buffer can be walked again.
func (s *NaluScanner) Reset() {
	s.pos = 0
}

// Next returns the next NAL unit, or ok=false when the buffer is done.
// Zero-length units are skipped.
func (s *NaluScanner) Next() (nalu []byte, ok bool) {
	for {
		switch s.mode {
		case LengthPrefixed:
			nalu, ok = s.nextLengthPrefixed()
		case StartCode:
			nalu, ok = s.nextStartCode()
		}
		if !ok {
			return nil, false
		}
		if len(nalu) > 0 {
			return nalu, true
		}
	}
}

func (s *NaluScanner) nextLengthPrefixed() ([]byte, bool) {
	if s.pos+4 > len(s.buf) {
		return nil, false
	}
	size := int(bele.BeUint32(s.buf[s.pos:]))
	if s.pos+4+size > len(s.buf) {
		// Declared length overruns the buffer. The stream is
		// truncated, so stop here.
		return nil, false
	}
	nalu := s.buf[s.pos+4 : s.pos+4+size]
	s.pos += 4 + size
	return nalu, true
}

func (s *NaluScanner) nextStartCode() ([]byte, bool) {
	scPos, scLen := findStartCode(s.buf, s.pos)
	if scPos < 0 {
		return nil, false
	}
	naluStart := scPos + scLen
	end, _ := findStartCode(s.buf, naluStart)
	if end < 0 {
		end = len(s.buf)
	}
	s.pos = naluStart
	return s.buf[naluStart:end], true
}

var (
	startCode3 = []byte{0x00, 0x00, 0x01}
	startCode4 = []byte{0x00, 0x00, 0x00, 0x01}
)

// findStartCode locates the earliest 3- or 4-byte start code at or after
// from. Both lengths must be searched at every step: a 4-byte code always
// contains a 3-byte match one position later, and the earlier position wins.
func findStartCode(buf []byte, from int) (pos, size int) {
	if from > len(buf) {
		return -1, 0
	}
	p3 := indexFrom(buf, startCode3, from)
	p4 := indexFrom(buf, startCode4, from)
	switch {
	case p3 < 0 && p4 < 0:
		return -1, 0
	case p4 < 0 || (p3 >= 0 && p3 < p4):
		return p3, 3
	default:
		return p4, 4
	}
}

func indexFrom(buf, pattern []byte, from int) int {
	i := bytes.Index(buf[from:], pattern)
	if i < 0 {
		return -1
	}
	return from + i
}
