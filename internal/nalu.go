package internal

import (
	"github.com/Eyevinn/mp4ff/avc"
	"github.com/Eyevinn/mp4ff/hevc"
)

// Codec identifies the video codec a NAL unit belongs to.
type Codec int

const (
	CodecH264 Codec = iota
	CodecH265
)

func (c Codec) String() string {
	if c == CodecH265 {
		return "H.265"
	}
	return "H.264"
}

// headerLen is the codec-specific NAL unit header length in bytes.
func (c Codec) headerLen() int {
	if c == CodecH265 {
		return 2
	}
	return 1
}

// NalUnit is a classified NAL unit. Payload borrows from the scanned
// buffer and holds the bytes after the codec header.
type NalUnit struct {
	Codec   Codec
	Type    int
	Payload []byte
}

// IsSei reports whether the unit carries SEI messages.
func (n NalUnit) IsSei() bool {
	switch n.Codec {
	case CodecH265:
		t := hevc.NaluType(n.Type)
		return t == hevc.NALU_SEI_PREFIX || t == hevc.NALU_SEI_SUFFIX
	default:
		return avc.NaluType(n.Type) == avc.NALU_SEI
	}
}

// TypeName returns the codec's name for the NAL unit type.
func (n NalUnit) TypeName() string {
	if n.Codec == CodecH265 {
		return hevc.NaluType(n.Type).String()
	}
	return avc.NaluType(n.Type).String()
}

// ClassifyNalu reads the NAL unit header for the given codec. Units
// shorter than the header are dropped.
func ClassifyNalu(codec Codec, nalu []byte) (NalUnit, bool) {
	if len(nalu) < codec.headerLen() {
		return NalUnit{}, false
	}
	u := NalUnit{Codec: codec, Payload: nalu[codec.headerLen():]}
	switch codec {
	case CodecH265:
		u.Type = int(hevc.GetNaluType(nalu[0]))
	default:
		u.Type = int(avc.GetNaluType(nalu[0]))
	}
	return u, true
}
