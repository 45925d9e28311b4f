package internal

import (
	"encoding/binary"

	"github.com/q191201771/naza/pkg/bele"
)

// ParseMp4 walks the top-level MP4 box sequence and extracts SEI messages
// from mdat boxes. No box-tree parsing beyond that: each mdat body is
// treated as raw elementary-stream data and scanned under both NAL
// framings, since the walker has no sample tables to tell it which one
// the file uses. A buffer without recognizable boxes yields no records.
func ParseMp4(data []byte, o DecoderOptions) []SeiRecord {
	var recs []SeiRecord
	offset := 0
	for offset+8 <= len(data) {
		boxSize := int(bele.BeUint32(data[offset:]))
		boxType := string(data[offset+4 : offset+8])
		bodyStart := offset + 8
		switch boxSize {
		case 0:
			// Box extends to end of file.
			boxSize = len(data) - offset
		case 1:
			if offset+16 > len(data) {
				return recs
			}
			boxSize = int(binary.BigEndian.Uint64(data[offset+8:]))
			bodyStart = offset + 16
		}
		if boxType == "mdat" {
			bodyEnd := offset + boxSize
			if bodyEnd > len(data) {
				bodyEnd = len(data)
			}
			if bodyStart < bodyEnd {
				body := data[bodyStart:bodyEnd]
				// H.264-in-MP4 uses length-prefixed NAL units, but some
				// muxers store Annex-B data. Try both and keep whatever
				// decodes; a failed attempt just yields nothing.
				recs = append(recs, seiFromNalus(NewNaluScanner(body, LengthPrefixed), CodecH264, o)...)
				recs = append(recs, seiFromNalus(NewNaluScanner(body, StartCode), CodecH265, o)...)
			}
		}
		if boxSize < 1 {
			break
		}
		offset += boxSize
	}
	return recs
}
