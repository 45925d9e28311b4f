package internal

import (
	"bytes"

	"github.com/q191201771/naza/pkg/bele"
)

const (
	flvTagTypeVideo = 9

	flvCodecIdAvc      = 7
	avcPacketTypeNalus = 1
)

// ParseFlv walks the FLV tag stream and decodes SEI messages from the
// length-prefixed H.264 NAL units inside video tags. Only a missing FLV
// signature is an error; a truncated tag stream ends the walk with
// whatever was decoded before it.
func ParseFlv(data []byte, o DecoderOptions) ([]SeiRecord, error) {
	if len(data) < 9 || !bytes.HasPrefix(data, []byte("FLV")) {
		return nil, &FormatError{Container: "flv", Reason: "missing FLV signature"}
	}

	var recs []SeiRecord
	// 9-byte file header plus the first PreviousTagSize field.
	offset := 13
	for {
		if offset+11 > len(data) {
			break
		}
		tagType := data[offset]
		dataSize := int(bele.BeUint24(data[offset+1:]))
		timestamp := (uint32(data[offset+7]) << 24) + bele.BeUint24(data[offset+4:])
		offset += 11
		if offset+dataSize > len(data) {
			break
		}
		if tagType == flvTagTypeVideo {
			body := data[offset : offset+dataSize]
			tagRecs := seiFromVideoTag(body, o)
			ts := int64(timestamp)
			for i := range tagRecs {
				tagRecs[i].TimestampMs = &ts
			}
			recs = append(recs, tagRecs...)
		}
		// Tag body plus the trailing PreviousTagSize field.
		offset += dataSize + 4
	}
	return recs, nil
}

// seiFromVideoTag interprets an FLV video tag body. Only AVC NALU packets
// (codec id 7, packet type 1) carry NAL units; everything else, including
// AVC sequence headers, is skipped.
func seiFromVideoTag(body []byte, o DecoderOptions) []SeiRecord {
	if len(body) < 5 {
		return nil
	}
	codecId := body[0] & 0x0F
	packetType := body[1]
	if codecId != flvCodecIdAvc || packetType != avcPacketTypeNalus {
		return nil
	}
	// Bytes 2-4 are the composition time offset.
	return seiFromNalus(NewNaluScanner(body[5:], LengthPrefixed), CodecH264, o)
}

// seiFromNalus drains a scanner and decodes every SEI NAL unit it yields.
func seiFromNalus(scanner *NaluScanner, codec Codec, o DecoderOptions) []SeiRecord {
	var recs []SeiRecord
	for {
		nalu, ok := scanner.Next()
		if !ok {
			return recs
		}
		unit, ok := ClassifyNalu(codec, nalu)
		if !ok || !unit.IsSei() {
			continue
		}
		recs = append(recs, DecodeSei(codec, unit.Payload, o)...)
	}
}
