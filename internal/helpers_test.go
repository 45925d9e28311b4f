package internal

import "github.com/q191201771/naza/pkg/bele"

// seiMessage frames one SEI message with the extended type/size encoding.
func seiMessage(seiType int, payload []byte) []byte {
	msg := EncodeSeiValue(seiType)
	msg = append(msg, EncodeSeiValue(len(payload))...)
	return append(msg, payload...)
}

// h264SeiNalu wraps SEI messages in an H.264 SEI NAL unit (type 6).
func h264SeiNalu(messages ...[]byte) []byte {
	nalu := []byte{0x06}
	for _, m := range messages {
		nalu = append(nalu, m...)
	}
	return nalu
}

// h265SeiNalu wraps SEI messages in an H.265 prefix SEI NAL unit (type 39).
func h265SeiNalu(messages ...[]byte) []byte {
	nalu := []byte{39 << 1, 0x01}
	for _, m := range messages {
		nalu = append(nalu, m...)
	}
	return nalu
}

// lengthPrefixed concatenates NAL units with 4-byte big-endian sizes.
func lengthPrefixed(nalus ...[]byte) []byte {
	var out []byte
	for _, n := range nalus {
		var size [4]byte
		bele.BePutUint32(size[:], uint32(len(n)))
		out = append(out, size[:]...)
		out = append(out, n...)
	}
	return out
}

// buildFlv wraps video tag bodies in a minimal FLV file.
func buildFlv(timestamps []uint32, bodies ...[]byte) []byte {
	out := []byte("FLV\x01\x05\x00\x00\x00\x09") // header, video only
	out = append(out, 0, 0, 0, 0)                // PreviousTagSize0
	for i, body := range bodies {
		tag := make([]byte, 11)
		tag[0] = flvTagTypeVideo
		bele.BePutUint24(tag[1:], uint32(len(body)))
		bele.BePutUint24(tag[4:], timestamps[i]&0xFFFFFF)
		tag[7] = byte(timestamps[i] >> 24)
		out = append(out, tag...)
		out = append(out, body...)
		var prev [4]byte
		bele.BePutUint32(prev[:], uint32(11+len(body)))
		out = append(out, prev[:]...)
	}
	return out
}

// avcVideoTagBody builds an FLV video tag body holding length-prefixed
// H.264 NAL units (keyframe, codec id 7, packet type 1).
func avcVideoTagBody(nalus ...[]byte) []byte {
	body := []byte{0x17, avcPacketTypeNalus, 0x00, 0x00, 0x00}
	return append(body, lengthPrefixed(nalus...)...)
}
