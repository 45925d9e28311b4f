package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func annexb(nalus ...[]byte) []byte {
	var out []byte
	for _, n := range nalus {
		out = append(out, 0x00, 0x00, 0x00, 0x01)
		out = append(out, n...)
	}
	return out
}

func TestParseAnnexBH264(t *testing.T) {
	data := annexb(
		[]byte{0x67, 0x64, 0x00},
		h264SeiNalu(seiMessage(5, []byte("hello-world"))),
		[]byte{0x65, 0x88},
	)
	recs := ParseAnnexB(data, CodecH264, DecoderOptions{})
	require.Len(t, recs, 1)
	require.Equal(t, CodecH264, recs[0].Codec)
	require.Equal(t, "hello-world", recs[0].Text)
}

func TestParseAnnexBH265PrefixSei(t *testing.T) {
	data := annexb(h265SeiNalu(seiMessage(5, []byte("hevc"))))
	recs := ParseAnnexB(data, CodecH265, DecoderOptions{})
	require.Len(t, recs, 1)
	require.Equal(t, CodecH265, recs[0].Codec)
	require.Equal(t, 5, recs[0].Type)
	require.Equal(t, "hevc", recs[0].Text)
}

func TestParseAnnexBEmpty(t *testing.T) {
	require.Empty(t, ParseAnnexB(nil, CodecH264, DecoderOptions{}))
	require.Empty(t, ParseAnnexB([]byte{0x01, 0x02, 0x03}, CodecH264, DecoderOptions{}))
}

func TestParseAutoDetectConcatenatesCodecs(t *testing.T) {
	// One buffer that classifies as SEI under both codecs: H.264 first,
	// then H.265, results concatenated in that order.
	h264Only := annexb(h264SeiNalu(seiMessage(5, []byte("avc"))))
	recs := ParseAutoDetect(h264Only, DecoderOptions{})
	require.Len(t, recs, 1)
	require.Equal(t, CodecH264, recs[0].Codec)

	h265Only := annexb(h265SeiNalu(seiMessage(5, []byte("hevc"))))
	recs = ParseAutoDetect(h265Only, DecoderOptions{})
	// 39<<1 = 0x4E reads as H.264 type 14 (not SEI), so only the H.265
	// pass contributes.
	require.Len(t, recs, 1)
	require.Equal(t, CodecH265, recs[0].Codec)
}

func TestParseAnnexBIdempotent(t *testing.T) {
	data := annexb(
		h264SeiNalu(seiMessage(5, []byte(`{"k":"v"}`))),
		h264SeiNalu(seiMessage(1, []byte{0x00, 0x01})),
	)
	first := ParseAnnexB(data, CodecH264, DecoderOptions{})
	second := ParseAnnexB(data, CodecH264, DecoderOptions{})
	require.Equal(t, first, second)
	require.Len(t, first, 2)
}

func TestParseAnnexBDuplicatesRetained(t *testing.T) {
	sei := h264SeiNalu(seiMessage(5, []byte("same")))
	recs := ParseAnnexB(annexb(sei, sei, sei), CodecH264, DecoderOptions{})
	require.Len(t, recs, 3)
}
