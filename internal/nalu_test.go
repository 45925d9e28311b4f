package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyNalu(t *testing.T) {
	cases := []struct {
		name    string
		codec   Codec
		nalu    []byte
		ok      bool
		nalType int
		isSei   bool
	}{
		{"h264 sei", CodecH264, []byte{0x06, 0x05}, true, 6, true},
		{"h264 idr", CodecH264, []byte{0x65, 0x88}, true, 5, false},
		{"h264 empty", CodecH264, nil, false, 0, false},
		{"h265 prefix sei", CodecH265, []byte{39 << 1, 0x01, 0x05}, true, 39, true},
		{"h265 suffix sei", CodecH265, []byte{40 << 1, 0x01}, true, 40, true},
		{"h265 vps", CodecH265, []byte{32 << 1, 0x01}, true, 32, false},
		{"h265 one byte is too short", CodecH265, []byte{39 << 1}, false, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			unit, ok := ClassifyNalu(c.codec, c.nalu)
			require.Equal(t, c.ok, ok)
			if !ok {
				return
			}
			require.Equal(t, c.nalType, unit.Type)
			require.Equal(t, c.isSei, unit.IsSei())
			require.Equal(t, c.codec, unit.Codec)
			require.Equal(t, c.nalu[c.codec.headerLen():], unit.Payload)
		})
	}
}

func TestCodecString(t *testing.T) {
	require.Equal(t, "H.264", CodecH264.String())
	require.Equal(t, "H.265", CodecH265.String())
}
