package internal

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// rbspStopBit is the RBSP trailing pattern that some encoders emit after
// the last SEI message of a NAL unit.
const rbspStopBit = 0x80

// DecoderOptions control the divergent behaviors seen in the wild:
// whether an 0x80 byte ends the message loop, and whether text decoding
// rejects payloads with invalid UTF-8 instead of dropping the bad bytes.
type DecoderOptions struct {
	StopBitCheck bool
	StrictText   bool
}

// SeiRecord is one decoded SEI message. Payload is an owned copy, so the
// record stays valid after the scanned buffer is gone. Text and Json are
// best-effort views and absent when the payload does not decode.
type SeiRecord struct {
	Codec       Codec
	Type        int
	Size        int
	Payload     []byte
	Text        string
	HasText     bool
	Json        any
	TimestampMs *int64
}

// TypeName returns the H.264/H.265 Annex D name for the message type,
// or unknown_<N>.
func (r SeiRecord) TypeName() string {
	return SeiTypeName(r.Type)
}

// PayloadHex is the lowercase hex dump of the raw payload.
func (r SeiRecord) PayloadHex() string {
	return hex.EncodeToString(r.Payload)
}

// DecodeSei walks the payload of one SEI NAL unit (codec header already
// stripped) and decodes the concatenated messages. Truncated framing ends
// the walk; a message size overrunning the remaining bytes is clamped,
// not rejected.
func DecodeSei(codec Codec, payload []byte, o DecoderOptions) []SeiRecord {
	var recs []SeiRecord
	pos := 0
	for pos < len(payload) {
		if o.StopBitCheck && payload[pos] == rbspStopBit {
			break
		}
		seiType, n, ok := DecodeSeiValue(payload[pos:])
		if !ok {
			break
		}
		pos += n
		seiSize, n, ok := DecodeSeiValue(payload[pos:])
		if !ok {
			break
		}
		pos += n
		if seiSize > len(payload)-pos {
			seiSize = len(payload) - pos
		}
		body := make([]byte, seiSize)
		copy(body, payload[pos:pos+seiSize])
		pos += seiSize

		rec := SeiRecord{
			Codec:   codec,
			Type:    seiType,
			Size:    seiSize,
			Payload: body,
		}
		rec.Text, rec.HasText = decodeText(body, o.StrictText)
		if rec.HasText {
			var v any
			if err := json.Unmarshal([]byte(rec.Text), &v); err == nil {
				rec.Json = v
			}
		}
		recs = append(recs, rec)
	}
	return recs
}

// DecodeSeiValue reads one extended type/size value: 255 per leading 0xFF
// byte plus the first non-0xFF byte. ok is false when the buffer runs out
// before a terminal byte.
func DecodeSeiValue(buf []byte) (val, n int, ok bool) {
	for n < len(buf) && buf[n] == 0xFF {
		val += 255
		n++
	}
	if n >= len(buf) {
		return 0, 0, false
	}
	val += int(buf[n])
	return val, n + 1, true
}

// EncodeSeiValue is the inverse of DecodeSeiValue:
// encode(255*k + r) = k 0xFF bytes followed by r.
func EncodeSeiValue(val int) []byte {
	out := make([]byte, 0, val/255+1)
	for val >= 255 {
		out = append(out, 0xFF)
		val -= 255
	}
	return append(out, byte(val))
}

// decodeText is the best-effort string view of a payload. Trailing NUL
// padding is always stripped. Strict mode refuses invalid UTF-8 and trims
// surrounding whitespace; lenient mode drops invalid sequences instead.
func decodeText(payload []byte, strict bool) (string, bool) {
	trimmed := bytes.TrimRight(payload, "\x00")
	if strict {
		if !utf8.Valid(trimmed) {
			return "", false
		}
		return strings.TrimSpace(string(trimmed)), true
	}
	return strings.ToValidUTF8(string(trimmed), ""), true
}
