package internal

// ParseAnnexB scans a raw start-code-delimited bytestream and decodes all
// SEI messages for the given codec.
func ParseAnnexB(data []byte, codec Codec, o DecoderOptions) []SeiRecord {
	return seiFromNalus(NewNaluScanner(data, StartCode), codec, o)
}

// ParseAutoDetect handles buffers with no recognizable extension: the same
// start-code scan is classified once as H.264 and once as H.265, and the
// results are concatenated. An attempt that matches nothing contributes
// nothing.
func ParseAutoDetect(data []byte, o DecoderOptions) []SeiRecord {
	recs := ParseAnnexB(data, CodecH264, o)
	return append(recs, ParseAnnexB(data, CodecH265, o)...)
}
