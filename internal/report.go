package internal

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	slices "golang.org/x/exp/slices"
)

// FormatError marks a container whose mandatory structure check failed.
// It is the only fatal condition in the pipeline; everything below the
// container level degrades to partial output instead.
type FormatError struct {
	Container string
	Reason    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s", e.Container, e.Reason)
}

// ParseReport is the ordered sequence of SEI records decoded from one
// input buffer, in stream order. Repeated identical messages are all
// retained.
type ParseReport struct {
	Records []SeiRecord
}

var (
	h264Exts = []string{".h264", ".264"}
	h265Exts = []string{".h265", ".265", ".hevc"}
)

// ParseBytes dispatches a whole-file buffer to the demuxer matching the
// file name's extension. Unrecognized extensions fall back to Annex-B
// auto-detection unless the codec option forces one codec.
func ParseBytes(ctx context.Context, name string, data []byte, o Options) (*ParseReport, error) {
	do := o.decoderOptions()
	ext := strings.ToLower(filepath.Ext(name))

	var (
		recs []SeiRecord
		err  error
	)
	switch {
	case ext == ".flv":
		recs, err = ParseFlv(data, do)
	case ext == ".mp4":
		recs = ParseMp4(data, do)
	case ext == ".ts":
		recs, err = ParseTs(ctx, data, do)
	case slices.Contains(h264Exts, ext):
		recs = ParseAnnexB(data, CodecH264, do)
	case slices.Contains(h265Exts, ext):
		recs = ParseAnnexB(data, CodecH265, do)
	default:
		switch o.Codec {
		case "h264":
			recs = ParseAnnexB(data, CodecH264, do)
		case "h265":
			recs = ParseAnnexB(data, CodecH265, do)
		default:
			recs = ParseAutoDetect(data, do)
		}
	}
	if err != nil {
		return nil, err
	}
	return &ParseReport{Records: recs}, nil
}
