package internal

import (
	"bufio"
	"bytes"
	"context"
	"fmt"

	"github.com/Comcast/gots/v2/packet"
	"github.com/Comcast/gots/v2/psi"
	"github.com/asticode/go-astits"
	"github.com/q191201771/naza/pkg/nazalog"
)

const tsPacketSize = 188

// ParseTs extracts SEI messages from an MPEG-TS capture. PAT/PMT are read
// first to learn which PIDs carry H.264/H.265, then the PES payloads of
// those PIDs are demuxed and scanned as Annex-B data. A buffer that does
// not even sync to TS packets is a format error; anything malformed past
// that point just ends the walk early.
func ParseTs(ctx context.Context, data []byte, o DecoderOptions) ([]SeiRecord, error) {
	esCodecs, err := readVideoPids(data)
	if err != nil {
		return nil, err
	}

	var recs []SeiRecord
	rd := bufio.NewReaderSize(bytes.NewReader(data), 1000*tsPacketSize)
	dmx := astits.NewDemuxer(ctx, rd)
dataLoop:
	for {
		select {
		case <-ctx.Done():
			break dataLoop
		default:
		}

		d, err := dmx.NextData()
		if err != nil {
			if err.Error() == "astits: no more packets" {
				break dataLoop
			}
			// Damaged packets past the PSI tables degrade to a
			// partial report.
			nazalog.Warnf("stopping TS demux early: %v", err)
			break dataLoop
		}
		if d.PES == nil {
			continue
		}
		codec, ok := esCodecs[d.PID]
		if !ok {
			continue
		}
		recs = append(recs, seiFromNalus(NewNaluScanner(d.PES.Data, StartCode), codec, o)...)
	}
	return recs, nil
}

// readVideoPids locates the video elementary streams via PAT/PMT.
func readVideoPids(data []byte) (map[uint16]Codec, error) {
	reader := bufio.NewReader(bytes.NewReader(data))
	if _, err := packet.Sync(reader); err != nil {
		return nil, &FormatError{Container: "mpegts", Reason: "no TS sync byte found"}
	}
	pat, err := psi.ReadPAT(reader)
	if err != nil {
		return nil, fmt.Errorf("reading PAT %w", err)
	}

	esCodecs := make(map[uint16]Codec)
	for _, pid := range pat.ProgramMap() {
		pmt, err := psi.ReadPMT(reader, pid)
		if err != nil {
			return nil, fmt.Errorf("reading PMT %w", err)
		}
		for _, es := range pmt.ElementaryStreams() {
			switch es.StreamType() {
			case psi.PmtStreamTypeMpeg4VideoH264:
				esCodecs[uint16(es.ElementaryPid())] = CodecH264
			case psi.PmtStreamTypeMpeg4VideoH265:
				esCodecs[uint16(es.ElementaryPid())] = CodecH265
			}
		}
	}
	return esCodecs, nil
}
