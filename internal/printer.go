package internal

import (
	"encoding/json"
	"fmt"
	"io"
)

type JsonPrinter struct {
	W        io.Writer
	Indent   bool
	AccError error
}

func (p *JsonPrinter) Print(data any, show bool) {
	if !show {
		return
	}
	var out []byte
	var err error
	if p.AccError != nil {
		return
	}
	if p.Indent {
		out, err = json.MarshalIndent(data, "", "  ")
	} else {
		out, err = json.Marshal(data)
	}
	if err != nil {
		p.AccError = err
		return
	}
	_, p.AccError = fmt.Fprintln(p.W, string(out))
}

func (p *JsonPrinter) Error() error {
	return p.AccError
}

// SeiOut is the presentation form of one SEI record.
type SeiOut struct {
	Codec       string `json:"codec"`
	SeiType     int    `json:"seiType"`
	SeiTypeName string `json:"seiTypeName"`
	Size        int    `json:"size"`
	TimestampMs *int64 `json:"timestampMs,omitempty"`
	Hex         string `json:"hex,omitempty"`
	Text        string `json:"text,omitempty"`
	Json        any    `json:"json,omitempty"`
}

// PrintRecord renders one record as a JSON line. The hex dump is gated by
// showHex; text and json views appear whenever the payload decoded.
func (p *JsonPrinter) PrintRecord(r SeiRecord, showHex bool) {
	out := SeiOut{
		Codec:       r.Codec.String(),
		SeiType:     r.Type,
		SeiTypeName: r.TypeName(),
		Size:        r.Size,
		TimestampMs: r.TimestampMs,
		Json:        r.Json,
	}
	if showHex {
		out.Hex = r.PayloadHex()
	}
	if r.HasText {
		out.Text = r.Text
	}
	p.Print(out, true)
}
