package internal

// ParseSummary aggregates one report: how many messages were found, how
// they distribute over SEI types, and how many payload bytes were
// extracted in total.
type ParseSummary struct {
	Records      int            `json:"records"`
	PayloadBytes int            `json:"payloadBytes"`
	ByType       map[string]int `json:"byType,omitempty"`
}

func Summarize(report *ParseReport) ParseSummary {
	s := ParseSummary{Records: len(report.Records)}
	for _, r := range report.Records {
		if s.ByType == nil {
			s.ByType = make(map[string]int)
		}
		s.ByType[r.TypeName()]++
		s.PayloadBytes += len(r.Payload)
	}
	return s
}

func (p *JsonPrinter) PrintSummary(report *ParseReport, show bool) {
	p.Print(Summarize(report), show)
}
