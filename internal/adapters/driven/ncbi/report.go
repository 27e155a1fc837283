package ncbi

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/custodia-labs/blast-util/internal/core/domain"
)

// blastOutput mirrors the parts of NCBI_BlastOutput.dtd that are used.
type blastOutput struct {
	XMLName    xml.Name    `xml:"BlastOutput"`
	Program    string      `xml:"BlastOutput_program"`
	DB         string      `xml:"BlastOutput_db"`
	QueryID    string      `xml:"BlastOutput_query-ID"`
	QueryLen   int         `xml:"BlastOutput_query-len"`
	Iterations []iteration `xml:"BlastOutput_iterations>Iteration"`
}

type iteration struct {
	Num     int        `xml:"Iteration_iter-num"`
	Hits    []hit      `xml:"Iteration_hits>Hit"`
	Stat    statistics `xml:"Iteration_stat>Statistics"`
	Message string     `xml:"Iteration_message"`
}

type statistics struct {
	DBNum    int64   `xml:"Statistics_db-num"`
	DBLen    int64   `xml:"Statistics_db-len"`
	EffSpace float64 `xml:"Statistics_eff-space"`
}

type hit struct {
	Num       int    `xml:"Hit_num"`
	ID        string `xml:"Hit_id"`
	Def       string `xml:"Hit_def"`
	Accession string `xml:"Hit_accession"`
	Len       int    `xml:"Hit_len"`
	Hsps      []hsp  `xml:"Hit_hsps>Hsp"`
}

type hsp struct {
	Num      int     `xml:"Hsp_num"`
	BitScore float64 `xml:"Hsp_bit-score"`
	Score    float64 `xml:"Hsp_score"`
	EValue   float64 `xml:"Hsp_evalue"`
	Identity int     `xml:"Hsp_identity"`
	AlignLen int     `xml:"Hsp_align-len"`
}

// decodeReport parses a single-query BlastOutput XML document.
func decodeReport(body []byte) (*domain.RawSearchResult, error) {
	var out blastOutput
	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.Strict = false
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReport, err)
	}

	switch len(out.Iterations) {
	case 0:
		return nil, fmt.Errorf("%w: no iterations in report", ErrMalformedReport)
	case 1:
	default:
		return nil, fmt.Errorf("%w: expected one iteration, found %d", ErrMalformedReport, len(out.Iterations))
	}
	it := out.Iterations[0]

	result := &domain.RawSearchResult{
		Descriptions:   make([]domain.Description, 0, len(it.Hits)),
		Hits:           make([]domain.AlignmentHit, 0, len(it.Hits)),
		Database:       out.DB,
		DatabaseLength: it.Stat.DBLen,
		QueryLength:    out.QueryLen,
		Message:        strings.TrimSpace(it.Message),
	}

	for _, h := range it.Hits {
		title := hitTitle(h)

		alignment := domain.AlignmentHit{
			Title:     title,
			Accession: h.Accession,
			Length:    h.Len,
			HSPs:      make([]domain.HSP, 0, len(h.Hsps)),
		}
		for _, p := range h.Hsps {
			alignment.HSPs = append(alignment.HSPs, domain.HSP{
				Identities:  p.Identity,
				AlignLength: p.AlignLen,
				BitScore:    p.BitScore,
				Score:       p.Score,
				EValue:      p.EValue,
			})
		}
		result.Hits = append(result.Hits, alignment)

		desc := domain.Description{Title: title, NumAlignments: len(h.Hsps)}
		if len(h.Hsps) > 0 {
			desc.BitScore = h.Hsps[0].BitScore
			desc.EValue = h.Hsps[0].EValue
		}
		result.Descriptions = append(result.Descriptions, desc)
	}

	return result, nil
}

// hitTitle joins the hit identifier and definition line.
func hitTitle(h hit) string {
	return strings.TrimSpace(h.ID + " " + h.Def)
}
