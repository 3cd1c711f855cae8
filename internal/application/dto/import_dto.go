package dto

import (
	"time"

	"github.com/jhoicas/importador-clientes/internal/application/importer"
)

// ImportSummaryResponse respuesta de POST /api/customers/import.
type ImportSummaryResponse struct {
	RunID             string                     `json:"run_id"`
	Source            string                     `json:"source"`
	Total             int                        `json:"total"`
	Updated           int                        `json:"updated"`
	Inserted          int                        `json:"inserted"`
	Rejections        []RejectionResponse        `json:"rejections"`
	DroppedDuplicates []DroppedDuplicateResponse `json:"dropped_duplicates"`
	SkippedBlankRows  []int                      `json:"skipped_blank_rows"`
	StartedAt         time.Time                  `json:"started_at"`
	FinishedAt        time.Time                  `json:"finished_at"`
}

// RejectionResponse registro no importado.
type RejectionResponse struct {
	Line   int    `json:"line"`
	TaxID  string `json:"tax_id"`
	Reason string `json:"reason"`
	Class  string `json:"class"` // validation | integrity | storage
}

// DroppedDuplicateResponse fila descartada por tax_id repetido.
type DroppedDuplicateResponse struct {
	Line      int    `json:"line"`
	TaxID     string `json:"tax_id"`
	FirstLine int    `json:"first_line"`
}

// NewImportSummaryResponse convierte el resumen del caso de uso.
func NewImportSummaryResponse(s *importer.Summary) ImportSummaryResponse {
	out := ImportSummaryResponse{
		RunID:             s.RunID,
		Source:            s.Source,
		Total:             s.Total,
		Updated:           s.Updated,
		Inserted:          s.Inserted,
		Rejections:        make([]RejectionResponse, 0, len(s.Rejections)),
		DroppedDuplicates: make([]DroppedDuplicateResponse, 0, len(s.DroppedDuplicates)),
		SkippedBlankRows:  append([]int{}, s.SkippedBlankRows...),
		StartedAt:         s.StartedAt,
		FinishedAt:        s.FinishedAt,
	}
	for _, r := range s.Rejections {
		out.Rejections = append(out.Rejections, RejectionResponse{
			Line: r.Line, TaxID: r.TaxID, Reason: r.Reason, Class: string(r.Class),
		})
	}
	for _, d := range s.DroppedDuplicates {
		out.DroppedDuplicates = append(out.DroppedDuplicates, DroppedDuplicateResponse{
			Line: d.Line, TaxID: d.TaxID, FirstLine: d.FirstLine,
		})
	}
	return out
}
