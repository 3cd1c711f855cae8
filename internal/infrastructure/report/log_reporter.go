// Package report publica el progreso y el resumen de una importación (logs y PDF).
package report

import (
	"github.com/jhoicas/importador-clientes/internal/application/importer"
	"github.com/jhoicas/importador-clientes/pkg/logger"
	"github.com/jhoicas/importador-clientes/pkg/taxid"
)

var _ importer.Reporter = (*LogReporter)(nil)

// LogReporter implementa importer.Reporter escribiendo en el logger estructurado.
type LogReporter struct {
	log *logger.Logger
}

// NewLogReporter construye el reporter.
func NewLogReporter(log *logger.Logger) *LogReporter {
	return &LogReporter{log: log}
}

// Inserted registra cada cliente nuevo.
func (r *LogReporter) Inserted(row importer.CandidateRow, customerID int64) {
	r.log.Info().
		Str("tax_id", row.TaxID).
		Str("tipo", string(taxid.Classify(row.TaxID))).
		Int64("id", customerID).
		Int("linea", row.Line).
		Msg("insertando nuevo cliente")
}

// Rejected: warn para validaciones, error para fallas de BD.
func (r *LogReporter) Rejected(rej importer.Rejection) {
	ev := r.log.Error()
	msg := "error al procesar cliente"
	if rej.Class == importer.RejectionValidation {
		ev = r.log.Warn()
		msg = "cliente rechazado por validación"
	}
	ev.Str("tax_id", rej.TaxID).
		Int("linea", rej.Line).
		Str("clase", string(rej.Class)).
		Str("motivo", rej.Reason).
		Msg(msg)
}

// Summary escribe los totales y luego un registro por rechazo.
func (r *LogReporter) Summary(s *importer.Summary) {
	r.log.Info().
		Str("run_id", s.RunID).
		Str("origen", s.Source).
		Int("total", s.Total).
		Int("actualizados", s.Updated).
		Int("insertados", s.Inserted).
		Int("rechazados", len(s.Rejections)).
		Int("duplicados_descartados", len(s.DroppedDuplicates)).
		Int("filas_vacias", len(s.SkippedBlankRows)).
		Ints("lineas_vacias", s.SkippedBlankRows).
		Dur("duracion", s.Duration()).
		Msg("importación finalizada")

	for _, d := range s.DroppedDuplicates {
		r.log.Debug().
			Str("tax_id", d.TaxID).
			Int("linea", d.Line).
			Int("primera_linea", d.FirstLine).
			Msg("fila duplicada descartada")
	}

	if len(s.Rejections) == 0 {
		return
	}
	r.log.Info().Msg("registros no importados y sus motivos")
	for _, rej := range s.Rejections {
		r.log.Info().
			Str("tax_id", rej.TaxID).
			Int("linea", rej.Line).
			Str("motivo", rej.Reason).
			Msg("no importado")
	}
}
