package importer

import (
	"context"
	"time"
)

// ImportUseCase ejecuta una importación completa: normalizar, conciliar fila por fila y reportar.
type ImportUseCase struct {
	normalizer *Normalizer
	reconciler *Reconciler
	reporter   Reporter
	now        func() time.Time
}

// NewImportUseCase construye el caso de uso. reporter puede ser nil.
func NewImportUseCase(txRunner TxRunner, reporter Reporter) *ImportUseCase {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &ImportUseCase{
		normalizer: NewNormalizer(),
		reconciler: NewReconciler(txRunner),
		reporter:   reporter,
		now:        time.Now,
	}
}

// Import procesa la planilla en orden y devuelve el resumen.
// Solo retorna error si la planilla está mal formada (faltan columnas); los errores de cada
// fila quedan en Summary.Rejections y el lote siempre termina.
func (uc *ImportUseCase) Import(ctx context.Context, source string, table Table) (*Summary, error) {
	summary := newSummary(source, uc.now())

	normalized, err := uc.normalizer.Normalize(table)
	if err != nil {
		return nil, err
	}
	summary.DroppedDuplicates = normalized.Dropped
	summary.SkippedBlankRows = normalized.Blank
	summary.Total = len(normalized.Rows)

	for _, row := range normalized.Rows {
		outcome := uc.reconciler.Apply(ctx, row)
		summary.record(outcome)
		switch outcome.Kind {
		case OutcomeInserted:
			uc.reporter.Inserted(row, outcome.CustomerID)
		case OutcomeRejected:
			uc.reporter.Rejected(*outcome.Rejection)
		}
	}

	summary.FinishedAt = uc.now()
	uc.reporter.Summary(summary)
	return summary, nil
}
