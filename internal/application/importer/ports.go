package importer

import (
	"context"

	"github.com/jhoicas/importador-clientes/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con el repositorio atado a ella.
// Si fn retorna error la transacción se revierte; si no, se confirma.
type TxRunner interface {
	RunCustomers(ctx context.Context, fn func(customers repository.CustomerRepository) error) error
}

// Reporter recibe el progreso y el resumen final. No decide el formato de salida.
type Reporter interface {
	Inserted(row CandidateRow, customerID int64)
	Rejected(rejection Rejection)
	Summary(summary *Summary)
}

type nopReporter struct{}

func (nopReporter) Inserted(CandidateRow, int64) {}
func (nopReporter) Rejected(Rejection)           {}
func (nopReporter) Summary(*Summary)             {}
