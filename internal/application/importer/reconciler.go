package importer

import (
	"context"
	"errors"

	"github.com/jhoicas/importador-clientes/internal/domain"
	"github.com/jhoicas/importador-clientes/internal/domain/entity"
	"github.com/jhoicas/importador-clientes/internal/domain/repository"
	"github.com/jhoicas/importador-clientes/pkg/taxid"
)

// ReasonLegalNameRequired motivo para filas sin Nome/Razão Social.
const ReasonLegalNameRequired = "legal name is required"

// Reconciler aplica cada fila contra la tabla customers, una transacción por fila.
type Reconciler struct {
	txRunner TxRunner
}

// NewReconciler construye el conciliador.
func NewReconciler(txRunner TxRunner) *Reconciler {
	return &Reconciler{txRunner: txRunner}
}

// Apply busca el cliente por tax_id y lo actualiza o inserta. Nunca retorna error:
// cualquier falla se convierte en un Outcome rechazado y la transacción de la fila se revierte.
func (r *Reconciler) Apply(ctx context.Context, row CandidateRow) Outcome {
	if taxid.ExceedsMaxLength(row.TaxID) {
		return rejected(row, RejectionValidation, taxid.LengthReason())
	}
	if row.LegalName == "" {
		return rejected(row, RejectionValidation, ReasonLegalNameRequired)
	}

	customer := &entity.Customer{
		LegalName:        row.LegalName,
		TradeName:        row.TradeName,
		TaxID:            row.TaxID,
		BirthDate:        row.BirthDate,
		RegistrationDate: row.RegistrationDate,
	}

	var kind OutcomeKind
	err := r.txRunner.RunCustomers(ctx, func(customers repository.CustomerRepository) error {
		existing, err := customers.GetByTaxID(ctx, row.TaxID)
		if err != nil {
			return err
		}
		if existing != nil {
			customer.ID = existing.ID
			kind = OutcomeUpdated
			return customers.UpdateByTaxID(ctx, customer)
		}
		kind = OutcomeInserted
		return customers.Create(ctx, customer)
	})
	if err != nil {
		return rejected(row, classify(err), err.Error())
	}
	return Outcome{Kind: kind, CustomerID: customer.ID}
}

func classify(err error) RejectionClass {
	if errors.Is(err, domain.ErrDuplicate) || errors.Is(err, domain.ErrConstraint) {
		return RejectionIntegrity
	}
	return RejectionStorage
}

func rejected(row CandidateRow, class RejectionClass, reason string) Outcome {
	return Outcome{
		Kind: OutcomeRejected,
		Rejection: &Rejection{
			Line:   row.Line,
			TaxID:  row.TaxID,
			Reason: reason,
			Class:  class,
		},
	}
}
