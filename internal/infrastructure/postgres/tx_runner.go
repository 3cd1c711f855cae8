package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/importador-clientes/internal/application/importer"
	"github.com/jhoicas/importador-clientes/internal/domain/repository"
)

var _ importer.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	db TxBeginner
}

// NewTxRunner construye el runner con el pool (o cualquier TxBeginner).
func NewTxRunner(db TxBeginner) *TxRunner {
	return &TxRunner{db: db}
}

// RunCustomers inicia una transacción, ejecuta fn con el repositorio atado a la tx y hace Commit.
// Cualquier error de fn (o un panic) deja la transacción en Rollback.
func (r *TxRunner) RunCustomers(ctx context.Context, fn func(customers repository.CustomerRepository) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCustomerRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
