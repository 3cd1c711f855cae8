package repository

import (
	"context"

	"github.com/jhoicas/importador-clientes/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	// Create inserta el cliente y completa customer.ID con el valor asignado por la BD.
	Create(ctx context.Context, customer *entity.Customer) error
	// GetByTaxID devuelve (nil, nil) si no existe un cliente con ese identificador.
	GetByTaxID(ctx context.Context, taxID string) (*entity.Customer, error)
	// UpdateByTaxID sobrescribe legal_name, trade_name y fechas; id y tax_id no cambian.
	UpdateByTaxID(ctx context.Context, customer *entity.Customer) error
	List(ctx context.Context, limit, offset int) ([]*entity.Customer, error)
	Count(ctx context.Context) (int, error)
}
