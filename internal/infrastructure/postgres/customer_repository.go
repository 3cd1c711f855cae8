package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jhoicas/importador-clientes/internal/domain"
	"github.com/jhoicas/importador-clientes/internal/domain/entity"
	"github.com/jhoicas/importador-clientes/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, legal_name, trade_name, tax_id, birth_date, registration_date`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente; el id lo genera la secuencia de la tabla.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (legal_name, trade_name, tax_id, birth_date, registration_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		customer.LegalName, customer.TradeName, customer.TaxID,
		toPgDate(customer.BirthDate), toPgDate(customer.RegistrationDate),
	).Scan(&customer.ID)
	if err != nil {
		return mapWriteError("insert customer", err)
	}
	return nil
}

// GetByTaxID obtiene un cliente por CPF/CNPJ normalizado.
func (r *CustomerRepo) GetByTaxID(ctx context.Context, taxID string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE tax_id = $1`
	c, err := scanCustomer(r.q.QueryRow(ctx, query, taxID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by tax_id: %w", err)
	}
	return c, nil
}

// UpdateByTaxID actualiza los datos descriptivos del cliente. id y tax_id no se tocan.
func (r *CustomerRepo) UpdateByTaxID(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET legal_name = $2, trade_name = $3, birth_date = $4, registration_date = $5
		WHERE tax_id = $1`
	tag, err := r.q.Exec(ctx, query,
		customer.TaxID, customer.LegalName, customer.TradeName,
		toPgDate(customer.BirthDate), toPgDate(customer.RegistrationDate),
	)
	if err != nil {
		return mapWriteError("update customer", err)
	}
	// otro proceso borró la fila entre el SELECT y el UPDATE
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update customer %s: %w", customer.TaxID, domain.ErrNotFound)
	}
	return nil
}

// List lista clientes ordenados por id con paginación.
func (r *CustomerRepo) List(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Count devuelve el total de clientes.
func (r *CustomerRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var (
		c          entity.Customer
		tradeName  pgtype.Text
		birth, reg pgtype.Date
	)
	if err := row.Scan(&c.ID, &c.LegalName, &tradeName, &c.TaxID, &birth, &reg); err != nil {
		return nil, err
	}
	c.TradeName = tradeName.String
	c.BirthDate = fromPgDate(birth)
	c.RegistrationDate = fromPgDate(reg)
	return &c, nil
}
