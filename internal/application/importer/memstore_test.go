package importer_test

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jhoicas/importador-clientes/internal/domain"
	"github.com/jhoicas/importador-clientes/internal/domain/entity"
	"github.com/jhoicas/importador-clientes/internal/domain/repository"
)

// memStore TxRunner en memoria: cada RunCustomers trabaja sobre una copia y solo la
// publica si fn no falla (commit); si falla, la copia se descarta (rollback).
type memStore struct {
	nextID    int64
	rows      map[string]entity.Customer
	lookups   int
	commits   int
	rollbacks int

	failLookup map[string]error // tax_id -> error en GetByTaxID
	failWrite  map[string]error // tax_id -> error en Create/UpdateByTaxID
	raceInsert map[string]bool  // otro proceso inserta el mismo tax_id justo antes del INSERT
}

func newMemStore() *memStore {
	return &memStore{
		rows:       make(map[string]entity.Customer),
		failLookup: make(map[string]error),
		failWrite:  make(map[string]error),
		raceInsert: make(map[string]bool),
	}
}

func (s *memStore) seed(c entity.Customer) entity.Customer {
	s.nextID++
	c.ID = s.nextID
	s.rows[c.TaxID] = c
	return c
}

func (s *memStore) get(taxID string) (entity.Customer, bool) {
	c, ok := s.rows[taxID]
	return c, ok
}

func (s *memStore) RunCustomers(ctx context.Context, fn func(repository.CustomerRepository) error) error {
	tx := &memTx{store: s, staged: make(map[string]entity.Customer, len(s.rows)), nextID: s.nextID}
	for k, v := range s.rows {
		tx.staged[k] = v
	}
	if err := fn(tx); err != nil {
		s.rollbacks++
		return err
	}
	s.rows = tx.staged
	s.nextID = tx.nextID
	s.commits++
	return nil
}

type memTx struct {
	store  *memStore
	staged map[string]entity.Customer
	nextID int64
}

func (t *memTx) Create(_ context.Context, c *entity.Customer) error {
	if err := t.store.failWrite[c.TaxID]; err != nil {
		return err
	}
	if t.store.raceInsert[c.TaxID] {
		// el otro escritor confirma primero; nuestra fila choca con el UNIQUE
		t.store.seed(entity.Customer{LegalName: "Otro Proceso", TaxID: c.TaxID})
		t.nextID = t.store.nextID
		return fmt.Errorf("%w: %w", domain.ErrDuplicate,
			errors.New(`ERROR: duplicate key value violates unique constraint "customers_tax_id_key" (SQLSTATE 23505)`))
	}
	if _, ok := t.staged[c.TaxID]; ok {
		return fmt.Errorf("%w: tax_id %s", domain.ErrDuplicate, c.TaxID)
	}
	t.nextID++
	c.ID = t.nextID
	t.staged[c.TaxID] = *c
	return nil
}

func (t *memTx) GetByTaxID(_ context.Context, taxID string) (*entity.Customer, error) {
	t.store.lookups++
	if err := t.store.failLookup[taxID]; err != nil {
		return nil, err
	}
	c, ok := t.staged[taxID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (t *memTx) UpdateByTaxID(_ context.Context, c *entity.Customer) error {
	if err := t.store.failWrite[c.TaxID]; err != nil {
		return err
	}
	existing, ok := t.staged[c.TaxID]
	if !ok {
		return domain.ErrNotFound
	}
	existing.LegalName = c.LegalName
	existing.TradeName = c.TradeName
	existing.BirthDate = c.BirthDate
	existing.RegistrationDate = c.RegistrationDate
	t.staged[c.TaxID] = existing
	return nil
}

func (t *memTx) List(_ context.Context, limit, offset int) ([]*entity.Customer, error) {
	all := make([]*entity.Customer, 0, len(t.staged))
	for _, c := range t.staged {
		c := c
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (t *memTx) Count(context.Context) (int, error) {
	return len(t.staged), nil
}
