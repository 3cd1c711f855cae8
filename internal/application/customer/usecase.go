// Package customer expone consultas de solo lectura sobre los clientes importados.
package customer

import (
	"context"

	"github.com/jhoicas/importador-clientes/internal/application/dto"
	"github.com/jhoicas/importador-clientes/internal/domain"
	"github.com/jhoicas/importador-clientes/internal/domain/repository"
	"github.com/jhoicas/importador-clientes/pkg/taxid"
)

// QueryUseCase consultas de clientes.
type QueryUseCase struct {
	repo repository.CustomerRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(repo repository.CustomerRepository) *QueryUseCase {
	return &QueryUseCase{repo: repo}
}

// GetByTaxID acepta el CPF/CNPJ con o sin formato.
func (uc *QueryUseCase) GetByTaxID(ctx context.Context, raw string) (*dto.CustomerResponse, error) {
	id := taxid.Normalize(raw)
	if id == "" || taxid.ExceedsMaxLength(id) {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.repo.GetByTaxID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewCustomerResponse(c)
	return &out, nil
}

// List lista clientes por id con paginación.
func (uc *QueryUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.CustomerListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.CustomerListResponse{
		Items: make([]dto.CustomerResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, c := range list {
		out.Items = append(out.Items, dto.NewCustomerResponse(c))
	}
	return out, nil
}
