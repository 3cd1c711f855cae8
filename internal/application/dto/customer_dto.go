package dto

import "github.com/jhoicas/importador-clientes/internal/domain/entity"

// CustomerResponse cliente en respuestas. Fechas en formato YYYY-MM-DD; null si no hay.
type CustomerResponse struct {
	ID               int64   `json:"id"`
	LegalName        string  `json:"legal_name"`
	TradeName        string  `json:"trade_name"`
	TaxID            string  `json:"tax_id"`
	BirthDate        *string `json:"birth_date"`
	RegistrationDate *string `json:"registration_date"`
}

// CustomerListResponse página de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// NewCustomerResponse convierte la entidad.
func NewCustomerResponse(c *entity.Customer) CustomerResponse {
	out := CustomerResponse{
		ID:        c.ID,
		LegalName: c.LegalName,
		TradeName: c.TradeName,
		TaxID:     c.TaxID,
	}
	if c.BirthDate != nil {
		s := c.BirthDate.Format("2006-01-02")
		out.BirthDate = &s
	}
	if c.RegistrationDate != nil {
		s := c.RegistrationDate.Format("2006-01-02")
		out.RegistrationDate = &s
	}
	return out
}
