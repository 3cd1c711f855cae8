package entity

import "time"

// TradeNameNotInformed es el valor usado cuando la planilla no trae nombre fantasía.
const TradeNameNotInformed = "Não informado"

// Customer representa un cliente importado (tabla customers).
// ID lo asigna la base de datos al insertar y no cambia después.
type Customer struct {
	ID               int64
	LegalName        string
	TradeName        string
	TaxID            string // CPF/CNPJ solo dígitos, único, máx. 14
	BirthDate        *time.Time
	RegistrationDate *time.Time
}
