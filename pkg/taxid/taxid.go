// Package taxid normaliza el identificador fiscal (CPF/CNPJ) usado como llave natural de clientes.
package taxid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxLength es la longitud máxima de tax_id aceptada por la tabla customers (VARCHAR(14)).
const MaxLength = 14

// separators se eliminan en este orden: punto, barra y guion.
var separators = []string{".", "/", "-"}

// Normalize quita los separadores de formato del identificador.
// "123.456.789-00" -> "12345678900", "12.345.678/0001-95" -> "12345678000195".
// No valida dígitos: otros caracteres se conservan y el guard de longitud decide.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	for _, sep := range separators {
		s = strings.ReplaceAll(s, sep, "")
	}
	return s
}

// Length devuelve la cantidad de caracteres (no bytes) del identificador.
func Length(taxID string) int {
	return utf8.RuneCountInString(taxID)
}

// ExceedsMaxLength indica si el identificador normalizado no cabe en la columna tax_id.
func ExceedsMaxLength(taxID string) bool {
	return Length(taxID) > MaxLength
}

// LengthReason es el motivo registrado cuando el identificador supera MaxLength.
func LengthReason() string {
	return fmt.Sprintf("exceeds maximum length of %d characters", MaxLength)
}

// Kind clasifica un identificador normalizado por su cantidad de dígitos.
type Kind string

const (
	KindCPF     Kind = "CPF"  // persona física, 11 dígitos
	KindCNPJ    Kind = "CNPJ" // persona jurídica, 14 dígitos
	KindUnknown Kind = "DESCONOCIDO"
)

// Classify devuelve el tipo de documento según la longitud. Solo se usa para logs.
func Classify(taxID string) Kind {
	for _, r := range taxID {
		if r < '0' || r > '9' {
			return KindUnknown
		}
	}
	switch len(taxID) {
	case 11:
		return KindCPF
	case 14:
		return KindCNPJ
	default:
		return KindUnknown
	}
}
