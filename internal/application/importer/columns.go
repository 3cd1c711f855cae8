package importer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jhoicas/importador-clientes/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// field campo destino de la tabla customers.
type field int

const (
	fieldLegalName field = iota
	fieldTradeName
	fieldTaxID
	fieldBirthDate
	fieldRegistrationDate
	fieldCount
)

var fieldNames = [fieldCount]string{
	"legal_name", "trade_name", "tax_id", "birth_date", "registration_date",
}

// columnAliases encabezados aceptados para cada campo (export en portugués o en inglés).
var columnAliases = [fieldCount][]string{
	fieldLegalName:        {"Nome/Razão Social", "Legal Name/Company Name", "Legal Name", "Company Name"},
	fieldTradeName:        {"Nome Fantasia", "Trade Name"},
	fieldTaxID:            {"CPF/CNPJ", "Tax ID"},
	fieldBirthDate:        {"Data Nasc.", "Birth Date"},
	fieldRegistrationDate: {"Data Cadastro cliente", "Registration Date"},
}

// columnIndex posición de cada campo en el encabezado.
type columnIndex [fieldCount]int

// resolveColumns ubica los cinco campos en el encabezado. Las demás columnas se ignoran.
func resolveColumns(header []string) (columnIndex, error) {
	lookup := make(map[string]field)
	for f, aliases := range columnAliases {
		for _, a := range aliases {
			lookup[foldHeader(a)] = field(f)
		}
	}

	var idx columnIndex
	for i := range idx {
		idx[i] = -1
	}
	for pos, h := range header {
		f, ok := lookup[foldHeader(h)]
		if !ok || idx[f] >= 0 {
			continue // primera coincidencia gana
		}
		idx[f] = pos
	}

	var missing []string
	for f, pos := range idx {
		if pos < 0 {
			missing = append(missing, fmt.Sprintf("%s (%s)", fieldNames[f], columnAliases[f][0]))
		}
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("%w: %s", domain.ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

// foldHeader compara encabezados sin acentos, mayúsculas ni espacios repetidos.
// "Nome/Razão  Social" y "nome/razao social" son el mismo encabezado.
func foldHeader(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	out = cases.Fold().String(out)
	return strings.Join(strings.Fields(out), " ")
}

func (idx columnIndex) cell(row []string, f field) string {
	pos := idx[f]
	if pos < 0 || pos >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[pos])
}
