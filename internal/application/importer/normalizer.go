package importer

import (
	"time"

	"github.com/jhoicas/importador-clientes/internal/domain/entity"
	"github.com/jhoicas/importador-clientes/pkg/taxid"
)

// Normalizer convierte la planilla cruda en filas candidatas.
type Normalizer struct {
	now func() time.Time
}

// NewNormalizer construye el normalizador con el reloj del sistema.
func NewNormalizer() *Normalizer {
	return &Normalizer{now: time.Now}
}

// Normalized salida del normalizador.
type Normalized struct {
	Rows    []CandidateRow
	Dropped []DroppedDuplicate
	Blank   []int // líneas vacías saltadas
}

// Normalize ubica las columnas conocidas, descarta duplicados por tax_id (gana la primera
// aparición), limpia el identificador, completa el nombre fantasía y convierte las fechas.
// Solo falla si al encabezado le falta alguna columna conocida; los datos malos de una fila
// nunca son error (fechas inválidas quedan nil).
func (n *Normalizer) Normalize(t Table) (*Normalized, error) {
	idx, err := resolveColumns(t.Header)
	if err != nil {
		return nil, err
	}

	now := n.now()
	out := &Normalized{Rows: make([]CandidateRow, 0, len(t.Rows))}
	firstSeen := make(map[string]int, len(t.Rows))

	for i, raw := range t.Rows {
		line := i + 2 // el encabezado ocupa la línea 1
		if isBlankRow(idx, raw) {
			out.Blank = append(out.Blank, line)
			continue
		}

		id := taxid.Normalize(idx.cell(raw, fieldTaxID))
		if first, dup := firstSeen[id]; dup {
			out.Dropped = append(out.Dropped, DroppedDuplicate{Line: line, TaxID: id, FirstLine: first})
			continue
		}
		firstSeen[id] = line

		tradeName := idx.cell(raw, fieldTradeName)
		if tradeName == "" {
			tradeName = entity.TradeNameNotInformed
		}

		out.Rows = append(out.Rows, CandidateRow{
			Line:             line,
			LegalName:        idx.cell(raw, fieldLegalName),
			TradeName:        tradeName,
			TaxID:            id,
			BirthDate:        parseDate(idx.cell(raw, fieldBirthDate), now, t.ExcelSerialDates),
			RegistrationDate: parseDate(idx.cell(raw, fieldRegistrationDate), now, t.ExcelSerialDates),
		})
	}
	return out, nil
}

// isBlankRow filas sin ninguno de los cinco campos (líneas vacías al final de la hoja).
func isBlankRow(idx columnIndex, row []string) bool {
	for f := field(0); f < fieldCount; f++ {
		if idx.cell(row, f) != "" {
			return false
		}
	}
	return true
}
