// Package importer concilia clientes leídos de una planilla con la tabla customers:
// normaliza las filas, decide entre UPDATE e INSERT por CPF/CNPJ y registra los rechazos
// sin abortar el lote.
package importer

import (
	"time"

	"github.com/google/uuid"
)

// Table es la planilla cruda: encabezado y filas de texto, en el orden del archivo.
// ExcelSerialDates solo es true cuando la planilla viene de un xlsx: ahí un número en una
// columna de fecha es un serial de Excel. En CSV "1985" o "12" son texto y no se convierten.
type Table struct {
	Header           []string
	Rows             [][]string
	ExcelSerialDates bool
}

// CandidateRow fila normalizada lista para conciliar.
// Line es el número de línea en la planilla (el encabezado es la línea 1).
type CandidateRow struct {
	Line             int
	LegalName        string
	TradeName        string
	TaxID            string
	BirthDate        *time.Time
	RegistrationDate *time.Time
}

// DroppedDuplicate fila descartada por repetir un tax_id ya visto. No cuenta como rechazo.
type DroppedDuplicate struct {
	Line      int
	TaxID     string
	FirstLine int
}

// RejectionClass distingue el origen del rechazo.
type RejectionClass string

const (
	RejectionValidation RejectionClass = "validation" // detectado antes de tocar la BD
	RejectionIntegrity  RejectionClass = "integrity"  // unique u otra restricción de la BD
	RejectionStorage    RejectionClass = "storage"    // cualquier otro error de lectura/escritura
)

// Rejection registro no importado y su motivo.
type Rejection struct {
	Line   int
	TaxID  string
	Reason string
	Class  RejectionClass
}

// OutcomeKind resultado de conciliar una fila.
type OutcomeKind int

const (
	OutcomeUpdated OutcomeKind = iota + 1
	OutcomeInserted
	OutcomeRejected
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeUpdated:
		return "updated"
	case OutcomeInserted:
		return "inserted"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Outcome variante explícita: Updated | Inserted | Rejected{Rejection}.
type Outcome struct {
	Kind       OutcomeKind
	CustomerID int64      // id del cliente actualizado o insertado
	Rejection  *Rejection // solo en OutcomeRejected
}

// Summary resultado de una ejecución completa.
type Summary struct {
	RunID             string
	Source            string
	Total             int // filas procesadas después de deduplicar
	Updated           int
	Inserted          int
	Rejections        []Rejection
	DroppedDuplicates []DroppedDuplicate
	SkippedBlankRows  []int // líneas sin ninguno de los campos conocidos
	StartedAt         time.Time
	FinishedAt        time.Time
}

func newSummary(source string, now time.Time) *Summary {
	return &Summary{
		RunID:     uuid.NewString(),
		Source:    source,
		StartedAt: now,
	}
}

// record acumula el resultado de una fila en los contadores.
func (s *Summary) record(o Outcome) {
	switch o.Kind {
	case OutcomeUpdated:
		s.Updated++
	case OutcomeInserted:
		s.Inserted++
	case OutcomeRejected:
		s.Rejections = append(s.Rejections, *o.Rejection)
	}
}

// Duration tiempo total de la ejecución.
func (s *Summary) Duration() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}
