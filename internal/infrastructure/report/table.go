package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/jhoicas/importador-clientes/internal/application/importer"
)

// TableWriter imprime el resumen como tablas de texto (salida del comando importer).
type TableWriter struct {
	w io.Writer
}

// NewTableWriter construye el writer sobre w (normalmente os.Stdout).
func NewTableWriter(w io.Writer) *TableWriter {
	return &TableWriter{w: w}
}

// Write imprime los totales y, si hubo rechazos, la lista de registros no importados.
func (t *TableWriter) Write(s *importer.Summary) error {
	totals := tablewriter.NewTable(t.w)
	totals.Header("Procesados", "Actualizados", "Insertados", "Rechazados", "Duplicados", "Vacías", "Duración")
	if err := totals.Append(
		strconv.Itoa(s.Total),
		strconv.Itoa(s.Updated),
		strconv.Itoa(s.Inserted),
		strconv.Itoa(len(s.Rejections)),
		strconv.Itoa(len(s.DroppedDuplicates)),
		strconv.Itoa(len(s.SkippedBlankRows)),
		s.Duration().Round(time.Millisecond).String(),
	); err != nil {
		return fmt.Errorf("tabla de totales: %w", err)
	}
	if err := totals.Render(); err != nil {
		return fmt.Errorf("tabla de totales: %w", err)
	}

	if len(s.Rejections) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(t.w, "\nRegistros no importados:"); err != nil {
		return err
	}
	rejections := tablewriter.NewTable(t.w)
	rejections.Header("Línea", "CPF/CNPJ", "Clase", "Motivo")
	for _, rej := range s.Rejections {
		if err := rejections.Append(strconv.Itoa(rej.Line), rej.TaxID, string(rej.Class), rej.Reason); err != nil {
			return fmt.Errorf("tabla de rechazos: %w", err)
		}
	}
	if err := rejections.Render(); err != nil {
		return fmt.Errorf("tabla de rechazos: %w", err)
	}
	return nil
}
