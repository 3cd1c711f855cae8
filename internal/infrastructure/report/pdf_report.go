package report

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/importador-clientes/internal/application/importer"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// PDFWriter genera el resumen de una importación en PDF (A4) con Maroto v2.
type PDFWriter struct{}

// NewPDFWriter construye el generador.
func NewPDFWriter() *PDFWriter { return &PDFWriter{} }

// Generate devuelve los bytes del PDF: totales y tabla de registros no importados.
func (w *PDFWriter) Generate(s *importer.Summary) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Importação de clientes", true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(s.Rejections) == 0 {
		m.AddRows(text.NewRow(8, "Todos los registros fueron importados.", props.Text{Size: 9, Top: 2, Color: colorGray}))
	} else {
		m.AddRows(rejectionHeaderRow())
		m.AddRows(rejectionRows(s.Rejections)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(s *importer.Summary) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("IMPORTACIÓN DE CLIENTES", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Origen: "+s.Source, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(s.FinishedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Ejecución "+s.RunID, props.Text{
				Size: 6, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func totalsRow(s *importer.Summary) core.Row {
	cell := func(label string, value int) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(strconv.Itoa(value), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 5, Color: colorPrimary,
			}),
		)
	}
	return row.New(14).Add(
		cell("Procesados", s.Total),
		cell("Actualizados", s.Updated),
		cell("Insertados", s.Inserted),
		cell("Rechazados", len(s.Rejections)),
		cell("Duplicados", len(s.DroppedDuplicates)),
		cell("Vacías", len(s.SkippedBlankRows)),
	)
}

func rejectionHeaderRow() core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Línea", 1),
		h("CPF/CNPJ", 3),
		h("Clase", 2),
		h("Motivo", 6),
	)
}

func rejectionRows(rejections []importer.Rejection) []core.Row {
	rows := make([]core.Row, 0, len(rejections))
	for _, rej := range rejections {
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(rej.Line), props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(rej.TaxID, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(string(rej.Class), props.Text{Size: 8, Top: 1})),
			col.New(6).Add(text.New(rej.Reason, props.Text{Size: 7, Top: 1})),
		))
	}
	return rows
}
