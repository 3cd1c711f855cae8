package spreadsheet

import (
	"fmt"
	"io"

	"github.com/jhoicas/importador-clientes/internal/application/importer"
	"github.com/xuri/excelize/v2"
)

// readXLSX lee la hoja indicada con valores crudos: las fechas llegan como serial de Excel
// y los CPF numéricos sin notación científica.
func readXLSX(r io.Reader, sheet string) (importer.Table, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return importer.Table{}, fmt.Errorf("leer xlsx: %w", err)
	}
	defer wb.Close()

	// sin --sheet se lee la primera hoja del libro, no la que quedó activa al guardar
	if sheet == "" {
		list := wb.GetSheetList()
		if len(list) == 0 {
			return importer.Table{}, fmt.Errorf("leer xlsx: libro sin hojas")
		}
		sheet = list[0]
	}
	if idx, err := wb.GetSheetIndex(sheet); err != nil || idx < 0 {
		return importer.Table{}, fmt.Errorf("leer xlsx: hoja %q no encontrada", sheet)
	}

	records, err := wb.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return importer.Table{}, fmt.Errorf("leer hoja %q: %w", sheet, err)
	}
	t, err := split(records)
	if err != nil {
		return importer.Table{}, err
	}
	t.ExcelSerialDates = true
	return t, nil
}
