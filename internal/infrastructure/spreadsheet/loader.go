// Package spreadsheet lee la planilla de clientes (.xlsx/.xlsm con excelize, .csv con encoding/csv)
// y la devuelve como importer.Table.
package spreadsheet

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/importador-clientes/internal/application/importer"
	"github.com/jhoicas/importador-clientes/internal/domain"
)

// Options opciones de lectura.
type Options struct {
	Sheet       string // hoja de Excel; vacío = primera
	CSVEncoding string // utf-8 | iso-8859-1 (solo CSV)
}

// Load abre el archivo y lo lee según su extensión.
func Load(path string, opts Options) (importer.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return importer.Table{}, fmt.Errorf("abrir planilla: %w", err)
	}
	defer f.Close()
	return Read(f, filepath.Base(path), opts)
}

// Read lee la planilla desde r. name solo se usa para detectar el formato por extensión.
func Read(r io.Reader, name string, opts Options) (importer.Table, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return readXLSX(r, opts.Sheet)
	case ".csv":
		return readCSV(r, opts.CSVEncoding)
	default:
		return importer.Table{}, fmt.Errorf("%w: %q", domain.ErrUnsupported, name)
	}
}

// split separa encabezado y filas. Una planilla sin encabezado es inválida.
func split(records [][]string) (importer.Table, error) {
	if len(records) == 0 {
		return importer.Table{}, fmt.Errorf("%w: la planilla no tiene encabezado", domain.ErrMissingColumn)
	}
	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	return importer.Table{Header: header, Rows: records[1:]}, nil
}
