package spreadsheet

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jhoicas/importador-clientes/internal/application/importer"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// readCSV lee un CSV exportado. Detecta ';' como separador (Excel en pt-BR) y
// decodifica ISO-8859-1 cuando se configura.
func readCSV(r io.Reader, encoding string) (importer.Table, error) {
	switch encoding {
	case "iso-8859-1", "latin1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}

	br := bufio.NewReader(r)
	first, _ := br.Peek(4096)

	cr := csv.NewReader(br)
	cr.Comma = detectDelimiter(first)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return importer.Table{}, fmt.Errorf("leer csv: %w", err)
	}
	return split(records)
}

func detectDelimiter(sample []byte) rune {
	if i := bytes.IndexByte(sample, '\n'); i >= 0 {
		sample = sample[:i]
	}
	if bytes.Count(sample, []byte{';'}) > bytes.Count(sample, []byte{','}) {
		return ';'
	}
	return ','
}
