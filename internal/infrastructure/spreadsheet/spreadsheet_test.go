package spreadsheet_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/importador-clientes/internal/application/importer"
	"github.com/jhoicas/importador-clientes/internal/domain"
	"github.com/jhoicas/importador-clientes/internal/infrastructure/spreadsheet"
)

var header = []any{"Nome/Razão Social", "Nome Fantasia", "CPF/CNPJ", "Data Nasc.", "Data Cadastro cliente"}

func buildXLSX(t *testing.T) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Maria Silva", "", "123.456.789-00", "15/03/1985"}))
	require.NoError(t, f.SetCellValue(sheet, "A3", "Empresa X"))
	require.NoError(t, f.SetCellValue(sheet, "C3", int64(12345678000195)))
	require.NoError(t, f.SetCellValue(sheet, "E3", time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestRead_XLSX(t *testing.T) {
	table, err := spreadsheet.Read(buildXLSX(t), "dados_importacao.xlsx", spreadsheet.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Nome/Razão Social", "Nome Fantasia", "CPF/CNPJ", "Data Nasc.", "Data Cadastro cliente"}, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "123.456.789-00", table.Rows[0][2])
	assert.Equal(t, "12345678000195", table.Rows[1][2], "números sin notación científica")
	assert.Equal(t, "45306", table.Rows[1][4], "fecha como serial de Excel")
	assert.True(t, table.ExcelSerialDates)

	out, err := importer.NewNormalizer().Normalize(table)
	require.NoError(t, err)
	require.Len(t, out.Rows, 2)
	assert.Equal(t, "2024-01-15", out.Rows[1].RegistrationDate.Format("2006-01-02"))
}

// El libro se guardó con "Notas" activa: sin --sheet igual se lee la primera hoja.
func TestRead_XLSX_PrimeraHojaAunqueOtraEsteActiva(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	first := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(first, "A1", &header))
	require.NoError(t, f.SetSheetRow(first, "A2", &[]any{"Maria Silva", "", "123.456.789-00"}))
	notes, err := f.NewSheet("Notas")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Notas", "A1", "rascunho"))
	f.SetActiveSheet(notes)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	table, err := spreadsheet.Read(buf, "dados.xlsx", spreadsheet.Options{})
	require.NoError(t, err)
	assert.Equal(t, "Nome/Razão Social", table.Header[0])
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Maria Silva", table.Rows[0][0])
}

func TestRead_XLSX_HojaInexistente(t *testing.T) {
	_, err := spreadsheet.Read(buildXLSX(t), "x.xlsx", spreadsheet.Options{Sheet: "Clientes"})
	assert.Error(t, err)
}

func TestRead_CSV_PuntoYComaLatin1(t *testing.T) {
	content := "Nome/Razão Social;Nome Fantasia;CPF/CNPJ;Data Nasc.;Data Cadastro cliente\n" +
		"João Araújo;;111.222.333-44;01/02/1990;\n"
	encoded, err := charmap.ISO8859_1.NewEncoder().String(content)
	require.NoError(t, err)

	table, err := spreadsheet.Read(bytes.NewBufferString(encoded), "export.CSV", spreadsheet.Options{CSVEncoding: "iso-8859-1"})
	require.NoError(t, err)

	assert.Equal(t, "Nome/Razão Social", table.Header[0])
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "João Araújo", table.Rows[0][0])
	assert.Equal(t, "111.222.333-44", table.Rows[0][2])
}

// En CSV un año suelto no es un serial de Excel.
func TestRead_CSV_AnoSueltoNoEsFecha(t *testing.T) {
	content := "Nome/Razão Social,Nome Fantasia,CPF/CNPJ,Data Nasc.,Data Cadastro cliente\n" +
		"Ana,,111,1985,12\n"

	table, err := spreadsheet.Read(bytes.NewBufferString(content), "a.csv", spreadsheet.Options{})
	require.NoError(t, err)
	assert.False(t, table.ExcelSerialDates)

	out, err := importer.NewNormalizer().Normalize(table)
	require.NoError(t, err)
	require.Len(t, out.Rows, 1)
	assert.Nil(t, out.Rows[0].BirthDate)
	assert.Nil(t, out.Rows[0].RegistrationDate)
}

func TestRead_CSV_ComaConBOM(t *testing.T) {
	content := "\ufeffTax ID,Legal Name,Trade Name,Birth Date,Registration Date\n1,\"Acme, Inc\",,,\n"

	table, err := spreadsheet.Read(bytes.NewBufferString(content), "a.csv", spreadsheet.Options{})
	require.NoError(t, err)
	assert.Equal(t, "Tax ID", table.Header[0])
	assert.Equal(t, "Acme, Inc", table.Rows[0][1])
}

func TestRead_FormatoNoSoportado(t *testing.T) {
	_, err := spreadsheet.Read(bytes.NewBufferString("x"), "clientes.ods", spreadsheet.Options{})
	assert.ErrorIs(t, err, domain.ErrUnsupported)
}

func TestRead_SinEncabezado(t *testing.T) {
	_, err := spreadsheet.Read(bytes.NewBufferString(""), "vacio.csv", spreadsheet.Options{})
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
}

func TestLoad_DesdeArchivo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dados_importacao.xlsx")
	require.NoError(t, os.WriteFile(path, buildXLSX(t).Bytes(), 0o600))

	table, err := spreadsheet.Load(path, spreadsheet.Options{})
	require.NoError(t, err)
	assert.Len(t, table.Rows, 2)

	_, err = spreadsheet.Load(filepath.Join(t.TempDir(), "nao_existe.xlsx"), spreadsheet.Options{})
	assert.Error(t, err)
}
