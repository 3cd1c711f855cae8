// Comando importer: importa una planilla de clientes a PostgreSQL en una sola ejecución.
//
//	importer [archivo.xlsx|archivo.csv] [--sheet Hoja1] [--encoding iso-8859-1] [--report-pdf out.pdf]
//
// Sin argumento usa IMPORT_FILE. Termina con código 0 aunque haya rechazos; 1 si no pudo
// arrancar (configuración, archivo, columnas o base de datos).
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
