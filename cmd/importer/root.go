package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jhoicas/importador-clientes/internal/application/importer"
	"github.com/jhoicas/importador-clientes/internal/infrastructure/postgres"
	"github.com/jhoicas/importador-clientes/internal/infrastructure/report"
	"github.com/jhoicas/importador-clientes/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/importador-clientes/pkg/config"
	"github.com/jhoicas/importador-clientes/pkg/logger"
)

// flags pisan los valores de configuración cuando se informan.
type flags struct {
	sheet     string
	encoding  string
	reportPDF string
	migrate   bool
	noTable   bool
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "importer [archivo]",
		Short: "Importa clientes desde una planilla (.xlsx, .xlsm o .csv) a PostgreSQL",
		Long: `Lee la planilla de clientes, normaliza CPF/CNPJ y concilia cada fila con la tabla
customers: actualiza los clientes existentes, inserta los nuevos y lista los rechazados.

La conexión se configura con DB_USERNAME, DB_PASSWORD, DB_HOST, DB_PORT y DB_NAME
(o DATABASE_URL).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "hoja de Excel (por defecto IMPORT_SHEET o la primera)")
	cmd.Flags().StringVar(&f.encoding, "encoding", "", "codificación del CSV: utf-8 | iso-8859-1")
	cmd.Flags().StringVar(&f.reportPDF, "report-pdf", "", "ruta del reporte PDF (por defecto REPORT_PDF_PATH)")
	cmd.Flags().BoolVar(&f.migrate, "migrate", false, "crear la tabla customers si no existe")
	cmd.Flags().BoolVar(&f.noTable, "no-table", false, "no imprimir el resumen en tablas")
	return cmd
}

func run(cmd *cobra.Command, args []string, f flags) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "cargar configuración:", err)
		return err
	}
	applyFlags(cfg, args, f)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "opciones inválidas:", err)
		return err
	}

	// logs a stderr; stdout queda para las tablas del resumen
	log := logger.New(logger.Config{
		Env:    cfg.App.Env,
		Level:  cfg.App.LogLevel,
		Output: cmd.ErrOrStderr(),
	}).WithStr("archivo", cfg.Import.File)

	table, err := spreadsheet.Load(cfg.Import.File, spreadsheet.Options{
		Sheet:       cfg.Import.Sheet,
		CSVEncoding: cfg.Import.CSVEncoding,
	})
	if err != nil {
		log.Error().Err(err).Msg("leer planilla")
		return err
	}
	log.Info().Int("filas", len(table.Rows)).Msg("planilla leída")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("conexión a PostgreSQL")
		return err
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Error().Err(err).Msg("crear esquema")
			return err
		}
	}

	uc := importer.NewImportUseCase(postgres.NewTxRunner(pool), report.NewLogReporter(log))
	summary, err := uc.Import(ctx, cfg.Import.File, table)
	if err != nil {
		log.Error().Err(err).Msg("planilla inválida")
		return err
	}

	if !f.noTable {
		if err := report.NewTableWriter(cmd.OutOrStdout()).Write(summary); err != nil {
			log.Warn().Err(err).Msg("imprimir resumen")
		}
	}

	// el lote ya terminó; un fallo del PDF no cambia el código de salida
	if cfg.Import.ReportPDFPath != "" {
		writePDF(log, summary, cfg.Import.ReportPDFPath)
	}
	return nil
}

func applyFlags(cfg *config.Config, args []string, f flags) {
	if len(args) == 1 && args[0] != "" {
		cfg.Import.File = args[0]
	}
	if f.sheet != "" {
		cfg.Import.Sheet = f.sheet
	}
	if f.encoding != "" {
		cfg.Import.CSVEncoding = strings.ToLower(f.encoding)
	}
	if f.reportPDF != "" {
		cfg.Import.ReportPDFPath = f.reportPDF
	}
	if f.migrate {
		cfg.DB.AutoMigrate = true
	}
}

func writePDF(log *logger.Logger, summary *importer.Summary, path string) {
	doc, err := report.NewPDFWriter().Generate(summary)
	if err != nil {
		log.Error().Err(err).Msg("generar reporte PDF")
		return
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		log.Error().Err(err).Str("ruta", path).Msg("escribir reporte PDF")
		return
	}
	log.Info().Str("ruta", path).Msg("reporte PDF generado")
}
