package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/importador-clientes/internal/application/customer"
	"github.com/jhoicas/importador-clientes/internal/application/importer"
	"github.com/jhoicas/importador-clientes/internal/infrastructure/postgres"
	"github.com/jhoicas/importador-clientes/internal/infrastructure/report"
	"github.com/jhoicas/importador-clientes/internal/infrastructure/spreadsheet"
	httpRouter "github.com/jhoicas/importador-clientes/internal/interfaces/http"
	"github.com/jhoicas/importador-clientes/pkg/config"
	"github.com/jhoicas/importador-clientes/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio para la API")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("crear esquema")
		}
	}

	customerRepo := postgres.NewCustomerRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	importUC := importer.NewImportUseCase(txRunner, report.NewLogReporter(log))
	queryUC := customer.NewQueryUseCase(customerRepo)

	readOpts := spreadsheet.Options{Sheet: cfg.Import.Sheet, CSVEncoding: cfg.Import.CSVEncoding}
	readTable := func(r io.Reader, name string) (importer.Table, error) {
		return spreadsheet.Read(r, name, readOpts)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    32 * 1024 * 1024,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Minute * 5, // una planilla grande se procesa dentro del request
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "db_unavailable", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ImportHandler:   httpRouter.NewImportHandler(importUC, readTable, report.NewPDFWriter(), log),
		CustomerHandler: httpRouter.NewCustomerHandler(queryUC),
		JWTSecret:       cfg.JWT.Secret,
		JWTIssuer:       cfg.JWT.Issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
