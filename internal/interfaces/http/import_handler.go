package http

import (
	"errors"
	"io"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/importador-clientes/internal/application/dto"
	"github.com/jhoicas/importador-clientes/internal/application/importer"
	"github.com/jhoicas/importador-clientes/internal/domain"
	"github.com/jhoicas/importador-clientes/pkg/logger"
)

// TableReader convierte el archivo subido en importer.Table (ver spreadsheet.Read).
type TableReader func(r io.Reader, name string) (importer.Table, error)

// SummaryPDF genera el resumen en PDF.
type SummaryPDF interface {
	Generate(s *importer.Summary) ([]byte, error)
}

// ImportHandler recibe planillas por HTTP. Solo corre una importación a la vez.
type ImportHandler struct {
	uc    *importer.ImportUseCase
	read  TableReader
	pdf   SummaryPDF
	log   *logger.Logger
	runMu sync.Mutex
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importer.ImportUseCase, read TableReader, pdf SummaryPDF, log *logger.Logger) *ImportHandler {
	return &ImportHandler{uc: uc, read: read, pdf: pdf, log: log}
}

// Import POST /api/customers/import (multipart, campo "file"; ?format=pdf para el reporte en PDF)
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo 'file' requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	defer f.Close()

	table, err := h.read(f, fh.Filename)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupported) {
			return c.Status(fiber.StatusUnsupportedMediaType).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FORMAT", Message: "use .xlsx, .xlsm o .csv"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}

	if !h.runMu.TryLock() {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IMPORT_IN_PROGRESS", Message: "ya hay una importación en curso"})
	}
	defer h.runMu.Unlock()

	h.log.Info().Str("archivo", fh.Filename).Str("user_id", GetUserID(c)).Msg("importación solicitada por HTTP")
	summary, err := h.uc.Import(c.Context(), fh.Filename, table)
	if err != nil {
		if errors.Is(err, domain.ErrMissingColumn) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "MISSING_COLUMN", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	if c.Query("format") == "pdf" {
		doc, err := h.pdf.Generate(summary)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="importacion-`+summary.RunID+`.pdf"`)
		return c.Send(doc)
	}
	return c.JSON(dto.NewImportSummaryResponse(summary))
}
