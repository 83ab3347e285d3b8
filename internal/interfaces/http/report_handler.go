package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// ReportHandler expone el motor de reportes.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Generate devuelve el reporte pedido en :kind sobre el rango from/to
// (YYYY-MM-DD). Sin rango se usan los últimos 30 días.
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	kind := c.Params("kind")

	fromPtr, err := parseDateParam(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from: formato esperado YYYY-MM-DD"})
	}
	toPtr, err := parseDateParam(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "to: formato esperado YYYY-MM-DD"})
	}

	to := time.Now()
	if toPtr != nil {
		// El límite superior es inclusivo: se extiende al final del día.
		to = toPtr.Add(24*time.Hour - time.Nanosecond)
	}
	from := to.AddDate(0, 0, -30)
	if fromPtr != nil {
		from = *fromPtr
	}
	if from.After(to) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from no puede ser posterior a to"})
	}

	out, err := h.uc.Generate(c.Context(), kind, from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_REPORT", Message: "tipo de reporte desconocido: " + kind})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
