package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/acceptance"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// AcceptanceHandler maneja las actas de aceptación de entradas.
type AcceptanceHandler struct {
	uc *acceptance.UseCase
}

// NewAcceptanceHandler construye el handler.
func NewAcceptanceHandler(uc *acceptance.UseCase) *AcceptanceHandler {
	return &AcceptanceHandler{uc: uc}
}

// Record registra un acta sobre una entrada. La cantidad aceptada acumulada no
// puede exceder la cantidad de la entrada.
func (h *AcceptanceHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordAcceptanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.AcceptedDate.IsZero() {
		in.AcceptedDate = time.Now()
	}
	id, err := h.uc.Record(c.Context(), in.SupplyID, in.AcceptedQuantity, in.AcceptedDate, in.InspectorName, in.Notes)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// Update edita un acta existente respetando el límite de la entrada.
func (h *AcceptanceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAcceptanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), c.Params("id"), in.AcceptedQuantity, in.AcceptedDate, in.InspectorName, in.Notes); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete elimina un acta. No toca el stock: las actas son auditoría de
// recepción, no movimientos.
func (h *AcceptanceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListBySupply devuelve las actas de una entrada.
func (h *AcceptanceHandler) ListBySupply(c *fiber.Ctx) error {
	certs, err := h.uc.ListBySupply(c.Context(), c.Params("supplyId"))
	if err != nil {
		return h.mapError(c, err)
	}
	out := make([]dto.CertificateDTO, 0, len(certs))
	for _, cert := range certs {
		out = append(out, toCertificateDTO(cert))
	}
	return c.JSON(out)
}

// TotalAccepted devuelve el total aceptado acumulado frente al pedido.
func (h *AcceptanceHandler) TotalAccepted(c *fiber.Ctx) error {
	supplyID := c.Params("supplyId")
	ordered, accepted, err := h.uc.TotalAccepted(c.Context(), supplyID)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(dto.TotalAcceptedResponse{SupplyID: supplyID, OrderedQty: ordered, TotalAccepted: accepted})
}

func (h *AcceptanceHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrQuantityExceedsSupply):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EXCEEDS_SUPPLY", Message: "la cantidad aceptada supera la cantidad de la entrada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toCertificateDTO(cert *entity.AcceptanceCertificate) dto.CertificateDTO {
	return dto.CertificateDTO{
		ID:               cert.ID,
		SupplyID:         cert.SupplyID,
		AcceptedQuantity: cert.AcceptedQuantity,
		AcceptedDate:     cert.AcceptedDate,
		InspectorName:    cert.InspectorName,
		Notes:            cert.Notes,
		CreatedAt:        cert.CreatedAt,
	}
}
