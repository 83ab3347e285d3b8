package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/catalog"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// InvoiceHandler maneja las facturas de clientes.
type InvoiceHandler struct {
	uc *catalog.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *catalog.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Create emite una factura en estado pending.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv, err := h.uc.Create(in)
	if err != nil {
		return catalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toInvoiceDTO(inv))
}

func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(toInvoiceDTO(inv))
}

// ListByCustomer lista las facturas de un cliente.
func (h *InvoiceHandler) ListByCustomer(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	invoices, err := h.uc.ListByCustomer(c.Params("customerId"), page.Limit, page.Offset)
	if err != nil {
		return catalogError(c, err)
	}
	out := make([]dto.InvoiceDTO, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toInvoiceDTO(inv))
	}
	return c.JSON(out)
}

// SetStatus cambia el estado de una factura (pending, paid, overdue).
func (h *InvoiceHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.InvoiceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetStatus(c.Params("id"), in.Status); err != nil {
		return catalogError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return catalogError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toInvoiceDTO(inv *entity.Invoice) dto.InvoiceDTO {
	return dto.InvoiceDTO{
		ID:          inv.ID,
		CustomerID:  inv.CustomerID,
		TotalAmount: inv.TotalAmount,
		InvoiceDate: inv.InvoiceDate,
		DueDate:     inv.DueDate,
		Status:      inv.Status,
		CreatedAt:   inv.CreatedAt,
	}
}
