package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/movement"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// MovementHandler maneja entradas, despachos y consultas de stock.
type MovementHandler struct {
	uc *movement.UseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *movement.UseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// CreateSupply registra una entrada de proveedor e incrementa el stock.
func (h *MovementHandler) CreateSupply(c *fiber.Ctx) error {
	var in dto.CreateSupplyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}
	id, err := h.uc.CreateSupply(c.Context(), in.SupplierID, in.ProductID, in.Quantity, in.UnitPrice, in.Date)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// CreateShipment registra un despacho a cliente y descuenta el stock. Si el
// stock es insuficiente el despacho se rechaza completo con 409.
func (h *MovementHandler) CreateShipment(c *fiber.Ctx) error {
	var in dto.CreateShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}
	id, err := h.uc.CreateShipment(c.Context(), in.CustomerID, in.ProductID, in.Quantity, in.UnitPrice, in.Date)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// Edit modifica un movimiento; el ajuste de stock (revertir lo viejo, aplicar
// lo nuevo) ocurre en una sola transacción.
func (h *MovementHandler) Edit(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.EditMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Edit(c.Context(), id, in.Quantity, in.UnitPrice, in.Date, in.ProductID, in.CounterpartyID); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete elimina un movimiento revirtiendo su efecto sobre el stock.
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID devuelve un movimiento.
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	m, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(toMovementDTO(m))
}

// List consulta movimientos con filtros de producto, contraparte, tipo y rango
// de fechas.
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var q dto.MovementQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	q.DefaultPage()

	filter := repository.MovementFilter{
		ProductID:      q.ProductID,
		CounterpartyID: q.CounterpartyID,
		Kind:           q.Kind,
		Limit:          q.Limit,
		Offset:         q.Offset,
	}
	var err error
	if filter.From, err = parseDateParam(q.From); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from: formato esperado YYYY-MM-DD"})
	}
	if filter.To, err = parseDateParam(q.To); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "to: formato esperado YYYY-MM-DD"})
	}

	movements, err := h.uc.Query(c.Context(), filter)
	if err != nil {
		return h.mapError(c, err)
	}
	out := make([]dto.MovementDTO, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementDTO(m))
	}
	return c.JSON(out)
}

// GetStock devuelve la cantidad en stock de un producto.
func (h *MovementHandler) GetStock(c *fiber.Ctx) error {
	productID := c.Params("id")
	qty, err := h.uc.GetProductStock(c.Context(), productID)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(dto.StockResponse{ProductID: productID, Quantity: qty})
}

func (h *MovementHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para el despacho"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toMovementDTO(m *entity.Movement) dto.MovementDTO {
	return dto.MovementDTO{
		ID:             m.ID,
		Kind:           m.Kind,
		ProductID:      m.ProductID,
		CounterpartyID: m.CounterpartyID,
		Quantity:       m.Quantity,
		UnitPrice:      m.UnitPrice,
		TotalPrice:     m.TotalPrice,
		MovementDate:   m.MovementDate,
		CreatedAt:      m.CreatedAt,
	}
}

// parseDateParam interpreta un query param de fecha YYYY-MM-DD; vacío devuelve
// nil (sin filtro).
func parseDateParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
