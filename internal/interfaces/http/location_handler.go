package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/catalog"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// LocationHandler maneja los lugares de almacenamiento.
type LocationHandler struct {
	uc *catalog.LocationUseCase
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *catalog.LocationUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.LocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	loc, err := h.uc.Create(in)
	if err != nil {
		return catalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toLocationDTO(loc))
}

func (h *LocationHandler) GetByID(c *fiber.Ctx) error {
	loc, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(toLocationDTO(loc))
}

func (h *LocationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	locations, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return catalogError(c, err)
	}
	out := make([]dto.LocationDTO, 0, len(locations))
	for _, loc := range locations {
		out = append(out, toLocationDTO(loc))
	}
	return c.JSON(out)
}

func (h *LocationHandler) Update(c *fiber.Ctx) error {
	var in dto.LocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	loc, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(toLocationDTO(loc))
}

// Delete elimina un lugar; con productos asignados responde 409.
func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return catalogError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toLocationDTO(loc *entity.StorageLocation) dto.LocationDTO {
	return dto.LocationDTO{
		ID:          loc.ID,
		Name:        loc.Name,
		Description: loc.Description,
		Capacity:    loc.Capacity,
		CreatedAt:   loc.CreatedAt,
	}
}
