package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/catalog"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// SupplierHandler maneja el catálogo de proveedores.
type SupplierHandler struct {
	uc *catalog.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *catalog.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CounterpartyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.uc.Create(in)
	if err != nil {
		return catalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(supplierDTO(s))
}

func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	s, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(supplierDTO(s))
}

func (h *SupplierHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	suppliers, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return catalogError(c, err)
	}
	out := make([]dto.CounterpartyDTO, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, supplierDTO(s))
	}
	return c.JSON(out)
}

func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.CounterpartyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(supplierDTO(s))
}

func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return catalogError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CustomerHandler maneja el catálogo de clientes.
type CustomerHandler struct {
	uc *catalog.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *catalog.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CounterpartyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cu, err := h.uc.Create(in)
	if err != nil {
		return catalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customerDTO(cu))
}

func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	cu, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(customerDTO(cu))
}

func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	customers, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return catalogError(c, err)
	}
	out := make([]dto.CounterpartyDTO, 0, len(customers))
	for _, cu := range customers {
		out = append(out, customerDTO(cu))
	}
	return c.JSON(out)
}

func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.CounterpartyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cu, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(customerDTO(cu))
}

func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return catalogError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func supplierDTO(s *entity.Supplier) dto.CounterpartyDTO {
	return dto.CounterpartyDTO{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		CreatedAt:     s.CreatedAt,
	}
}

func customerDTO(cu *entity.Customer) dto.CounterpartyDTO {
	return dto.CounterpartyDTO{
		ID:            cu.ID,
		Name:          cu.Name,
		ContactPerson: cu.ContactPerson,
		Phone:         cu.Phone,
		Email:         cu.Email,
		Address:       cu.Address,
		CreatedAt:     cu.CreatedAt,
	}
}
