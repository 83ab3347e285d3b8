package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// InvoiceUseCase facturas de clientes. Dimensión independiente del inventario:
// crear o pagar una factura no genera movimientos de stock.
type InvoiceUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
}

// NewInvoiceUseCase construye el caso de uso de facturas.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, customerRepo repository.CustomerRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, customerRepo: customerRepo}
}

// Create da de alta una factura en estado pending.
func (uc *InvoiceUseCase) Create(in dto.InvoiceRequest) (*entity.Invoice, error) {
	if in.CustomerID == "" || in.TotalAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	invoice := &entity.Invoice{
		ID:          uuid.New().String(),
		CustomerID:  in.CustomerID,
		TotalAmount: in.TotalAmount,
		InvoiceDate: in.InvoiceDate,
		DueDate:     in.DueDate,
		Status:      entity.InvoiceStatusPending,
		CreatedAt:   time.Now(),
	}
	if err := uc.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// GetByID obtiene una factura.
func (uc *InvoiceUseCase) GetByID(id string) (*entity.Invoice, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return invoice, nil
}

// ListByCustomer lista las facturas de un cliente.
func (uc *InvoiceUseCase) ListByCustomer(customerID string, limit, offset int) ([]*entity.Invoice, error) {
	return uc.invoiceRepo.ListByCustomer(customerID, limit, offset)
}

// SetStatus cambia el estado de una factura (pending/paid/overdue).
func (uc *InvoiceUseCase) SetStatus(id, status string) error {
	if !entity.ValidInvoiceStatus(status) {
		return domain.ErrInvalidInput
	}
	if _, err := uc.GetByID(id); err != nil {
		return err
	}
	return uc.invoiceRepo.UpdateStatus(id, status)
}

// Delete elimina una factura.
func (uc *InvoiceUseCase) Delete(id string) error {
	if _, err := uc.GetByID(id); err != nil {
		return err
	}
	return uc.invoiceRepo.Delete(id)
}
