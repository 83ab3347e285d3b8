package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
// El motor de inventario solo lo lee (join del reporte de ventas).
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	ListByCustomer(customerID string, limit, offset int) ([]*entity.Invoice, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
}
