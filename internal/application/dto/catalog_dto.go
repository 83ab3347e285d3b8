package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest alta/edición de producto. No incluye cantidad en stock:
// esa columna solo la muta el Stock Ledger a través de los movimientos.
type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LocationID  *string         `json:"location_id,omitempty"`
}

// ProductDTO vista de producto para la API.
type ProductDTO struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Category        string          `json:"category,omitempty"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	QuantityInStock int64           `json:"quantity_in_stock"`
	LocationID      *string         `json:"location_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CounterpartyRequest alta/edición de proveedor o cliente.
type CounterpartyRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
}

// LocationRequest alta/edición de lugar de almacenamiento.
type LocationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Capacity    *int64 `json:"capacity,omitempty"`
}

// InvoiceRequest alta de factura.
type InvoiceRequest struct {
	CustomerID  string          `json:"customer_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	InvoiceDate time.Time       `json:"invoice_date"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
}

// InvoiceStatusRequest cambio de estado de factura.
type InvoiceStatusRequest struct {
	Status string `json:"status"`
}

// CounterpartyDTO vista de proveedor o cliente para la API.
type CounterpartyDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// LocationDTO vista de lugar de almacenamiento para la API.
type LocationDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Capacity    *int64    `json:"capacity,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// InvoiceDTO vista de factura para la API.
type InvoiceDTO struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	InvoiceDate time.Time       `json:"invoice_date"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}
