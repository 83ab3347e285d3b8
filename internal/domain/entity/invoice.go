package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de factura. Vocabulario cerrado: ValidInvoiceStatus rechaza
// cualquier otro valor.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// Invoice es un registro de cobro ligado a un cliente. Dimensión independiente
// de los movimientos: el motor de inventario solo la lee para reportes.
type Invoice struct {
	ID          string
	CustomerID  string
	TotalAmount decimal.Decimal
	InvoiceDate time.Time
	DueDate     *time.Time
	Status      string
	CreatedAt   time.Time
}

// ValidInvoiceStatus indica si s es un estado de factura conocido.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}
