package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplyRequest alta de una entrada de proveedor.
type CreateSupplyRequest struct {
	SupplierID string          `json:"supplier_id"`
	ProductID  string          `json:"product_id"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Date       time.Time       `json:"date"`
}

// CreateShipmentRequest alta de un despacho a cliente.
type CreateShipmentRequest struct {
	CustomerID string          `json:"customer_id"`
	ProductID  string          `json:"product_id"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Date       time.Time       `json:"date"`
}

// EditMovementRequest edición de un movimiento existente. El total se recalcula
// siempre como quantity × unit_price; no es editable. Los campos de referencia
// son opcionales: vacíos conservan el producto/contraparte actual.
type EditMovementRequest struct {
	Quantity       int64           `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Date           time.Time       `json:"date"`
	ProductID      string          `json:"product_id,omitempty"`
	CounterpartyID string          `json:"counterparty_id,omitempty"`
}

// MovementDTO vista de un movimiento para la API.
type MovementDTO struct {
	ID             string          `json:"id"`
	Kind           string          `json:"kind"`
	ProductID      string          `json:"product_id"`
	CounterpartyID string          `json:"counterparty_id"`
	Quantity       int64           `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	MovementDate   time.Time       `json:"movement_date"`
	CreatedAt      time.Time       `json:"created_at"`
}

// MovementQuery filtros de consulta de movimientos (query params).
type MovementQuery struct {
	ProductID      string `query:"product_id"`
	CounterpartyID string `query:"counterparty_id"`
	Kind           string `query:"kind"`
	From           string `query:"from"` // YYYY-MM-DD
	To             string `query:"to"`   // YYYY-MM-DD
	PageRequest
}

// StockResponse cantidad en stock de un producto.
type StockResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}
