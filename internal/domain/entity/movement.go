package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementKindSupply   = "SUPPLY"   // entrada (compra a proveedor)
	MovementKindShipment = "SHIPMENT" // salida (despacho a cliente)
)

// Movement representa una entrada o un despacho: la única fuente de la que se
// deriva el stock de un producto. CounterpartyID es el proveedor en SUPPLY y el
// cliente en SHIPMENT. TotalPrice siempre es Quantity × UnitPrice; se recalcula
// en cada edición y nunca se acepta desde fuera.
type Movement struct {
	ID             string
	Kind           string
	ProductID      string
	CounterpartyID string
	Quantity       int64
	UnitPrice      decimal.Decimal
	TotalPrice     decimal.Decimal
	MovementDate   time.Time
	CreatedAt      time.Time
}

// Delta devuelve el cambio de stock con signo: +Quantity para SUPPLY,
// -Quantity para SHIPMENT.
func (m *Movement) Delta() int64 {
	if m.Kind == MovementKindShipment {
		return -m.Quantity
	}
	return m.Quantity
}

// IsSupply indica si el movimiento es una entrada.
func (m *Movement) IsSupply() bool { return m.Kind == MovementKindSupply }
