package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo del almacén.
// QuantityInStock es propiedad exclusiva del Stock Ledger: ningún otro componente
// escribe esa columna (los updates de catálogo nunca la tocan).
type Product struct {
	ID              string
	Name            string
	Description     string
	Category        string
	UnitPrice       decimal.Decimal
	QuantityInStock int64
	LocationID      *string // referencia opcional a StorageLocation
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
