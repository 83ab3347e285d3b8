package repository

import "context"

// StockLedger es el único dueño de Product.QuantityInStock. Apply ejecuta la
// verificación de no-negatividad y la mutación como una sola operación atómica,
// serializada por producto: ningún caller observa un read-modify-write parcial.
// Devuelve domain.ErrInsufficientStock si currentQuantity+delta < 0, dejando la
// cantidad intacta; domain.ErrNotFound si el producto no existe.
type StockLedger interface {
	// Apply suma delta (positivo entrada, negativo salida) y devuelve la nueva cantidad.
	Apply(ctx context.Context, productID string, delta int64) (int64, error)
	// Reverse deshace un delta previamente aplicado. Verifica límites igual que
	// Apply para detectar corrupción en lugar de enmascararla.
	Reverse(ctx context.Context, productID string, delta int64) (int64, error)
	// Quantity devuelve la cantidad actual en stock.
	Quantity(ctx context.Context, productID string) (int64, error)
}
