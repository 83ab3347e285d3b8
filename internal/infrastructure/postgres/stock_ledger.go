package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.StockLedger = (*StockLedgerRepo)(nil)

// StockLedgerRepo implementación del Stock Ledger sobre PostgreSQL (usable con pool o tx).
// La verificación de no-negatividad y la mutación van en un solo UPDATE
// condicional: el row lock del UPDATE serializa los callers por producto y no
// existe ningún read-modify-write observable desde fuera.
type StockLedgerRepo struct {
	q Querier
}

// NewStockLedger construye el ledger. Pasar pool o tx (Querier).
func NewStockLedger(q Querier) *StockLedgerRepo {
	return &StockLedgerRepo{q: q}
}

// Apply suma delta a quantity_in_stock si el resultado no es negativo.
func (r *StockLedgerRepo) Apply(ctx context.Context, productID string, delta int64) (int64, error) {
	query := `
		UPDATE products
		SET quantity_in_stock = quantity_in_stock + $2, updated_at = now()
		WHERE id = $1 AND quantity_in_stock + $2 >= 0
		RETURNING quantity_in_stock`
	var newQty int64
	err := r.q.QueryRow(ctx, query, productID, delta).Scan(&newQty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// La fila no cambió: o el producto no existe o el delta lo dejaría negativo.
			return r.classifyRejection(ctx, productID)
		}
		return 0, fmt.Errorf("apply stock delta: %w", err)
	}
	return newQty, nil
}

// Reverse deshace un delta previamente aplicado. Verifica límites igual que
// Apply: un reverse que dejaría stock negativo indica corrupción y debe
// aflorar, no enmascararse.
func (r *StockLedgerRepo) Reverse(ctx context.Context, productID string, delta int64) (int64, error) {
	return r.Apply(ctx, productID, -delta)
}

// Quantity devuelve la cantidad actual en stock de un producto.
func (r *StockLedgerRepo) Quantity(ctx context.Context, productID string) (int64, error) {
	var qty int64
	err := r.q.QueryRow(ctx, `SELECT quantity_in_stock FROM products WHERE id = $1`, productID).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("get stock: %w", err)
	}
	return qty, nil
}

func (r *StockLedgerRepo) classifyRejection(ctx context.Context, productID string) (int64, error) {
	var qty int64
	err := r.q.QueryRow(ctx, `SELECT quantity_in_stock FROM products WHERE id = $1`, productID).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("classify stock rejection: %w", err)
	}
	return 0, domain.ErrInsufficientStock
}
