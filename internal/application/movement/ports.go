package movement

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando el
// registro de movimientos y el ledger atados a esa tx. Es la unidad
// failure-atomic del coordinador: si fn devuelve error, nada de lo hecho
// dentro (deltas del ledger incluidos) queda aplicado.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		ledger repository.StockLedger,
	) error) error
}
