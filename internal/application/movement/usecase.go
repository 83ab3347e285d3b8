package movement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// UseCase es el coordinador de movimientos: crea, edita y elimina entradas y
// despachos junto con su ajuste del Stock Ledger como una sola unidad atómica.
// El ledger es el único punto de serialización por producto; el coordinador no
// necesita locking propio, pero sí mantener el par reverse+apply dentro de la
// misma transacción para que nadie observe el estado intermedio.
type UseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
	ledger       repository.StockLedger
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	customerRepo repository.CustomerRepository
}

// NewUseCase construye el coordinador. movementRepo y ledger aquí son las
// variantes atadas al pool (solo lectura); las escrituras pasan por txRunner.
func NewUseCase(
	txRunner TxRunner,
	movementRepo repository.MovementRepository,
	ledger repository.StockLedger,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	customerRepo repository.CustomerRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		movementRepo: movementRepo,
		ledger:       ledger,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		customerRepo: customerRepo,
	}
}

// CreateSupply registra una entrada de proveedor y suma su cantidad al stock.
func (uc *UseCase) CreateSupply(ctx context.Context, supplierID, productID string, quantity int64, unitPrice decimal.Decimal, date time.Time) (string, error) {
	return uc.create(ctx, entity.MovementKindSupply, supplierID, productID, quantity, unitPrice, date)
}

// CreateShipment registra un despacho a cliente y resta su cantidad del stock.
// Si el stock es insuficiente devuelve domain.ErrInsufficientStock sin tocar
// el registro de movimientos.
func (uc *UseCase) CreateShipment(ctx context.Context, customerID, productID string, quantity int64, unitPrice decimal.Decimal, date time.Time) (string, error) {
	return uc.create(ctx, entity.MovementKindShipment, customerID, productID, quantity, unitPrice, date)
}

func (uc *UseCase) create(ctx context.Context, kind, counterpartyID, productID string, quantity int64, unitPrice decimal.Decimal, date time.Time) (string, error) {
	if err := uc.validate(counterpartyID, productID, kind, quantity, unitPrice); err != nil {
		return "", err
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:             uuid.New().String(),
		Kind:           kind,
		ProductID:      productID,
		CounterpartyID: counterpartyID,
		Quantity:       quantity,
		UnitPrice:      unitPrice,
		TotalPrice:     unitPrice.Mul(decimal.NewFromInt(quantity)),
		MovementDate:   date,
		CreatedAt:      now,
	}

	// Ledger primero: el registro del movimiento solo se persiste si el ajuste
	// de stock fue aceptado. El rollback de la tx deshace el delta si el
	// insert posterior falla, así que los dos stores no pueden divergir.
	err := uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, ledger repository.StockLedger) error {
		if _, err := ledger.Apply(ctx, mov.ProductID, mov.Delta()); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return "", err
	}
	return mov.ID, nil
}

// Edit modifica cantidad, precio, fecha y opcionalmente producto/contraparte de
// un movimiento. Dentro de una sola transacción ajusta el ledger por la
// diferencia neta entre delta nuevo y anterior (o revierte y aplica por
// separado cuando cambia el producto) y actualiza la fila; cualquier violación
// de no-negatividad rechaza la edición completa y deja el ledger como estaba.
func (uc *UseCase) Edit(ctx context.Context, id string, quantity int64, unitPrice decimal.Decimal, date time.Time, newProductID, newCounterpartyID string) error {
	if quantity <= 0 || unitPrice.IsNegative() {
		return domain.ErrInvalidInput
	}

	return uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, ledger repository.StockLedger) error {
		old, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if old == nil {
			return domain.ErrNotFound
		}

		updated := *old
		updated.Quantity = quantity
		updated.UnitPrice = unitPrice
		updated.TotalPrice = unitPrice.Mul(decimal.NewFromInt(quantity))
		updated.MovementDate = date
		if newProductID != "" {
			updated.ProductID = newProductID
		}
		if newCounterpartyID != "" {
			updated.CounterpartyID = newCounterpartyID
		}
		if updated.ProductID != old.ProductID {
			if err := uc.refExists(uc.productExists, updated.ProductID); err != nil {
				return err
			}
		}
		if updated.CounterpartyID != old.CounterpartyID {
			if err := uc.counterpartyExists(updated.Kind, updated.CounterpartyID); err != nil {
				return err
			}
		}

		// Mismo producto: un solo Apply con el delta neto, así una entrada que
		// crece con stock parcialmente consumido sigue siendo viable (la cota
		// se evalúa sobre el efecto combinado, no sobre cada paso). Producto
		// distinto: reverse y apply por separado, cada producto con su propia
		// cota; si el segundo paso falla el rollback restaura el primero.
		if updated.ProductID == old.ProductID {
			if net := updated.Delta() - old.Delta(); net != 0 {
				if _, err := ledger.Apply(ctx, updated.ProductID, net); err != nil {
					return err
				}
			}
		} else {
			if _, err := ledger.Reverse(ctx, old.ProductID, old.Delta()); err != nil {
				return err
			}
			if _, err := ledger.Apply(ctx, updated.ProductID, updated.Delta()); err != nil {
				return err
			}
		}
		return movRepo.Update(&updated)
	})
}

// Delete elimina un movimiento revirtiendo antes su delta en el ledger.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, ledger repository.StockLedger) error {
		mov, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		if _, err := ledger.Reverse(ctx, mov.ProductID, mov.Delta()); err != nil {
			return err
		}
		return movRepo.Delete(id)
	})
}

// GetByID devuelve un movimiento por su id.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	mov, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return mov, nil
}

// GetProductStock devuelve la cantidad en stock de un producto.
func (uc *UseCase) GetProductStock(ctx context.Context, productID string) (int64, error) {
	return uc.ledger.Quantity(ctx, productID)
}

// Query lista movimientos según el filtro (producto, contraparte, tipo, fechas).
func (uc *UseCase) Query(ctx context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return uc.movementRepo.List(filter)
}

func (uc *UseCase) validate(counterpartyID, productID, kind string, quantity int64, unitPrice decimal.Decimal) error {
	if counterpartyID == "" || productID == "" {
		return domain.ErrInvalidInput
	}
	if quantity <= 0 || unitPrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	if err := uc.refExists(uc.productExists, productID); err != nil {
		return err
	}
	return uc.counterpartyExists(kind, counterpartyID)
}

func (uc *UseCase) productExists(id string) (bool, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return false, err
	}
	return p != nil, nil
}

func (uc *UseCase) counterpartyExists(kind, id string) error {
	if kind == entity.MovementKindSupply {
		s, err := uc.supplierRepo.GetByID(id)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
		return nil
	}
	c, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *UseCase) refExists(check func(string) (bool, error), id string) error {
	ok, err := check(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
