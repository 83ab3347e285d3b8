package repository

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// MovementFilter filtros para listar movimientos. Los campos vacíos/nil no filtran.
type MovementFilter struct {
	ProductID      string
	CounterpartyID string
	Kind           string // SUPPLY | SHIPMENT | "" (ambos)
	From           *time.Time
	To             *time.Time
	Limit          int
	Offset         int
}

// MovementRepository define el puerto de persistencia del registro de movimientos.
// Solo validación estructural (FKs, quantity > 0 vía CHECK); las reglas de negocio
// viven en el coordinador.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	Update(movement *entity.Movement) error
	Delete(id string) error
	GetByID(id string) (*entity.Movement, error)
	List(filter MovementFilter) ([]*entity.Movement, error)
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
}
