package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del registro de movimientos sobre PostgreSQL
// (usable con pool o tx). Una sola tabla con tag kind cubre entradas y
// despachos.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, kind, product_id, counterparty_id, quantity, unit_price, total_price, movement_date, created_at`

// Create persiste un movimiento.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, kind, product_id, counterparty_id, quantity, unit_price, total_price, movement_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Kind, movement.ProductID, movement.CounterpartyID,
		movement.Quantity, movement.UnitPrice, movement.TotalPrice,
		movement.MovementDate, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// Update actualiza un movimiento existente (kind nunca cambia).
func (r *MovementRepo) Update(movement *entity.Movement) error {
	query := `
		UPDATE movements
		SET product_id = $2, counterparty_id = $3, quantity = $4,
		    unit_price = $5, total_price = $6, movement_date = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.CounterpartyID,
		movement.Quantity, movement.UnitPrice, movement.TotalPrice, movement.MovementDate,
	)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update movement %s: fila no encontrada", movement.ID)
	}
	return nil
}

// Delete elimina un movimiento (las actas de aceptación caen en cascada).
func (r *MovementRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve nil, nil si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List lista movimientos según el filtro, ordenados por fecha descendente.
func (r *MovementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE 1=1`
	var args []any
	pos := 1
	add := func(cond string, val any) {
		query += fmt.Sprintf(" AND "+cond, pos)
		args = append(args, val)
		pos++
	}
	if filter.ProductID != "" {
		add("product_id = $%d", filter.ProductID)
	}
	if filter.CounterpartyID != "" {
		add("counterparty_id = $%d", filter.CounterpartyID)
	}
	if filter.Kind != "" {
		add("kind = $%d", filter.Kind)
	}
	if filter.From != nil {
		add("movement_date >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("movement_date <= $%d", *filter.To)
	}
	query += fmt.Sprintf(" ORDER BY movement_date DESC, created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListByProduct lista movimientos de un producto en un rango de fechas.
func (r *MovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	return r.List(repository.MovementFilter{
		ProductID: productID,
		From:      from,
		To:        to,
		Limit:     limit,
		Offset:    offset,
	})
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	err := row.Scan(
		&m.ID, &m.Kind, &m.ProductID, &m.CounterpartyID,
		&m.Quantity, &m.UnitPrice, &m.TotalPrice, &m.MovementDate, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
