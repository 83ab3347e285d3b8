package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.StorageLocationRepository = (*StorageLocationRepo)(nil)

// StorageLocationRepo implementación de StorageLocationRepository sobre PostgreSQL.
type StorageLocationRepo struct {
	q Querier
}

// NewStorageLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStorageLocationRepository(q Querier) *StorageLocationRepo {
	return &StorageLocationRepo{q: q}
}

// Create persiste una ubicación.
func (r *StorageLocationRepo) Create(location *entity.StorageLocation) error {
	query := `
		INSERT INTO storage_locations (id, name, description, capacity, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, nullIfEmpty(location.Description), location.Capacity, location.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert storage location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación. Devuelve nil, nil si no existe.
func (r *StorageLocationRepo) GetByID(id string) (*entity.StorageLocation, error) {
	query := `SELECT id, name, description, capacity, created_at FROM storage_locations WHERE id = $1`
	var l entity.StorageLocation
	var description *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Name, &description, &l.Capacity, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get storage location: %w", err)
	}
	fillOptional(&l.Description, description)
	return &l, nil
}

// List lista ubicaciones ordenadas por nombre.
func (r *StorageLocationRepo) List(limit, offset int) ([]*entity.StorageLocation, error) {
	query := `SELECT id, name, description, capacity, created_at FROM storage_locations ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list storage locations: %w", err)
	}
	defer rows.Close()

	var list []*entity.StorageLocation
	for rows.Next() {
		var l entity.StorageLocation
		var description *string
		if err := rows.Scan(&l.ID, &l.Name, &description, &l.Capacity, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan storage location: %w", err)
		}
		fillOptional(&l.Description, description)
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update actualiza una ubicación.
func (r *StorageLocationRepo) Update(location *entity.StorageLocation) error {
	query := `UPDATE storage_locations SET name = $2, description = $3, capacity = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, nullIfEmpty(location.Description), location.Capacity,
	)
	if err != nil {
		return fmt.Errorf("update storage location: %w", err)
	}
	return nil
}

// Delete elimina una ubicación sin productos asociados.
func (r *StorageLocationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM storage_locations WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete storage location: %w", err)
	}
	return nil
}
