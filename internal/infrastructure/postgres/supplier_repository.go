package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, contact_person, phone, email, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, nullIfEmpty(supplier.ContactPerson),
		nullIfEmpty(supplier.Phone), nullIfEmpty(supplier.Email), nullIfEmpty(supplier.Address),
		supplier.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor. Devuelve nil, nil si no existe.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT id, name, contact_person, phone, email, address, created_at FROM suppliers WHERE id = $1`
	var s entity.Supplier
	var contact, phone, email, address *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &contact, &phone, &email, &address, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	fillOptional(&s.ContactPerson, contact)
	fillOptional(&s.Phone, phone)
	fillOptional(&s.Email, email)
	fillOptional(&s.Address, address)
	return &s, nil
}

// List lista proveedores ordenados por nombre.
func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT id, name, contact_person, phone, email, address, created_at FROM suppliers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		var contact, phone, email, address *string
		if err := rows.Scan(&s.ID, &s.Name, &contact, &phone, &email, &address, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		fillOptional(&s.ContactPerson, contact)
		fillOptional(&s.Phone, phone)
		fillOptional(&s.Email, email)
		fillOptional(&s.Address, address)
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un proveedor.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, contact_person = $3, phone = $4, email = $5, address = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, nullIfEmpty(supplier.ContactPerson),
		nullIfEmpty(supplier.Phone), nullIfEmpty(supplier.Email), nullIfEmpty(supplier.Address),
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete elimina un proveedor. La verificación de entradas registradas la
// hace el caso de uso: movements no lleva FK hacia proveedores.
func (r *SupplierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

func fillOptional(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
