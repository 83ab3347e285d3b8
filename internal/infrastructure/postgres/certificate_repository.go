package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.CertificateRepository = (*CertificateRepo)(nil)

// CertificateRepo implementación de actas de aceptación sobre PostgreSQL.
type CertificateRepo struct {
	q Querier
}

// NewCertificateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCertificateRepository(q Querier) *CertificateRepo {
	return &CertificateRepo{q: q}
}

const certColumns = `id, supply_id, accepted_quantity, accepted_date, inspector_name, notes, created_at`

// Create persiste un acta.
func (r *CertificateRepo) Create(cert *entity.AcceptanceCertificate) error {
	query := `
		INSERT INTO acceptance_certificates (id, supply_id, accepted_quantity, accepted_date, inspector_name, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		cert.ID, cert.SupplyID, cert.AcceptedQuantity, cert.AcceptedDate,
		nullIfEmpty(cert.InspectorName), nullIfEmpty(cert.Notes), cert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create certificate: %w", err)
	}
	return nil
}

// Update actualiza un acta existente.
func (r *CertificateRepo) Update(cert *entity.AcceptanceCertificate) error {
	query := `
		UPDATE acceptance_certificates
		SET accepted_quantity = $2, accepted_date = $3, inspector_name = $4, notes = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cert.ID, cert.AcceptedQuantity, cert.AcceptedDate,
		nullIfEmpty(cert.InspectorName), nullIfEmpty(cert.Notes),
	)
	if err != nil {
		return fmt.Errorf("update certificate: %w", err)
	}
	return nil
}

// Delete elimina un acta.
func (r *CertificateRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM acceptance_certificates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete certificate: %w", err)
	}
	return nil
}

// GetByID obtiene un acta por ID. Devuelve nil, nil si no existe.
func (r *CertificateRepo) GetByID(id string) (*entity.AcceptanceCertificate, error) {
	query := `SELECT ` + certColumns + ` FROM acceptance_certificates WHERE id = $1`
	c, err := scanCertificate(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get certificate: %w", err)
	}
	return c, nil
}

// ListBySupply lista las actas de una entrada, más reciente primero.
func (r *CertificateRepo) ListBySupply(supplyID string) ([]*entity.AcceptanceCertificate, error) {
	query := `SELECT ` + certColumns + ` FROM acceptance_certificates WHERE supply_id = $1 ORDER BY accepted_date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, supplyID)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	defer rows.Close()

	var list []*entity.AcceptanceCertificate
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan certificate: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// TotalAccepted suma lo aceptado en todas las actas de una entrada.
func (r *CertificateRepo) TotalAccepted(supplyID string) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(accepted_quantity), 0) FROM acceptance_certificates WHERE supply_id = $1`,
		supplyID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total accepted: %w", err)
	}
	return total, nil
}

func scanCertificate(row pgx.Row) (*entity.AcceptanceCertificate, error) {
	var c entity.AcceptanceCertificate
	var inspector, notes *string
	err := row.Scan(&c.ID, &c.SupplyID, &c.AcceptedQuantity, &c.AcceptedDate, &inspector, &notes, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	if inspector != nil {
		c.InspectorName = *inspector
	}
	if notes != nil {
		c.Notes = *notes
	}
	return &c, nil
}
