package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// CertificateRepository define el puerto de persistencia para actas de aceptación.
type CertificateRepository interface {
	Create(cert *entity.AcceptanceCertificate) error
	Update(cert *entity.AcceptanceCertificate) error
	Delete(id string) error
	GetByID(id string) (*entity.AcceptanceCertificate, error)
	ListBySupply(supplyID string) ([]*entity.AcceptanceCertificate, error)
	// TotalAccepted suma AcceptedQuantity de todos los certificados de una entrada.
	TotalAccepted(supplyID string) (int64, error)
}
