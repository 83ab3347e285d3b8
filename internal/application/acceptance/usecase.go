package acceptance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// UseCase reconcilia lo aceptado físicamente contra lo pedido en una entrada.
// Nunca toca el Stock Ledger: el stock se ajustó al crear la entrada y el acta
// es solo auditoría de recepción.
type UseCase struct {
	certRepo     repository.CertificateRepository
	movementRepo repository.MovementRepository
}

// NewUseCase construye el caso de uso de aceptación.
func NewUseCase(certRepo repository.CertificateRepository, movementRepo repository.MovementRepository) *UseCase {
	return &UseCase{certRepo: certRepo, movementRepo: movementRepo}
}

// Record crea un acta de aceptación sobre una entrada. Falla con
// domain.ErrQuantityExceedsSupply si acceptedQuantity supera la cantidad
// pedida. Se permiten varias actas por entrada (entregas parciales).
func (uc *UseCase) Record(ctx context.Context, supplyID string, acceptedQuantity int64, acceptedDate time.Time, inspectorName, notes string) (string, error) {
	if supplyID == "" || acceptedQuantity < 0 {
		return "", domain.ErrInvalidInput
	}
	supply, err := uc.loadSupply(supplyID)
	if err != nil {
		return "", err
	}
	if acceptedQuantity > supply.Quantity {
		return "", domain.ErrQuantityExceedsSupply
	}

	cert := &entity.AcceptanceCertificate{
		ID:               uuid.New().String(),
		SupplyID:         supplyID,
		AcceptedQuantity: acceptedQuantity,
		AcceptedDate:     acceptedDate,
		InspectorName:    inspectorName,
		Notes:            notes,
		CreatedAt:        time.Now(),
	}
	if err := uc.certRepo.Create(cert); err != nil {
		return "", err
	}
	return cert.ID, nil
}

// Update edita un acta existente aplicando el mismo límite que Record.
func (uc *UseCase) Update(ctx context.Context, id string, acceptedQuantity int64, acceptedDate time.Time, inspectorName, notes string) error {
	if acceptedQuantity < 0 {
		return domain.ErrInvalidInput
	}
	cert, err := uc.certRepo.GetByID(id)
	if err != nil {
		return err
	}
	if cert == nil {
		return domain.ErrNotFound
	}
	supply, err := uc.loadSupply(cert.SupplyID)
	if err != nil {
		return err
	}
	if acceptedQuantity > supply.Quantity {
		return domain.ErrQuantityExceedsSupply
	}

	cert.AcceptedQuantity = acceptedQuantity
	cert.AcceptedDate = acceptedDate
	cert.InspectorName = inspectorName
	cert.Notes = notes
	return uc.certRepo.Update(cert)
}

// Delete elimina un acta. No afecta al stock.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	cert, err := uc.certRepo.GetByID(id)
	if err != nil {
		return err
	}
	if cert == nil {
		return domain.ErrNotFound
	}
	return uc.certRepo.Delete(id)
}

// ListBySupply devuelve las actas de una entrada.
func (uc *UseCase) ListBySupply(ctx context.Context, supplyID string) ([]*entity.AcceptanceCertificate, error) {
	if _, err := uc.loadSupply(supplyID); err != nil {
		return nil, err
	}
	return uc.certRepo.ListBySupply(supplyID)
}

// TotalAccepted devuelve lo pedido y la suma aceptada acumulada de una entrada.
func (uc *UseCase) TotalAccepted(ctx context.Context, supplyID string) (ordered, accepted int64, err error) {
	supply, err := uc.loadSupply(supplyID)
	if err != nil {
		return 0, 0, err
	}
	total, err := uc.certRepo.TotalAccepted(supplyID)
	if err != nil {
		return 0, 0, err
	}
	return supply.Quantity, total, nil
}

// loadSupply carga el movimiento y verifica que sea una entrada (SUPPLY).
func (uc *UseCase) loadSupply(supplyID string) (*entity.Movement, error) {
	mov, err := uc.movementRepo.GetByID(supplyID)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	if !mov.IsSupply() {
		return nil, domain.ErrInvalidInput
	}
	return mov, nil
}
