package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// LocationUseCase CRUD de lugares de almacenamiento.
type LocationUseCase struct {
	repo repository.StorageLocationRepository
}

// NewLocationUseCase construye el caso de uso de ubicaciones.
func NewLocationUseCase(repo repository.StorageLocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create da de alta una ubicación.
func (uc *LocationUseCase) Create(in dto.LocationRequest) (*entity.StorageLocation, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Capacity != nil && *in.Capacity < 0 {
		return nil, domain.ErrInvalidInput
	}
	location := &entity.StorageLocation{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Capacity:    in.Capacity,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return location, nil
}

// GetByID obtiene una ubicación.
func (uc *LocationUseCase) GetByID(id string) (*entity.StorageLocation, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	return location, nil
}

// List lista ubicaciones paginadas.
func (uc *LocationUseCase) List(limit, offset int) ([]*entity.StorageLocation, error) {
	return uc.repo.List(limit, offset)
}

// Update edita una ubicación.
func (uc *LocationUseCase) Update(id string, in dto.LocationRequest) (*entity.StorageLocation, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	location, err := uc.GetByID(id)
	if err != nil {
		return nil, err
	}
	location.Name = in.Name
	location.Description = in.Description
	location.Capacity = in.Capacity
	if err := uc.repo.Update(location); err != nil {
		return nil, err
	}
	return location, nil
}

// Delete elimina una ubicación sin productos asociados.
func (uc *LocationUseCase) Delete(id string) error {
	if _, err := uc.GetByID(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}
