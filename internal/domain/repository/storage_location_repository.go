package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// StorageLocationRepository define el puerto de persistencia para StorageLocation.
type StorageLocationRepository interface {
	Create(location *entity.StorageLocation) error
	GetByID(id string) (*entity.StorageLocation, error)
	List(limit, offset int) ([]*entity.StorageLocation, error)
	Update(location *entity.StorageLocation) error
	Delete(id string) error
}
