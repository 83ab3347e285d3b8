package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ProductUseCase CRUD de catálogo de productos. La cantidad en stock no se
// acepta ni en alta ni en edición: solo la muta el Stock Ledger.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	locationRepo repository.StorageLocationRepository
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(productRepo repository.ProductRepository, locationRepo repository.StorageLocationRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, locationRepo: locationRepo}
}

// Create da de alta un producto con stock cero.
func (uc *ProductUseCase) Create(in dto.ProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkLocation(in.LocationID); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		UnitPrice:   in.UnitPrice,
		LocationID:  in.LocationID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List lista productos paginados.
func (uc *ProductUseCase) List(limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.List(limit, offset)
}

// Update edita los campos de catálogo de un producto (nunca la cantidad).
func (uc *ProductUseCase) Update(id string, in dto.ProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := uc.checkLocation(in.LocationID); err != nil {
		return nil, err
	}
	product.Name = in.Name
	product.Description = in.Description
	product.Category = in.Category
	product.UnitPrice = in.UnitPrice
	product.LocationID = in.LocationID
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete elimina un producto. Si tiene movimientos asociados la FK lo impide
// y se devuelve domain.ErrConflict.
func (uc *ProductUseCase) Delete(id string) error {
	if _, err := uc.GetByID(id); err != nil {
		return err
	}
	return uc.productRepo.Delete(id)
}

func (uc *ProductUseCase) checkLocation(locationID *string) error {
	if locationID == nil || *locationID == "" {
		return nil
	}
	loc, err := uc.locationRepo.GetByID(*locationID)
	if err != nil {
		return err
	}
	if loc == nil {
		return domain.ErrNotFound
	}
	return nil
}
