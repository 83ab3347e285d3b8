package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// SupplierUseCase CRUD de proveedores.
type SupplierUseCase struct {
	repo         repository.SupplierRepository
	movementRepo repository.MovementRepository
}

// NewSupplierUseCase construye el caso de uso de proveedores.
func NewSupplierUseCase(repo repository.SupplierRepository, movementRepo repository.MovementRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, movementRepo: movementRepo}
}

// Create da de alta un proveedor.
func (uc *SupplierUseCase) Create(in dto.CounterpartyRequest) (*entity.Supplier, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{
		ID:            uuid.New().String(),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetByID obtiene un proveedor.
func (uc *SupplierUseCase) GetByID(id string) (*entity.Supplier, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return supplier, nil
}

// List lista proveedores paginados.
func (uc *SupplierUseCase) List(limit, offset int) ([]*entity.Supplier, error) {
	return uc.repo.List(limit, offset)
}

// Update edita un proveedor.
func (uc *SupplierUseCase) Update(id string, in dto.CounterpartyRequest) (*entity.Supplier, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.GetByID(id)
	if err != nil {
		return nil, err
	}
	supplier.Name = in.Name
	supplier.ContactPerson = in.ContactPerson
	supplier.Phone = in.Phone
	supplier.Email = in.Email
	supplier.Address = in.Address
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Delete elimina un proveedor. Rechaza con ErrConflict si tiene entradas
// registradas: counterparty_id no puede llevar FK (referencia a dos tablas
// según el kind), así que la verificación vive aquí.
func (uc *SupplierUseCase) Delete(id string) error {
	if _, err := uc.GetByID(id); err != nil {
		return err
	}
	refs, err := uc.movementRepo.List(repository.MovementFilter{
		CounterpartyID: id,
		Kind:           entity.MovementKindSupply,
		Limit:          1,
	})
	if err != nil {
		return err
	}
	if len(refs) > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

// CustomerUseCase CRUD de clientes.
type CustomerUseCase struct {
	repo         repository.CustomerRepository
	movementRepo repository.MovementRepository
}

// NewCustomerUseCase construye el caso de uso de clientes.
func NewCustomerUseCase(repo repository.CustomerRepository, movementRepo repository.MovementRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, movementRepo: movementRepo}
}

// Create da de alta un cliente.
func (uc *CustomerUseCase) Create(in dto.CounterpartyRequest) (*entity.Customer, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{
		ID:            uuid.New().String(),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetByID obtiene un cliente.
func (uc *CustomerUseCase) GetByID(id string) (*entity.Customer, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

// List lista clientes paginados.
func (uc *CustomerUseCase) List(limit, offset int) ([]*entity.Customer, error) {
	return uc.repo.List(limit, offset)
}

// Update edita un cliente.
func (uc *CustomerUseCase) Update(id string, in dto.CounterpartyRequest) (*entity.Customer, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.GetByID(id)
	if err != nil {
		return nil, err
	}
	customer.Name = in.Name
	customer.ContactPerson = in.ContactPerson
	customer.Phone = in.Phone
	customer.Email = in.Email
	customer.Address = in.Address
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete elimina un cliente. Rechaza con ErrConflict si tiene despachos
// registrados (misma verificación que proveedores); las facturas sí llevan
// FK y el repositorio mapea esa violación.
func (uc *CustomerUseCase) Delete(id string) error {
	if _, err := uc.GetByID(id); err != nil {
		return err
	}
	refs, err := uc.movementRepo.List(repository.MovementFilter{
		CounterpartyID: id,
		Kind:           entity.MovementKindShipment,
		Limit:          1,
	})
	if err != nil {
		return err
	}
	if len(refs) > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}
