package catalog_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/catalog"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *memProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) Update(p *entity.Product) error {
	// Igual que el esquema real: la cantidad no forma parte del UPDATE.
	existing, ok := r.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *p
	cp.QuantityInStock = existing.QuantityInStock
	r.products[p.ID] = &cp
	return nil
}
func (r *memProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type memLocationRepo struct {
	locations map[string]*entity.StorageLocation
}

func (r *memLocationRepo) Create(l *entity.StorageLocation) error {
	cp := *l
	r.locations[l.ID] = &cp
	return nil
}
func (r *memLocationRepo) GetByID(id string) (*entity.StorageLocation, error) {
	l, ok := r.locations[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}
func (r *memLocationRepo) List(int, int) ([]*entity.StorageLocation, error) { return nil, nil }
func (r *memLocationRepo) Update(*entity.StorageLocation) error             { return nil }
func (r *memLocationRepo) Delete(string) error                              { return nil }

type memInvoiceRepo struct {
	invoices map[string]*entity.Invoice
}

func (r *memInvoiceRepo) Create(inv *entity.Invoice) error {
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}
func (r *memInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}
func (r *memInvoiceRepo) ListByCustomer(string, int, int) ([]*entity.Invoice, error) {
	return nil, nil
}
func (r *memInvoiceRepo) UpdateStatus(id, status string) error {
	inv, ok := r.invoices[id]
	if !ok {
		return domain.ErrNotFound
	}
	inv.Status = status
	return nil
}
func (r *memInvoiceRepo) Delete(id string) error {
	delete(r.invoices, id)
	return nil
}

type memCustomerRepo struct{ ids map[string]bool }

func (r *memCustomerRepo) Create(*entity.Customer) error { return nil }
func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	if !r.ids[id] {
		return nil, nil
	}
	return &entity.Customer{ID: id}, nil
}
func (r *memCustomerRepo) List(int, int) ([]*entity.Customer, error) { return nil, nil }
func (r *memCustomerRepo) Update(*entity.Customer) error             { return nil }
func (r *memCustomerRepo) Delete(id string) error {
	delete(r.ids, id)
	return nil
}

type memSupplierRepo struct{ ids map[string]bool }

func (r *memSupplierRepo) Create(*entity.Supplier) error { return nil }
func (r *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	if !r.ids[id] {
		return nil, nil
	}
	return &entity.Supplier{ID: id}, nil
}
func (r *memSupplierRepo) List(int, int) ([]*entity.Supplier, error) { return nil, nil }
func (r *memSupplierRepo) Update(*entity.Supplier) error             { return nil }
func (r *memSupplierRepo) Delete(id string) error {
	delete(r.ids, id)
	return nil
}

// memMovementRepo solo implementa List con filtro por contraparte y tipo; el
// resto no aplica a los casos de uso de catálogo.
type memMovementRepo struct{ movements []*entity.Movement }

func (r *memMovementRepo) Create(*entity.Movement) error          { return nil }
func (r *memMovementRepo) Update(*entity.Movement) error          { return nil }
func (r *memMovementRepo) Delete(string) error                    { return nil }
func (r *memMovementRepo) GetByID(string) (*entity.Movement, error) { return nil, nil }
func (r *memMovementRepo) List(f repository.MovementFilter) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.movements {
		if f.CounterpartyID != "" && m.CounterpartyID != f.CounterpartyID {
			continue
		}
		if f.Kind != "" && m.Kind != f.Kind {
			continue
		}
		out = append(out, m)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}
func (r *memMovementRepo) ListByProduct(string, *time.Time, *time.Time, int, int) ([]*entity.Movement, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_StockInicialCero(t *testing.T) {
	repo := &memProductRepo{products: make(map[string]*entity.Product)}
	uc := catalog.NewProductUseCase(repo, &memLocationRepo{locations: make(map[string]*entity.StorageLocation)})

	p, err := uc.Create(dto.ProductRequest{Name: "Tornillo", UnitPrice: decimal.NewFromInt(2)})
	require.NoError(t, err)
	assert.Equal(t, int64(0), p.QuantityInStock,
		"todo producto nace con stock cero; solo los movimientos lo cambian")
}

func TestProductUpdate_NoTocaElStock(t *testing.T) {
	repo := &memProductRepo{products: make(map[string]*entity.Product)}
	uc := catalog.NewProductUseCase(repo, &memLocationRepo{locations: make(map[string]*entity.StorageLocation)})

	p, err := uc.Create(dto.ProductRequest{Name: "Tornillo", UnitPrice: decimal.NewFromInt(2)})
	require.NoError(t, err)
	// Simula stock acumulado por movimientos.
	repo.products[p.ID].QuantityInStock = 70

	_, err = uc.Update(p.ID, dto.ProductRequest{Name: "Tornillo M8", UnitPrice: decimal.NewFromInt(3)})
	require.NoError(t, err)

	got, err := uc.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tornillo M8", got.Name)
	assert.Equal(t, int64(70), got.QuantityInStock, "la edición de catálogo no altera el stock")
}

func TestProductCreate_LocationInexistente(t *testing.T) {
	uc := catalog.NewProductUseCase(
		&memProductRepo{products: make(map[string]*entity.Product)},
		&memLocationRepo{locations: make(map[string]*entity.StorageLocation)},
	)
	loc := "loc-inexistente"
	_, err := uc.Create(dto.ProductRequest{Name: "Tornillo", UnitPrice: decimal.NewFromInt(2), LocationID: &loc})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceCreate_NacePendiente(t *testing.T) {
	uc := catalog.NewInvoiceUseCase(
		&memInvoiceRepo{invoices: make(map[string]*entity.Invoice)},
		&memCustomerRepo{ids: map[string]bool{"cus-1": true}},
	)

	inv, err := uc.Create(dto.InvoiceRequest{CustomerID: "cus-1", TotalAmount: decimal.NewFromInt(500)})
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPending, inv.Status)

	_, err = uc.Create(dto.InvoiceRequest{CustomerID: "cus-inexistente", TotalAmount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceSetStatus_VocabularioCerrado(t *testing.T) {
	repo := &memInvoiceRepo{invoices: make(map[string]*entity.Invoice)}
	uc := catalog.NewInvoiceUseCase(repo, &memCustomerRepo{ids: map[string]bool{"cus-1": true}})
	inv, err := uc.Create(dto.InvoiceRequest{CustomerID: "cus-1", TotalAmount: decimal.NewFromInt(500)})
	require.NoError(t, err)

	err = uc.SetStatus(inv.ID, "cancelled")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "estados fuera del vocabulario se rechazan")

	require.NoError(t, uc.SetStatus(inv.ID, entity.InvoiceStatusPaid))
	assert.Equal(t, entity.InvoiceStatusPaid, repo.invoices[inv.ID].Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Contrapartes
// ──────────────────────────────────────────────────────────────────────────────

func TestSupplierDelete_ConEntradas_Conflicto(t *testing.T) {
	suppliers := &memSupplierRepo{ids: map[string]bool{"sup-1": true}}
	movements := &memMovementRepo{movements: []*entity.Movement{
		{ID: "mov-1", Kind: entity.MovementKindSupply, CounterpartyID: "sup-1", ProductID: "prod-1", Quantity: 5},
	}}
	uc := catalog.NewSupplierUseCase(suppliers, movements)

	err := uc.Delete("sup-1")

	assert.ErrorIs(t, err, domain.ErrConflict,
		"un proveedor con entradas registradas no se puede borrar")
	assert.True(t, suppliers.ids["sup-1"], "el proveedor sigue existiendo")
}

func TestSupplierDelete_SinMovimientos(t *testing.T) {
	suppliers := &memSupplierRepo{ids: map[string]bool{"sup-1": true}}
	uc := catalog.NewSupplierUseCase(suppliers, &memMovementRepo{})

	require.NoError(t, uc.Delete("sup-1"))
	assert.False(t, suppliers.ids["sup-1"])
}

func TestCustomerDelete_ConDespachos_Conflicto(t *testing.T) {
	customers := &memCustomerRepo{ids: map[string]bool{"cus-1": true}}
	movements := &memMovementRepo{movements: []*entity.Movement{
		{ID: "mov-1", Kind: entity.MovementKindShipment, CounterpartyID: "cus-1", ProductID: "prod-1", Quantity: 3},
	}}
	uc := catalog.NewCustomerUseCase(customers, movements)

	err := uc.Delete("cus-1")

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.True(t, customers.ids["cus-1"])
}

func TestCustomerDelete_SoloEntradasDeOtro_NoBloquea(t *testing.T) {
	// Un movimiento SUPPLY con el mismo id de contraparte pertenece a un
	// proveedor, no al cliente: no debe bloquear el borrado.
	customers := &memCustomerRepo{ids: map[string]bool{"cp-1": true}}
	movements := &memMovementRepo{movements: []*entity.Movement{
		{ID: "mov-1", Kind: entity.MovementKindSupply, CounterpartyID: "cp-1", ProductID: "prod-1", Quantity: 3},
	}}
	uc := catalog.NewCustomerUseCase(customers, movements)

	require.NoError(t, uc.Delete("cp-1"))
	assert.False(t, customers.ids["cp-1"])
}
