package movement_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/movement"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional: el txRunner clona el estado,
// ejecuta fn contra el clon y solo lo promueve si fn no falla. Así los tests
// verifican de verdad que una operación rechazada no deja efecto parcial.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	stock     map[string]int64
	movements map[string]*entity.Movement
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		stock:     make(map[string]int64),
		movements: make(map[string]*entity.Movement),
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for k, v := range s.stock {
		c.stock[k] = v
	}
	for k, v := range s.movements {
		cp := *v
		c.movements[k] = &cp
	}
	return c
}

type fakeLedger struct{ store *fakeStore }

func (l *fakeLedger) Apply(_ context.Context, productID string, delta int64) (int64, error) {
	q, ok := l.store.stock[productID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if q+delta < 0 {
		return 0, domain.ErrInsufficientStock
	}
	l.store.stock[productID] = q + delta
	return q + delta, nil
}

func (l *fakeLedger) Reverse(ctx context.Context, productID string, delta int64) (int64, error) {
	return l.Apply(ctx, productID, -delta)
}

func (l *fakeLedger) Quantity(_ context.Context, productID string) (int64, error) {
	q, ok := l.store.stock[productID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return q, nil
}

type fakeMovementRepo struct{ store *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	r.store.movements[m.ID] = &cp
	return nil
}

func (r *fakeMovementRepo) Update(m *entity.Movement) error {
	if _, ok := r.store.movements[m.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *m
	r.store.movements[m.ID] = &cp
	return nil
}

func (r *fakeMovementRepo) Delete(id string) error {
	if _, ok := r.store.movements[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.movements, id)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	m, ok := r.store.movements[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.store.movements {
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.Kind != "" && m.Kind != filter.Kind {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	return r.List(repository.MovementFilter{ProductID: productID, Limit: limit, Offset: offset})
}

// fakeTxRunner promueve el clon solo si fn no devuelve error.
type fakeTxRunner struct{ store *fakeStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.MovementRepository, repository.StockLedger) error) error {
	tx := t.store.clone()
	if err := fn(&fakeMovementRepo{store: tx}, &fakeLedger{store: tx}); err != nil {
		return err
	}
	*t.store = *tx
	return nil
}

type fakeProductRepo struct{ ids map[string]bool }

func (r *fakeProductRepo) Create(*entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if !r.ids[id] {
		return nil, nil
	}
	return &entity.Product{ID: id}, nil
}
func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Update(*entity.Product) error             { return nil }
func (r *fakeProductRepo) Delete(string) error                      { return nil }

type fakeSupplierRepo struct{ ids map[string]bool }

func (r *fakeSupplierRepo) Create(*entity.Supplier) error { return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	if !r.ids[id] {
		return nil, nil
	}
	return &entity.Supplier{ID: id}, nil
}
func (r *fakeSupplierRepo) List(int, int) ([]*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) Update(*entity.Supplier) error             { return nil }
func (r *fakeSupplierRepo) Delete(string) error                       { return nil }

type fakeCustomerRepo struct{ ids map[string]bool }

func (r *fakeCustomerRepo) Create(*entity.Customer) error { return nil }
func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	if !r.ids[id] {
		return nil, nil
	}
	return &entity.Customer{ID: id}, nil
}
func (r *fakeCustomerRepo) List(int, int) ([]*entity.Customer, error) { return nil, nil }
func (r *fakeCustomerRepo) Update(*entity.Customer) error             { return nil }
func (r *fakeCustomerRepo) Delete(string) error                       { return nil }

const (
	testProductID  = "prod-1"
	testSupplierID = "sup-1"
	testCustomerID = "cus-1"
)

type fixture struct {
	uc    *movement.UseCase
	store *fakeStore
}

func newFixture() *fixture {
	store := newFakeStore()
	store.stock[testProductID] = 0
	uc := movement.NewUseCase(
		&fakeTxRunner{store: store},
		&fakeMovementRepo{store: store},
		&fakeLedger{store: store},
		&fakeProductRepo{ids: map[string]bool{testProductID: true}},
		&fakeSupplierRepo{ids: map[string]bool{testSupplierID: true}},
		&fakeCustomerRepo{ids: map[string]bool{testCustomerID: true}},
	)
	return &fixture{uc: uc, store: store}
}

// netOfMovements suma los deltas de todos los movimientos registrados de un
// producto: debe coincidir siempre con el stock.
func (f *fixture) netOfMovements(productID string) int64 {
	var net int64
	for _, m := range f.store.movements {
		if m.ProductID == productID {
			net += m.Delta()
		}
	}
	return net
}

func (f *fixture) supply(t *testing.T, qty int64) string {
	t.Helper()
	id, err := f.uc.CreateSupply(context.Background(), testSupplierID, testProductID, qty, decimal.NewFromInt(10), time.Now())
	require.NoError(t, err)
	return id
}

func (f *fixture) shipment(t *testing.T, qty int64) string {
	t.Helper()
	id, err := f.uc.CreateShipment(context.Background(), testCustomerID, testProductID, qty, decimal.NewFromInt(15), time.Now())
	require.NoError(t, err)
	return id
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSupply_IncrementaStock(t *testing.T) {
	f := newFixture()

	id := f.supply(t, 100)

	assert.Equal(t, int64(100), f.store.stock[testProductID])
	mov := f.store.movements[id]
	require.NotNil(t, mov, "el movimiento debe quedar registrado")
	assert.Equal(t, entity.MovementKindSupply, mov.Kind)
	assert.True(t, mov.TotalPrice.Equal(decimal.NewFromInt(1000)),
		"total = cantidad × precio unitario")
}

func TestCreateShipment_DescuentaStock(t *testing.T) {
	f := newFixture()
	f.supply(t, 100)

	f.shipment(t, 30)

	assert.Equal(t, int64(70), f.store.stock[testProductID])
	assert.Equal(t, int64(70), f.netOfMovements(testProductID),
		"stock y neto de movimientos deben coincidir")
}

func TestCreateShipment_StockInsuficiente_SinEfectoParcial(t *testing.T) {
	f := newFixture()
	f.supply(t, 100)

	_, err := f.uc.CreateShipment(context.Background(), testCustomerID, testProductID, 200, decimal.NewFromInt(15), time.Now())

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(100), f.store.stock[testProductID], "el stock no debe cambiar")
	assert.Len(t, f.store.movements, 1, "el despacho rechazado no debe registrarse")
}

func TestCreate_Validaciones(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	price := decimal.NewFromInt(10)

	_, err := f.uc.CreateSupply(ctx, testSupplierID, testProductID, 0, price, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = f.uc.CreateSupply(ctx, testSupplierID, testProductID, -5, price, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa")

	_, err = f.uc.CreateSupply(ctx, testSupplierID, testProductID, 5, decimal.NewFromInt(-1), time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")

	_, err = f.uc.CreateSupply(ctx, testSupplierID, "prod-inexistente", 5, price, time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente")

	_, err = f.uc.CreateSupply(ctx, "sup-inexistente", testProductID, 5, price, time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound, "proveedor inexistente")

	_, err = f.uc.CreateShipment(ctx, "cus-inexistente", testProductID, 5, price, time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound, "cliente inexistente")

	assert.Empty(t, f.store.movements, "ninguna validación fallida debe registrar movimientos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminación con reverso
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_RevierteDelta(t *testing.T) {
	f := newFixture()
	f.supply(t, 100)
	shipID := f.shipment(t, 30)

	require.NoError(t, f.uc.Delete(context.Background(), shipID))

	assert.Equal(t, int64(100), f.store.stock[testProductID],
		"borrar el despacho devuelve su cantidad al stock")
	assert.Nil(t, f.store.movements[shipID])
	assert.Equal(t, f.netOfMovements(testProductID), f.store.stock[testProductID])
}

func TestDelete_SupplyQueDejaStockNegativo_Rechazado(t *testing.T) {
	f := newFixture()
	supID := f.supply(t, 100)
	f.shipment(t, 30)

	// Revertir la entrada de 100 con stock 70 daría -30.
	err := f.uc.Delete(context.Background(), supID)

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(70), f.store.stock[testProductID], "el stock no debe cambiar")
	assert.NotNil(t, f.store.movements[supID], "la entrada debe seguir registrada")
}

func TestDelete_MovimientoInexistente(t *testing.T) {
	f := newFixture()
	err := f.uc.Delete(context.Background(), "mov-inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición atómica
// ──────────────────────────────────────────────────────────────────────────────

func TestEdit_AjustaStockPorDiferencia(t *testing.T) {
	f := newFixture()
	supID := f.supply(t, 100)

	// 100 → 60: el stock baja 40.
	err := f.uc.Edit(context.Background(), supID, 60, decimal.NewFromInt(12), time.Now(), "", "")
	require.NoError(t, err)

	assert.Equal(t, int64(60), f.store.stock[testProductID])
	mov := f.store.movements[supID]
	assert.Equal(t, int64(60), mov.Quantity)
	assert.True(t, mov.TotalPrice.Equal(decimal.NewFromInt(720)),
		"el total se recalcula con la nueva cantidad y precio")
}

func TestEdit_RechazoDejaTodoIntacto(t *testing.T) {
	f := newFixture()
	supID := f.supply(t, 10)
	f.shipment(t, 8)
	require.Equal(t, int64(2), f.store.stock[testProductID])

	// Bajar la entrada de 10 a 3 exigiría stock -5 en el intermedio: se rechaza
	// completa y ni el ledger ni el registro cambian.
	err := f.uc.Edit(context.Background(), supID, 3, decimal.NewFromInt(10), time.Now(), "", "")

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(2), f.store.stock[testProductID])
	assert.Equal(t, int64(10), f.store.movements[supID].Quantity)
}

func TestEdit_SupplyCreceConStockConsumido(t *testing.T) {
	f := newFixture()
	supID := f.supply(t, 10)
	f.shipment(t, 8)
	require.Equal(t, int64(2), f.store.stock[testProductID])

	// Subir la entrada de 10 a 12 es viable aunque queden solo 2 en stock: el
	// efecto combinado es +2, no un reverse de -10 seguido de un apply de +12.
	err := f.uc.Edit(context.Background(), supID, 12, decimal.NewFromInt(10), time.Now(), "", "")

	require.NoError(t, err, "una entrada que crece nunca puede dejar stock negativo")
	assert.Equal(t, int64(4), f.store.stock[testProductID])
	assert.Equal(t, int64(12), f.store.movements[supID].Quantity)
}

func TestEdit_CambioDeProducto_MueveElDelta(t *testing.T) {
	f := newFixture()
	f.store.stock["prod-2"] = 0
	uc := movement.NewUseCase(
		&fakeTxRunner{store: f.store},
		&fakeMovementRepo{store: f.store},
		&fakeLedger{store: f.store},
		&fakeProductRepo{ids: map[string]bool{testProductID: true, "prod-2": true}},
		&fakeSupplierRepo{ids: map[string]bool{testSupplierID: true}},
		&fakeCustomerRepo{ids: map[string]bool{testCustomerID: true}},
	)
	id, err := uc.CreateSupply(context.Background(), testSupplierID, testProductID, 50, decimal.NewFromInt(10), time.Now())
	require.NoError(t, err)

	err = uc.Edit(context.Background(), id, 50, decimal.NewFromInt(10), time.Now(), "prod-2", "")
	require.NoError(t, err)

	assert.Equal(t, int64(0), f.store.stock[testProductID], "el producto original queda sin la entrada")
	assert.Equal(t, int64(50), f.store.stock["prod-2"], "el nuevo producto recibe el delta")
}

func TestEdit_Validaciones(t *testing.T) {
	f := newFixture()
	supID := f.supply(t, 10)

	err := f.uc.Edit(context.Background(), supID, 0, decimal.NewFromInt(10), time.Now(), "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = f.uc.Edit(context.Background(), "mov-inexistente", 5, decimal.NewFromInt(10), time.Now(), "", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = f.uc.Edit(context.Background(), supID, 5, decimal.NewFromInt(10), time.Now(), "prod-inexistente", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(10), f.store.stock[testProductID], "nada debe cambiar tras un rechazo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProductStock(t *testing.T) {
	f := newFixture()
	f.supply(t, 25)

	qty, err := f.uc.GetProductStock(context.Background(), testProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(25), qty)

	_, err = f.uc.GetProductStock(context.Background(), "prod-inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuery_FiltraPorTipo(t *testing.T) {
	f := newFixture()
	f.supply(t, 100)
	f.shipment(t, 10)
	f.shipment(t, 20)

	out, err := f.uc.Query(context.Background(), repository.MovementFilter{Kind: entity.MovementKindShipment})
	require.NoError(t, err)
	assert.Len(t, out, 2)
	for _, m := range out {
		assert.Equal(t, entity.MovementKindShipment, m.Kind)
	}
}

// El stock de un producto debe ser igual al neto de sus movimientos después de
// cualquier secuencia de operaciones aceptadas o rechazadas.
func TestLedgerYRegistro_SiempreCuadran(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	price := decimal.NewFromInt(10)

	f.supply(t, 100)
	shipID := f.shipment(t, 30)
	_, _ = f.uc.CreateShipment(ctx, testCustomerID, testProductID, 500, price, time.Now()) // rechazado
	supID2 := f.supply(t, 40)
	_ = f.uc.Edit(ctx, supID2, 20, price, time.Now(), "", "")
	_ = f.uc.Delete(ctx, shipID)

	assert.Equal(t, f.netOfMovements(testProductID), f.store.stock[testProductID])
}
