package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/movement"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Almacen-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para montar el coordinador detrás del handler
// ──────────────────────────────────────────────────────────────────────────────

type stubLedger struct{ stock map[string]int64 }

func (l *stubLedger) Apply(_ context.Context, productID string, delta int64) (int64, error) {
	q, ok := l.stock[productID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if q+delta < 0 {
		return 0, domain.ErrInsufficientStock
	}
	l.stock[productID] = q + delta
	return q + delta, nil
}
func (l *stubLedger) Reverse(ctx context.Context, productID string, delta int64) (int64, error) {
	return l.Apply(ctx, productID, -delta)
}
func (l *stubLedger) Quantity(_ context.Context, productID string) (int64, error) {
	q, ok := l.stock[productID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return q, nil
}

type stubMovements struct{ rows map[string]*entity.Movement }

func (r *stubMovements) Create(m *entity.Movement) error {
	cp := *m
	r.rows[m.ID] = &cp
	return nil
}
func (r *stubMovements) Update(m *entity.Movement) error {
	cp := *m
	r.rows[m.ID] = &cp
	return nil
}
func (r *stubMovements) Delete(id string) error {
	delete(r.rows, id)
	return nil
}
func (r *stubMovements) GetByID(id string) (*entity.Movement, error) {
	m, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}
func (r *stubMovements) List(repository.MovementFilter) ([]*entity.Movement, error) {
	return nil, nil
}
func (r *stubMovements) ListByProduct(string, *time.Time, *time.Time, int, int) ([]*entity.Movement, error) {
	return nil, nil
}

// stubTx no simula rollback: estos tests solo ejercitan el mapeo HTTP, la
// atomicidad se cubre en los tests del coordinador.
type stubTx struct {
	movements *stubMovements
	ledger    *stubLedger
}

func (t *stubTx) Run(ctx context.Context, fn func(repository.MovementRepository, repository.StockLedger) error) error {
	return fn(t.movements, t.ledger)
}

type stubProducts struct{ ids map[string]bool }

func (r *stubProducts) Create(*entity.Product) error { return nil }
func (r *stubProducts) GetByID(id string) (*entity.Product, error) {
	if !r.ids[id] {
		return nil, nil
	}
	return &entity.Product{ID: id}, nil
}
func (r *stubProducts) List(int, int) ([]*entity.Product, error) { return nil, nil }
func (r *stubProducts) Update(*entity.Product) error             { return nil }
func (r *stubProducts) Delete(string) error                      { return nil }

type stubSuppliers struct{ ids map[string]bool }

func (r *stubSuppliers) Create(*entity.Supplier) error { return nil }
func (r *stubSuppliers) GetByID(id string) (*entity.Supplier, error) {
	if !r.ids[id] {
		return nil, nil
	}
	return &entity.Supplier{ID: id}, nil
}
func (r *stubSuppliers) List(int, int) ([]*entity.Supplier, error) { return nil, nil }
func (r *stubSuppliers) Update(*entity.Supplier) error             { return nil }
func (r *stubSuppliers) Delete(string) error                       { return nil }

type stubCustomers struct{ ids map[string]bool }

func (r *stubCustomers) Create(*entity.Customer) error { return nil }
func (r *stubCustomers) GetByID(id string) (*entity.Customer, error) {
	if !r.ids[id] {
		return nil, nil
	}
	return &entity.Customer{ID: id}, nil
}
func (r *stubCustomers) List(int, int) ([]*entity.Customer, error) { return nil, nil }
func (r *stubCustomers) Update(*entity.Customer) error             { return nil }
func (r *stubCustomers) Delete(string) error                       { return nil }

type movementTestEnv struct {
	app       *fiber.App
	ledger    *stubLedger
	movements *stubMovements
}

func newMovementTestEnv(initialStock int64) *movementTestEnv {
	ledger := &stubLedger{stock: map[string]int64{"prod-1": initialStock}}
	movements := &stubMovements{rows: make(map[string]*entity.Movement)}
	uc := movement.NewUseCase(
		&stubTx{movements: movements, ledger: ledger},
		movements,
		ledger,
		&stubProducts{ids: map[string]bool{"prod-1": true}},
		&stubSuppliers{ids: map[string]bool{"sup-1": true}},
		&stubCustomers{ids: map[string]bool{"cus-1": true}},
	)
	h := apphttp.NewMovementHandler(uc)

	app := fiber.New()
	app.Post("/movements/supplies", h.CreateSupply)
	app.Post("/movements/shipments", h.CreateShipment)
	app.Get("/products/:id/stock", h.GetStock)
	return &movementTestEnv{app: app, ledger: ledger, movements: movements}
}

func (e *movementTestEnv) post(t *testing.T, path string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests MovementHandler
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSupplyHTTP_Creado(t *testing.T) {
	env := newMovementTestEnv(0)
	resp := env.post(t, "/movements/supplies", fiber.Map{
		"supplier_id": "sup-1", "product_id": "prod-1", "quantity": 100, "unit_price": "10",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, int64(100), env.ledger.stock["prod-1"])
}

func TestCreateShipmentHTTP_StockInsuficiente(t *testing.T) {
	env := newMovementTestEnv(5)
	resp := env.post(t, "/movements/shipments", fiber.Map{
		"customer_id": "cus-1", "product_id": "prod-1", "quantity": 30, "unit_price": "12",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", decodeError(t, resp).Code)
	assert.Equal(t, int64(5), env.ledger.stock["prod-1"], "el rechazo no toca el stock")
	assert.Empty(t, env.movements.rows, "el rechazo no deja movimiento registrado")
}

func TestCreateSupplyHTTP_ProductoInexistente(t *testing.T) {
	env := newMovementTestEnv(0)
	resp := env.post(t, "/movements/supplies", fiber.Map{
		"supplier_id": "sup-1", "product_id": "prod-raro", "quantity": 10, "unit_price": "10",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateShipmentHTTP_CantidadInvalida(t *testing.T) {
	env := newMovementTestEnv(50)
	resp := env.post(t, "/movements/shipments", fiber.Map{
		"customer_id": "cus-1", "product_id": "prod-1", "quantity": 0, "unit_price": "12",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
}

func TestGetStockHTTP(t *testing.T) {
	env := newMovementTestEnv(42)
	req := httptest.NewRequest(http.MethodGet, "/products/prod-1/stock", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.StockResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "prod-1", out.ProductID)
	assert.Equal(t, int64(42), out.Quantity)
}
