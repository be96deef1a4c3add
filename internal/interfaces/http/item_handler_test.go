package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	apphttp "github.com/jhoicas/almacen-api/internal/interfaces/http"
)

// Matchers por tabla para distinguir qué referencia se está verificando.
func isUsersRef(ref repository.Reference) bool     { return ref.Table == "users" }
func isLocationsRef(ref repository.Reference) bool { return ref.Table == "locations" }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture de integración: app Fiber completa con use cases reales y repos mock
// ──────────────────────────────────────────────────────────────────────────────

type apiFixture struct {
	app     *fiber.App
	items   *MockItemRepo
	lots    *MockLotRepo
	ledger  *MockLedgerRepo
	images  *MockImageRepo
	specs   *MockSpecRepo
	checker *MockChecker
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	f := &apiFixture{
		items:   &MockItemRepo{},
		lots:    &MockLotRepo{},
		ledger:  &MockLedgerRepo{},
		images:  &MockImageRepo{},
		specs:   &MockSpecRepo{},
		checker: &MockChecker{},
	}
	runner := &fakeTxRunner{repos: inventory.TxRepos{
		Items:  f.items,
		Lots:   f.lots,
		Ledger: f.ledger,
		Images: f.images,
		Specs:  f.specs,
	}}
	uc := inventory.NewUseCase(runner, f.checker, f.items, inventory.Policy{})
	query := inventory.NewQueryUseCase(f.items, f.lots, f.ledger, f.specs)

	f.app = fiber.New()
	apphttp.Router(f.app, apphttp.RouterDeps{
		InventoryUC: uc,
		QueryUC:     query,
		JWTSecret:   testJWTSecret,
	})
	return f
}

func (f *apiFixture) allRefsExist() {
	f.checker.On("Exists", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
}

func (f *apiFixture) do(t *testing.T, method, path, role string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeMutation(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/items
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearItem_AltaNueva_Retorna201(t *testing.T) {
	f := newAPIFixture(t)
	f.allRefsExist()
	f.items.On("FindMatchingForUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)
	f.items.On("Create", mock.Anything, mock.AnythingOfType("*entity.Item")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Item).ID = 7
		}).Return(nil)
	f.ledger.On("Create", mock.Anything, mock.AnythingOfType("*entity.Transaction")).Return(nil)

	resp := f.do(t, http.MethodPost, "/api/items", "bodeguero", fiber.Map{
		"name":        "Guantes de nitrilo",
		"category_id": 2,
		"location_id": 3,
		"quantity":    "25",
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeMutation(t, resp)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.Equal(t, float64(7), data["item_id"])
	assert.Equal(t, entity.ActionIN, data["action"])
	assert.Equal(t, "25", data["new_quantity"])
	f.ledger.AssertNumberOfCalls(t, "Create", 1)
}

func TestCrearItem_UbicacionInexistente_Retorna400(t *testing.T) {
	f := newAPIFixture(t)
	// Usuario existe, ubicación no.
	f.checker.On("Exists", mock.Anything, mock.MatchedBy(isUsersRef), mock.Anything).Return(true, nil)
	f.checker.On("Exists", mock.Anything, mock.MatchedBy(isLocationsRef), mock.Anything).Return(false, nil)

	resp := f.do(t, http.MethodPost, "/api/items", "bodeguero", fiber.Map{
		"name":        "Guantes de nitrilo",
		"category_id": 2,
		"location_id": 99,
		"quantity":    "25",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeMutation(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "REFERENCE", body["error"])
	assert.Contains(t, body["details"], "fkIdLocation")
	// Sin transacción ni escrituras.
	f.items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.ledger.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCrearItem_RolConsulta_Retorna403(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodPost, "/api/items", "consulta", fiber.Map{
		"name": "Guantes", "quantity": "5", "category_id": 1, "location_id": 1,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	f.items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// ──────────────────────────────────────────────────────────────────────────────
// PATCH /api/items/:id/quantity
// ──────────────────────────────────────────────────────────────────────────────

func TestActualizarCantidad_SalidaValida_Retorna200(t *testing.T) {
	f := newAPIFixture(t)
	f.allRefsExist()
	f.items.On("GetByIDForUpdate", mock.Anything, int64(7)).
		Return(&entity.Item{ID: 7, Quantity: decimal.NewFromInt(10)}, nil)
	f.items.On("UpdateQuantity", mock.Anything, int64(7), decimal.NewFromInt(4)).Return(nil)
	f.ledger.On("Create", mock.Anything, mock.AnythingOfType("*entity.Transaction")).Return(nil)

	resp := f.do(t, http.MethodPatch, "/api/items/7/quantity", "bodeguero", fiber.Map{
		"quantity": "-6",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeMutation(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, entity.ActionOUT, data["action"])
	assert.Equal(t, "10", data["old_quantity"])
	assert.Equal(t, "4", data["new_quantity"])
	assert.Equal(t, "6", data["quantity_change"])
}

func TestActualizarCantidad_SaldoInsuficiente_Retorna400(t *testing.T) {
	f := newAPIFixture(t)
	f.allRefsExist()
	f.items.On("GetByIDForUpdate", mock.Anything, int64(7)).
		Return(&entity.Item{ID: 7, Quantity: decimal.NewFromInt(3)}, nil)

	resp := f.do(t, http.MethodPatch, "/api/items/7/quantity", "bodeguero", fiber.Map{
		"quantity": "-10",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeMutation(t, resp)
	assert.Equal(t, "NEGATIVE_QUANTITY", body["error"])
	f.items.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
	f.ledger.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/transactions
// ──────────────────────────────────────────────────────────────────────────────

func TestListarLedger_FiltraPorItem(t *testing.T) {
	f := newAPIFixture(t)
	itemID := int64(7)
	f.ledger.On("ListByItem", mock.Anything, itemID, mock.Anything, mock.Anything, 20, 0).
		Return([]*entity.Transaction{}, nil)

	resp := f.do(t, http.MethodGet, "/api/transactions?item_id=7", "consulta", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	f.ledger.AssertCalled(t, "ListByItem", mock.Anything, itemID, mock.Anything, mock.Anything, 20, 0)
}
