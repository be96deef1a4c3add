package inventory_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// fakeTxRunner ejecuta el callback con repositorios mock, sin transacción real.
// Cuenta las invocaciones para poder afirmar que la validación falla antes de
// abrir transacción alguna.
type fakeTxRunner struct {
	repos inventory.TxRepos
	runs  int
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(inventory.TxRepos) error) error {
	f.runs++
	return fn(f.repos)
}

// ── Mocks de repositorios ─────────────────────────────────────────────────────

type MockItemRepo struct{ mock.Mock }

func (m *MockItemRepo) Create(ctx context.Context, item *entity.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*entity.Item)
	return item, args.Error(1)
}

func (m *MockItemRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*entity.Item)
	return item, args.Error(1)
}

func (m *MockItemRepo) GetBySapCode(ctx context.Context, sapCode string) (*entity.Item, error) {
	args := m.Called(ctx, sapCode)
	item, _ := args.Get(0).(*entity.Item)
	return item, args.Error(1)
}

func (m *MockItemRepo) FindMatchingForUpdate(ctx context.Context, name, brand string, expirationDate *time.Time, locationID int64) (*entity.Item, error) {
	args := m.Called(ctx, name, brand, expirationDate, locationID)
	item, _ := args.Get(0).(*entity.Item)
	return item, args.Error(1)
}

func (m *MockItemRepo) UpdateQuantity(ctx context.Context, id int64, quantity decimal.Decimal) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *MockItemRepo) UpdateInfo(ctx context.Context, id int64, patch repository.ItemPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *MockItemRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockItemRepo) List(ctx context.Context, limit, offset int) ([]*entity.Item, error) {
	args := m.Called(ctx, limit, offset)
	list, _ := args.Get(0).([]*entity.Item)
	return list, args.Error(1)
}

func (m *MockItemRepo) ListByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]*entity.Item, error) {
	args := m.Called(ctx, categoryID, limit, offset)
	list, _ := args.Get(0).([]*entity.Item)
	return list, args.Error(1)
}

type MockLotRepo struct{ mock.Mock }

func (m *MockLotRepo) Create(ctx context.Context, lot *entity.Lot) error {
	return m.Called(ctx, lot).Error(0)
}

func (m *MockLotRepo) GetByID(ctx context.Context, id int64) (*entity.Lot, error) {
	args := m.Called(ctx, id)
	lot, _ := args.Get(0).(*entity.Lot)
	return lot, args.Error(1)
}

func (m *MockLotRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Lot, error) {
	args := m.Called(ctx, id)
	lot, _ := args.Get(0).(*entity.Lot)
	return lot, args.Error(1)
}

func (m *MockLotRepo) NextLotNumber(ctx context.Context, itemID int64) (int, error) {
	args := m.Called(ctx, itemID)
	return args.Int(0), args.Error(1)
}

func (m *MockLotRepo) UpdateQuantity(ctx context.Context, id int64, quantity decimal.Decimal) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *MockLotRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLotRepo) ListByItem(ctx context.Context, itemID int64) ([]*entity.Lot, error) {
	args := m.Called(ctx, itemID)
	list, _ := args.Get(0).([]*entity.Lot)
	return list, args.Error(1)
}

type MockLedgerRepo struct{ mock.Mock }

func (m *MockLedgerRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockLedgerRepo) GetByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*entity.Transaction)
	return t, args.Error(1)
}

func (m *MockLedgerRepo) ListByItem(ctx context.Context, itemID int64, from, to *time.Time, limit, offset int) ([]*entity.Transaction, error) {
	args := m.Called(ctx, itemID, from, to, limit, offset)
	list, _ := args.Get(0).([]*entity.Transaction)
	return list, args.Error(1)
}

func (m *MockLedgerRepo) ListByLot(ctx context.Context, lotID int64, from, to *time.Time, limit, offset int) ([]*entity.Transaction, error) {
	args := m.Called(ctx, lotID, from, to, limit, offset)
	list, _ := args.Get(0).([]*entity.Transaction)
	return list, args.Error(1)
}

func (m *MockLedgerRepo) List(ctx context.Context, from, to *time.Time, limit, offset int) ([]*entity.Transaction, error) {
	args := m.Called(ctx, from, to, limit, offset)
	list, _ := args.Get(0).([]*entity.Transaction)
	return list, args.Error(1)
}

type MockImageRepo struct{ mock.Mock }

func (m *MockImageRepo) Create(ctx context.Context, image *entity.Image) (int64, error) {
	args := m.Called(ctx, image)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockImageRepo) GetByID(ctx context.Context, id int64) (*entity.Image, error) {
	args := m.Called(ctx, id)
	img, _ := args.Get(0).(*entity.Image)
	return img, args.Error(1)
}

func (m *MockImageRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockSpecRepo struct{ mock.Mock }

func (m *MockSpecRepo) Create(ctx context.Context, spec *entity.TechnicalSpec) error {
	return m.Called(ctx, spec).Error(0)
}

func (m *MockSpecRepo) GetByID(ctx context.Context, id int64) (*entity.TechnicalSpec, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*entity.TechnicalSpec)
	return s, args.Error(1)
}

func (m *MockSpecRepo) Update(ctx context.Context, spec *entity.TechnicalSpec) error {
	return m.Called(ctx, spec).Error(0)
}

func (m *MockSpecRepo) List(ctx context.Context, limit, offset int) ([]*entity.TechnicalSpec, error) {
	args := m.Called(ctx, limit, offset)
	list, _ := args.Get(0).([]*entity.TechnicalSpec)
	return list, args.Error(1)
}

func (m *MockSpecRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSpecRepo) SetItemValues(ctx context.Context, itemID int64, values []entity.ItemTechnicalSpec) error {
	return m.Called(ctx, itemID, values).Error(0)
}

func (m *MockSpecRepo) ListItemValues(ctx context.Context, itemID int64) ([]entity.ItemTechnicalSpec, error) {
	args := m.Called(ctx, itemID)
	list, _ := args.Get(0).([]entity.ItemTechnicalSpec)
	return list, args.Error(1)
}

type MockChecker struct{ mock.Mock }

func (m *MockChecker) Exists(ctx context.Context, ref repository.Reference, id int64) (bool, error) {
	args := m.Called(ctx, ref, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockChecker) MissingSpecIDs(ctx context.Context, ids []int64) ([]int64, error) {
	args := m.Called(ctx, ids)
	list, _ := args.Get(0).([]int64)
	return list, args.Error(1)
}

// ── Fixture ───────────────────────────────────────────────────────────────────

type fixture struct {
	items   *MockItemRepo
	lots    *MockLotRepo
	ledger  *MockLedgerRepo
	images  *MockImageRepo
	specs   *MockSpecRepo
	checker *MockChecker
	runner  *fakeTxRunner
	uc      *inventory.UseCase
}

func newFixture(policy inventory.Policy) *fixture {
	f := &fixture{
		items:   &MockItemRepo{},
		lots:    &MockLotRepo{},
		ledger:  &MockLedgerRepo{},
		images:  &MockImageRepo{},
		specs:   &MockSpecRepo{},
		checker: &MockChecker{},
	}
	f.runner = &fakeTxRunner{repos: inventory.TxRepos{
		Items:  f.items,
		Lots:   f.lots,
		Ledger: f.ledger,
		Images: f.images,
		Specs:  f.specs,
	}}
	f.uc = inventory.NewUseCase(f.runner, f.checker, f.items, policy)
	return f
}

// allRefsExist hace pasar cualquier verificación de referencia.
func (f *fixture) allRefsExist() {
	f.checker.On("Exists", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
}
