package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ItemDetail item con sus lotes y valores de especificaciones técnicas.
type ItemDetail struct {
	Item  *entity.Item
	Lots  []*entity.Lot
	Specs []entity.ItemTechnicalSpec
}

// LedgerFilter filtros para consultar el ledger. ItemID y LotID son
// excluyentes; ambos nil lista todas las transacciones del rango.
type LedgerFilter struct {
	ItemID *int64
	LotID  *int64
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// QueryUseCase consultas de solo lectura sobre inventario y ledger.
// Opera sobre repositorios ligados al pool; no abre transacciones.
type QueryUseCase struct {
	items  repository.ItemRepository
	lots   repository.LotRepository
	ledger repository.TransactionRepository
	specs  repository.TechnicalSpecRepository
}

// NewQueryUseCase construye el caso de uso de consultas.
func NewQueryUseCase(
	items repository.ItemRepository,
	lots repository.LotRepository,
	ledger repository.TransactionRepository,
	specs repository.TechnicalSpecRepository,
) *QueryUseCase {
	return &QueryUseCase{items: items, lots: lots, ledger: ledger, specs: specs}
}

// ListItems lista items paginados, opcionalmente filtrados por categoría.
func (uc *QueryUseCase) ListItems(ctx context.Context, categoryID int64, limit, offset int) ([]*entity.Item, error) {
	if categoryID > 0 {
		return uc.items.ListByCategory(ctx, categoryID, limit, offset)
	}
	return uc.items.List(ctx, limit, offset)
}

// GetItem devuelve el item con sus lotes y especificaciones.
func (uc *QueryUseCase) GetItem(ctx context.Context, id int64) (*ItemDetail, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id de item inválido", domain.ErrInvalidInput)
	}
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	lots, err := uc.lots.ListByItem(ctx, id)
	if err != nil {
		return nil, err
	}
	specs, err := uc.specs.ListItemValues(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ItemDetail{Item: item, Lots: lots, Specs: specs}, nil
}

// GetLot devuelve un lote por id.
func (uc *QueryUseCase) GetLot(ctx context.Context, id int64) (*entity.Lot, error) {
	lot, err := uc.lots.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	return lot, nil
}

// ListLedger consulta el ledger según el filtro.
func (uc *QueryUseCase) ListLedger(ctx context.Context, f LedgerFilter) ([]*entity.Transaction, error) {
	if f.ItemID != nil && f.LotID != nil {
		return nil, fmt.Errorf("%w: item_id y lot_id son excluyentes", domain.ErrInvalidInput)
	}
	if f.Limit <= 0 {
		f.Limit = 50
	}
	switch {
	case f.ItemID != nil:
		return uc.ledger.ListByItem(ctx, *f.ItemID, f.From, f.To, f.Limit, f.Offset)
	case f.LotID != nil:
		return uc.ledger.ListByLot(ctx, *f.LotID, f.From, f.To, f.Limit, f.Offset)
	default:
		return uc.ledger.List(ctx, f.From, f.To, f.Limit, f.Offset)
	}
}

// GetLedgerEntry devuelve una entrada del ledger por id.
func (uc *QueryUseCase) GetLedgerEntry(ctx context.Context, id int64) (*entity.Transaction, error) {
	tx, err := uc.ledger.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	return tx, nil
}
