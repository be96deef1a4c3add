package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// LotRepository define el puerto de persistencia para lotes.
type LotRepository interface {
	Create(ctx context.Context, lot *entity.Lot) error
	GetByID(ctx context.Context, id int64) (*entity.Lot, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Lot, error)
	// NextLotNumber calcula COALESCE(MAX(lot_number),0)+1 para el item padre.
	// Debe ejecutarse en la misma transacción que el insert que lo consume,
	// con la fila del item padre ya bloqueada, para que dos altas concurrentes
	// no obtengan el mismo número.
	NextLotNumber(ctx context.Context, itemID int64) (int, error)
	UpdateQuantity(ctx context.Context, id int64, quantity decimal.Decimal) error
	Delete(ctx context.Context, id int64) error
	ListByItem(ctx context.Context, itemID int64) ([]*entity.Lot, error)
}
