package repository

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// TransactionRepository define el puerto del ledger de inventario.
// El ledger es append-only: no existe Update ni Delete.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id int64) (*entity.Transaction, error)
	ListByItem(ctx context.Context, itemID int64, from, to *time.Time, limit, offset int) ([]*entity.Transaction, error)
	ListByLot(ctx context.Context, lotID int64, from, to *time.Time, limit, offset int) ([]*entity.Transaction, error)
	List(ctx context.Context, from, to *time.Time, limit, offset int) ([]*entity.Transaction, error)
}
