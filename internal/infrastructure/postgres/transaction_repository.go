package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, correlation_id, user_id, item_id, lot_id, item_type, action_description, quantity_change, old_quantity, new_quantity, transaction_date`

// TransactionRepo implementación del ledger sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lee: el ledger es append-only.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una entrada del ledger.
func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	query := `
		INSERT INTO transactions (correlation_id, user_id, item_id, lot_id, item_type, action_description, quantity_change, old_quantity, new_quantity, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		t.CorrelationID, t.UserID, t.ItemID, t.LotID, t.ItemType,
		t.ActionDescription, t.QuantityChange, t.OldQuantity, t.NewQuantity, t.TransactionDate,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID; nil si no existe.
func (r *TransactionRepo) GetByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	var t entity.Transaction
	err := r.q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.CorrelationID, &t.UserID, &t.ItemID, &t.LotID, &t.ItemType,
		&t.ActionDescription, &t.QuantityChange, &t.OldQuantity, &t.NewQuantity, &t.TransactionDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// ListByItem lista entradas de un item en un rango de fechas.
func (r *TransactionRepo) ListByItem(ctx context.Context, itemID int64, from, to *time.Time, limit, offset int) ([]*entity.Transaction, error) {
	return r.listFiltered(ctx, `item_id = $1`, itemID, from, to, limit, offset)
}

// ListByLot lista entradas de un lote en un rango de fechas.
func (r *TransactionRepo) ListByLot(ctx context.Context, lotID int64, from, to *time.Time, limit, offset int) ([]*entity.Transaction, error) {
	return r.listFiltered(ctx, `lot_id = $1`, lotID, from, to, limit, offset)
}

// List lista el ledger completo en un rango de fechas.
func (r *TransactionRepo) List(ctx context.Context, from, to *time.Time, limit, offset int) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE true`
	args := []any{}
	pos := 1
	if from != nil {
		query += fmt.Sprintf(" AND transaction_date >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND transaction_date <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY transaction_date DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)
	return r.queryList(ctx, query, args...)
}

func (r *TransactionRepo) listFiltered(ctx context.Context, where string, subjectID int64, from, to *time.Time, limit, offset int) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE ` + where
	args := []any{subjectID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND transaction_date >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND transaction_date <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY transaction_date DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)
	return r.queryList(ctx, query, args...)
}

func (r *TransactionRepo) queryList(ctx context.Context, query string, args ...any) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(
			&t.ID, &t.CorrelationID, &t.UserID, &t.ItemID, &t.LotID, &t.ItemType,
			&t.ActionDescription, &t.QuantityChange, &t.OldQuantity, &t.NewQuantity, &t.TransactionDate,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
