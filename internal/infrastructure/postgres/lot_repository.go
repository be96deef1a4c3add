package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

const lotColumns = `id, item_id, lot_number, quantity, expiration_date, location_id, created_at, updated_at`

// LotRepo implementación del puerto LotRepository sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de persistencia para lotes. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// Create persiste un lote nuevo y asigna el id generado. La unicidad de
// (item_id, lot_number) la garantiza el constraint único de la tabla.
func (r *LotRepo) Create(ctx context.Context, lot *entity.Lot) error {
	query := `
		INSERT INTO lots (item_id, lot_number, quantity, expiration_date, location_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		lot.ItemID, lot.LotNumber, lot.Quantity, lot.ExpirationDate,
		lot.LocationID, lot.CreatedAt, lot.UpdatedAt,
	).Scan(&lot.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID; nil si no existe.
func (r *LotRepo) GetByID(ctx context.Context, id int64) (*entity.Lot, error) {
	return r.getOne(ctx, `SELECT `+lotColumns+` FROM lots WHERE id = $1`, id)
}

// GetByIDForUpdate obtiene el lote y bloquea la fila (SELECT FOR UPDATE).
func (r *LotRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Lot, error) {
	return r.getOne(ctx, `SELECT `+lotColumns+` FROM lots WHERE id = $1 FOR UPDATE`, id)
}

// NextLotNumber calcula el siguiente número de lote del item padre
// (max+1, empezando en 1). Debe invocarse dentro de la transacción que hace el
// insert, con la fila del item ya bloqueada; los huecos de lotes eliminados no
// se reutilizan porque el máximo nunca retrocede por debajo de lo ya asignado
// mientras exista algún lote posterior.
func (r *LotRepo) NextLotNumber(ctx context.Context, itemID int64) (int, error) {
	var next int
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(MAX(lot_number), 0) + 1 FROM lots WHERE item_id = $1`,
		itemID,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next lot number: %w", err)
	}
	return next, nil
}

// UpdateQuantity persiste el saldo reconciliado del lote.
func (r *LotRepo) UpdateQuantity(ctx context.Context, id int64, quantity decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE lots SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update lot quantity: %w", err)
	}
	return nil
}

// Delete elimina un lote por ID.
func (r *LotRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM lots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lot: %w", err)
	}
	return nil
}

// ListByItem lista los lotes de un item ordenados por número.
func (r *LotRepo) ListByItem(ctx context.Context, itemID int64) ([]*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE item_id = $1 ORDER BY lot_number`
	rows, err := r.q.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lot
	for rows.Next() {
		var l entity.Lot
		if err := rows.Scan(
			&l.ID, &l.ItemID, &l.LotNumber, &l.Quantity, &l.ExpirationDate,
			&l.LocationID, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

func (r *LotRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Lot, error) {
	var l entity.Lot
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&l.ID, &l.ItemID, &l.LotNumber, &l.Quantity, &l.ExpirationDate,
		&l.LocationID, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return &l, nil
}
