package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, name, aliases, brand, description, sap_code, category_id, quantity, expiration_date, batch_code, location_id, image_id, created_at, updated_at`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para items. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un item nuevo y asigna el id generado.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (name, aliases, brand, description, sap_code, category_id, quantity, expiration_date, batch_code, location_id, image_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		item.Name, item.Aliases, item.Brand, item.Description, item.SapCode,
		item.CategoryID, item.Quantity, item.ExpirationDate, item.BatchCode,
		item.LocationID, item.ImageID, item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un item por ID; nil si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	return r.getOne(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
}

// GetByIDForUpdate obtiene el item y bloquea la fila (SELECT FOR UPDATE) para
// el ciclo leer-calcular-escribir del saldo.
func (r *ItemRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Item, error) {
	return r.getOne(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1 FOR UPDATE`, id)
}

// GetBySapCode obtiene un item por código SAP; nil si no existe.
func (r *ItemRepo) GetBySapCode(ctx context.Context, sapCode string) (*entity.Item, error) {
	return r.getOne(ctx, `SELECT `+itemColumns+` FROM items WHERE sap_code = $1`, sapCode)
}

// FindMatchingForUpdate busca un item con los mismos atributos de lote
// (nombre, marca, vencimiento, ubicación) y lo bloquea; nil si no hay
// coincidencia. Soporta la política de fusión del alta de stock.
func (r *ItemRepo) FindMatchingForUpdate(ctx context.Context, name, brand string, expirationDate *time.Time, locationID int64) (*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE name = $1 AND brand = $2 AND expiration_date IS NOT DISTINCT FROM $3 AND location_id = $4
		ORDER BY id
		LIMIT 1
		FOR UPDATE`
	return r.getOne(ctx, query, name, brand, expirationDate, locationID)
}

// UpdateQuantity persiste el saldo reconciliado.
func (r *ItemRepo) UpdateQuantity(ctx context.Context, id int64, quantity decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE items SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update item quantity: %w", err)
	}
	return nil
}

// UpdateInfo actualiza solo los campos presentes en el patch. La cláusula SET
// se construye con squirrel a partir del conjunto de campos presentes, con
// todos los valores ligados como parámetros (nunca interpolados).
func (r *ItemRepo) UpdateInfo(ctx context.Context, id int64, patch repository.ItemPatch) error {
	b := sq.Update("items").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	if patch.Name != nil {
		b = b.Set("name", *patch.Name)
	}
	if patch.Aliases != nil {
		b = b.Set("aliases", *patch.Aliases)
	}
	if patch.Brand != nil {
		b = b.Set("brand", *patch.Brand)
	}
	if patch.Description != nil {
		b = b.Set("description", *patch.Description)
	}
	if patch.SapCode != nil {
		b = b.Set("sap_code", *patch.SapCode)
	}
	if patch.CategoryID != nil {
		b = b.Set("category_id", *patch.CategoryID)
	}
	if patch.ExpirationDate != nil {
		b = b.Set("expiration_date", *patch.ExpirationDate)
	}
	if patch.BatchCode != nil {
		b = b.Set("batch_code", *patch.BatchCode)
	}
	if patch.LocationID != nil {
		b = b.Set("location_id", *patch.LocationID)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build update item: %w", err)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update item info: %w", err)
	}
	return nil
}

// Delete elimina un item por ID. Los lotes y valores de especificaciones del
// item caen por FK ON DELETE CASCADE; la imagen la borra el orquestador.
func (r *ItemRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// List lista items con paginación.
func (r *ItemRepo) List(ctx context.Context, limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

// ListByCategory lista items de una categoría con paginación.
func (r *ItemRepo) ListByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE category_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(ctx, query, categoryID, limit, offset)
}

func (r *ItemRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Item, error) {
	var it entity.Item
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&it.ID, &it.Name, &it.Aliases, &it.Brand, &it.Description, &it.SapCode,
		&it.CategoryID, &it.Quantity, &it.ExpirationDate, &it.BatchCode,
		&it.LocationID, &it.ImageID, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

func (r *ItemRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Item, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Aliases, &it.Brand, &it.Description, &it.SapCode,
			&it.CategoryID, &it.Quantity, &it.ExpirationDate, &it.BatchCode,
			&it.LocationID, &it.ImageID, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
