package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var (
	_ repository.LocationRepository      = (*LocationRepo)(nil)
	_ repository.CategoryRepository      = (*CategoryRepo)(nil)
	_ repository.TechnicalSpecRepository = (*TechnicalSpecRepo)(nil)
	_ repository.ImageRepository         = (*ImageRepo)(nil)
)

// LocationRepo CRUD de ubicaciones sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

func (r *LocationRepo) Create(ctx context.Context, loc *entity.Location) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO locations (name, description) VALUES ($1, $2) RETURNING id`,
		loc.Name, loc.Description,
	).Scan(&loc.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

func (r *LocationRepo) GetByID(ctx context.Context, id int64) (*entity.Location, error) {
	var loc entity.Location
	err := r.q.QueryRow(ctx,
		`SELECT id, name, description FROM locations WHERE id = $1`, id,
	).Scan(&loc.ID, &loc.Name, &loc.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &loc, nil
}

func (r *LocationRepo) Update(ctx context.Context, loc *entity.Location) error {
	_, err := r.q.Exec(ctx,
		`UPDATE locations SET name = $2, description = $3 WHERE id = $1`,
		loc.ID, loc.Name, loc.Description,
	)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

func (r *LocationRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}

func (r *LocationRepo) List(ctx context.Context, limit, offset int) ([]*entity.Location, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, description FROM locations ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var loc entity.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Description); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &loc)
	}
	return list, rows.Err()
}

// CategoryRepo CRUD de categorías sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func (r *CategoryRepo) Create(ctx context.Context, cat *entity.Category) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING id`,
		cat.Name, cat.Description,
	).Scan(&cat.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var cat entity.Category
	err := r.q.QueryRow(ctx,
		`SELECT id, name, description FROM categories WHERE id = $1`, id,
	).Scan(&cat.ID, &cat.Name, &cat.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &cat, nil
}

func (r *CategoryRepo) Update(ctx context.Context, cat *entity.Category) error {
	_, err := r.q.Exec(ctx,
		`UPDATE categories SET name = $2, description = $3 WHERE id = $1`,
		cat.ID, cat.Name, cat.Description,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, description FROM categories ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var cat entity.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &cat)
	}
	return list, rows.Err()
}

// TechnicalSpecRepo especificaciones técnicas y sus valores por item.
type TechnicalSpecRepo struct {
	q Querier
}

// NewTechnicalSpecRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTechnicalSpecRepository(q Querier) *TechnicalSpecRepo {
	return &TechnicalSpecRepo{q: q}
}

func (r *TechnicalSpecRepo) Create(ctx context.Context, spec *entity.TechnicalSpec) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO technical_specs (name, unit) VALUES ($1, $2) RETURNING id`,
		spec.Name, spec.Unit,
	).Scan(&spec.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert technical spec: %w", err)
	}
	return nil
}

func (r *TechnicalSpecRepo) GetByID(ctx context.Context, id int64) (*entity.TechnicalSpec, error) {
	var s entity.TechnicalSpec
	err := r.q.QueryRow(ctx,
		`SELECT id, name, unit FROM technical_specs WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Unit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get technical spec: %w", err)
	}
	return &s, nil
}

func (r *TechnicalSpecRepo) Update(ctx context.Context, spec *entity.TechnicalSpec) error {
	_, err := r.q.Exec(ctx,
		`UPDATE technical_specs SET name = $2, unit = $3 WHERE id = $1`,
		spec.ID, spec.Name, spec.Unit,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update technical spec: %w", err)
	}
	return nil
}

func (r *TechnicalSpecRepo) List(ctx context.Context, limit, offset int) ([]*entity.TechnicalSpec, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, unit FROM technical_specs ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list technical specs: %w", err)
	}
	defer rows.Close()
	var list []*entity.TechnicalSpec
	for rows.Next() {
		var s entity.TechnicalSpec
		if err := rows.Scan(&s.ID, &s.Name, &s.Unit); err != nil {
			return nil, fmt.Errorf("scan technical spec: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *TechnicalSpecRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM technical_specs WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete technical spec: %w", err)
	}
	return nil
}

// SetItemValues reemplaza los valores de especificaciones de un item.
func (r *TechnicalSpecRepo) SetItemValues(ctx context.Context, itemID int64, values []entity.ItemTechnicalSpec) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM item_technical_specs WHERE item_id = $1`, itemID); err != nil {
		return fmt.Errorf("clear item specs: %w", err)
	}
	for _, v := range values {
		_, err := r.q.Exec(ctx,
			`INSERT INTO item_technical_specs (item_id, spec_id, value) VALUES ($1, $2, $3)`,
			itemID, v.SpecID, v.Value,
		)
		if err != nil {
			return fmt.Errorf("insert item spec %d: %w", v.SpecID, err)
		}
	}
	return nil
}

func (r *TechnicalSpecRepo) ListItemValues(ctx context.Context, itemID int64) ([]entity.ItemTechnicalSpec, error) {
	rows, err := r.q.Query(ctx,
		`SELECT item_id, spec_id, value FROM item_technical_specs WHERE item_id = $1 ORDER BY spec_id`,
		itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("list item specs: %w", err)
	}
	defer rows.Close()
	var list []entity.ItemTechnicalSpec
	for rows.Next() {
		var v entity.ItemTechnicalSpec
		if err := rows.Scan(&v.ItemID, &v.SpecID, &v.Value); err != nil {
			return nil, fmt.Errorf("scan item spec: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// ImageRepo blobs de imágenes de items.
type ImageRepo struct {
	q Querier
}

// NewImageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewImageRepository(q Querier) *ImageRepo {
	return &ImageRepo{q: q}
}

func (r *ImageRepo) Create(ctx context.Context, img *entity.Image) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx,
		`INSERT INTO images (content, mime_type) VALUES ($1, $2) RETURNING id`,
		img.Content, img.MimeType,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert image: %w", err)
	}
	img.ID = id
	return id, nil
}

func (r *ImageRepo) GetByID(ctx context.Context, id int64) (*entity.Image, error) {
	var img entity.Image
	err := r.q.QueryRow(ctx,
		`SELECT id, content, mime_type FROM images WHERE id = $1`, id,
	).Scan(&img.ID, &img.Content, &img.MimeType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get image: %w", err)
	}
	return &img, nil
}

func (r *ImageRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}
