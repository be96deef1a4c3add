package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ItemPatch campos opcionales para la actualización parcial de metadatos.
// Un puntero nil significa "no tocar"; los campos ausentes se conservan.
type ItemPatch struct {
	Name           *string
	Aliases        *string
	Brand          *string
	Description    *string
	SapCode        *string
	CategoryID     *int64
	ExpirationDate *time.Time
	BatchCode      *string
	LocationID     *int64
}

// IsEmpty indica si el patch no modifica ningún campo.
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Aliases == nil && p.Brand == nil &&
		p.Description == nil && p.SapCode == nil && p.CategoryID == nil &&
		p.ExpirationDate == nil && p.BatchCode == nil && p.LocationID == nil
}

// ItemRepository define el puerto de persistencia para Item (DIP).
// Los métodos ForUpdate bloquean la fila (SELECT FOR UPDATE) y deben usarse
// dentro de una transacción para el ciclo leer-calcular-escribir del saldo.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id int64) (*entity.Item, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Item, error)
	GetBySapCode(ctx context.Context, sapCode string) (*entity.Item, error)
	// FindMatchingForUpdate busca un item con los mismos atributos de lote
	// (nombre, marca, vencimiento, ubicación) y lo bloquea. Soporta la política
	// de fusión del alta de stock; nil si no hay coincidencia.
	FindMatchingForUpdate(ctx context.Context, name, brand string, expirationDate *time.Time, locationID int64) (*entity.Item, error)
	UpdateQuantity(ctx context.Context, id int64, quantity decimal.Decimal) error
	UpdateInfo(ctx context.Context, id int64, patch ItemPatch) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*entity.Item, error)
	ListByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]*entity.Item, error)
}

// ImageRepository define el puerto de persistencia para imágenes de items.
type ImageRepository interface {
	Create(ctx context.Context, image *entity.Image) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Image, error)
	Delete(ctx context.Context, id int64) error
}
