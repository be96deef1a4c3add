package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Reference identifica una tabla/columna consultable por el verificador de
// claves foráneas. Las instancias se declaran aquí y nunca se construyen a
// partir de entrada del usuario (los nombres se interpolan en el SQL).
type Reference struct {
	Table  string
	Column string
}

// Referencias permitidas para el verificador.
var (
	RefLocation = Reference{Table: "locations", Column: "id"}
	RefCategory = Reference{Table: "categories", Column: "id"}
	RefUser     = Reference{Table: "users", Column: "id"}
	RefItem     = Reference{Table: "items", Column: "id"}
	RefLot      = Reference{Table: "lots", Column: "id"}
)

// ReferenceChecker define el puerto de verificación de existencia de claves
// foráneas antes de escribir (fail-fast, sin depender del rechazo FK de la BD).
// Solo lee; no tiene efectos secundarios.
type ReferenceChecker interface {
	Exists(ctx context.Context, ref Reference, id int64) (bool, error)
	// MissingSpecIDs devuelve, de un lote de ids de especificaciones técnicas,
	// los que no existen (consulta única por lote).
	MissingSpecIDs(ctx context.Context, ids []int64) ([]int64, error)
}

// LocationRepository define el puerto de persistencia para ubicaciones.
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	GetByID(ctx context.Context, id int64) (*entity.Location, error)
	Update(ctx context.Context, location *entity.Location) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*entity.Location, error)
}

// CategoryRepository define el puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*entity.Category, error)
}

// TechnicalSpecRepository define el puerto para especificaciones técnicas y
// sus valores por item.
type TechnicalSpecRepository interface {
	Create(ctx context.Context, spec *entity.TechnicalSpec) error
	GetByID(ctx context.Context, id int64) (*entity.TechnicalSpec, error)
	Update(ctx context.Context, spec *entity.TechnicalSpec) error
	List(ctx context.Context, limit, offset int) ([]*entity.TechnicalSpec, error)
	Delete(ctx context.Context, id int64) error
	SetItemValues(ctx context.Context, itemID int64, values []entity.ItemTechnicalSpec) error
	ListItemValues(ctx context.Context, itemID int64) ([]entity.ItemTechnicalSpec, error)
}

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	Delete(ctx context.Context, id int64) error
}
