package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa una unidad de inventario (SKU) del almacén.
// La cantidad es el saldo materializado; solo se modifica a través del motor
// de reconciliación y siempre junto a un registro en el ledger.
type Item struct {
	ID             int64
	Name           string
	Aliases        string
	Brand          string
	Description    string
	SapCode        string
	CategoryID     int64
	Quantity       decimal.Decimal
	ExpirationDate *time.Time
	BatchCode      string
	LocationID     int64
	ImageID        *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Image blob asociado a un item (propiedad exclusiva: se elimina en cascada).
type Image struct {
	ID       int64
	Content  []byte
	MimeType string
}
