package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot es una subasignación del stock de un item en una ubicación/vencimiento
// concreto. Se identifica por (ItemID, LotNumber); LotNumber es único por item
// y se asigna de forma monótona (max+1, empezando en 1). Los huecos que dejan
// los lotes eliminados nunca se reutilizan.
type Lot struct {
	ID             int64
	ItemID         int64
	LotNumber      int
	Quantity       decimal.Decimal
	ExpirationDate *time.Time
	LocationID     int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
