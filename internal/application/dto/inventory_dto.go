package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/items (alta de stock).
// TechnicalSpecs es un mapa id de especificación (numérico, como string JSON)
// -> valor; los valores null se rechazan en validación.
type CreateItemRequest struct {
	Name           string             `json:"name"`
	Aliases        string             `json:"aliases,omitempty"`
	Brand          string             `json:"brand,omitempty"`
	Description    string             `json:"description,omitempty"`
	SapCode        string             `json:"sap_code,omitempty"`
	CategoryID     int64              `json:"category_id"`
	Quantity       decimal.Decimal    `json:"quantity"`
	ExpirationDate *time.Time         `json:"expiration_date,omitempty"`
	BatchCode      string             `json:"batch_code,omitempty"`
	LocationID     int64              `json:"location_id"`
	TechnicalSpecs map[string]*string `json:"technical_specs,omitempty"`
	Image          []byte             `json:"image,omitempty"`
	ImageMimeType  string             `json:"image_mime_type,omitempty"`
}

// CreateLotRequest body para POST /api/lots. El item padre se identifica por
// item_id o por sap_code (exactamente uno).
type CreateLotRequest struct {
	ItemID         *int64          `json:"item_id,omitempty"`
	SapCode        string          `json:"sap_code,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	ExpirationDate *time.Time      `json:"expiration_date,omitempty"`
	LocationID     int64           `json:"location_id"`
}

// UpdateQuantityRequest body para PATCH /api/items/:id/quantity y
// /api/lots/:id/quantity. En modo delta Quantity puede ser negativa (salida);
// con is_ajust=true es el valor absoluto objetivo.
type UpdateQuantityRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	IsAjust  bool            `json:"is_ajust"`
}

// UpdateItemInfoRequest body para PATCH /api/items/:id (actualización parcial
// de metadatos, sin ledger). Los campos ausentes no se tocan.
type UpdateItemInfoRequest struct {
	Name           *string    `json:"name,omitempty"`
	Aliases        *string    `json:"aliases,omitempty"`
	Brand          *string    `json:"brand,omitempty"`
	Description    *string    `json:"description,omitempty"`
	SapCode        *string    `json:"sap_code,omitempty"`
	CategoryID     *int64     `json:"category_id,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	BatchCode      *string    `json:"batch_code,omitempty"`
	LocationID     *int64     `json:"location_id,omitempty"`
}

// ItemMutationData datos devueltos por las mutaciones de items/lotes.
type ItemMutationData struct {
	ItemID         int64           `json:"item_id,omitempty"`
	LotID          int64           `json:"lot_id,omitempty"`
	LotNumber      int             `json:"lot_number,omitempty"`
	Merged         bool            `json:"merged,omitempty"`
	Action         string          `json:"action,omitempty"`
	OldQuantity    decimal.Decimal `json:"old_quantity"`
	NewQuantity    decimal.Decimal `json:"new_quantity"`
	QuantityChange decimal.Decimal `json:"quantity_change"`
}

// TransactionResponse entrada del ledger en listados.
type TransactionResponse struct {
	ID                int64           `json:"id"`
	CorrelationID     string          `json:"correlation_id"`
	UserID            int64           `json:"user_id"`
	ItemID            *int64          `json:"item_id,omitempty"`
	LotID             *int64          `json:"lot_id,omitempty"`
	ItemType          string          `json:"item_type"`
	ActionDescription string          `json:"action_description"`
	QuantityChange    decimal.Decimal `json:"quantity_change"`
	OldQuantity       decimal.Decimal `json:"old_quantity"`
	NewQuantity       decimal.Decimal `json:"new_quantity"`
	TransactionDate   time.Time       `json:"transaction_date"`
}
