package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Acciones del ledger. Los literales se persisten y se exponen por la API:
// no cambiar los tokens.
const (
	ActionIN    = "IN"    // entrada de stock
	ActionOUT   = "OUT"   // salida de stock
	ActionAJUST = "AJUST" // corrección a un valor absoluto
)

// Sujetos posibles de una transacción (discriminador ItemType).
const (
	SubjectItem = "item"
	SubjectLot  = "lot"
)

// Transaction es un registro inmutable (append-only) de un cambio de cantidad.
// QuantityChange guarda siempre la magnitud (valor absoluto); OldQuantity y
// NewQuantity son saldos absolutos, de modo que el ledger se explica solo:
// NewQuantity = OldQuantity ± QuantityChange según la acción.
type Transaction struct {
	ID                int64
	CorrelationID     string // agrupa las escrituras de una misma orquestación
	UserID            int64
	ItemID            *int64 // exactamente uno de ItemID/LotID según ItemType
	LotID             *int64
	ItemType          string
	ActionDescription string
	QuantityChange    decimal.Decimal
	OldQuantity       decimal.Decimal
	NewQuantity       decimal.Decimal
	TransactionDate   time.Time
}
