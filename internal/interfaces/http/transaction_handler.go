package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// TransactionHandler consultas de solo lectura sobre el ledger (protegido).
// El ledger no expone escrituras por HTTP: toda entrada nace de una mutación
// de inventario.
type TransactionHandler struct {
	query *inventory.QueryUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(query *inventory.QueryUseCase) *TransactionHandler {
	return &TransactionHandler{query: query}
}

// List consulta el ledger con filtros opcionales.
// GET /api/transactions?item_id=&lot_id=&from=&to=&limit=&offset=
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	filter := inventory.LedgerFilter{Limit: page.Limit, Offset: page.Offset}
	if v := c.QueryInt("item_id"); v > 0 {
		id := int64(v)
		filter.ItemID = &id
	}
	if v := c.QueryInt("lot_id"); v > 0 {
		id := int64(v)
		filter.LotID = &id
	}
	var err error
	if filter.From, err = parseDateQuery(c.Query("from")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC3339 o 2006-01-02)"})
	}
	if filter.To, err = parseDateQuery(c.Query("to")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC3339 o 2006-01-02)"})
	}

	list, err := h.query.ListLedger(c.Context(), filter)
	if err != nil {
		return respondMutationError(c, err)
	}
	out := make([]dto.TransactionResponse, 0, len(list))
	for _, tx := range list {
		out = append(out, toTransactionResponse(tx))
	}
	return c.JSON(fiber.Map{
		"transactions": out,
		"page":         dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(out)},
	})
}

// GetByID devuelve una entrada del ledger.
// GET /api/transactions/:id
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de transacción inválido"})
	}
	tx, err := h.query.GetLedgerEntry(c.Context(), int64(id))
	if err != nil {
		return respondMutationError(c, err)
	}
	return c.JSON(toTransactionResponse(tx))
}

func toTransactionResponse(tx *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:                tx.ID,
		CorrelationID:     tx.CorrelationID,
		UserID:            tx.UserID,
		ItemID:            tx.ItemID,
		LotID:             tx.LotID,
		ItemType:          tx.ItemType,
		ActionDescription: tx.ActionDescription,
		QuantityChange:    tx.QuantityChange,
		OldQuantity:       tx.OldQuantity,
		NewQuantity:       tx.NewQuantity,
		TransactionDate:   tx.TransactionDate,
	}
}

// parseDateQuery acepta RFC3339 o fecha simple (2006-01-02); vacío = nil.
func parseDateQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
