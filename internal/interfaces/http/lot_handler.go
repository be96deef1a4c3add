package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// LotHandler maneja las peticiones HTTP de lotes (protegido).
type LotHandler struct {
	uc    *inventory.UseCase
	query *inventory.QueryUseCase
}

// NewLotHandler construye el handler.
func NewLotHandler(uc *inventory.UseCase, query *inventory.QueryUseCase) *LotHandler {
	return &LotHandler{uc: uc, query: query}
}

// Create crea un lote bajo un item (por item_id o sap_code, exactamente uno).
// POST /api/lots
func (h *LotHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido", err.Error()))
	}
	result, err := h.uc.CreateLot(c.Context(), inventory.CreateLotInput{
		UserID:         GetUserID(c),
		ItemID:         in.ItemID,
		SapCode:        in.SapCode,
		Quantity:       in.Quantity,
		ExpirationDate: in.ExpirationDate,
		LocationID:     in.LocationID,
	})
	if err != nil {
		return respondMutationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("lote creado", dto.ItemMutationData{
		ItemID:         result.ItemID,
		LotID:          result.LotID,
		LotNumber:      result.LotNumber,
		Action:         entity.ActionIN,
		NewQuantity:    result.Quantity,
		QuantityChange: result.Quantity,
	}))
}

// UpdateQuantity reconcilia el saldo de un lote (delta o ajuste absoluto).
// PATCH /api/lots/:id/quantity
func (h *LotHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "datos inválidos", "id de lote inválido"))
	}
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido", err.Error()))
	}
	result, err := h.uc.UpdateQuantity(c.Context(), inventory.UpdateQuantityInput{
		UserID:    GetUserID(c),
		Subject:   entity.SubjectLot,
		SubjectID: int64(id),
		Quantity:  in.Quantity,
		IsAjust:   in.IsAjust,
	})
	if err != nil {
		return respondMutationError(c, err)
	}
	return c.JSON(dto.OK("cantidad actualizada", dto.ItemMutationData{
		LotID:          int64(id),
		Action:         result.Action,
		OldQuantity:    result.OldQuantity,
		NewQuantity:    result.NewQuantity,
		QuantityChange: result.QuantityChange,
	}))
}

// GetByID devuelve un lote.
// GET /api/lots/:id
func (h *LotHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de lote inválido"})
	}
	lot, err := h.query.GetLot(c.Context(), int64(id))
	if err != nil {
		return respondMutationError(c, err)
	}
	return c.JSON(lot)
}
