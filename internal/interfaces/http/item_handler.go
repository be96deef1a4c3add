package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ItemHandler maneja las peticiones HTTP de items (protegido).
type ItemHandler struct {
	uc    *inventory.UseCase
	query *inventory.QueryUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *inventory.UseCase, query *inventory.QueryUseCase) *ItemHandler {
	return &ItemHandler{uc: uc, query: query}
}

// Create da de alta stock: crea el item o fusiona con uno equivalente.
// POST /api/items
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido", err.Error()))
	}
	result, err := h.uc.CreateItem(c.Context(), inventory.CreateItemInput{
		UserID:         GetUserID(c),
		Name:           in.Name,
		Aliases:        in.Aliases,
		Brand:          in.Brand,
		Description:    in.Description,
		SapCode:        in.SapCode,
		CategoryID:     in.CategoryID,
		Quantity:       in.Quantity,
		ExpirationDate: in.ExpirationDate,
		BatchCode:      in.BatchCode,
		LocationID:     in.LocationID,
		TechnicalSpecs: in.TechnicalSpecs,
		Image:          in.Image,
		ImageMimeType:  in.ImageMimeType,
	})
	if err != nil {
		return respondMutationError(c, err)
	}
	msg := "item creado"
	if result.Merged {
		msg = "cantidad fusionada con item existente"
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(msg, dto.ItemMutationData{
		ItemID:         result.ItemID,
		Merged:         result.Merged,
		Action:         result.Action,
		OldQuantity:    result.OldQuantity,
		NewQuantity:    result.NewQuantity,
		QuantityChange: result.QuantityChange,
	}))
}

// UpdateQuantity reconcilia el saldo de un item (delta o ajuste absoluto).
// PATCH /api/items/:id/quantity
func (h *ItemHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "datos inválidos", "id de item inválido"))
	}
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido", err.Error()))
	}
	result, err := h.uc.UpdateQuantity(c.Context(), inventory.UpdateQuantityInput{
		UserID:    GetUserID(c),
		Subject:   entity.SubjectItem,
		SubjectID: int64(id),
		Quantity:  in.Quantity,
		IsAjust:   in.IsAjust,
	})
	if err != nil {
		return respondMutationError(c, err)
	}
	return c.JSON(dto.OK("cantidad actualizada", dto.ItemMutationData{
		ItemID:         int64(id),
		Action:         result.Action,
		OldQuantity:    result.OldQuantity,
		NewQuantity:    result.NewQuantity,
		QuantityChange: result.QuantityChange,
	}))
}

// UpdateInfo actualiza metadatos del item de forma parcial (sin ledger).
// PATCH /api/items/:id
func (h *ItemHandler) UpdateInfo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "datos inválidos", "id de item inválido"))
	}
	var in dto.UpdateItemInfoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido", err.Error()))
	}
	patch := repository.ItemPatch{
		Name:           in.Name,
		Aliases:        in.Aliases,
		Brand:          in.Brand,
		Description:    in.Description,
		SapCode:        in.SapCode,
		CategoryID:     in.CategoryID,
		ExpirationDate: in.ExpirationDate,
		BatchCode:      in.BatchCode,
		LocationID:     in.LocationID,
	}
	if err := h.uc.UpdateInformation(c.Context(), int64(id), patch); err != nil {
		return respondMutationError(c, err)
	}
	return c.JSON(dto.OK("item actualizado", dto.ItemMutationData{ItemID: int64(id)}))
}

// Delete elimina un item y su imagen asociada.
// DELETE /api/items/:id
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "datos inválidos", "id de item inválido"))
	}
	if err := h.uc.DeleteItem(c.Context(), int64(id)); err != nil {
		return respondMutationError(c, err)
	}
	return c.JSON(dto.OK("item eliminado", nil))
}

// List lista items paginados, con filtro opcional por categoría.
// GET /api/items?category_id=&limit=&offset=
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	categoryID := int64(c.QueryInt("category_id"))

	items, err := h.query.ListItems(c.Context(), categoryID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"items": items,
		"page":  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	})
}

// GetByID devuelve un item con sus lotes y especificaciones.
// GET /api/items/:id
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de item inválido"})
	}
	detail, err := h.query.GetItem(c.Context(), int64(id))
	if err != nil {
		return respondMutationError(c, err)
	}
	return c.JSON(fiber.Map{
		"item":  detail.Item,
		"lots":  detail.Lots,
		"specs": detail.Specs,
	})
}
