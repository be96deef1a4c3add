package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// ReferenceHandler CRUD de los catálogos referenciados por items y lotes:
// ubicaciones, categorías y especificaciones técnicas.
type ReferenceHandler struct {
	locations  *usecase.LocationUseCase
	categories *usecase.CategoryUseCase
	specs      *usecase.TechnicalSpecUseCase
}

// NewReferenceHandler construye el handler.
func NewReferenceHandler(
	locations *usecase.LocationUseCase,
	categories *usecase.CategoryUseCase,
	specs *usecase.TechnicalSpecUseCase,
) *ReferenceHandler {
	return &ReferenceHandler{locations: locations, categories: categories, specs: specs}
}

// respondReferenceError mapea errores de catálogos al shape ErrorResponse.
func respondReferenceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el nombre ya existe"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IN_USE", Message: "el recurso está referenciado por items o lotes"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func parseIDParam(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

func parsePage(c *fiber.Ctx) dto.PageRequest {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	return page
}

// ── Locations ─────────────────────────────────────────────────────────────────

func (h *ReferenceHandler) CreateLocation(c *fiber.Ctx) error {
	var in dto.LocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	loc, err := h.locations.Create(c.Context(), in)
	if err != nil {
		return respondReferenceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(loc)
}

func (h *ReferenceHandler) GetLocation(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	loc, err := h.locations.GetByID(c.Context(), id)
	if err != nil {
		return respondReferenceError(c, err)
	}
	return c.JSON(loc)
}

func (h *ReferenceHandler) UpdateLocation(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.LocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	loc, err := h.locations.Update(c.Context(), id, in)
	if err != nil {
		return respondReferenceError(c, err)
	}
	return c.JSON(loc)
}

func (h *ReferenceHandler) DeleteLocation(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.locations.Delete(c.Context(), id); err != nil {
		return respondReferenceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ReferenceHandler) ListLocations(c *fiber.Ctx) error {
	page := parsePage(c)
	list, err := h.locations.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondReferenceError(c, err)
	}
	return c.JSON(fiber.Map{"locations": list})
}

// ── Categories ────────────────────────────────────────────────────────────────

func (h *ReferenceHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cat, err := h.categories.Create(c.Context(), in)
	if err != nil {
		return respondReferenceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cat)
}

func (h *ReferenceHandler) GetCategory(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	cat, err := h.categories.GetByID(c.Context(), id)
	if err != nil {
		return respondReferenceError(c, err)
	}
	return c.JSON(cat)
}

func (h *ReferenceHandler) UpdateCategory(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cat, err := h.categories.Update(c.Context(), id, in)
	if err != nil {
		return respondReferenceError(c, err)
	}
	return c.JSON(cat)
}

func (h *ReferenceHandler) DeleteCategory(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.categories.Delete(c.Context(), id); err != nil {
		return respondReferenceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ReferenceHandler) ListCategories(c *fiber.Ctx) error {
	page := parsePage(c)
	list, err := h.categories.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondReferenceError(c, err)
	}
	return c.JSON(fiber.Map{"categories": list})
}

// ── Technical specs ───────────────────────────────────────────────────────────

func (h *ReferenceHandler) CreateSpec(c *fiber.Ctx) error {
	var in dto.TechnicalSpecRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	spec, err := h.specs.Create(c.Context(), in)
	if err != nil {
		return respondReferenceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(spec)
}

func (h *ReferenceHandler) GetSpec(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	spec, err := h.specs.GetByID(c.Context(), id)
	if err != nil {
		return respondReferenceError(c, err)
	}
	return c.JSON(spec)
}

func (h *ReferenceHandler) UpdateSpec(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.TechnicalSpecRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	spec, err := h.specs.Update(c.Context(), id, in)
	if err != nil {
		return respondReferenceError(c, err)
	}
	return c.JSON(spec)
}

func (h *ReferenceHandler) DeleteSpec(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.specs.Delete(c.Context(), id); err != nil {
		return respondReferenceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ReferenceHandler) ListSpecs(c *fiber.Ctx) error {
	page := parsePage(c)
	list, err := h.specs.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondReferenceError(c, err)
	}
	return c.JSON(fiber.Map{"specs": list})
}
