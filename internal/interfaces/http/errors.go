package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// respondMutationError traduce errores de dominio al contrato
// {success, message, error, details, data} de las mutaciones de inventario.
// El campo error lleva la categoría machine-readable; details el mensaje
// concreto (qué campo, qué id).
func respondMutationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "datos inválidos", err.Error()))
	case errors.Is(err, domain.ErrInvalidReference):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("REFERENCE", "referencia inexistente", err.Error()))
	case errors.Is(err, domain.ErrNegativeQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("NEGATIVE_QUANTITY", "la cantidad resultante no puede ser negativa", err.Error()))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "recurso no encontrado", err.Error()))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail("DUPLICATE", "registro duplicado", err.Error()))
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail("CONFLICT", "operación en conflicto con el estado actual", err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "error interno", err.Error()))
	}
}
