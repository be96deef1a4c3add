package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los mapean
// a códigos de estado y a la categoría machine-readable de la respuesta.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInvalidReference   = errors.New("referencia inexistente")
	ErrNegativeQuantity   = errors.New("la cantidad resultante no puede ser negativa")
)
