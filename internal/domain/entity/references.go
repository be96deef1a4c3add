package entity

import "time"

// Location ubicación física dentro del almacén.
type Location struct {
	ID          int64
	Name        string
	Description string
}

// Category clasificación de items (material, herramienta, equipo, etc.).
type Category struct {
	ID          int64
	Name        string
	Description string
}

// TechnicalSpec definición de una especificación técnica (voltaje, medida...).
// Los valores por item viven en ItemTechnicalSpec.
type TechnicalSpec struct {
	ID   int64
	Name string
	Unit string
}

// ItemTechnicalSpec valor de una especificación técnica para un item.
type ItemTechnicalSpec struct {
	ItemID int64
	SpecID int64
	Value  string
}

// Roles de usuario.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleConsulta  = "consulta"
)

// User usuario de la aplicación; actor de las transacciones de inventario.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
