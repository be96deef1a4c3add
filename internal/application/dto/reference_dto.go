package dto

// LocationRequest alta/edición de una ubicación.
type LocationRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description,omitempty"`
}

// CategoryRequest alta/edición de una categoría.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description,omitempty"`
}

// TechnicalSpecRequest alta de una especificación técnica.
type TechnicalSpecRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Unit string `json:"unit,omitempty"`
}
