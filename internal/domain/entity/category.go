package entity

import "time"

// Category representa una categoría de productos. Nunca se elimina físicamente:
// el borrado es lógico vía IsDeleted y la fila queda fuera de listados y búsquedas.
type Category struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
