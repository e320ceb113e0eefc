package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// CategoryListParams filtros para el listado de categorías.
type CategoryListParams struct {
	Search string // substring case-insensitive sobre name
	Limit  int
	Offset int
}

// CategoryRepository define el puerto de persistencia para Category (DIP).
// GetByID devuelve la fila aunque esté eliminada lógicamente; el filtrado de
// is_deleted es responsabilidad del caso de uso (o de List, que siempre excluye).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetActiveByName(name, excludeID string) (*entity.Category, error)
	Update(category *entity.Category) error
	List(params CategoryListParams) ([]*entity.Category, int, error)
}
