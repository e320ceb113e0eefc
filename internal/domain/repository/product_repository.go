package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ProductListParams filtros para el listado de productos.
// Sort debe venir ya normalizado contra la allow-list (ver usecase).
type ProductListParams struct {
	Search     string
	Sort       string // name, price, quantity, created_at
	Order      string // ASC | DESC
	CategoryID string // vacío = sin filtro
	Status     string // out-of-stock, low-stock, in-stock; vacío = sin filtro
	Limit      int
	Offset     int
}

// ProductRow fila de listado: producto más el nombre de su categoría (join).
type ProductRow struct {
	entity.Product
	CategoryName string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve la fila aunque esté eliminada lógicamente.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetActiveByName(name, excludeID string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(params ProductListParams) ([]ProductRow, int, error)
}
