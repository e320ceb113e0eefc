package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bandas de stock derivadas de Quantity.
const (
	StockOut = "out-of-stock" // quantity = 0
	StockLow = "low-stock"    // 0 < quantity <= 10
	StockIn  = "in-stock"     // quantity > 10
)

// DefaultLowStockThreshold umbral bajo de stock por defecto (también corte de la banda low-stock).
const DefaultLowStockThreshold = 10

// Product representa un producto del inventario. La cantidad vive en la fila
// (sin bodegas); CategoryID referencia una categoría no eliminada al momento de
// crear, y no se re-valida si la categoría se elimina después.
type Product struct {
	ID                string
	Name              string
	Description       string
	Price             decimal.Decimal // 2 decimales
	Quantity          int
	LowStockThreshold int
	ImageURL          string // vacío si no hay imagen
	CategoryID        string
	IsDeleted         bool
	DeletedAt         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// StockStatus devuelve la banda de stock del producto. Las tres bandas
// particionan todos los valores posibles de Quantity sin solaparse.
func (p *Product) StockStatus() string {
	switch {
	case p.Quantity <= 0:
		return StockOut
	case p.Quantity <= DefaultLowStockThreshold:
		return StockLow
	default:
		return StockIn
	}
}
