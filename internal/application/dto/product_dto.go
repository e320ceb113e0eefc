package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Llega como multipart
// form (campos planos + archivo "image" opcional); el handler la construye
// desde los form values antes de validar.
type CreateProductRequest struct {
	Name              string          `json:"name" validate:"required,max=150"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int             `json:"quantity" validate:"gte=0"`
	LowStockThreshold int             `json:"lowStockThreshold" validate:"gte=0"`
	CategoryID        string          `json:"categoryId" validate:"required,uuid"`
	ImageURL          string          `json:"-"` // resuelta por el handler tras guardar el archivo
}

// UpdateProductRequest patch parcial de un producto. La imagen solo se
// reemplaza si el handler recibió un archivo nuevo.
type UpdateProductRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=150"`
	Description       *string          `json:"description"`
	Price             *decimal.Decimal `json:"price"`
	Quantity          *int             `json:"quantity" validate:"omitempty,gte=0"`
	LowStockThreshold *int             `json:"lowStockThreshold" validate:"omitempty,gte=0"`
	CategoryID        *string          `json:"categoryId" validate:"omitempty,uuid"`
	ImageURL          *string          `json:"-"`
}

// ProductListQuery filtros de GET /product.
type ProductListQuery struct {
	PageQuery
	Search     string `query:"search"`
	Sort       string `query:"sort"`
	Order      string `query:"order"`
	CategoryID string `query:"categoryId"`
	Status     string `query:"status"`
}

// ProductResponse salida de un producto. CategoryName solo se llena en
// listados (viene del join); StockStatus es la banda derivada de quantity.
type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int             `json:"quantity"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	ImageURL          string          `json:"imageUrl,omitempty"`
	CategoryID        string          `json:"categoryId"`
	CategoryName      string          `json:"categoryName,omitempty"`
	StockStatus       string          `json:"stockStatus"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// ProductListResponse lista paginada con el sobre {total, page, pages, data}.
type ProductListResponse struct {
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Pages int               `json:"pages"`
	Data  []ProductResponse `json:"data"`
}

// ProductMsgResponse respuesta de mutaciones con mensaje + producto.
type ProductMsgResponse struct {
	Msg     string           `json:"msg"`
	Product *ProductResponse `json:"product,omitempty"`
}
