package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

// UpdateCategoryRequest patch parcial de una categoría: solo se aplican los
// campos presentes.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// CategoryListQuery filtros de GET /category.
type CategoryListQuery struct {
	PageQuery
	Search string `query:"search"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryListResponse lista paginada con el sobre {total, page, pages, data}.
type CategoryListResponse struct {
	Total int                `json:"total"`
	Page  int                `json:"page"`
	Pages int                `json:"pages"`
	Data  []CategoryResponse `json:"data"`
}

// CategoryMsgResponse respuesta de mutaciones con mensaje + categoría.
type CategoryMsgResponse struct {
	Msg      string            `json:"msg"`
	Category *CategoryResponse `json:"category,omitempty"`
}
