package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías con borrado lógico.
// La unicidad de nombre se verifica solo entre filas no eliminadas, a nivel de
// aplicación: re-crear el nombre de una categoría ya eliminada es válido.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. ErrInvalidInput si el nombre queda vacío tras el
// trim; ErrDuplicate si ya existe una categoría activa con ese nombre.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetActiveByName(name, "")
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update aplica un patch parcial. ErrNotFound si el id no existe o la fila está
// eliminada; ErrDuplicate si el nuevo nombre choca con otra categoría activa.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil || category.IsDeleted {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		existing, err := uc.repo.GetActiveByName(name, id)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		category.Name = name
	}
	if in.Description != nil {
		category.Description = strings.TrimSpace(*in.Description)
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	category.UpdatedAt = time.Now()

	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// SoftDelete marca la categoría como eliminada. No toca sus productos: un
// producto puede quedar apuntando a una categoría eliminada y no se reconcilia.
func (uc *CategoryUseCase) SoftDelete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil || category.IsDeleted {
		return domain.ErrNotFound
	}
	category.IsDeleted = true
	category.UpdatedAt = time.Now()
	return uc.repo.Update(category)
}

// List lista categorías no eliminadas, más recientes primero, con búsqueda por
// substring sobre el nombre y el sobre {total, page, pages, data}.
func (uc *CategoryUseCase) List(q dto.CategoryListQuery) (*dto.CategoryListResponse, error) {
	q.Normalize()
	list, total, err := uc.repo.List(repository.CategoryListParams{
		Search: strings.TrimSpace(q.Search),
		Limit:  q.Limit,
		Offset: q.Offset(),
	})
	if err != nil {
		return nil, err
	}

	data := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		data = append(data, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Total: total,
		Page:  q.Page,
		Pages: dto.Pages(total, q.Limit),
		Data:  data,
	}, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
