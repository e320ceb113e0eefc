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

// Campos ordenables de GET /product; cualquier otro valor cae a created_at.
var allowedSorts = map[string]string{
	"name":      "name",
	"price":     "price",
	"quantity":  "quantity",
	"createdAt": "created_at",
}

const stockDataLimit = 100 // tope de filas de GET /product/stockData-get

// ProductUseCase casos de uso CRUD para productos con borrado lógico.
// El CategoryID se valida contra categorías no eliminadas al crear (y al
// parchearlo); la eliminación posterior de la categoría no se reconcilia.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un producto. ErrInvalidCategory si la categoría no existe o está
// eliminada; ErrDuplicate si ya hay un producto activo con el mismo nombre;
// ErrInvalidInput con precio negativo o cantidad negativa.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price.IsNegative() || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || category.IsDeleted {
		return nil, domain.ErrInvalidCategory
	}

	existing, err := uc.repo.GetActiveByName(name, "")
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	threshold := in.LowStockThreshold
	if threshold <= 0 {
		threshold = entity.DefaultLowStockThreshold
	}

	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		Name:              name,
		Description:       strings.TrimSpace(in.Description),
		Price:             in.Price.Round(2),
		Quantity:          in.Quantity,
		LowStockThreshold: threshold,
		ImageURL:          in.ImageURL,
		CategoryID:        in.CategoryID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product, category.Name), nil
}

// GetByID obtiene un producto por id (incluye eliminados; nil si no existe).
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product, ""), nil
}

// Update aplica un patch parcial. La imagen solo cambia si llegó una nueva; un
// CategoryID parcheado se re-valida contra categorías no eliminadas.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.IsDeleted {
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
		product.Name = name
	}
	if in.Description != nil {
		product.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = in.Price.Round(2)
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.LowStockThreshold != nil && *in.LowStockThreshold > 0 {
		product.LowStockThreshold = *in.LowStockThreshold
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil || category.IsDeleted {
			return nil, domain.ErrInvalidCategory
		}
		product.CategoryID = *in.CategoryID
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product, ""), nil
}

// SoftDelete marca el producto como eliminado y registra deleted_at.
func (uc *ProductUseCase) SoftDelete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil || product.IsDeleted {
		return domain.ErrNotFound
	}
	now := time.Now()
	product.IsDeleted = true
	product.DeletedAt = &now
	product.UpdatedAt = now
	return uc.repo.Update(product)
}

// List lista productos no eliminados con búsqueda, orden, filtro por categoría
// y banda de stock. Un sort fuera de la allow-list cae a createdAt descendente.
func (uc *ProductUseCase) List(q dto.ProductListQuery) (*dto.ProductListResponse, error) {
	q.Normalize()
	list, total, err := uc.repo.List(repository.ProductListParams{
		Search:     strings.TrimSpace(q.Search),
		Sort:       NormalizeSort(q.Sort),
		Order:      NormalizeOrder(q.Order),
		CategoryID: q.CategoryID,
		Status:     q.Status,
		Limit:      q.Limit,
		Offset:     q.Offset(),
	})
	if err != nil {
		return nil, err
	}

	data := make([]dto.ProductResponse, 0, len(list))
	for _, row := range list {
		data = append(data, *toProductResponse(&row.Product, row.CategoryName))
	}
	return &dto.ProductListResponse{
		Total: total,
		Page:  q.Page,
		Pages: dto.Pages(total, q.Limit),
		Data:  data,
	}, nil
}

// StockData listado para la vista de stock: hasta 100 filas, página 1, con
// filtros opcionales de categoría y banda.
func (uc *ProductUseCase) StockData(categoryID, status string) (*dto.ProductListResponse, error) {
	return uc.List(dto.ProductListQuery{
		PageQuery:  dto.PageQuery{Page: 1, Limit: stockDataLimit},
		CategoryID: categoryID,
		Status:     status,
	})
}

// NormalizeSort mapea el sort pedido a su columna; desconocido → created_at.
func NormalizeSort(sort string) string {
	if col, ok := allowedSorts[sort]; ok {
		return col
	}
	return "created_at"
}

// NormalizeOrder acepta asc/desc (case-insensitive); desconocido → DESC.
func NormalizeOrder(order string) string {
	if strings.EqualFold(order, "ASC") {
		return "ASC"
	}
	return "DESC"
}

func toProductResponse(p *entity.Product, categoryName string) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		Quantity:          p.Quantity,
		LowStockThreshold: p.LowStockThreshold,
		ImageURL:          p.ImageURL,
		CategoryID:        p.CategoryID,
		CategoryName:      categoryName,
		StockStatus:       p.StockStatus(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
