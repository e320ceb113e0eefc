package usecase_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake in-memory de ProductRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	rows       map[string]*entity.Product
	seq        int
	ord        map[string]int
	categories *fakeCategoryRepo // para resolver CategoryName en List
}

func newFakeProductRepo(categories *fakeCategoryRepo) *fakeProductRepo {
	return &fakeProductRepo{rows: map[string]*entity.Product{}, ord: map[string]int{}, categories: categories}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	f.rows[p.ID] = &cp
	f.seq++
	f.ord[p.ID] = f.seq
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetActiveByName(name, excludeID string) (*entity.Product, error) {
	for _, p := range f.rows {
		if p.IsDeleted || p.ID == excludeID {
			continue
		}
		if strings.EqualFold(p.Name, name) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := f.rows[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) List(params repository.ProductListParams) ([]repository.ProductRow, int, error) {
	var all []repository.ProductRow
	for _, p := range f.rows {
		if p.IsDeleted {
			continue
		}
		if params.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(params.Search)) {
			continue
		}
		if params.CategoryID != "" && p.CategoryID != params.CategoryID {
			continue
		}
		switch params.Status {
		case entity.StockOut:
			if p.Quantity != 0 {
				continue
			}
		case entity.StockLow:
			if p.Quantity <= 0 || p.Quantity > entity.DefaultLowStockThreshold {
				continue
			}
		case entity.StockIn:
			if p.Quantity <= entity.DefaultLowStockThreshold {
				continue
			}
		}
		row := repository.ProductRow{Product: *p}
		if cat, _ := f.categories.GetByID(p.CategoryID); cat != nil {
			row.CategoryName = cat.Name
		}
		all = append(all, row)
	}

	asc := params.Order == "ASC"
	sort.Slice(all, func(i, j int) bool {
		var less bool
		switch params.Sort {
		case "name":
			less = all[i].Name < all[j].Name
		case "price":
			less = all[i].Price.LessThan(all[j].Price)
		case "quantity":
			less = all[i].Quantity < all[j].Quantity
		default: // created_at, con orden de inserción como proxy
			less = f.ord[all[i].ID] < f.ord[all[j].ID]
		}
		if asc {
			return less
		}
		return !less
	})

	total := len(all)
	if params.Offset >= total {
		return nil, total, nil
	}
	end := params.Offset + params.Limit
	if end > total {
		end = total
	}
	return all[params.Offset:end], total, nil
}

// newProductEnv arma el caso de uso con fakes y una categoría activa lista.
func newProductEnv(t *testing.T) (*usecase.ProductUseCase, *usecase.CategoryUseCase, string) {
	t.Helper()
	catRepo := newFakeCategoryRepo()
	catUC := usecase.NewCategoryUseCase(catRepo)
	cat, err := catUC.Create(dto.CreateCategoryRequest{Name: "Electrónica"})
	require.NoError(t, err)

	prodUC := usecase.NewProductUseCase(newFakeProductRepo(catRepo), catRepo)
	return prodUC, catUC, cat.ID
}

func seedProduct(t *testing.T, uc *usecase.ProductUseCase, name, categoryID string, price string, qty int) *dto.ProductResponse {
	t.Helper()
	p, err := decimal.NewFromString(price)
	require.NoError(t, err)
	out, err := uc.Create(dto.CreateProductRequest{
		Name:       name,
		Price:      p,
		Quantity:   qty,
		CategoryID: categoryID,
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_CategoriaInexistente_RetornaErrInvalidCategory(t *testing.T) {
	uc, _, _ := newProductEnv(t)

	_, err := uc.Create(dto.CreateProductRequest{
		Name:       "Teclado",
		Price:      decimal.NewFromInt(100),
		CategoryID: "00000000-0000-0000-0000-0000000000ff",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestProductCreate_CategoriaEliminada_RetornaErrInvalidCategory(t *testing.T) {
	uc, catUC, catID := newProductEnv(t)
	require.NoError(t, catUC.SoftDelete(catID))

	_, err := uc.Create(dto.CreateProductRequest{
		Name:       "Teclado",
		Price:      decimal.NewFromInt(100),
		CategoryID: catID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory,
		"una categoría eliminada no puede recibir productos nuevos")
}

func TestProductCreate_NombreDuplicado_RetornaErrDuplicate(t *testing.T) {
	uc, _, catID := newProductEnv(t)
	seedProduct(t, uc, "Teclado", catID, "100", 5)

	_, err := uc.Create(dto.CreateProductRequest{
		Name:       "teclado",
		Price:      decimal.NewFromInt(90),
		CategoryID: catID,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_PrecioNegativo_RetornaErrInvalidInput(t *testing.T) {
	uc, _, catID := newProductEnv(t)

	_, err := uc.Create(dto.CreateProductRequest{
		Name:       "Teclado",
		Price:      decimal.NewFromInt(-1),
		CategoryID: catID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_RedondeaPrecioADosDecimales(t *testing.T) {
	uc, _, catID := newProductEnv(t)

	price, _ := decimal.NewFromString("10.999")
	out, err := uc.Create(dto.CreateProductRequest{
		Name:       "Teclado",
		Price:      price,
		CategoryID: catID,
	})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("11.00")),
		"el precio se redondea a 2 decimales: %s", out.Price)
}

func TestProductCreate_UmbralPorDefecto(t *testing.T) {
	uc, _, catID := newProductEnv(t)

	out := seedProduct(t, uc, "Teclado", catID, "100", 5)
	assert.Equal(t, entity.DefaultLowStockThreshold, out.LowStockThreshold)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_PatchParcial_NoTocaOtrosCampos(t *testing.T) {
	uc, _, catID := newProductEnv(t)
	prod := seedProduct(t, uc, "Teclado", catID, "100.00", 5)

	qty := 50
	out, err := uc.Update(prod.ID, dto.UpdateProductRequest{Quantity: &qty})
	require.NoError(t, err)

	assert.Equal(t, "Teclado", out.Name)
	assert.True(t, out.Price.Equal(prod.Price), "el precio no tocado debe conservarse")
	assert.Equal(t, 50, out.Quantity)
	assert.Equal(t, catID, out.CategoryID)
}

func TestProductUpdate_CategoriaParcheadaSeRevalida(t *testing.T) {
	uc, catUC, catID := newProductEnv(t)
	prod := seedProduct(t, uc, "Teclado", catID, "100", 5)

	deleted, err := catUC.Create(dto.CreateCategoryRequest{Name: "Descontinuados"})
	require.NoError(t, err)
	require.NoError(t, catUC.SoftDelete(deleted.ID))

	_, err = uc.Update(prod.ID, dto.UpdateProductRequest{CategoryID: &deleted.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestProductUpdate_Eliminado_RetornaErrNotFound(t *testing.T) {
	uc, _, catID := newProductEnv(t)
	prod := seedProduct(t, uc, "Teclado", catID, "100", 5)
	require.NoError(t, uc.SoftDelete(prod.ID))

	qty := 1
	_, err := uc.Update(prod.ID, dto.UpdateProductRequest{Quantity: &qty})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// SoftDelete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductSoftDelete_RegistraDeletedAt(t *testing.T) {
	catRepo := newFakeCategoryRepo()
	catUC := usecase.NewCategoryUseCase(catRepo)
	cat, err := catUC.Create(dto.CreateCategoryRequest{Name: "Electrónica"})
	require.NoError(t, err)

	prodRepo := newFakeProductRepo(catRepo)
	uc := usecase.NewProductUseCase(prodRepo, catRepo)
	prod := seedProduct(t, uc, "Teclado", cat.ID, "100", 5)

	require.NoError(t, uc.SoftDelete(prod.ID))

	row, err := prodRepo.GetByID(prod.ID)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.True(t, row.IsDeleted)
	require.NotNil(t, row.DeletedAt, "el borrado lógico debe registrar deleted_at")
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestProductList_SortFueraDeAllowList_CaeACreatedAtDesc(t *testing.T) {
	uc, _, catID := newProductEnv(t)
	seedProduct(t, uc, "Primero", catID, "10", 1)
	seedProduct(t, uc, "Segundo", catID, "20", 2)

	// un sort "hackeado" no debe llegar al repo tal cual
	out, err := uc.List(dto.ProductListQuery{Sort: "name; DROP TABLE products"})
	require.NoError(t, err)

	require.Len(t, out.Data, 2)
	assert.Equal(t, "Segundo", out.Data[0].Name, "fallback a created_at descendente")
}

func TestProductList_OrdenPorPrecioAscendente(t *testing.T) {
	uc, _, catID := newProductEnv(t)
	seedProduct(t, uc, "Caro", catID, "300", 1)
	seedProduct(t, uc, "Barato", catID, "10", 1)

	out, err := uc.List(dto.ProductListQuery{Sort: "price", Order: "asc"})
	require.NoError(t, err)

	require.Len(t, out.Data, 2)
	assert.Equal(t, "Barato", out.Data[0].Name)
}

func TestProductList_FiltroPorBandaDeStock(t *testing.T) {
	uc, _, catID := newProductEnv(t)
	seedProduct(t, uc, "Agotado", catID, "10", 0)
	seedProduct(t, uc, "Escaso", catID, "10", 5)
	seedProduct(t, uc, "Disponible", catID, "10", 20)

	cases := []struct {
		status string
		expect string
	}{
		{entity.StockOut, "Agotado"},
		{entity.StockLow, "Escaso"},
		{entity.StockIn, "Disponible"},
	}
	for _, tc := range cases {
		out, err := uc.List(dto.ProductListQuery{Status: tc.status})
		require.NoError(t, err)
		require.Len(t, out.Data, 1, "banda %s", tc.status)
		assert.Equal(t, tc.expect, out.Data[0].Name)
		assert.Equal(t, tc.status, out.Data[0].StockStatus)
	}
}

func TestProductList_IncluyeNombreDeCategoria(t *testing.T) {
	uc, _, catID := newProductEnv(t)
	seedProduct(t, uc, "Teclado", catID, "100", 5)

	out, err := uc.List(dto.ProductListQuery{})
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "Electrónica", out.Data[0].CategoryName)
}

func TestProductList_ExcluyeEliminados(t *testing.T) {
	uc, _, catID := newProductEnv(t)
	keep := seedProduct(t, uc, "Teclado", catID, "100", 5)
	gone := seedProduct(t, uc, "Mouse", catID, "50", 3)
	require.NoError(t, uc.SoftDelete(gone.ID))

	out, err := uc.List(dto.ProductListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	require.Len(t, out.Data, 1)
	assert.Equal(t, keep.ID, out.Data[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// StockData
// ──────────────────────────────────────────────────────────────────────────────

func TestProductStockData_FiltraPorCategoria(t *testing.T) {
	catRepo := newFakeCategoryRepo()
	catUC := usecase.NewCategoryUseCase(catRepo)
	electronica, err := catUC.Create(dto.CreateCategoryRequest{Name: "Electrónica"})
	require.NoError(t, err)
	papeleria, err := catUC.Create(dto.CreateCategoryRequest{Name: "Papelería"})
	require.NoError(t, err)

	uc := usecase.NewProductUseCase(newFakeProductRepo(catRepo), catRepo)
	seedProduct(t, uc, "Teclado", electronica.ID, "100", 5)
	seedProduct(t, uc, "Resma", papeleria.ID, "20", 50)

	out, err := uc.StockData(electronica.ID, "")
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "Teclado", out.Data[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de sort/order
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeSort(t *testing.T) {
	assert.Equal(t, "name", usecase.NormalizeSort("name"))
	assert.Equal(t, "created_at", usecase.NormalizeSort("createdAt"))
	assert.Equal(t, "created_at", usecase.NormalizeSort("ROLLBACK"))
	assert.Equal(t, "created_at", usecase.NormalizeSort(""))
}

func TestNormalizeOrder(t *testing.T) {
	assert.Equal(t, "ASC", usecase.NormalizeOrder("asc"))
	assert.Equal(t, "ASC", usecase.NormalizeOrder("ASC"))
	assert.Equal(t, "DESC", usecase.NormalizeOrder("desc"))
	assert.Equal(t, "DESC", usecase.NormalizeOrder("whatever"))
}
