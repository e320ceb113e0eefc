package usecase_test

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake in-memory de CategoryRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	rows map[string]*entity.Category
	seq  int // desempate de orden de inserción para created_at iguales
	ord  map[string]int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{rows: map[string]*entity.Category{}, ord: map[string]int{}}
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	f.rows[c.ID] = &cp
	f.seq++
	f.ord[c.ID] = f.seq
	return nil
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) GetActiveByName(name, excludeID string) (*entity.Category, error) {
	for _, c := range f.rows {
		if c.IsDeleted || c.ID == excludeID {
			continue
		}
		if strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Update(c *entity.Category) error {
	if _, ok := f.rows[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) List(params repository.CategoryListParams) ([]*entity.Category, int, error) {
	var all []*entity.Category
	for _, c := range f.rows {
		if c.IsDeleted {
			continue
		}
		if params.Search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(params.Search)) {
			continue
		}
		cp := *c
		all = append(all, &cp)
	}
	// más recientes primero, como el ORDER BY created_at DESC del repo real
	sort.Slice(all, func(i, j int) bool { return f.ord[all[i].ID] > f.ord[all[j].ID] })

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

func seedCategory(t *testing.T, uc *usecase.CategoryUseCase, name string) *dto.CategoryResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateCategoryRequest{Name: name})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryCreate_NombreDuplicado_RetornaErrDuplicate(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	seedCategory(t, uc, "Bebidas")

	// mismo nombre con otra capitalización también es duplicado
	_, err := uc.Create(dto.CreateCategoryRequest{Name: "bebidas"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryCreate_NombreVacio_RetornaErrInvalidInput(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryCreate_TrimeaNombreYDescripcion(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	out, err := uc.Create(dto.CreateCategoryRequest{Name: "  Lácteos  ", Description: " fríos "})
	require.NoError(t, err)
	assert.Equal(t, "Lácteos", out.Name)
	assert.Equal(t, "fríos", out.Description)
	assert.True(t, out.IsActive, "una categoría nueva nace activa")
	assert.NotEmpty(t, out.ID)
}

// Tras el borrado lógico el nombre queda libre: re-crearlo es válido.
func TestCategoryCreate_NombreLibreTrasSoftDelete(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	first := seedCategory(t, uc, "Bebidas")

	require.NoError(t, uc.SoftDelete(first.ID))

	second, err := uc.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID, "la re-creación genera una fila nueva")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryUpdate_NoExiste_RetornaErrNotFound(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	name := "Nueva"
	_, err := uc.Update("00000000-0000-0000-0000-0000000000ff", dto.UpdateCategoryRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryUpdate_Eliminada_RetornaErrNotFound(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	cat := seedCategory(t, uc, "Bebidas")
	require.NoError(t, uc.SoftDelete(cat.ID))

	name := "Bebidas frías"
	_, err := uc.Update(cat.ID, dto.UpdateCategoryRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"una categoría eliminada no debe ser actualizable")
}

func TestCategoryUpdate_PatchParcial_SoloCamposPresentes(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	cat := seedCategory(t, uc, "Bebidas")

	desc := "gaseosas y jugos"
	out, err := uc.Update(cat.ID, dto.UpdateCategoryRequest{Description: &desc})
	require.NoError(t, err)

	assert.Equal(t, "Bebidas", out.Name, "el nombre no tocado debe conservarse")
	assert.Equal(t, desc, out.Description)
}

func TestCategoryUpdate_NombreChocaConOtraActiva_RetornaErrDuplicate(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	seedCategory(t, uc, "Bebidas")
	cat := seedCategory(t, uc, "Lácteos")

	name := "Bebidas"
	_, err := uc.Update(cat.ID, dto.UpdateCategoryRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryUpdate_MismoNombrePropio_EsValido(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	cat := seedCategory(t, uc, "Bebidas")

	// renombrar a su propio nombre no debe chocar consigo misma
	name := "Bebidas"
	out, err := uc.Update(cat.ID, dto.UpdateCategoryRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Bebidas", out.Name)
}

func TestCategoryUpdate_Desactivar(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	cat := seedCategory(t, uc, "Bebidas")

	inactive := false
	out, err := uc.Update(cat.ID, dto.UpdateCategoryRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, out.IsActive)
}

// ──────────────────────────────────────────────────────────────────────────────
// SoftDelete
// ──────────────────────────────────────────────────────────────────────────────

func TestCategorySoftDelete_DobleDelete_RetornaErrNotFound(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	cat := seedCategory(t, uc, "Bebidas")

	require.NoError(t, uc.SoftDelete(cat.ID))
	assert.ErrorIs(t, uc.SoftDelete(cat.ID), domain.ErrNotFound,
		"el segundo delete debe comportarse como no encontrado")
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryList_ExcluyeEliminadas(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	seedCategory(t, uc, "Bebidas")
	deleted := seedCategory(t, uc, "Lácteos")
	require.NoError(t, uc.SoftDelete(deleted.ID))

	out, err := uc.List(dto.CategoryListQuery{})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Total)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "Bebidas", out.Data[0].Name)
}

func TestCategoryList_Paginacion(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	for i := 1; i <= 15; i++ {
		seedCategory(t, uc, fmt.Sprintf("Categoría %02d", i))
	}

	out, err := uc.List(dto.CategoryListQuery{PageQuery: dto.PageQuery{Page: 2, Limit: 10}})
	require.NoError(t, err)

	assert.Equal(t, 15, out.Total)
	assert.Equal(t, 2, out.Page)
	assert.Equal(t, 2, out.Pages)
	assert.Len(t, out.Data, 5, "la segunda página de 15 filas con limit 10 trae 5")
}

func TestCategoryList_BusquedaCaseInsensitive(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	seedCategory(t, uc, "Bebidas")
	seedCategory(t, uc, "Lácteos")

	out, err := uc.List(dto.CategoryListQuery{Search: "beb"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "Bebidas", out.Data[0].Name)
}

func TestCategoryList_DefaultsDePaginacion(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	seedCategory(t, uc, "Bebidas")

	// page/limit fuera de rango caen a los defaults
	out, err := uc.List(dto.CategoryListQuery{PageQuery: dto.PageQuery{Page: -3, Limit: 0}})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 1, out.Pages)
}
