package http

import (
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/pkg/validator"
)

// ImageStore contrato mínimo del almacenamiento de imágenes. Lo implementa
// *storage.LocalImageStore; el uso de interfaz evita acoplar el handler a la
// infraestructura concreta.
type ImageStore interface {
	Save(file *multipart.FileHeader) (string, error)
}

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc     *usecase.ProductUseCase
	images ImageStore
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, images ImageStore) *ProductHandler {
	return &ProductHandler{uc: uc, images: images}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        search      query  string  false  "Substring sobre name"
// @Param        sort        query  string  false  "name | price | quantity | createdAt"
// @Param        order       query  string  false  "ASC | DESC"  default(DESC)
// @Param        categoryId  query  string  false  "Filtro exacto por categoría"
// @Param        status      query  string  false  "out-of-stock | low-stock | in-stock"
// @Param        page        query  int     false  "Página"  default(1)
// @Param        limit       query  int     false  "Límite"  default(10)
// @Success      200  {object}  dto.ProductListResponse
// @Router       /product [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var q dto.ProductListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	out, err := h.uc.List(q)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// StockData godoc
// @Summary      Vista de stock (hasta 100 filas)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        categoryId  query  string  false  "Filtro exacto por categoría"
// @Param        status      query  string  false  "out-of-stock | low-stock | in-stock"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /product/stockData-get [get]
func (h *ProductHandler) StockData(c *fiber.Ctx) error {
	out, err := h.uc.StockData(c.Query("categoryId"), c.Query("status"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        name        formData  string  true   "Nombre"
// @Param        categoryId  formData  string  true   "Categoría (no eliminada)"
// @Param        price       formData  number  true   "Precio"
// @Param        quantity    formData  int     true   "Cantidad"
// @Param        image       formData  file    false  "Imagen"
// @Success      201  {object}  dto.ProductMsgResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /product [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if isMultipart(c) {
		parsed, err := h.parseCreateForm(c)
		if err != nil {
			return productError(c, err)
		}
		in = *parsed
	} else if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Format(errs)})
	}

	out, err := h.uc.Create(in)
	if err != nil {
		return productError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductMsgResponse{
		Msg:     "Product created successfully",
		Product: out,
	})
}

// Update godoc
// @Summary      Actualizar producto (patch parcial; la imagen solo cambia si llega una nueva)
// @Tags         products
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductMsgResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /product/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateProductRequest
	if isMultipart(c) {
		parsed, err := h.parseUpdateForm(c)
		if err != nil {
			return productError(c, err)
		}
		in = *parsed
	} else if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Format(errs)})
	}

	out, err := h.uc.Update(id, in)
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(dto.ProductMsgResponse{
		Msg:     "Product updated successfully",
		Product: out,
	})
}

// Delete godoc
// @Summary      Eliminar producto (borrado lógico)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductMsgResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /product/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.SoftDelete(c.Params("id")); err != nil {
		return productError(c, err)
	}
	return c.JSON(dto.ProductMsgResponse{Msg: "Product deleted successfully"})
}

// ── Parsing multipart ─────────────────────────────────────────────────────────

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
}

// parseCreateForm arma el DTO de creación desde los form values, guardando la
// imagen si llegó.
func (h *ProductHandler) parseCreateForm(c *fiber.Ctx) (*dto.CreateProductRequest, error) {
	in := &dto.CreateProductRequest{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		CategoryID:  c.FormValue("categoryId"),
	}

	price, err := decimal.NewFromString(c.FormValue("price", "0"))
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	in.Price = price

	if in.Quantity, err = strconv.Atoi(c.FormValue("quantity", "0")); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if v := c.FormValue("lowStockThreshold"); v != "" {
		if in.LowStockThreshold, err = strconv.Atoi(v); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		url, err := h.images.Save(file)
		if err != nil {
			return nil, err
		}
		in.ImageURL = url
	}
	return in, nil
}

// parseUpdateForm arma el patch parcial: solo los campos presentes en el form.
func (h *ProductHandler) parseUpdateForm(c *fiber.Ctx) (*dto.UpdateProductRequest, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	in := &dto.UpdateProductRequest{}
	if v, ok := formValue(form, "name"); ok {
		in.Name = &v
	}
	if v, ok := formValue(form, "description"); ok {
		in.Description = &v
	}
	if v, ok := formValue(form, "categoryId"); ok {
		in.CategoryID = &v
	}
	if v, ok := formValue(form, "price"); ok {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		in.Price = &price
	}
	if v, ok := formValue(form, "quantity"); ok {
		qty, err := strconv.Atoi(v)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		in.Quantity = &qty
	}
	if v, ok := formValue(form, "lowStockThreshold"); ok {
		threshold, err := strconv.Atoi(v)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		in.LowStockThreshold = &threshold
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		url, err := h.images.Save(file)
		if err != nil {
			return nil, err
		}
		in.ImageURL = &url
	}
	return in, nil
}

func formValue(form *multipart.Form, key string) (string, bool) {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// productError mapea errores de dominio del módulo de productos a 400.
func productError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrInvalidCategory):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CATEGORY", Message: "Invalid category"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un producto con ese nombre"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de producto inválidos"})
	default:
		return internalError(c, err)
	}
}
