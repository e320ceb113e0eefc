package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, price, quantity, low_stock_threshold, image_url, category_id, is_deleted, deleted_at, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, quantity, low_stock_threshold, image_url, category_id, is_deleted, deleted_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Quantity,
		product.LowStockThreshold, product.ImageURL, product.CategoryID,
		product.IsDeleted, product.DeletedAt, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID, incluyendo filas eliminadas lógicamente
// (nil si no existe).
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product by id")
}

// GetActiveByName busca un producto no eliminado con ese nombre exacto
// (case-insensitive), opcionalmente excluyendo un id (para updates).
func (r *ProductRepo) GetActiveByName(name, excludeID string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE LOWER(name) = LOWER($1) AND is_deleted = FALSE AND ($2 = '' OR id <> $2::uuid)
		LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name, excludeID), "get product by name")
}

// Update persiste todos los campos mutables, incluido el borrado lógico.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, quantity = $5,
			low_stock_threshold = $6, image_url = $7, category_id = $8,
			is_deleted = $9, deleted_at = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Quantity,
		product.LowStockThreshold, product.ImageURL, product.CategoryID,
		product.IsDeleted, product.DeletedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List devuelve productos no eliminados con su nombre de categoría (LEFT JOIN:
// una categoría eliminada lógicamente sigue resolviendo su nombre) y el total
// sin paginar. params.Sort y params.Order deben venir normalizados por el caso
// de uso: se interpolan como identificadores, nunca desde input crudo.
func (r *ProductRepo) List(params repository.ProductListParams) ([]repository.ProductRow, int, error) {
	ctx := context.Background()

	where, args := buildProductFilter(params)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products p `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.name, p.description, p.price, p.quantity, p.low_stock_threshold,
		       p.image_url, p.category_id, p.is_deleted, p.deleted_at, p.created_at, p.updated_at,
		       COALESCE(c.name, '') AS category_name
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		%s
		ORDER BY p.%s %s
		LIMIT $%d OFFSET $%d`,
		where, params.Sort, params.Order, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []repository.ProductRow
	for rows.Next() {
		var row repository.ProductRow
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Description, &row.Price, &row.Quantity, &row.LowStockThreshold,
			&row.ImageURL, &row.CategoryID, &row.IsDeleted, &row.DeletedAt, &row.CreatedAt, &row.UpdatedAt,
			&row.CategoryName,
		); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, row)
	}
	return list, total, rows.Err()
}

// buildProductFilter arma el WHERE compartido por el COUNT y el SELECT.
// Bandas de stock: out-of-stock (=0), low-stock (0<q<=10), in-stock (>10).
func buildProductFilter(params repository.ProductListParams) (string, []any) {
	where := `WHERE p.is_deleted = FALSE`
	var args []any

	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		where += fmt.Sprintf(` AND p.name ILIKE $%d`, len(args))
	}
	if params.CategoryID != "" {
		args = append(args, params.CategoryID)
		where += fmt.Sprintf(` AND p.category_id = $%d`, len(args))
	}
	switch params.Status {
	case entity.StockOut:
		where += ` AND p.quantity = 0`
	case entity.StockLow:
		where += fmt.Sprintf(` AND p.quantity > 0 AND p.quantity <= %d`, entity.DefaultLowStockThreshold)
	case entity.StockIn:
		where += fmt.Sprintf(` AND p.quantity > %d`, entity.DefaultLowStockThreshold)
	}
	return where, args
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.LowStockThreshold,
		&p.ImageURL, &p.CategoryID, &p.IsDeleted, &p.DeletedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
