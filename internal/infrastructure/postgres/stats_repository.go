package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para el dashboard de inventario.
// Todas las consultas excluyen filas eliminadas lógicamente.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// CountProducts total de productos no eliminados.
func (r *StatsRepo) CountProducts(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE is_deleted = FALSE`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("stats.CountProducts: %w", err)
	}
	return n, nil
}

// CountCategories total de categorías no eliminadas.
func (r *StatsRepo) CountCategories(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM categories WHERE is_deleted = FALSE`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("stats.CountCategories: %w", err)
	}
	return n, nil
}

// SumQuantities suma de quantity de productos no eliminados ("stock disponible").
func (r *StatsRepo) SumQuantities(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM products WHERE is_deleted = FALSE`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("stats.SumQuantities: %w", err)
	}
	return n, nil
}

// ListLowStock productos en banda low-stock (0 < quantity <= 10), no eliminados.
func (r *StatsRepo) ListLowStock(ctx context.Context) ([]*entity.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE is_deleted = FALSE AND quantity > 0 AND quantity <= %d
		ORDER BY quantity ASC, name ASC`,
		productColumns, entity.DefaultLowStockThreshold)

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats.ListLowStock: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.LowStockThreshold,
			&p.ImageURL, &p.CategoryID, &p.IsDeleted, &p.DeletedAt, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("stats: scan low stock: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
