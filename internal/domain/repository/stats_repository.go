package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// StatsRepository consultas de solo lectura para el dashboard.
// Todas las métricas se calculan sobre filas no eliminadas y en cada llamada
// (sin caché).
type StatsRepository interface {
	CountProducts(ctx context.Context) (int, error)
	CountCategories(ctx context.Context) (int, error)
	SumQuantities(ctx context.Context) (int, error)
	ListLowStock(ctx context.Context) ([]*entity.Product, error)
}
