// Package analytics contiene los casos de uso de solo lectura del dashboard:
// los agregados de inventario y el reporte PDF de stock bajo.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/money"
)

// DashboardUseCase calcula los agregados de GET /dashboard/stats.
//
// Fuente de datos: StatsRepository (consultas read-only sobre filas no
// eliminadas). Sin caché: cada llamada recalcula contra la DB.
type DashboardUseCase struct {
	statsRepo repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(statsRepo repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{statsRepo: statsRepo}
}

// GetStats construye el DashboardStatsDTO.
//
// Cuatro consultas independientes en paralelo:
//  1. CountProducts   → totalProducts
//  2. CountCategories → totalCategories
//  3. SumQuantities   → availableStock
//  4. ListLowStock    → lowStockCount + lowStockItems
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	type countResult struct {
		n   int
		err error
	}
	type lowStockResult struct {
		items []dto.LowStockItemDTO
		err   error
	}

	productsCh := make(chan countResult, 1)
	categoriesCh := make(chan countResult, 1)
	stockCh := make(chan countResult, 1)
	lowCh := make(chan lowStockResult, 1)

	go func() {
		n, err := uc.statsRepo.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountCategories(ctx)
		categoriesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.SumQuantities(ctx)
		stockCh <- countResult{n, err}
	}()
	go func() {
		list, err := uc.statsRepo.ListLowStock(ctx)
		if err != nil {
			lowCh <- lowStockResult{nil, err}
			return
		}
		items := make([]dto.LowStockItemDTO, 0, len(list))
		for _, p := range list {
			items = append(items, dto.LowStockItemDTO{
				Name:  p.Name,
				Price: money.Format(p.Price),
				Qty:   p.Quantity,
			})
		}
		lowCh <- lowStockResult{items, nil}
	}()

	products := <-productsCh
	categories := <-categoriesCh
	stock := <-stockCh
	low := <-lowCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: contar productos: %w", products.err)
	}
	if categories.err != nil {
		return nil, fmt.Errorf("dashboard: contar categorías: %w", categories.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: sumar stock: %w", stock.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}

	return &dto.DashboardStatsDTO{
		TotalProducts:   products.n,
		TotalCategories: categories.n,
		LowStockCount:   len(low.items),
		AvailableStock:  stock.n,
		LowStockItems:   low.items,
	}, nil
}
