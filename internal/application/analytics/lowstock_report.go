package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// LowStockPDFGenerator puerto hacia el generador de PDF (infraestructura).
type LowStockPDFGenerator interface {
	GenerateLowStockPDF(ctx context.Context, products []*entity.Product) ([]byte, error)
}

// LowStockReportUseCase arma el reporte PDF de productos con stock bajo.
type LowStockReportUseCase struct {
	statsRepo repository.StatsRepository
	generator LowStockPDFGenerator
}

// NewLowStockReportUseCase construye el caso de uso.
func NewLowStockReportUseCase(statsRepo repository.StatsRepository, generator LowStockPDFGenerator) *LowStockReportUseCase {
	return &LowStockReportUseCase{statsRepo: statsRepo, generator: generator}
}

// Generate devuelve los bytes del PDF con los productos en banda low-stock.
func (uc *LowStockReportUseCase) Generate(ctx context.Context) ([]byte, error) {
	products, err := uc.statsRepo.ListLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte stock bajo: %w", err)
	}
	pdf, err := uc.generator.GenerateLowStockPDF(ctx, products)
	if err != nil {
		return nil, fmt.Errorf("reporte stock bajo: generar pdf: %w", err)
	}
	return pdf, nil
}
