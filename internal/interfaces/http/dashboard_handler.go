package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del dashboard.
type DashboardHandler struct {
	statsUC  *analytics.DashboardUseCase
	reportUC *analytics.LowStockReportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(statsUC *analytics.DashboardUseCase, reportUC *analytics.LowStockReportUseCase) *DashboardHandler {
	return &DashboardHandler{statsUC: statsUC, reportUC: reportUC}
}

// GetStats godoc
// @Summary      Agregados de inventario
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.statsUC.GetStats(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(stats)
}

// LowStockReport godoc
// @Summary      Reporte PDF de stock bajo
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /dashboard/lowstock-report [get]
func (h *DashboardHandler) LowStockReport(c *fiber.Ctx) error {
	pdf, err := h.reportUC.Generate(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-bajo.pdf"`)
	return c.Send(pdf)
}
