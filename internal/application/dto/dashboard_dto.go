package dto

// DashboardStatsDTO respuesta de GET /dashboard/stats.
// Todas las cifras se calculan sobre filas no eliminadas, en cada llamada.
type DashboardStatsDTO struct {
	TotalProducts   int               `json:"totalProducts"`
	TotalCategories int               `json:"totalCategories"`
	LowStockCount   int               `json:"lowStockCount"`
	AvailableStock  int               `json:"availableStock"` // suma de quantity
	LowStockItems   []LowStockItemDTO `json:"lowStockItems"`
}

// LowStockItemDTO fila del widget de stock bajo. Price va formateado para
// mostrar (separador de miles, dos decimales).
type LowStockItemDTO struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Qty   int    `json:"qty"`
}
