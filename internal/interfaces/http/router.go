package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CategoryUC     *usecase.CategoryUseCase
	ProductUC      *usecase.ProductUseCase
	DashboardUC    *analytics.DashboardUseCase
	LowStockReport *analytics.LowStockReportUseCase
	Images         ImageStore
	JWTSecret      string
}

// Router registra las rutas de la API. Allow-lists de roles por ruta:
// categorías solo admin para mutaciones; productos admin/manager; lecturas
// para cualquier rol autenticado.
func Router(app *fiber.App, deps RouterDeps) {
	authMW := AuthMiddleware(deps.JWTSecret)
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleStaff)
	adminOnly := RequireRole(entity.RoleAdmin)
	adminOrManager := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Auth (registro y login públicos)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/profile", authMW, anyRole, authHandler.Profile)

	// Categories
	categories := app.Group("/category", authMW)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", anyRole, categoryHandler.List)
	categories.Post("/", adminOnly, categoryHandler.Create)
	categories.Put("/:id", adminOnly, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Products
	products := app.Group("/product", authMW)
	productHandler := NewProductHandler(deps.ProductUC, deps.Images)
	products.Get("/", anyRole, productHandler.List)
	products.Get("/stockData-get", anyRole, productHandler.StockData)
	products.Post("/", adminOrManager, productHandler.Create)
	products.Put("/:id", adminOrManager, productHandler.Update)
	products.Delete("/:id", adminOrManager, productHandler.Delete)

	// Dashboard
	dashboard := app.Group("/dashboard", authMW)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.LowStockReport)
	dashboard.Get("/stats", anyRole, dashboardHandler.GetStats)
	dashboard.Get("/lowstock-report", adminOrManager, dashboardHandler.LowStockReport)
}
