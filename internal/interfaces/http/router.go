package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/report"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *inventory.UseCase
	QueryUC     *inventory.QueryUseCase
	ReportUC    *report.UseCase
	LocationUC  *usecase.LocationUseCase
	CategoryUC  *usecase.CategoryUseCase
	SpecUC      *usecase.TechnicalSpecUseCase
	UserUC      *usecase.UserUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Lecturas: cualquier rol autenticado.
// Mutaciones de inventario y catálogos: admin o bodeguero. Usuarios: solo admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	canWrite := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.InventoryUC, deps.QueryUC)
	items.Post("/", canWrite, itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Patch("/:id/quantity", canWrite, itemHandler.UpdateQuantity)
	items.Patch("/:id", canWrite, itemHandler.UpdateInfo)
	items.Delete("/:id", canWrite, itemHandler.Delete)

	// Lots (protegido)
	lots := protected.Group("/lots")
	lotHandler := NewLotHandler(deps.InventoryUC, deps.QueryUC)
	lots.Post("/", canWrite, lotHandler.Create)
	lots.Get("/:id", lotHandler.GetByID)
	lots.Patch("/:id/quantity", canWrite, lotHandler.UpdateQuantity)

	// Ledger (protegido, solo lectura)
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.QueryUC)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/:id", transactionHandler.GetByID)

	// Catálogos (protegido)
	refHandler := NewReferenceHandler(deps.LocationUC, deps.CategoryUC, deps.SpecUC)

	locations := protected.Group("/locations")
	locations.Post("/", canWrite, refHandler.CreateLocation)
	locations.Get("/", refHandler.ListLocations)
	locations.Get("/:id", refHandler.GetLocation)
	locations.Put("/:id", canWrite, refHandler.UpdateLocation)
	locations.Delete("/:id", canWrite, refHandler.DeleteLocation)

	categories := protected.Group("/categories")
	categories.Post("/", canWrite, refHandler.CreateCategory)
	categories.Get("/", refHandler.ListCategories)
	categories.Get("/:id", refHandler.GetCategory)
	categories.Put("/:id", canWrite, refHandler.UpdateCategory)
	categories.Delete("/:id", canWrite, refHandler.DeleteCategory)

	specs := protected.Group("/technical-specs")
	specs.Post("/", canWrite, refHandler.CreateSpec)
	specs.Get("/", refHandler.ListSpecs)
	specs.Get("/:id", refHandler.GetSpec)
	specs.Put("/:id", canWrite, refHandler.UpdateSpec)
	specs.Delete("/:id", canWrite, refHandler.DeleteSpec)

	// Usuarios (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Delete("/:id", userHandler.Delete)

	// Reportes (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/stock", reportHandler.StockPDF)
}
