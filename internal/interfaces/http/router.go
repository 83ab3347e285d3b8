package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/acceptance"
	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/catalog"
	"github.com/jhoicas/Almacen-api/internal/application/movement"
	"github.com/jhoicas/Almacen-api/internal/application/report"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MovementUC   *movement.UseCase
	AcceptanceUC *acceptance.UseCase
	ReportUC     *report.UseCase
	ProductUC    *catalog.ProductUseCase
	SupplierUC   *catalog.SupplierUseCase
	CustomerUC   *catalog.CustomerUseCase
	LocationUC   *catalog.LocationUseCase
	InvoiceUC    *catalog.InvoiceUseCase
	AuthUC       *auth.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Movimientos: entradas, despachos, stock (protegido)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/supplies", movementHandler.CreateSupply)
	movements.Post("/shipments", movementHandler.CreateShipment)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	// Editar o borrar un movimiento ajusta stock; solo admin y bodega.
	movements.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleWarehouse), movementHandler.Edit)
	movements.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleWarehouse), movementHandler.Delete)

	// Actas de aceptación (protegido)
	acceptances := protected.Group("/acceptances")
	acceptanceHandler := NewAcceptanceHandler(deps.AcceptanceUC)
	acceptances.Post("/", acceptanceHandler.Record)
	acceptances.Put("/:id", acceptanceHandler.Update)
	acceptances.Delete("/:id", acceptanceHandler.Delete)
	acceptances.Get("/supply/:supplyId", acceptanceHandler.ListBySupply)
	acceptances.Get("/supply/:supplyId/total", acceptanceHandler.TotalAccepted)

	// Reportes (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/:kind", reportHandler.Generate)

	// Productos (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/stock", movementHandler.GetStock)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Proveedores (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", RequireRole(entity.RoleAdmin), supplierHandler.Delete)

	// Clientes (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", RequireRole(entity.RoleAdmin), customerHandler.Delete)

	// Lugares de almacenamiento (protegido)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", locationHandler.Update)
	locations.Delete("/:id", RequireRole(entity.RoleAdmin), locationHandler.Delete)

	// Facturas (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/customer/:customerId", invoiceHandler.ListByCustomer)
	invoices.Patch("/:id/status", invoiceHandler.SetStatus)
	invoices.Delete("/:id", RequireRole(entity.RoleAdmin), invoiceHandler.Delete)
}
