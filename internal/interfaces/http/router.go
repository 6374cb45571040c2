package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ramdev/inventory-api/internal/application/stock"
	"github.com/ramdev/inventory-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Engine        *stock.Engine
	TransactionUC *usecase.TransactionUseCase
	OrderUC       *usecase.OrderUseCase
	ProductUC     *usecase.ProductUseCase
}

// Router registra las rutas de la API. Las rutas y sus nombres se conservan
// tal cual los consume el frontend existente.
func Router(app *fiber.App, deps RouterDeps) {
	// Transacciones de inventario (libro de movimientos)
	transactions := app.Group("/transaction")
	transactionHandler := NewTransactionHandler(deps.Engine, deps.TransactionUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/get-transaction", transactionHandler.Get)
	transactions.Get("/get-transactions", transactionHandler.List)
	transactions.Post("/update", transactionHandler.Update)
	transactions.Post("/delete", transactionHandler.Delete)

	// Órdenes (ventas con foto de precio)
	orders := app.Group("/order")
	orderHandler := NewOrderHandler(deps.Engine, deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/get-order", orderHandler.Get)
	orders.Get("/get-orders", orderHandler.List)
	orders.Post("/update", orderHandler.Update)
	orders.Post("/delete", orderHandler.Delete)

	// Catálogo de productos
	products := app.Group("/product")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/get-product", productHandler.Get)
	products.Get("/get-products", productHandler.List)
	products.Post("/update", productHandler.Update)
	products.Post("/delete", productHandler.Delete)
}
