package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/adjustment-ledger-api/internal/application/inventory"
	"github.com/jhoicas/adjustment-ledger-api/internal/application/usecase"
	"github.com/jhoicas/adjustment-ledger-api/pkg/logger"
)

// APIPrefix prefijo versionado; las rutas también se sirven en la raíz.
const APIPrefix = "/api/v1"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	AdjustmentUC *inventory.AdjustmentUseCase
	Log          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	adjustmentHandler := NewAdjustmentTransactionHandler(deps.AdjustmentUC, deps.Log)

	for _, api := range []fiber.Router{app, app.Group(APIPrefix)} {
		// Products (/seed antes de /:sku)
		products := api.Group("/products")
		products.Get("/", productHandler.List)
		products.Post("/", productHandler.Create)
		products.Post("/seed", productHandler.Seed)
		products.Get("/:sku", productHandler.GetBySKU)
		products.Put("/:sku", productHandler.Update)
		products.Delete("/:sku", productHandler.Delete)

		// Adjustment transactions
		transactions := api.Group("/adjustment-transactions")
		transactions.Get("/", adjustmentHandler.List)
		transactions.Post("/", adjustmentHandler.Create)
		transactions.Get("/:id", adjustmentHandler.GetByID)
		transactions.Put("/:id", adjustmentHandler.Update)
		transactions.Delete("/:id", adjustmentHandler.Delete)
	}
}

// NewApp construye la app Fiber con los middlewares comunes, /health y las rutas de la API.
// Swagger lo agrega el binario.
func NewApp(appName string, deps RouterDeps, cfg ...fiber.Config) *fiber.App {
	conf := fiber.Config{AppName: appName, ErrorHandler: ErrorHandler(deps.Log)}
	if len(cfg) > 0 {
		conf = cfg[0]
		conf.AppName = appName
		conf.ErrorHandler = ErrorHandler(deps.Log)
	}
	app := fiber.New(conf)
	app.Use(RequestID())
	app.Use(AccessLog(deps.Log))
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": appName})
	})
	Router(app, deps)
	return app
}
