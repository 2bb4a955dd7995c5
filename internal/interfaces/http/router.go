package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-lite/internal/application/auth"
	"github.com/tu-usuario/stock-lite/internal/application/backup"
	"github.com/tu-usuario/stock-lite/internal/application/item"
	"github.com/tu-usuario/stock-lite/internal/application/ledger"
	"github.com/tu-usuario/stock-lite/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC     *item.UseCase
	LedgerUC   *ledger.UseCase
	BackupUC   *backup.UseCase
	ReportUC   *report.UseCase
	AuthUC     *auth.UseCase // nil cuando la autenticación está deshabilitada
	JWTSecret  string
	AuthActive bool
}

// Router registra las rutas de la API. Con AuthActive el grupo /api queda
// detrás del Bearer Token; sin ella la API es abierta (modo local mono-usuario).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	if deps.AuthActive {
		authGroup := api.Group("/auth")
		authHandler := NewAuthHandler(deps.AuthUC)
		authGroup.Post("/login", authHandler.Login)

		api = app.Group("/api", AuthMiddleware(deps.JWTSecret))
	}

	// Ítems
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/summary", itemHandler.Summary)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Movimientos (ledger)
	movementHandler := NewMovementHandler(deps.LedgerUC)
	items.Post("/:id/movements", movementHandler.Record)
	items.Get("/:id/movements", movementHandler.List)
	items.Delete("/:id/movements/:movementId", movementHandler.Delete)

	// Respaldo
	backupGroup := api.Group("/backup")
	backupHandler := NewBackupHandler(deps.BackupUC)
	backupGroup.Get("/export", backupHandler.Export)
	backupGroup.Post("/import", backupHandler.Import)
	backupGroup.Delete("/", backupHandler.Reset)

	// Reportes
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/stock.pdf", reportHandler.StockPDF)
}
