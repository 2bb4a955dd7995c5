package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/stock-lite/internal/application/auth"
	"github.com/tu-usuario/stock-lite/internal/application/backup"
	"github.com/tu-usuario/stock-lite/internal/application/item"
	"github.com/tu-usuario/stock-lite/internal/application/ledger"
	"github.com/tu-usuario/stock-lite/internal/application/report"
	infrapdf "github.com/tu-usuario/stock-lite/internal/infrastructure/pdf"
	"github.com/tu-usuario/stock-lite/internal/infrastructure/storage"
	httpRouter "github.com/tu-usuario/stock-lite/internal/interfaces/http"
	"github.com/tu-usuario/stock-lite/pkg/config"
	"github.com/tu-usuario/stock-lite/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var kv storage.KV
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := storage.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		pg, err := storage.NewPostgres(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("inicializar kv_entries")
		}
		kv = pg
	default:
		log.Warn().Msg("almacenamiento en memoria: los datos no sobreviven un reinicio")
		kv = storage.NewMemory()
	}

	itemRepo := storage.NewItemRepository(kv)
	movementRepo := storage.NewMovementRepository(kv)
	txRunner := storage.NewTxRunner(kv)

	ledgerUC := ledger.NewUseCase(txRunner, movementRepo)
	itemUC := item.NewUseCase(txRunner, itemRepo, cfg.Stock.LowStockThreshold)
	backupUC := backup.NewUseCase(txRunner, itemRepo, movementRepo)
	reportUC := report.NewUseCase(itemUC, infrapdf.NewMarotoStockReport(cfg.App.Name))

	var authUC *auth.UseCase
	if cfg.JWT.Enabled() {
		authUC = auth.NewUseCase(auth.Config{
			Username:     cfg.Admin.User,
			PasswordHash: cfg.Admin.PasswordHash,
			JWTSecret:    cfg.JWT.Secret,
			ExpMinutes:   cfg.JWT.Expiration,
			Issuer:       cfg.JWT.Issuer,
		})
	} else {
		log.Warn().Msg("JWT_SECRET vacío: API abierta (modo local mono-usuario)")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024, // respaldos con imágenes en data-URL
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "stock-lite API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:     itemUC,
		LedgerUC:   ledgerUC,
		BackupUC:   backupUC,
		ReportUC:   reportUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
		AuthActive: cfg.JWT.Enabled(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
