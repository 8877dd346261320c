package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/vmartins/estoque-api/internal/application/inventory"
	"github.com/vmartins/estoque-api/internal/application/report"
	"github.com/vmartins/estoque-api/internal/application/usecase"
	"github.com/vmartins/estoque-api/internal/domain/repository"
	"github.com/vmartins/estoque-api/internal/infrastructure/alert"
	"github.com/vmartins/estoque-api/internal/infrastructure/memory"
	"github.com/vmartins/estoque-api/internal/infrastructure/pdf"
	"github.com/vmartins/estoque-api/internal/infrastructure/postgres"
	httpRouter "github.com/vmartins/estoque-api/internal/interfaces/http"
	"github.com/vmartins/estoque-api/pkg/config"
	"github.com/vmartins/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicação")

	ctx := context.Background()

	var (
		productRepo  repository.ProductRepository
		categoryRepo repository.CategoryRepository
		movementRepo repository.MovementRepository
		txRunner     inventory.TxRunner
	)
	switch cfg.Storage.Driver {
	case "memory":
		store := memory.NewStore()
		productRepo = store.ProductRepository()
		categoryRepo = store.CategoryRepository()
		movementRepo = store.MovementRepository()
		txRunner = memory.NewTxRunner(store)
		log.Warn().Msg("armazenamento em memória: o estado se perde ao encerrar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão com PostgreSQL")
		}
		defer pool.Close()
		productRepo = postgres.NewProductRepository(pool)
		categoryRepo = postgres.NewCategoryRepository(pool)
		movementRepo = postgres.NewMovementRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	notifier := alert.NewLogNotifier(log)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo, movementRepo, notifier)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, movementRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	reportUC := report.NewUseCase(productRepo, movementRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		CategoryUC:       categoryUC,
		RegisterMovement: registerMovementUC,
		ReportUC:         reportUC,
		PriceListPDF:     pdf.NewPriceListGenerator(),
		Auth:             cfg.Auth,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
