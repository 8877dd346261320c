package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vmartins/estoque-api/internal/application/inventory"
	"github.com/vmartins/estoque-api/internal/application/report"
	"github.com/vmartins/estoque-api/internal/application/usecase"
	"github.com/vmartins/estoque-api/internal/infrastructure/pdf"
	"github.com/vmartins/estoque-api/pkg/config"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	CategoryUC       *usecase.CategoryUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	ReportUC         *report.UseCase
	PriceListPDF     *pdf.PriceListGenerator
	Auth             config.AuthConfig
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.Auth)
	api.Post("/auth/login", authHandler.Login)

	// Rotas protegidas (Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Auth.JWTSecret))

	products := protected.Group("/produtos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Post("/reajuste", productHandler.AdjustPrices)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	categories := protected.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	movements := protected.Group("/movimentacoes")
	movementHandler := NewMovementHandler(deps.RegisterMovement)
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)

	reports := protected.Group("/relatorios")
	reportHandler := NewReportHandler(deps.ReportUC, deps.PriceListPDF)
	reports.Get("/precos", reportHandler.PriceList)
	reports.Get("/precos/pdf", reportHandler.PriceListPDF)
	reports.Get("/balanco", reportHandler.Balance)
	reports.Get("/valor-total", reportHandler.StockValue)
	reports.Get("/abaixo-minimo", reportHandler.BelowMinimum)
	reports.Get("/produtos-por-categoria", reportHandler.CountByCategory)
	reports.Get("/movimentacoes-top", reportHandler.TopMovers)
}
