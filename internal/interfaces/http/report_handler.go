package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vmartins/estoque-api/internal/application/dto"
	"github.com/vmartins/estoque-api/internal/application/report"
	"github.com/vmartins/estoque-api/internal/infrastructure/pdf"
)

// ReportHandler trata as rotas de relatório. Todos os relatórios são
// leituras puras.
type ReportHandler struct {
	uc     *report.UseCase
	pdfGen *pdf.PriceListGenerator
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *report.UseCase, pdfGen *pdf.PriceListGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, pdfGen: pdfGen}
}

// PriceList godoc
// @Summary      Lista de preços com categoria, ordenada por nome
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/relatorios/precos [get]
func (h *ReportHandler) PriceList(c *fiber.Ctx) error {
	products, err := h.uc.PriceList()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(products)
}

// PriceListPDF godoc
// @Summary      Lista de preços em PDF
// @Tags         relatorios
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/relatorios/precos/pdf [get]
func (h *ReportHandler) PriceListPDF(c *fiber.Ctx) error {
	products, err := h.uc.PriceList()
	if err != nil {
		return errorJSON(c, err)
	}
	data, err := h.pdfGen.Generate(products)
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="lista-precos.pdf"`)
	return c.Send(data)
}

// Balance godoc
// @Summary      Balanço físico/financeiro (valor por produto + total)
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BalanceResponse
// @Router       /api/relatorios/balanco [get]
func (h *ReportHandler) Balance(c *fiber.Ctx) error {
	balance, err := h.uc.Balance()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(balance)
}

// StockValue godoc
// @Summary      Valor financeiro total do estoque
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockValueResponse
// @Router       /api/relatorios/valor-total [get]
func (h *ReportHandler) StockValue(c *fiber.Ctx) error {
	total, err := h.uc.TotalStockValue()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.StockValueResponse{TotalValue: total})
}

// BelowMinimum godoc
// @Summary      Produtos abaixo da quantidade mínima, ordenados por nome
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/relatorios/abaixo-minimo [get]
func (h *ReportHandler) BelowMinimum(c *fiber.Ctx) error {
	products, err := h.uc.BelowMinimum()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(products)
}

// CountByCategory godoc
// @Summary      Quantidade de produtos por categoria
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /api/relatorios/produtos-por-categoria [get]
func (h *ReportHandler) CountByCategory(c *fiber.Ctx) error {
	counts, err := h.uc.CountByCategory()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(counts)
}

// TopMovers godoc
// @Summary      Produto com maior entrada e maior saída acumuladas
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MovementSummaryResponse
// @Router       /api/relatorios/movimentacoes-top [get]
func (h *ReportHandler) TopMovers(c *fiber.Ctx) error {
	summary, err := h.uc.TopMovers()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(summary)
}
