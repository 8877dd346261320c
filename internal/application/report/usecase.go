// Package report deriva os relatórios do estoque a partir do cadastro de
// produtos e do log de movimentações. Todas as operações são leituras puras:
// nenhuma altera estado.
package report

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vmartins/estoque-api/internal/application/dto"
	"github.com/vmartins/estoque-api/internal/domain/entity"
	"github.com/vmartins/estoque-api/internal/domain/repository"
)

// NoCategoryLabel rótulo usado na contagem por categoria para produtos sem
// categoria associada.
const NoCategoryLabel = "Sem categoria"

// UseCase gera os relatórios do estoque.
type UseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(productRepo repository.ProductRepository, movementRepo repository.MovementRepository) *UseCase {
	return &UseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// TotalStockValue soma precoUnitario * quantidadeEstoque de todos os
// produtos, com aritmética decimal exata. Estoque vazio vale zero.
func (uc *UseCase) TotalStockValue() (decimal.Decimal, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.TotalValue())
	}
	return total, nil
}

// Balance monta o balanço físico/financeiro: uma linha por produto com o
// valor em estoque (preço * quantidade) e o total geral.
func (uc *UseCase) Balance() (*dto.BalanceResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	resp := &dto.BalanceResponse{Lines: []dto.BalanceLine{}, TotalValue: decimal.Zero}
	for _, p := range products {
		value := p.TotalValue()
		resp.Lines = append(resp.Lines, dto.BalanceLine{
			Product:    *dto.NewProductResponse(p),
			TotalValue: value,
		})
		resp.TotalValue = resp.TotalValue.Add(value)
	}
	return resp, nil
}

// BelowMinimum lista os produtos com estoque abaixo da quantidade mínima,
// ordenados por nome (comparação byte a byte, sensível a maiúsculas).
// Lista vazia é resultado válido, não erro.
func (uc *UseCase) BelowMinimum() ([]*dto.ProductResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	below := []*entity.Product{}
	for _, p := range products {
		if p.BelowMin() {
			below = append(below, p)
		}
	}
	sort.Slice(below, func(i, j int) bool { return below[i].Name < below[j].Name })

	out := make([]*dto.ProductResponse, 0, len(below))
	for _, p := range below {
		out = append(out, dto.NewProductResponse(p))
	}
	return out, nil
}

// CountByCategory conta produtos agrupados pelo nome da categoria.
// Produtos sem categoria entram no rótulo "Sem categoria".
func (uc *UseCase) CountByCategory() (map[string]int, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, p := range products {
		label := NoCategoryLabel
		if p.Category != nil && p.Category.Name != "" {
			label = p.Category.Name
		}
		counts[label]++
	}
	return counts, nil
}

// PriceList lista todos os produtos com a categoria resolvida, ordenados por
// nome.
func (uc *UseCase) PriceList() ([]*dto.ProductResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.NewProductResponse(p))
	}
	return out, nil
}

// TopMovers encontra, de forma independente, o produto com maior entrada
// acumulada e o produto com maior saída acumulada. Empate resolve pelo menor
// ID de produto, para que o resultado seja determinístico. Sem movimentação
// de um tipo, o campo correspondente fica com produto nulo e quantidade zero.
func (uc *UseCase) TopMovers() (*dto.MovementSummaryResponse, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}

	inbound := map[string]int{}
	outbound := map[string]int{}
	for _, m := range movements {
		switch m.Type {
		case entity.MovementTypeInbound:
			inbound[m.ProductID] += m.Quantity
		case entity.MovementTypeOutbound:
			outbound[m.ProductID] += m.Quantity
		}
	}

	summary := &dto.MovementSummaryResponse{}
	if id, qty := pickTop(inbound); id != "" {
		p, err := uc.productRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		summary.TopInboundProduct = dto.NewProductResponse(p)
		summary.TopInboundQty = qty
	}
	if id, qty := pickTop(outbound); id != "" {
		p, err := uc.productRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		summary.TopOutboundProduct = dto.NewProductResponse(p)
		summary.TopOutboundQty = qty
	}
	return summary, nil
}

// pickTop devolve o produto de maior total; empate decide pelo menor ID.
func pickTop(totals map[string]int) (string, int) {
	bestID, bestQty := "", 0
	for id, qty := range totals {
		if bestID == "" || qty > bestQty || (qty == bestQty && id < bestID) {
			bestID, bestQty = id, qty
		}
	}
	return bestID, bestQty
}
