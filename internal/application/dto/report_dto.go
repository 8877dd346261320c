package dto

import "github.com/shopspring/decimal"

// StockValueResponse valor financeiro total do estoque.
type StockValueResponse struct {
	TotalValue decimal.Decimal `json:"valorTotal"`
}

// BalanceLine linha do balanço físico/financeiro de um produto.
type BalanceLine struct {
	Product    ProductResponse `json:"produto"`
	TotalValue decimal.Decimal `json:"valorTotal"` // precoUnitario * quantidadeEstoque
}

// BalanceResponse balanço físico/financeiro completo.
type BalanceResponse struct {
	Lines      []BalanceLine   `json:"itens"`
	TotalValue decimal.Decimal `json:"valorTotalEstoque"`
}

// MovementSummaryResponse produto com maior entrada e maior saída acumuladas.
// Produto nulo e quantidade zero quando não há movimentação do tipo.
type MovementSummaryResponse struct {
	TopInboundProduct  *ProductResponse `json:"produtoMaisEntrada"`
	TopInboundQty      int              `json:"quantidadeEntrada"`
	TopOutboundProduct *ProductResponse `json:"produtoMaisSaida"`
	TopOutboundQty     int              `json:"quantidadeSaida"`
}
