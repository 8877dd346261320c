package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/produtos.
type CreateProductRequest struct {
	Name        string          `json:"nome"`
	UnitPrice   decimal.Decimal `json:"precoUnitario"`
	Unit        string          `json:"unidade"`
	Quantity    int             `json:"quantidadeEstoque"`
	MinQuantity int             `json:"quantidadeMinima"`
	MaxQuantity int             `json:"quantidadeMaxima"`
	CategoryID  string          `json:"categoriaId"`
}

// UpdateProductRequest body para PUT /api/produtos/:id.
// Não inclui quantidade: o estoque só muda via movimentação.
type UpdateProductRequest struct {
	Name        string          `json:"nome"`
	UnitPrice   decimal.Decimal `json:"precoUnitario"`
	Unit        string          `json:"unidade"`
	MinQuantity int             `json:"quantidadeMinima"`
	MaxQuantity int             `json:"quantidadeMaxima"`
	CategoryID  string          `json:"categoriaId"`
}

// AdjustPricesRequest body para POST /api/produtos/reajuste.
// Percent em fração: 0.10 reajusta todos os preços em +10%.
type AdjustPricesRequest struct {
	Percent decimal.Decimal `json:"percentual"`
}

// ProductResponse representação JSON de um produto.
type ProductResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"nome"`
	UnitPrice    decimal.Decimal   `json:"precoUnitario"`
	Unit         string            `json:"unidade"`
	Quantity     int               `json:"quantidadeEstoque"`
	MinQuantity  int               `json:"quantidadeMinima"`
	MaxQuantity  int               `json:"quantidadeMaxima"`
	Category     *CategoryResponse `json:"categoria,omitempty"`
	CategoryName string            `json:"categoriaNome,omitempty"`
}
