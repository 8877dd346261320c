package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um item do estoque.
// Quantity é um cache derivado do histórico de movimentações: somente o
// registrador de movimentações pode alterá-lo. Os demais campos podem ser
// editados via CRUD administrativo.
type Product struct {
	ID          string
	Name        string
	UnitPrice   decimal.Decimal // preço unitário exato (NUMERIC no banco)
	Unit        string          // unidade de medida: KG, UN, L...
	Quantity    int             // estoque atual, sempre >= 0
	MinQuantity int
	MaxQuantity int
	CategoryID  string    // vazio se sem categoria
	Category    *Category // resolvida nas listagens; nil se sem categoria
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TotalValue retorna UnitPrice * Quantity (valor do produto em estoque).
func (p *Product) TotalValue() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// BelowMin informa se o estoque atual está abaixo da quantidade mínima.
func (p *Product) BelowMin() bool {
	return p.Quantity < p.MinQuantity
}

// AboveMax informa se o estoque atual passou da quantidade máxima.
func (p *Product) AboveMax() bool {
	return p.Quantity > p.MaxQuantity
}
