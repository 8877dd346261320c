// Package alert emite os avisos de limite de estoque como eventos
// estruturados de log. É a implementação padrão da porta
// inventory.StockAlertNotifier.
package alert

import (
	"github.com/vmartins/estoque-api/internal/application/inventory"
	"github.com/vmartins/estoque-api/internal/domain/entity"
	"github.com/vmartins/estoque-api/pkg/logger"
)

var _ inventory.StockAlertNotifier = (*LogNotifier)(nil)

// LogNotifier registra os avisos em nível warn.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier constrói o notificador.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// BelowMin avisa que o produto ficou abaixo da quantidade mínima.
func (n *LogNotifier) BelowMin(p *entity.Product) {
	n.log.Warn().
		Str("produto_id", p.ID).
		Str("produto", p.Name).
		Int("quantidade", p.Quantity).
		Int("minimo", p.MinQuantity).
		Msg("estoque abaixo do mínimo")
}

// AboveMax avisa que o produto passou da quantidade máxima.
func (n *LogNotifier) AboveMax(p *entity.Product) {
	n.log.Warn().
		Str("produto_id", p.ID).
		Str("produto", p.Name).
		Int("quantidade", p.Quantity).
		Int("maximo", p.MaxQuantity).
		Msg("estoque acima do máximo")
}
