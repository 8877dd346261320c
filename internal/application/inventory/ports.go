package inventory

import (
	"context"

	"github.com/vmartins/estoque-api/internal/domain/entity"
	"github.com/vmartins/estoque-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa transação. Garante que a atualização do estoque
// e a gravação da movimentação sejam atômicas (Commit ou Rollback juntas).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error) error
}

// StockAlertNotifier recebe os avisos de limite de estoque após uma
// movimentação bem-sucedida. O aviso é consultivo: nunca bloqueia a operação
// nem vira erro para o chamador.
type StockAlertNotifier interface {
	BelowMin(product *entity.Product)
	AboveMax(product *entity.Product)
}

// NopNotifier descarta os avisos (útil em testes).
type NopNotifier struct{}

func (NopNotifier) BelowMin(*entity.Product) {}
func (NopNotifier) AboveMax(*entity.Product) {}
