package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vmartins/estoque-api/internal/domain"
	"github.com/vmartins/estoque-api/internal/domain/entity"
	"github.com/vmartins/estoque-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimentações de estoque (ENTRADA/SAIDA)
// de forma transacional, com bloqueio de linha (SELECT FOR UPDATE) por
// produto. Toda alteração de quantidade passa por aqui: o estoque em cache do
// produto é sempre o efeito líquido do histórico de movimentações.
type RegisterMovementUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	notifier     StockAlertNotifier
}

// NewRegisterMovementUseCase constrói o caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	notifier StockAlertNotifier,
) *RegisterMovementUseCase {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &RegisterMovementUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		movementRepo: movementRepo,
		notifier:     notifier,
	}
}

// MovementInput entrada para registrar uma movimentação.
type MovementInput struct {
	ProductID string
	Type      string // ENTRADA | SAIDA
	Quantity  int    // sempre positivo
	Date      time.Time
}

// RegisterMovement valida a entrada, abre uma transação, bloqueia a linha do
// produto, aplica o delta e grava a movimentação. Se a saída deixaria o
// estoque negativo, falha com ErrInsufficientStock sem alterar nada.
//
// Não há deduplicação: registrar duas vezes a mesma movimentação lógica
// aplica o delta duas vezes.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	movType := entity.ParseMovementType(input.Type)
	if movType == "" || input.Quantity <= 0 || input.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	// Checagem fora da transação para responder NotFound sem custo de tx.
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	movement := &entity.Movement{
		ID:        uuid.New().String(),
		ProductID: input.ProductID,
		Type:      movType,
		Quantity:  input.Quantity,
		Date:      input.Date,
		CreatedAt: now,
	}

	var updated *entity.Product
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		// Bloqueia a linha do produto: no máximo uma movimentação em voo
		// por produto; produtos distintos seguem em paralelo.
		p, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		newQuantity := p.Quantity + movement.Delta()
		if newQuantity < 0 {
			return domain.ErrInsufficientStock
		}
		if err := productRepo.UpdateQuantity(p.ID, newQuantity); err != nil {
			return err
		}
		if err := movementRepo.Create(movement); err != nil {
			return err
		}
		p.Quantity = newQuantity
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Aviso consultivo de limite, fora da transação.
	if updated.BelowMin() {
		uc.notifier.BelowMin(updated)
	}
	if updated.AboveMax() {
		uc.notifier.AboveMax(updated)
	}
	return movement, nil
}

// ListMovements lista todas as movimentações; com productID, só as do produto.
func (uc *RegisterMovementUseCase) ListMovements(productID string) ([]*entity.Movement, error) {
	if productID != "" {
		return uc.movementRepo.ListByProduct(productID)
	}
	return uc.movementRepo.List()
}
