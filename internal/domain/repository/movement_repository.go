package repository

import "github.com/vmartins/estoque-api/internal/domain/entity"

// MovementRepository define a porta de persistência para Movement (DIP).
// O log é append-only: não há Update nem Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	List() ([]*entity.Movement, error)
	ListByProduct(productID string) ([]*entity.Movement, error)
	// HasMovements informa se existe alguma movimentação do produto
	// (a remoção do produto é bloqueada enquanto houver histórico).
	HasMovements(productID string) (bool, error)
}
