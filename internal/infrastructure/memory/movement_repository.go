package memory

import (
	"github.com/vmartins/estoque-api/internal/domain/entity"
	"github.com/vmartins/estoque-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação em memória de MovementRepository (append-only).
type MovementRepo struct {
	store *Store
}

// Create acrescenta uma movimentação ao log.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *movement
	r.store.movements = append(r.store.movements, &cp)
	return nil
}

// List devolve todas as movimentações na ordem de registro.
func (r *MovementRepo) List() ([]*entity.Movement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Movement, 0, len(r.store.movements))
	for _, m := range r.store.movements {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

// ListByProduct devolve as movimentações de um produto na ordem de registro.
func (r *MovementRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []*entity.Movement
	for _, m := range r.store.movements {
		if m.ProductID == productID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

// HasMovements informa se o produto tem alguma movimentação registrada.
func (r *MovementRepo) HasMovements(productID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, m := range r.store.movements {
		if m.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}
