package memory

import (
	"context"

	"github.com/vmartins/estoque-api/internal/application/inventory"
	"github.com/vmartins/estoque-api/internal/domain/entity"
	"github.com/vmartins/estoque-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner executa o callback sob um mutex único, garantindo no máximo uma
// mutação de estoque em voo por vez. Antes de rodar tira um snapshot dos
// produtos e do tamanho do log; se o callback falhar, restaura o snapshot —
// o equivalente em memória do Rollback.
type TxRunner struct {
	store *Store
}

// NewTxRunner constrói o runner sobre o Store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run executa fn com os repositórios do Store, com semântica tudo-ou-nada.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.txMu.Lock()
	defer r.store.txMu.Unlock()

	// Snapshot para rollback.
	r.store.mu.Lock()
	snapshot := make(map[string]*entity.Product, len(r.store.products))
	for id, p := range r.store.products {
		cp := *p
		snapshot[id] = &cp
	}
	logLen := len(r.store.movements)
	r.store.mu.Unlock()

	if err := fn(r.store.ProductRepository(), r.store.MovementRepository()); err != nil {
		r.store.mu.Lock()
		r.store.products = snapshot
		r.store.movements = r.store.movements[:logLen]
		r.store.mu.Unlock()
		return err
	}
	return nil
}
