package memory

import (
	"github.com/shopspring/decimal"
	"github.com/vmartins/estoque-api/internal/domain/entity"
	"github.com/vmartins/estoque-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação em memória de ProductRepository.
type ProductRepo struct {
	store *Store
}

// Create guarda um novo produto.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *product
	cp.Category = nil
	r.store.products[product.ID] = &cp
	return nil
}

// GetByID busca um produto por ID; nil se não existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	return r.store.cloneProduct(p), nil
}

// GetForUpdate equivale a GetByID: em memória a serialização vem do mutex de
// transação do TxRunner, não de lock de linha.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

// List devolve todos os produtos com categoria resolvida.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		out = append(out, r.store.cloneProduct(p))
	}
	return out, nil
}

// Update substitui os campos administrativos do produto.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	existing, ok := r.store.products[product.ID]
	if !ok {
		return nil
	}
	cp := *product
	cp.Category = nil
	cp.Quantity = existing.Quantity // estoque só muda via UpdateQuantity
	r.store.products[product.ID] = &cp
	return nil
}

// UpdateQuantity atualiza apenas o estoque em cache.
func (r *ProductRepo) UpdateQuantity(productID string, quantity int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if p, ok := r.store.products[productID]; ok {
		p.Quantity = quantity
	}
	return nil
}

// UpdatePrice atualiza apenas o preço unitário.
func (r *ProductRepo) UpdatePrice(productID string, price decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if p, ok := r.store.products[productID]; ok {
		p.UnitPrice = price
	}
	return nil
}

// Delete remove um produto por ID.
func (r *ProductRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.products, id)
	return nil
}
