package memory

import (
	"github.com/vmartins/estoque-api/internal/domain/entity"
	"github.com/vmartins/estoque-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementação em memória de CategoryRepository.
type CategoryRepo struct {
	store *Store
}

// Create guarda uma nova categoria.
func (r *CategoryRepo) Create(category *entity.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *category
	r.store.categories[category.ID] = &cp
	return nil
}

// GetByID busca uma categoria por ID; nil se não existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	c, ok := r.store.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

// List devolve todas as categorias.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Category, 0, len(r.store.categories))
	for _, c := range r.store.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

// Update substitui uma categoria existente.
func (r *CategoryRepo) Update(category *entity.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.categories[category.ID]; ok {
		cp := *category
		r.store.categories[category.ID] = &cp
	}
	return nil
}

// Delete remove uma categoria por ID.
func (r *CategoryRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.categories, id)
	return nil
}

// HasProducts informa se algum produto referencia a categoria.
func (r *CategoryRepo) HasProducts(categoryID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, p := range r.store.products {
		if p.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}
