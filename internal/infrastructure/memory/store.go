// Package memory implementa as portas de persistência sobre mapas em
// memória. Atende o driver de armazenamento "memory" (desenvolvimento sem
// banco) e serve de dublê nos testes, satisfazendo exatamente o mesmo
// contrato dos adaptadores PostgreSQL.
package memory

import (
	"sync"

	"github.com/vmartins/estoque-api/internal/domain/entity"
)

// Store guarda o estado compartilhado pelos repositórios em memória.
type Store struct {
	mu         sync.RWMutex
	txMu       sync.Mutex // serializa transações (ver TxRunner)
	products   map[string]*entity.Product
	categories map[string]*entity.Category
	movements  []*entity.Movement
}

// NewStore cria um Store vazio.
func NewStore() *Store {
	return &Store{
		products:   map[string]*entity.Product{},
		categories: map[string]*entity.Category{},
		movements:  []*entity.Movement{},
	}
}

// ProductRepository devolve o adaptador de produtos sobre este Store.
func (s *Store) ProductRepository() *ProductRepo { return &ProductRepo{store: s} }

// CategoryRepository devolve o adaptador de categorias sobre este Store.
func (s *Store) CategoryRepository() *CategoryRepo { return &CategoryRepo{store: s} }

// MovementRepository devolve o adaptador de movimentações sobre este Store.
func (s *Store) MovementRepository() *MovementRepo { return &MovementRepo{store: s} }

// cloneProduct devolve uma cópia isolada, com categoria resolvida, para o
// chamador não alterar o estado interno por acidente.
func (s *Store) cloneProduct(p *entity.Product) *entity.Product {
	cp := *p
	cp.Category = nil
	if p.CategoryID != "" {
		if c, ok := s.categories[p.CategoryID]; ok {
			cc := *c
			cp.Category = &cc
		}
	}
	return &cp
}
