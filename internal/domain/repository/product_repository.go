package repository

import (
	"github.com/shopspring/decimal"
	"github.com/vmartins/estoque-api/internal/domain/entity"
)

// ProductRepository define a porta de persistência para Product (DIP).
// GetByID e List resolvem a categoria do produto quando houver.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate carrega o produto bloqueando a linha para escrita
	// (SELECT FOR UPDATE). Só faz sentido dentro de uma transação.
	GetForUpdate(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity atualiza apenas o estoque em cache (uso exclusivo do
	// registrador de movimentações).
	UpdateQuantity(productID string, quantity int) error
	UpdatePrice(productID string, price decimal.Decimal) error
	Delete(id string) error
}
