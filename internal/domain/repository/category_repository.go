package repository

import "github.com/vmartins/estoque-api/internal/domain/entity"

// CategoryRepository define a porta de persistência para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
	// HasProducts informa se algum produto referencia a categoria
	// (a remoção é bloqueada enquanto houver referência).
	HasProducts(categoryID string) (bool, error)
}
