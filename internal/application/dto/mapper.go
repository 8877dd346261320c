package dto

import (
	"time"

	"github.com/vmartins/estoque-api/internal/domain/entity"
)

// NewCategoryResponse converte a entidade para o DTO de resposta.
func NewCategoryResponse(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Size:        c.Size,
		Packaging:   c.Packaging,
	}
}

// NewProductResponse converte a entidade para o DTO de resposta,
// resolvendo o nome da categoria quando carregada.
func NewProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	resp := &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		UnitPrice:   p.UnitPrice,
		Unit:        p.Unit,
		Quantity:    p.Quantity,
		MinQuantity: p.MinQuantity,
		MaxQuantity: p.MaxQuantity,
	}
	if p.Category != nil {
		resp.Category = NewCategoryResponse(p.Category)
		resp.CategoryName = p.Category.Name
	}
	return resp
}

// NewMovementResponse converte a entidade para o DTO de resposta.
func NewMovementResponse(m *entity.Movement) *MovementResponse {
	if m == nil {
		return nil
	}
	return &MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Date:      m.Date.Format(time.DateOnly),
	}
}
