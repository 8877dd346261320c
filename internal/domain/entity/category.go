package entity

import "time"

// Category representa uma categoria de produtos.
type Category struct {
	ID          string
	Name        string
	Description string
	Size        string // porte: pequeno, médio, grande
	Packaging   string // embalagem: lata, vidro, plástico...
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
