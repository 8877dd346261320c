package dto

// CreateCategoryRequest body para POST /api/categorias.
type CreateCategoryRequest struct {
	Name        string `json:"nome"`
	Description string `json:"descricao"`
	Size        string `json:"tamanho"`
	Packaging   string `json:"embalagem"`
}

// UpdateCategoryRequest body para PUT /api/categorias/:id.
type UpdateCategoryRequest struct {
	Name        string `json:"nome"`
	Description string `json:"descricao"`
	Size        string `json:"tamanho"`
	Packaging   string `json:"embalagem"`
}

// CategoryResponse representação JSON de uma categoria.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"nome"`
	Description string `json:"descricao"`
	Size        string `json:"tamanho"`
	Packaging   string `json:"embalagem"`
}
