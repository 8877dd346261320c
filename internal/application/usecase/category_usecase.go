package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/vmartins/estoque-api/internal/application/dto"
	"github.com/vmartins/estoque-api/internal/domain"
	"github.com/vmartins/estoque-api/internal/domain/entity"
	"github.com/vmartins/estoque-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorias.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase constrói o caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create cria uma categoria. O ID é atribuído aqui.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Size:        in.Size,
		Packaging:   in.Packaging,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return dto.NewCategoryResponse(category), nil
}

// GetByID busca uma categoria por ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewCategoryResponse(category), nil
}

// List lista todas as categorias.
func (uc *CategoryUseCase) List() ([]*dto.CategoryResponse, error) {
	categories, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.NewCategoryResponse(c))
	}
	return out, nil
}

// Update edita uma categoria existente.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	category.Name = in.Name
	category.Description = in.Description
	category.Size = in.Size
	category.Packaging = in.Packaging
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return dto.NewCategoryResponse(category), nil
}

// Delete remove uma categoria. Bloqueia a remoção enquanto algum produto a
// referencia, para nunca deixar referência pendurada.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	has, err := uc.repo.HasProducts(id)
	if err != nil {
		return err
	}
	if has {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}
