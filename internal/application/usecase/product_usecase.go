package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vmartins/estoque-api/internal/application/dto"
	"github.com/vmartins/estoque-api/internal/domain"
	"github.com/vmartins/estoque-api/internal/domain/entity"
	"github.com/vmartins/estoque-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para produtos. A quantidade em estoque só
// muda via movimentação; aqui se editam os demais campos.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	movementRepo repository.MovementRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	movementRepo repository.MovementRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, movementRepo: movementRepo}
}

func validateProductFields(name string, price decimal.Decimal, minQty, maxQty int) error {
	if name == "" || price.IsNegative() || minQty < 0 || maxQty < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// resolveCategory valida a referência e carrega a categoria (nil se vazia).
func (uc *ProductUseCase) resolveCategory(categoryID string) (*entity.Category, error) {
	if categoryID == "" {
		return nil, nil
	}
	category, err := uc.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

// Create cria um produto com o estoque inicial informado. O ID é atribuído
// aqui; a categoria, se informada, precisa existir.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProductFields(in.Name, in.UnitPrice, in.MinQuantity, in.MaxQuantity); err != nil {
		return nil, err
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.resolveCategory(in.CategoryID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		UnitPrice:   in.UnitPrice,
		Unit:        in.Unit,
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		MaxQuantity: in.MaxQuantity,
		CategoryID:  in.CategoryID,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return dto.NewProductResponse(product), nil
}

// GetByID busca um produto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewProductResponse(product), nil
}

// List lista todos os produtos com categoria resolvida.
func (uc *ProductUseCase) List() ([]*dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.NewProductResponse(p))
	}
	return out, nil
}

// Update edita os campos administrativos do produto. A quantidade em estoque
// não é tocada aqui.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProductFields(in.Name, in.UnitPrice, in.MinQuantity, in.MaxQuantity); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	category, err := uc.resolveCategory(in.CategoryID)
	if err != nil {
		return nil, err
	}
	product.Name = in.Name
	product.UnitPrice = in.UnitPrice
	product.Unit = in.Unit
	product.MinQuantity = in.MinQuantity
	product.MaxQuantity = in.MaxQuantity
	product.CategoryID = in.CategoryID
	product.Category = category
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return dto.NewProductResponse(product), nil
}

// Delete remove um produto. Bloqueia a remoção enquanto houver movimentação
// registrada para o produto (o log é imutável e não pode ficar órfão).
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	has, err := uc.movementRepo.HasMovements(id)
	if err != nil {
		return err
	}
	if has {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

// AdjustPrices reajusta o preço de todos os produtos pelo percentual dado
// (fração: 0.10 = +10%). Percentuais que deixariam algum preço negativo são
// rejeitados.
func (uc *ProductUseCase) AdjustPrices(percent decimal.Decimal) error {
	one := decimal.NewFromInt(1)
	factor := one.Add(percent)
	if factor.IsNegative() {
		return domain.ErrInvalidInput
	}
	products, err := uc.repo.List()
	if err != nil {
		return err
	}
	for _, p := range products {
		if err := uc.repo.UpdatePrice(p.ID, p.UnitPrice.Mul(factor)); err != nil {
			return err
		}
	}
	return nil
}
