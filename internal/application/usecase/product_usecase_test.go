package usecase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmartins/estoque-api/internal/application/dto"
	"github.com/vmartins/estoque-api/internal/application/usecase"
	"github.com/vmartins/estoque-api/internal/domain"
	"github.com/vmartins/estoque-api/internal/domain/entity"
	"github.com/vmartins/estoque-api/internal/infrastructure/memory"
)

func newProductFixture(t *testing.T) (*memory.Store, *usecase.ProductUseCase) {
	t.Helper()
	store := memory.NewStore()
	uc := usecase.NewProductUseCase(
		store.ProductRepository(),
		store.CategoryRepository(),
		store.MovementRepository(),
	)
	return store, uc
}

func TestProductCreate_AtribuiID(t *testing.T) {
	_, uc := newProductFixture(t)

	created, err := uc.Create(dto.CreateProductRequest{
		Name:        "Arroz Tipo 1",
		UnitPrice:   decimal.RequireFromString("24.90"),
		Unit:        "KG",
		Quantity:    10,
		MinQuantity: 5,
		MaxQuantity: 100,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 10, created.Quantity)
}

func TestProductCreate_Validacao(t *testing.T) {
	_, uc := newProductFixture(t)

	cases := []struct {
		name string
		in   dto.CreateProductRequest
	}{
		{"nome vazio", dto.CreateProductRequest{UnitPrice: decimal.NewFromInt(1)}},
		{"preço negativo", dto.CreateProductRequest{Name: "X", UnitPrice: decimal.NewFromInt(-1)}},
		{"estoque inicial negativo", dto.CreateProductRequest{Name: "X", UnitPrice: decimal.NewFromInt(1), Quantity: -2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	_, uc := newProductFixture(t)
	_, err := uc.Create(dto.CreateProductRequest{
		Name:       "Arroz",
		UnitPrice:  decimal.NewFromInt(10),
		CategoryID: uuid.New().String(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_NaoTocaEstoque(t *testing.T) {
	store, uc := newProductFixture(t)
	created, err := uc.Create(dto.CreateProductRequest{
		Name:      "Arroz",
		UnitPrice: decimal.NewFromInt(10),
		Quantity:  42,
	})
	require.NoError(t, err)

	updated, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Name:      "Arroz Integral",
		UnitPrice: decimal.NewFromInt(12),
	})
	require.NoError(t, err)
	assert.Equal(t, "Arroz Integral", updated.Name)

	got, err := store.ProductRepository().GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, got.Quantity, "update administrativo não altera estoque")
}

func TestProductDelete_BloqueadoComMovimentacao(t *testing.T) {
	store, uc := newProductFixture(t)
	created, err := uc.Create(dto.CreateProductRequest{
		Name:      "Arroz",
		UnitPrice: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	require.NoError(t, store.MovementRepository().Create(&entity.Movement{
		ID:        uuid.New().String(),
		ProductID: created.ID,
		Type:      entity.MovementTypeInbound,
		Quantity:  5,
	}))

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := store.ProductRepository().GetByID(created.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestProductDelete_SemMovimentacao(t *testing.T) {
	store, uc := newProductFixture(t)
	created, err := uc.Create(dto.CreateProductRequest{
		Name:      "Arroz",
		UnitPrice: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	got, err := store.ProductRepository().GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAdjustPrices_ReajustaTodos(t *testing.T) {
	store, uc := newProductFixture(t)
	a, err := uc.Create(dto.CreateProductRequest{Name: "A", UnitPrice: decimal.RequireFromString("10.00")})
	require.NoError(t, err)
	b, err := uc.Create(dto.CreateProductRequest{Name: "B", UnitPrice: decimal.RequireFromString("5.50")})
	require.NoError(t, err)

	// +10%
	require.NoError(t, uc.AdjustPrices(decimal.RequireFromString("0.10")))

	gotA, _ := store.ProductRepository().GetByID(a.ID)
	gotB, _ := store.ProductRepository().GetByID(b.ID)
	assert.True(t, gotA.UnitPrice.Equal(decimal.RequireFromString("11.00")), "veio %s", gotA.UnitPrice)
	assert.True(t, gotB.UnitPrice.Equal(decimal.RequireFromString("6.05")), "veio %s", gotB.UnitPrice)
}

func TestAdjustPrices_PercentualInvalido(t *testing.T) {
	_, uc := newProductFixture(t)
	// fator 1 + (-1.5) é negativo: deixaria preços negativos
	err := uc.AdjustPrices(decimal.RequireFromString("-1.5"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
