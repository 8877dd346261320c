package report_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmartins/estoque-api/internal/application/report"
	"github.com/vmartins/estoque-api/internal/domain/entity"
	"github.com/vmartins/estoque-api/internal/infrastructure/memory"
)

func newFixture(t *testing.T) (*memory.Store, *report.UseCase) {
	t.Helper()
	store := memory.NewStore()
	return store, report.NewUseCase(store.ProductRepository(), store.MovementRepository())
}

func addProduct(t *testing.T, store *memory.Store, id, name, price string, qty, min int, categoryID string) {
	t.Helper()
	require.NoError(t, store.ProductRepository().Create(&entity.Product{
		ID:          id,
		Name:        name,
		UnitPrice:   decimal.RequireFromString(price),
		Unit:        "UN",
		Quantity:    qty,
		MinQuantity: min,
		CategoryID:  categoryID,
	}))
}

func addMovement(t *testing.T, store *memory.Store, productID, movType string, qty int) {
	t.Helper()
	require.NoError(t, store.MovementRepository().Create(&entity.Movement{
		ID:        uuid.New().String(),
		ProductID: productID,
		Type:      movType,
		Quantity:  qty,
		Date:      time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
	}))
}

func TestTotalStockValue_EstoqueVazio(t *testing.T) {
	_, uc := newFixture(t)
	total, err := uc.TotalStockValue()
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestTotalStockValue_SomaExata(t *testing.T) {
	store, uc := newFixture(t)
	// 3 * 0.10 + 7 * 19.99 = 0.30 + 139.93 = 140.23 (sem deriva de float)
	addProduct(t, store, "p1", "Fermento", "0.10", 3, 0, "")
	addProduct(t, store, "p2", "Azeite", "19.99", 7, 0, "")

	total, err := uc.TotalStockValue()
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("140.23")),
		"esperado 140.23, veio %s", total)
}

func TestBalance_LinhaPorProdutoETotal(t *testing.T) {
	store, uc := newFixture(t)
	addProduct(t, store, "p1", "Café", "30.00", 2, 0, "")
	addProduct(t, store, "p2", "Açúcar", "5.50", 4, 0, "")

	balance, err := uc.Balance()
	require.NoError(t, err)
	require.Len(t, balance.Lines, 2)
	assert.True(t, balance.TotalValue.Equal(decimal.RequireFromString("82.00")))
	for _, line := range balance.Lines {
		expected := line.Product.UnitPrice.Mul(decimal.NewFromInt(int64(line.Product.Quantity)))
		assert.True(t, line.TotalValue.Equal(expected))
	}
}

func TestBelowMinimum_FiltraEOrdenaPorNome(t *testing.T) {
	store, uc := newFixture(t)
	addProduct(t, store, "p1", "Feijão", "8.00", 2, 10, "") // abaixo
	addProduct(t, store, "p2", "Arroz", "24.90", 1, 5, "")  // abaixo
	addProduct(t, store, "p3", "Sal", "3.00", 50, 5, "")    // ok
	addProduct(t, store, "p4", "Milho", "4.00", 5, 5, "")   // igual ao mínimo: não entra

	below, err := uc.BelowMinimum()
	require.NoError(t, err)
	require.Len(t, below, 2)
	assert.Equal(t, "Arroz", below[0].Name)
	assert.Equal(t, "Feijão", below[1].Name)
}

func TestBelowMinimum_VazioEhValido(t *testing.T) {
	store, uc := newFixture(t)
	addProduct(t, store, "p1", "Sal", "3.00", 50, 5, "")

	below, err := uc.BelowMinimum()
	require.NoError(t, err)
	assert.Empty(t, below)
}

func TestCountByCategory_RotuloSemCategoria(t *testing.T) {
	store, uc := newFixture(t)
	require.NoError(t, store.CategoryRepository().Create(&entity.Category{ID: "c1", Name: "Grãos"}))
	addProduct(t, store, "p1", "Arroz", "24.90", 1, 0, "c1")
	addProduct(t, store, "p2", "Feijão", "8.00", 1, 0, "c1")
	addProduct(t, store, "p3", "Esponja", "2.00", 1, 0, "")

	counts, err := uc.CountByCategory()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"Grãos":                2,
		report.NoCategoryLabel: 1,
	}, counts)
}

func TestPriceList_OrdenadaComCategoria(t *testing.T) {
	store, uc := newFixture(t)
	require.NoError(t, store.CategoryRepository().Create(&entity.Category{ID: "c1", Name: "Grãos"}))
	addProduct(t, store, "p1", "Feijão", "8.00", 1, 0, "c1")
	addProduct(t, store, "p2", "Arroz", "24.90", 1, 0, "c1")
	addProduct(t, store, "p3", "Esponja", "2.00", 1, 0, "")

	list, err := uc.PriceList()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Arroz", list[0].Name)
	assert.Equal(t, "Esponja", list[1].Name)
	assert.Equal(t, "Feijão", list[2].Name)
	assert.Equal(t, "Grãos", list[0].CategoryName)
	assert.Empty(t, list[1].CategoryName)
}

// Cenário: A com 3 entradas somando 50, B com 1 entrada de 20 —
// produtoMaisEntrada tem de ser A com total 50.
func TestTopMovers_MaiorEntrada(t *testing.T) {
	store, uc := newFixture(t)
	addProduct(t, store, "a", "Produto A", "1.00", 100, 0, "")
	addProduct(t, store, "b", "Produto B", "1.00", 100, 0, "")
	addMovement(t, store, "a", entity.MovementTypeInbound, 20)
	addMovement(t, store, "a", entity.MovementTypeInbound, 10)
	addMovement(t, store, "a", entity.MovementTypeInbound, 20)
	addMovement(t, store, "b", entity.MovementTypeInbound, 20)
	addMovement(t, store, "b", entity.MovementTypeOutbound, 15)

	summary, err := uc.TopMovers()
	require.NoError(t, err)
	require.NotNil(t, summary.TopInboundProduct)
	assert.Equal(t, "a", summary.TopInboundProduct.ID)
	assert.Equal(t, 50, summary.TopInboundQty)
	require.NotNil(t, summary.TopOutboundProduct)
	assert.Equal(t, "b", summary.TopOutboundProduct.ID)
	assert.Equal(t, 15, summary.TopOutboundQty)
}

func TestTopMovers_SemMovimentacaoDeUmTipo(t *testing.T) {
	store, uc := newFixture(t)
	addProduct(t, store, "a", "Produto A", "1.00", 100, 0, "")
	addMovement(t, store, "a", entity.MovementTypeInbound, 5)

	summary, err := uc.TopMovers()
	require.NoError(t, err)
	assert.NotNil(t, summary.TopInboundProduct)
	assert.Nil(t, summary.TopOutboundProduct)
	assert.Zero(t, summary.TopOutboundQty)
}

func TestTopMovers_LogVazio(t *testing.T) {
	_, uc := newFixture(t)
	summary, err := uc.TopMovers()
	require.NoError(t, err)
	assert.Nil(t, summary.TopInboundProduct)
	assert.Nil(t, summary.TopOutboundProduct)
	assert.Zero(t, summary.TopInboundQty)
	assert.Zero(t, summary.TopOutboundQty)
}

// Empate de totais decide pelo menor ID, para o relatório ser determinístico.
func TestTopMovers_EmpateDecidePorMenorID(t *testing.T) {
	store, uc := newFixture(t)
	addProduct(t, store, "zzz", "Zeta", "1.00", 10, 0, "")
	addProduct(t, store, "aaa", "Alfa", "1.00", 10, 0, "")
	addMovement(t, store, "zzz", entity.MovementTypeInbound, 30)
	addMovement(t, store, "aaa", entity.MovementTypeInbound, 30)

	summary, err := uc.TopMovers()
	require.NoError(t, err)
	require.NotNil(t, summary.TopInboundProduct)
	assert.Equal(t, "aaa", summary.TopInboundProduct.ID)
	assert.Equal(t, 30, summary.TopInboundQty)
}
