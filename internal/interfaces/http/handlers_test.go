package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vmartins/estoque-api/internal/application/inventory"
	"github.com/vmartins/estoque-api/internal/application/report"
	"github.com/vmartins/estoque-api/internal/application/usecase"
	"github.com/vmartins/estoque-api/internal/infrastructure/memory"
	"github.com/vmartins/estoque-api/internal/infrastructure/pdf"
	httpRouter "github.com/vmartins/estoque-api/internal/interfaces/http"
	"github.com/vmartins/estoque-api/pkg/config"
	"github.com/vmartins/estoque-api/pkg/jwt"
)

const (
	testSecret   = "segredo-de-teste"
	testUsername = "admin"
	testPassword = "senha-forte"
)

// newTestApp monta a aplicação completa sobre o store em memória,
// espelhando a composição do main.
func newTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	store := memory.NewStore()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	authCfg := config.AuthConfig{
		JWTSecret:     testSecret,
		JWTExpMinutes: 5,
		JWTIssuer:     "estoque-api-test",
		Username:      testUsername,
		PasswordHash:  string(hash),
	}

	app := fiber.New()
	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC: usecase.NewProductUseCase(
			store.ProductRepository(), store.CategoryRepository(), store.MovementRepository()),
		CategoryUC: usecase.NewCategoryUseCase(store.CategoryRepository()),
		RegisterMovement: inventory.NewRegisterMovementUseCase(
			memory.NewTxRunner(store), store.ProductRepository(), store.MovementRepository(), nil),
		ReportUC:     report.NewUseCase(store.ProductRepository(), store.MovementRepository()),
		PriceListPDF: pdf.NewPriceListGenerator(),
		Auth:         authCfg,
	})

	token, err := jwt.Generate(testSecret, testUsername, "estoque-api-test", 5)
	require.NoError(t, err)
	return app, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestLogin(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"usuario": testUsername, "senha": testPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body["token"])

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"usuario": testUsername, "senha": "errada",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRotasProtegidas_SemToken(t *testing.T) {
	app, _ := newTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/produtos", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/produtos", "token-invalido", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestFluxoCompleto_MovimentacaoViaAPI(t *testing.T) {
	app, token := newTestApp(t)

	// categoria + produto
	resp := doJSON(t, app, http.MethodPost, "/api/categorias", token, map[string]string{"nome": "Grãos"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var category map[string]any
	decodeBody(t, resp, &category)

	resp = doJSON(t, app, http.MethodPost, "/api/produtos", token, map[string]any{
		"nome":              "Arroz Tipo 1",
		"precoUnitario":     "24.90",
		"unidade":           "KG",
		"quantidadeEstoque": 10,
		"quantidadeMinima":  5,
		"quantidadeMaxima":  100,
		"categoriaId":       category["id"],
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var product map[string]any
	decodeBody(t, resp, &product)
	productID := product["id"].(string)

	// saída válida
	resp = doJSON(t, app, http.MethodPost, "/api/movimentacoes", token, map[string]any{
		"produtoId":             productID,
		"tipoMovimentacao":      "SAIDA",
		"quantidadeMovimentada": 3,
		"dataMovimentacao":      "2025-03-10",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// saída maior que o estoque -> 409
	resp = doJSON(t, app, http.MethodPost, "/api/movimentacoes", token, map[string]any{
		"produtoId":             productID,
		"tipoMovimentacao":      "SAIDA",
		"quantidadeMovimentada": 100,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// quantidade inválida -> 400
	resp = doJSON(t, app, http.MethodPost, "/api/movimentacoes", token, map[string]any{
		"produtoId":             productID,
		"tipoMovimentacao":      "ENTRADA",
		"quantidadeMovimentada": 0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// data malformada -> 400
	resp = doJSON(t, app, http.MethodPost, "/api/movimentacoes", token, map[string]any{
		"produtoId":             productID,
		"tipoMovimentacao":      "ENTRADA",
		"quantidadeMovimentada": 1,
		"dataMovimentacao":      "10/03/2025",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// produto inexistente -> 404
	resp = doJSON(t, app, http.MethodPost, "/api/movimentacoes", token, map[string]any{
		"produtoId":             "nao-existe",
		"tipoMovimentacao":      "ENTRADA",
		"quantidadeMovimentada": 1,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// estoque refletido no produto
	resp = doJSON(t, app, http.MethodGet, "/api/produtos/"+productID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &product)
	assert.Equal(t, float64(7), product["quantidadeEstoque"])

	// remoção bloqueada: produto tem movimentação
	resp = doJSON(t, app, http.MethodDelete, "/api/produtos/"+productID, token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRelatorios_ViaAPI(t *testing.T) {
	app, token := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/produtos", token, map[string]any{
		"nome":              "Café",
		"precoUnitario":     "30.00",
		"quantidadeEstoque": 2,
		"quantidadeMinima":  5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/relatorios/valor-total", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var value map[string]string
	decodeBody(t, resp, &value)
	assert.Equal(t, "60.00", value["valorTotal"])

	resp = doJSON(t, app, http.MethodGet, "/api/relatorios/abaixo-minimo", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var below []map[string]any
	decodeBody(t, resp, &below)
	require.Len(t, below, 1)
	assert.Equal(t, "Café", below[0]["nome"])

	resp = doJSON(t, app, http.MethodGet, "/api/relatorios/produtos-por-categoria", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var counts map[string]int
	decodeBody(t, resp, &counts)
	assert.Equal(t, 1, counts["Sem categoria"])

	resp = doJSON(t, app, http.MethodGet, "/api/relatorios/movimentacoes-top", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary map[string]any
	decodeBody(t, resp, &summary)
	assert.Nil(t, summary["produtoMaisEntrada"])
	assert.Equal(t, float64(0), summary["quantidadeEntrada"])

	resp = doJSON(t, app, http.MethodGet, "/api/relatorios/precos/pdf", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
