package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vmartins/estoque-api/internal/application/dto"
	"github.com/vmartins/estoque-api/internal/application/inventory"
	"github.com/vmartins/estoque-api/internal/domain"
)

// MovementHandler trata as rotas de movimentação de estoque.
type MovementHandler struct {
	uc *inventory.RegisterMovementUseCase
}

// NewMovementHandler constrói o handler.
func NewMovementHandler(uc *inventory.RegisterMovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar movimentação de estoque (ENTRADA/SAIDA)
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "produtoId, tipoMovimentacao, quantidadeMovimentada, dataMovimentacao (YYYY-MM-DD)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	var date time.Time
	if in.Date != "" {
		parsed, err := time.Parse(time.DateOnly, in.Date)
		if err != nil {
			return errorJSON(c, domain.ErrInvalidInput)
		}
		date = parsed
	}
	movement, err := h.uc.RegisterMovement(c.Context(), inventory.MovementInput{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Date:      date,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewMovementResponse(movement))
}

// List godoc
// @Summary      Listar movimentações
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        produto_id  query  string  false  "filtrar por produto"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movimentacoes [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	movements, err := h.uc.ListMovements(c.Query("produto_id"))
	if err != nil {
		return errorJSON(c, err)
	}
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.NewMovementResponse(m))
	}
	return c.JSON(out)
}
