package dto

// RegisterMovementRequest body para POST /api/movimentacoes.
// Data no formato YYYY-MM-DD; vazia usa a data corrente.
type RegisterMovementRequest struct {
	ProductID string `json:"produtoId"`
	Type      string `json:"tipoMovimentacao"`
	Quantity  int    `json:"quantidadeMovimentada"`
	Date      string `json:"dataMovimentacao"`
}

// MovementResponse representação JSON de uma movimentação.
type MovementResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"produtoId"`
	Type      string `json:"tipoMovimentacao"`
	Quantity  int    `json:"quantidadeMovimentada"`
	Date      string `json:"dataMovimentacao"` // YYYY-MM-DD
}
