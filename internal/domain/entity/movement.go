package entity

import "time"

// Tipos de movimentação de estoque.
const (
	MovementTypeInbound  = "ENTRADA"
	MovementTypeOutbound = "SAIDA"
)

// ParseMovementType normaliza e valida o tipo recebido da API.
// Retorna "" se o tipo não é conhecido.
func ParseMovementType(s string) string {
	switch s {
	case MovementTypeInbound, "entrada":
		return MovementTypeInbound
	case MovementTypeOutbound, "saida", "SAÍDA":
		return MovementTypeOutbound
	}
	return ""
}

// Movement é o registro imutável de uma movimentação de estoque.
// Nunca é editado nem removido: corrigir um erro exige uma movimentação
// compensatória no sentido contrário.
type Movement struct {
	ID        string
	ProductID string
	Type      string // ENTRADA | SAIDA
	Quantity  int    // sempre positivo; o sinal vem do tipo
	Date      time.Time
	CreatedAt time.Time
}

// Delta retorna o efeito da movimentação sobre o estoque:
// +Quantity para ENTRADA, -Quantity para SAIDA.
func (m *Movement) Delta() int {
	if m.Type == MovementTypeOutbound {
		return -m.Quantity
	}
	return m.Quantity
}
