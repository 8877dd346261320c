package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vmartins/estoque-api/internal/domain"
	"github.com/vmartins/estoque-api/internal/domain/entity"
	"github.com/vmartins/estoque-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação de MovementRepository sobre PostgreSQL.
// A tabela é append-only: nenhum UPDATE ou DELETE passa por aqui.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create grava uma movimentação no log.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movimentacoes (id, produto_id, tipo_movimentacao, quantidade_movimentada,
			data_movimentacao, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		movement.Date, movement.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

const movementColumns = `id, produto_id, tipo_movimentacao, quantidade_movimentada, data_movimentacao, created_at`

func scanMovements(rows pgx.Rows) ([]*entity.Movement, error) {
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Date, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// List devolve todas as movimentações em ordem de registro.
func (r *MovementRepo) List() ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+movementColumns+` FROM movimentacoes ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	return scanMovements(rows)
}

// ListByProduct devolve as movimentações de um produto em ordem de registro.
func (r *MovementRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+movementColumns+` FROM movimentacoes WHERE produto_id = $1 ORDER BY created_at`,
		productID)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes por produto: %w", err)
	}
	return scanMovements(rows)
}

// HasMovements informa se o produto tem movimentação registrada.
func (r *MovementRepo) HasMovements(productID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM movimentacoes WHERE produto_id = $1)`, productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check movimentacoes do produto: %w", err)
	}
	return exists, nil
}
