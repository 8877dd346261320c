package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/vmartins/estoque-api/internal/domain"
	"github.com/vmartins/estoque-api/internal/domain/entity"
	"github.com/vmartins/estoque-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação de ProductRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	p.id, p.nome, p.preco_unitario, p.unidade, p.quantidade_estoque,
	p.quantidade_minima, p.quantidade_maxima, p.categoria_id, p.created_at, p.updated_at,
	c.id, c.nome, c.descricao, c.tamanho, c.embalagem`

// scanProduct lê uma linha do join produtos x categorias.
func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var categoryID *string
	var cID, cName, cDescription, cSize, cPackaging *string
	err := row.Scan(
		&p.ID, &p.Name, &p.UnitPrice, &p.Unit, &p.Quantity,
		&p.MinQuantity, &p.MaxQuantity, &categoryID, &p.CreatedAt, &p.UpdatedAt,
		&cID, &cName, &cDescription, &cSize, &cPackaging,
	)
	if err != nil {
		return nil, err
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	if cID != nil {
		p.Category = &entity.Category{
			ID:          *cID,
			Name:        deref(cName),
			Description: deref(cDescription),
			Size:        deref(cSize),
			Packaging:   deref(cPackaging),
		}
	}
	return &p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Create persiste um novo produto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO produtos (id, nome, preco_unitario, unidade, quantidade_estoque,
			quantidade_minima, quantidade_maxima, categoria_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.UnitPrice, product.Unit, product.Quantity,
		product.MinQuantity, product.MaxQuantity, product.CategoryID,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID busca um produto por ID com a categoria resolvida; nil se não existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM produtos p LEFT JOIN categorias c ON c.id = p.categoria_id
		WHERE p.id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return p, nil
}

// GetForUpdate busca o produto bloqueando a linha (SELECT FOR UPDATE).
// Usar somente dentro de transação.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM produtos p LEFT JOIN categorias c ON c.id = p.categoria_id
		WHERE p.id = $1
		FOR UPDATE OF p`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto for update: %w", err)
	}
	return p, nil
}

// List lista todos os produtos com a categoria resolvida.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM produtos p LEFT JOIN categorias c ON c.id = p.categoria_id
		ORDER BY p.created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update atualiza os campos administrativos. Não toca quantidade_estoque
// (exclusivo de UpdateQuantity, via movimentação).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE produtos SET nome = $2, preco_unitario = $3, unidade = $4,
			quantidade_minima = $5, quantidade_maxima = $6,
			categoria_id = NULLIF($7, ''), updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.UnitPrice, product.Unit,
		product.MinQuantity, product.MaxQuantity, product.CategoryID, product.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// UpdateQuantity atualiza apenas o estoque em cache.
func (r *ProductRepo) UpdateQuantity(productID string, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET quantidade_estoque = $2, updated_at = now() WHERE id = $1`,
		productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update quantidade: %w", err)
	}
	return nil
}

// UpdatePrice atualiza apenas o preço unitário (reajuste de preços).
func (r *ProductRepo) UpdatePrice(productID string, price decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET preco_unitario = $2, updated_at = now() WHERE id = $1`,
		productID, price,
	)
	if err != nil {
		return fmt.Errorf("update preco: %w", err)
	}
	return nil
}

// Delete remove um produto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}
