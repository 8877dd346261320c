// Package pdf gera a versão em PDF da lista de preços (relatório
// /api/relatorios/precos), uma tabela A4 com produto, unidade, categoria e
// preço unitário.
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/vmartins/estoque-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 16, Green: 86, Blue: 62}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// PriceListGenerator gera o PDF da lista de preços usando Maroto v2.
type PriceListGenerator struct{}

// NewPriceListGenerator constrói o gerador.
func NewPriceListGenerator() *PriceListGenerator { return &PriceListGenerator{} }

// Generate monta o documento e devolve seus bytes.
func (g *PriceListGenerator) Generate(products []*dto.ProductResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista de Preços", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título e data de emissão.
func headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("LISTA DE PREÇOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Emitida em: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Produto", 5, align.Left),
		h("Unid.", 1, align.Center),
		h("Categoria", 3, align.Left),
		h("Preço Unit.", 3, align.Right),
	)
}

// productRow: uma linha por produto.
func productRow(p *dto.ProductResponse) core.Row {
	category := p.CategoryName
	if category == "" {
		category = "-"
	}
	return row.New(7).Add(
		col.New(5).Add(text.New(p.Name, props.Text{Size: 8, Top: 1})),
		col.New(1).Add(text.New(p.Unit, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(3).Add(text.New(category, props.Text{Size: 8, Top: 1, Color: colorGray})),
		col.New(3).Add(text.New("R$ "+p.UnitPrice.StringFixed(2), props.Text{
			Size: 8, Align: align.Right, Top: 1,
		})),
	)
}
