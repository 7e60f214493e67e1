// Package pdf renders the stock summary report handed out at association
// meetings.
//
// A4 layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Association name  │  Report date                   │
//	│  ───────────────────────────────────────────────────────    │
//	│  TIERS: In stock / Low stock / Out of stock counts          │
//	│  ───────────────────────────────────────────────────────    │
//	│  TABLE: critical products (qty | name | category | price)   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/dto"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/reporting"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

var _ reporting.PDFGenerator = (*MarotoStockReport)(nil)

// MarotoStockReport implements reporting.PDFGenerator using Maroto v2.
type MarotoStockReport struct{}

// NewMarotoStockReport builds the generator.
func NewMarotoStockReport() *MarotoStockReport { return &MarotoStockReport{} }

// GenerateStockReport renders the report and returns its bytes.
func (g *MarotoStockReport) GenerateStockReport(
	_ context.Context,
	associationName string,
	summary *dto.StockSummaryResponse,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Stock Summary", true).
		WithAuthor(associationName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(associationName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tiersRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(criticalHeaderRow(len(summary.CriticalProducts)))
	m.AddRows(tableHeaderRow())
	for _, r := range criticalRows(summary.CriticalProducts) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: association name (left) and report date (right).
func headerRow(associationName string, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(associationName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventory stock summary", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("STOCK REPORT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tiersRow: the three tier counters side by side.
func tiersRow(summary *dto.StockSummaryResponse) core.Row {
	tier := func(label string, count int, color *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray}),
			text.New(fmt.Sprintf("%d", count), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center, Top: 6, Color: color,
			}),
		)
	}
	return row.New(16).Add(
		tier("IN STOCK (>5)", summary.InStockCount, colorPrimary),
		tier("LOW STOCK (1-5)", summary.LowStockCount, colorAlert),
		tier("OUT OF STOCK", summary.OutOfStockCount, colorAlert),
	)
}

// criticalHeaderRow: section title with the critical product count.
func criticalHeaderRow(count int) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("CRITICAL PRODUCTS (%d)", count), props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorAlert, Top: 3,
			}),
		),
	)
}

// tableHeaderRow: column labels of the critical products table.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Product", 5, align.Left),
		h("Category", 3, align.Left),
		h("Unit", 1, align.Center),
		h("Price", 2, align.Right),
	)
}

// criticalRows: one row per critical product.
func criticalRows(products []dto.ProductResponse) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", p.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				p.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				p.CategoryName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				p.Unit,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				p.Price.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}
