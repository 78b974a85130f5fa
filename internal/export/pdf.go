package export

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"tally/internal/cli"
	"tally/internal/model"
	"tally/internal/pipeline"
)

// PDF renders the ledger as a printable budget report: the item table
// followed by the derived totals.
func PDF(items []model.LineItem) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(12).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)
	addReportHeader(m)
	addItemTableHeader(m)
	for _, it := range items {
		addItemRow(m, it)
	}
	addReportSummary(m, pipeline.Aggregate(items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func addReportHeader(m core.Maroto) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Procurement Ledger", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New("Generated "+time.Now().Format("2006-01-02"), props.Text{
					Size:  9,
					Align: align.Center,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
		row.New(4),
	)
}

func addItemTableHeader(m core.Maroto) {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerRight := headerText
	headerRight.Align = align.Right
	headerCell := props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}

	m.AddRows(
		row.New(8).Add(
			col.New(2).Add(text.New("ID", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Description", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Event Phase", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Type", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Projected Cost", headerRight)).WithStyle(&headerCell),
		),
	)
}

func addItemRow(m core.Maroto, it model.LineItem) {
	baseText := props.Text{Size: 7, Align: align.Left}
	if it.IsRollup() {
		baseText.Style = fontstyle.Bold
	}
	rightText := baseText
	rightText.Align = align.Right

	var cellStyle *props.Cell
	if it.IsRollup() {
		cellStyle = &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	}

	colID := col.New(2).Add(text.New(it.ID, baseText))
	colDesc := col.New(4).Add(text.New(it.Description, baseText))
	colPhase := col.New(2).Add(text.New(it.Event, baseText))
	colType := col.New(2).Add(text.New(it.Type, baseText))
	colCost := col.New(2).Add(text.New(cli.FormatCost(it.Cost), rightText))
	if cellStyle != nil {
		colID = colID.WithStyle(cellStyle)
		colDesc = colDesc.WithStyle(cellStyle)
		colPhase = colPhase.WithStyle(cellStyle)
		colType = colType.WithStyle(cellStyle)
		colCost = colCost.WithStyle(cellStyle)
	}
	m.AddRows(row.New(6).Add(colID, colDesc, colPhase, colType, colCost))
}

func addReportSummary(m core.Maroto, metrics model.BudgetMetrics) {
	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}

	m.AddRows(
		row.New(6),
		row.New(8).Add(
			col.New(8).Add(text.New("Total Confirmed Budget", labelStyle)).WithStyle(summaryCell),
			col.New(4).Add(text.New(cli.FormatNaira(metrics.TotalConfirmed), valueStyle)).WithStyle(summaryCell),
		),
		row.New(8).Add(
			col.New(8).Add(text.New("Unpriced Items", labelStyle)).WithStyle(summaryCell),
			col.New(4).Add(text.New(fmt.Sprintf("%d", len(metrics.UnpricedItems)), valueStyle)).WithStyle(summaryCell),
		),
	)
	for _, pc := range metrics.TopGroupings {
		m.AddRows(
			row.New(7).Add(
				col.New(8).Add(text.New(pc.Phase, props.Text{Size: 8, Align: align.Right})),
				col.New(4).Add(text.New(cli.FormatNaira(pc.Total), props.Text{Size: 8, Align: align.Right})),
			),
		)
	}
}
