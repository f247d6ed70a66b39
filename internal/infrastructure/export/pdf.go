package export

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

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// WorkOrderLogPDF genera el histórico de órdenes de trabajo en A4: una
// cabecera por orden y una fila por línea de consumo.
func WorkOrderLogPDF(orders []*entity.WorkOrder) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Histórico de órdenes de trabajo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, wo := range orders {
		m.AddRows(orderHeaderRow(wo))
		for _, l := range wo.Lines {
			m.AddRows(lineRow(l))
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("export: generar pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("HISTÓRICO DE ÓRDENES DE TRABAJO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// orderHeaderRow: nombre + estado (izq) y fecha (der).
func orderHeaderRow(wo *entity.WorkOrder) core.Row {
	statusColor := colorPrimary
	if wo.Status == entity.WorkOrderStatusFailed {
		statusColor = &props.Color{Red: 170, Green: 30, Blue: 30}
	}
	return row.New(10).Add(
		col.New(6).Add(
			text.New(wo.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 2}),
		),
		col.New(3).Add(
			text.New(wo.Status, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Center,
				Color: statusColor, Top: 2,
			}),
		),
		col.New(3).Add(
			text.New(wo.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// lineRow: una fila por línea de consumo.
func lineRow(l *entity.ConsumptionLine) core.Row {
	return row.New(6).Add(
		col.New(1),
		col.New(8).Add(
			text.New(l.MaterialName, props.Text{Size: 8, Top: 1, Left: 1}),
		),
		col.New(3).Add(
			text.New(l.QuantityUsed.String(), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			}),
		),
	)
}
