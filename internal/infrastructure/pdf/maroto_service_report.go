// Package pdf implementa la versión imprimible de un registro de servicio
// (instalación, transferencia o ingreso directo) para entrega al cliente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: COMEXA + título           │  Folio + fechas         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SERVICIO: identificadores de ticket / técnico responsable   │
//	│  SUCURSAL: nombre + SIRH + región                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Dispositivo | Modelo | Cantidad | Tipo de uso        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  GARANTÍA: aplicada sí/no + motivo                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/comexa/stock-control-api/internal/application/ports"
	"github.com/comexa/stock-control-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoServiceReport implementa ServiceReportPDFGenerator usando Maroto v2.
type MarotoServiceReport struct{}

// NewMarotoServiceReport construye el generador.
func NewMarotoServiceReport() *MarotoServiceReport { return &MarotoServiceReport{} }

var _ ports.ServiceReportPDFGenerator = (*MarotoServiceReport)(nil)

// GenerateServiceReport genera el PDF del registro y devuelve sus bytes.
func (g *MarotoServiceReport) GenerateServiceReport(_ context.Context, log *entity.InstallationLog) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Registro de Servicio COMEXA", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(log))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(serviceRow(log))
	m.AddRows(branchRow(log))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(log.ItemsUsed) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(warrantyRow(log))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: identidad (izq) y folio + fechas (der).
func headerRow(log *entity.InstallationLog) core.Row {
	folio := log.FolioComexa
	if folio == "" {
		folio = "-"
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New("COMEXA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Registro de servicio", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FOLIO "+folio, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Registro: "+log.ReportDate, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
			text.New("Atención: "+log.InstallationDate, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// serviceRow: identificadores de ticket y técnico responsable.
func serviceRow(log *entity.InstallationLog) core.Row {
	ticket := ""
	switch {
	case log.Sctask != "":
		ticket = fmt.Sprintf("SCTASK: %s   REQ: %s", log.Sctask, log.Reqo)
	case log.Sbo != "":
		ticket = "SBO: " + log.Sbo
	case log.Ticket != "":
		ticket = "Ticket: " + log.Ticket
	}
	return row.New(12).Add(
		col.New(7).Add(
			text.New(ticket, props.Text{Size: 9, Top: 1}),
			text.New("Responsable: "+log.TechnicianName, props.Text{Size: 9, Top: 6}),
		),
	)
}

// branchRow: sucursal atendida.
func branchRow(log *entity.InstallationLog) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Sucursal: "+log.BranchName, props.Text{Size: 9, Top: 1}),
			text.New(fmt.Sprintf("SIRH: %s   Región: %s", log.BranchSirh, log.BranchRegion), props.Text{
				Size: 8, Top: 6, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(5).Add(text.New("Dispositivo", header)),
		col.New(3).Add(text.New("Modelo", header)),
		col.New(1).Add(text.New("Cant.", header)),
		col.New(3).Add(text.New("Tipo de uso", header)),
	)
}

func tableItemRows(items []entity.UsedItem) []core.Row {
	cell := props.Text{Size: 9, Top: 1}
	rows := make([]core.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, row.New(6).Add(
			col.New(5).Add(text.New(item.Device, cell)),
			col.New(3).Add(text.New(item.Model, cell)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", item.Quantity), cell)),
			col.New(3).Add(text.New(item.UsageType, cell)),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, row.New(6).Add(
			col.New(12).Add(text.New("Sin detalle de materiales", props.Text{
				Size: 9, Top: 1, Color: colorGray,
			})),
		))
	}
	return rows
}

func warrantyRow(log *entity.InstallationLog) core.Row {
	applied := "NO"
	if log.WarrantyApplied {
		applied = "SÍ"
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Garantía aplicada: "+applied, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
			text.New("Motivo: "+log.WarrantyReason, props.Text{Size: 9, Top: 6}),
		),
	)
}
