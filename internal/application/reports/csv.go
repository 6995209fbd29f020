// Package reports genera los reportes exportables en CSV. Los archivos van
// prefijados con BOM UTF-8 para que las hojas de cálculo detecten la
// codificación (sin BOM, los acentos del contenido salen rotos en Excel).
package reports

import (
	"fmt"
	"strings"

	"github.com/comexa/stock-control-api/internal/application/dto"
	"github.com/comexa/stock-control-api/internal/domain/entity"
)

const utf8BOM = "\xEF\xBB\xBF"

// quote envuelve un campo de texto en comillas dobles. Los campos numéricos
// van sin comillas para que la hoja de cálculo los trate como números.
func quote(s string) string {
	return `"` + s + `"`
}

func writeRow(b *strings.Builder, cells ...string) {
	b.WriteString(strings.Join(cells, ","))
	b.WriteString("\n")
}

// InventoryCSV genera el reporte de inventario: una fila por línea de stock.
func InventoryCSV(lines []entity.StockLine) []byte {
	var b strings.Builder
	b.WriteString(utf8BOM)
	writeRow(&b, quote("CATEGORIA"), quote("DISPOSITIVO"), quote("MODELO"), "CANTIDAD", quote("DUEÑO"))
	for _, line := range lines {
		writeRow(&b,
			quote(line.Category),
			quote(line.Device),
			quote(line.Model),
			fmt.Sprintf("%d", line.Quantity),
			quote(line.Owner),
		)
	}
	return []byte(b.String())
}

// HistoryCSV genera el reporte del historial: una fila por item usado, o una
// fila sin detalle de items para registros importados masivamente.
func HistoryCSV(logs []entity.InstallationLog) []byte {
	var b strings.Builder
	b.WriteString(utf8BOM)
	writeRow(&b,
		quote("TICKET"), quote("FOLIO COMEXA"), quote("TECNICO"),
		quote("SUCURSAL"), quote("SIRH"), quote("REGION"),
		quote("FECHA REGISTRO"), quote("FECHA ATENCION"),
		quote("GARANTIA"), quote("MOTIVO GARANTIA"),
		quote("DISPOSITIVO"), quote("MODELO"), "CANTIDAD", quote("TIPO DE USO"),
	)
	for _, log := range logs {
		warranty := "NO"
		if log.WarrantyApplied {
			warranty = "SI"
		}
		base := []string{
			quote(ticketOf(log)), quote(log.FolioComexa), quote(log.TechnicianName),
			quote(log.BranchName), quote(log.BranchSirh), quote(log.BranchRegion),
			quote(log.ReportDate), quote(log.InstallationDate),
			quote(warranty), quote(log.WarrantyReason),
		}
		if len(log.ItemsUsed) == 0 {
			writeRow(&b, append(base, quote(""), quote(""), "0", quote(""))...)
			continue
		}
		for _, item := range log.ItemsUsed {
			writeRow(&b, append(base,
				quote(item.Device), quote(item.Model),
				fmt.Sprintf("%d", item.Quantity), quote(item.UsageType))...)
		}
	}
	return []byte(b.String())
}

// ticketOf devuelve el identificador de ticket poblado del registro; las
// familias son excluyentes por cliente, así que a lo sumo una está presente.
func ticketOf(log entity.InstallationLog) string {
	switch {
	case log.Sctask != "":
		return log.Sctask
	case log.Sbo != "":
		return log.Sbo
	case log.Ticket != "":
		return log.Ticket
	}
	return ""
}

// SummaryCSV genera el resumen ejecutivo del tablero.
func SummaryCSV(summary *dto.DashboardSummary) []byte {
	var b strings.Builder
	b.WriteString(utf8BOM)
	writeRow(&b, quote("CONCEPTO"), "VALOR")
	writeRow(&b, quote("Unidades en existencia"), fmt.Sprintf("%d", summary.TotalUnits))
	writeRow(&b, quote("Líneas de stock"), fmt.Sprintf("%d", summary.TotalLines))
	writeRow(&b, quote("Técnicos"), fmt.Sprintf("%d", summary.Technicians))
	writeRow(&b, quote("Sucursales"), fmt.Sprintf("%d", summary.Branches))
	writeRow(&b, quote("Servicios registrados"), fmt.Sprintf("%d", summary.Installations))
	writeRow(&b)
	writeRow(&b, quote("CATEGORIA"), "UNIDADES")
	for _, c := range summary.ByCategory {
		writeRow(&b, quote(c.Category), fmt.Sprintf("%d", c.Units))
	}
	writeRow(&b)
	writeRow(&b, quote("DUEÑO"), "UNIDADES")
	for _, o := range summary.ByOwner {
		writeRow(&b, quote(o.Owner), fmt.Sprintf("%d", o.Units))
	}
	return []byte(b.String())
}
