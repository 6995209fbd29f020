package importer

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/comexa/stock-control-api/internal/domain"
	"github.com/comexa/stock-control-api/internal/domain/entity"
)

// ExtractHistory extrae registros históricos del concentrado de servicios.
// Es un formato con encabezado: las columnas se localizan por substring.
// Folio interno y nombre de sucursal son obligatorios; si falta cualquiera
// de los dos devuelve ErrFormatoArchivo para que el caller lo muestre como
// advertencia (nunca se emiten registros parciales).
//
// Los registros importados así no traen detalle de materiales (ItemsUsed
// vacío) y quedan con garantía "no aplica / importación masiva".
func ExtractHistory(rows [][]string) ([]entity.InstallationLog, error) {
	if len(rows) == 0 {
		return nil, domain.ErrFormatoArchivo
	}

	cols := struct {
		ticket, folio, sirh, name, region, reportDate, attentionDate, tech int
	}{-1, -1, -1, -1, -1, -1, -1, -1}

	for i, h := range rows[0] {
		upper := strings.ToUpper(h)
		switch {
		case cols.ticket < 0 && (strings.Contains(upper, "SCTASK") || strings.Contains(upper, "TICKET") || strings.Contains(upper, "INCIDENTE")):
			cols.ticket = i
		case cols.folio < 0 && strings.Contains(upper, "FOLIO"):
			cols.folio = i
		case cols.sirh < 0 && strings.Contains(upper, "SIRH"):
			cols.sirh = i
		case cols.name < 0 && (strings.Contains(upper, "SUCURSAL") || strings.Contains(upper, "INMUEBLE")):
			cols.name = i
		case cols.region < 0 && strings.Contains(upper, "REGION"):
			cols.region = i
		case cols.reportDate < 0 && strings.Contains(upper, "REGISTRO"):
			cols.reportDate = i
		case cols.attentionDate < 0 && (strings.Contains(upper, "ATENCION") || strings.Contains(upper, "ATENCIÓN")):
			cols.attentionDate = i
		case cols.tech < 0 && (strings.Contains(upper, "RESPONSABLE") || strings.Contains(upper, "TECNICO") || strings.Contains(upper, "TÉCNICO")):
			cols.tech = i
		}
	}
	if cols.folio < 0 || cols.name < 0 {
		return nil, domain.ErrFormatoArchivo
	}

	cell := func(row []string, idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var logs []entity.InstallationLog
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		folio := cell(row, cols.folio)
		branchName := cell(row, cols.name)
		if folio == "" && branchName == "" {
			continue
		}
		logs = append(logs, entity.InstallationLog{
			ID:               fmt.Sprintf("hist-%s", uuid.New().String()),
			Sctask:           cell(row, cols.ticket),
			FolioComexa:      folio,
			TechnicianName:   cell(row, cols.tech),
			ReportDate:       NormalizeDate(cell(row, cols.reportDate)),
			InstallationDate: NormalizeDate(cell(row, cols.attentionDate)),
			BranchName:       branchName,
			BranchSirh:       cell(row, cols.sirh),
			BranchRegion:     cell(row, cols.region),
			WarrantyApplied:  false,
			WarrantyReason:   "No aplica / Importación masiva",
			ItemsUsed:        []entity.UsedItem{},
		})
	}
	return logs, nil
}
