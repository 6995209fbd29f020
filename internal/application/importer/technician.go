package importer

import (
	"fmt"
	"strings"

	"github.com/comexa/stock-control-api/internal/domain/entity"
)

// ExtractTechnicians extrae el plantel de técnicos de una tabla con fila de
// encabezado. La columna de nombre se localiza por substring del encabezado
// ("IDC" o "NOMBRE"); la de tipo es opcional ("TIPO", "ROL" o "CATEGORIA").
// Sin columna de nombre devuelve lista vacía: formato no reconocido, mejor
// que adivinar.
func ExtractTechnicians(rows [][]string) []entity.Technician {
	if len(rows) == 0 {
		return nil
	}

	nameCol, typeCol := -1, -1
	for i, h := range rows[0] {
		upper := strings.ToUpper(h)
		if nameCol < 0 && (strings.Contains(upper, "IDC") || strings.Contains(upper, "NOMBRE")) {
			nameCol = i
		}
		if typeCol < 0 && (strings.Contains(upper, "TIPO") || strings.Contains(upper, "ROL") || strings.Contains(upper, "CATEGORIA")) {
			typeCol = i
		}
	}
	if nameCol < 0 {
		return nil
	}

	var techs []entity.Technician
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) <= nameCol {
			continue
		}
		name := strings.TrimSpace(strings.ReplaceAll(row[nameCol], `"`, ""))
		if name == "" {
			continue
		}

		techType := entity.TecnicoNomina
		if typeCol >= 0 && len(row) > typeCol &&
			strings.Contains(strings.ToUpper(row[typeCol]), "EJECUTOR") {
			techType = entity.TecnicoEjecutor
		}

		techs = append(techs, entity.Technician{
			ID:   fmt.Sprintf("tech-%d", i),
			Name: name,
			Type: techType,
		})
	}
	return techs
}
