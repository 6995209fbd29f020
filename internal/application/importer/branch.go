package importer

import (
	"fmt"
	"strings"

	"github.com/comexa/stock-control-api/internal/domain/entity"
)

// ExtractBranches extrae el directorio de sucursales. A diferencia del
// plantel de técnicos, aquí no hay descubrimiento por encabezado: el formato
// es posicional, columnas 0..4 = cliente, SIRH, tipo, nombre, región (la
// región es opcional). La fila 0 se salta como encabezado y las filas con
// menos de 4 columnas se ignoran.
//
// Los IDs derivados de fila ("branch-N") se repiten entre archivos; hacer
// únicos los IDs al fusionar varios archivos es responsabilidad del caller,
// porque el extractor procesa un archivo a la vez.
func ExtractBranches(rows [][]string) []entity.Branch {
	var branches []entity.Branch
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 4 {
			continue
		}
		region := entity.RegionSinAsignar
		if len(row) > 4 && cleanCell(row[4]) != "" {
			region = cleanCell(row[4])
		}
		branches = append(branches, entity.Branch{
			ID:     fmt.Sprintf("branch-%d", i),
			Client: cleanCell(row[0]),
			Sirh:   cleanCell(row[1]),
			Type:   cleanCell(row[2]),
			Name:   cleanCell(row[3]),
			Region: region,
		})
	}
	return branches
}

func cleanCell(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}
