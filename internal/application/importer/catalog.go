package importer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/comexa/stock-control-api/internal/domain/entity"
)

// Tokens de cliente reconocidos en nombres de hoja del libro de catálogo.
var catalogClients = []string{
	entity.ClienteBanamex,
	entity.ClienteSantander,
	entity.ClienteBanregio,
}

// ExtractCatalog extrae el catálogo de dispositivos de un libro de Excel
// multi-hoja. Una hoja es relevante solo si su nombre contiene un token de
// cliente (sin distinguir mayúsculas); el resto se ignora. Columnas 0..2 =
// categoría (MISCELANEOS si está vacía), dispositivo (obligatorio) y modelo
// ("N/A" si falta). Un cliente sin items no aparece en el resultado.
func ExtractCatalog(data []byte) (entity.DeviceCatalog, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("abrir libro de catálogo: %w", err)
	}
	defer f.Close()

	catalog := entity.DeviceCatalog{}
	for _, sheet := range f.GetSheetList() {
		client := clientForSheet(sheet)
		if client == "" {
			continue
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("leer hoja %q: %w", sheet, err)
		}
		items := extractCatalogSheet(rows)
		if len(items) > 0 {
			catalog[client] = append(catalog[client], items...)
		}
	}
	return catalog, nil
}

func clientForSheet(sheetName string) string {
	upper := strings.ToUpper(sheetName)
	for _, client := range catalogClients {
		if strings.Contains(upper, client) {
			return client
		}
	}
	return ""
}

func extractCatalogSheet(rows [][]string) []entity.CatalogItem {
	start := 0
	if len(rows) > 0 && looksLikeCatalogHeader(rows[0]) {
		start = 1
	}

	var items []entity.CatalogItem
	for i := start; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 2 || strings.TrimSpace(row[1]) == "" {
			continue
		}
		category := strings.TrimSpace(row[0])
		if category == "" {
			category = entity.CategoriaMiscelaneos
		}
		model := "N/A"
		if len(row) > 2 && strings.TrimSpace(row[2]) != "" {
			model = strings.TrimSpace(row[2])
		}
		items = append(items, entity.CatalogItem{
			Category: category,
			Device:   strings.TrimSpace(row[1]),
			Model:    model,
		})
	}
	return items
}

// looksLikeCatalogHeader detecta la fila de encabezado opcional: la primera
// o segunda celda menciona "TIPO" o "DISPOSITIVO".
func looksLikeCatalogHeader(row []string) bool {
	for i := 0; i < len(row) && i < 2; i++ {
		upper := strings.ToUpper(row[i])
		if strings.Contains(upper, "TIPO") || strings.Contains(upper, "DISPOSITIVO") {
			return true
		}
	}
	return false
}
