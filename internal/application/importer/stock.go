// Package importer contiene los extractores posicionales: funciones puras
// que convierten una tabla parseada en registros tipados. Los archivos de
// origen no traen etiquetas por campo en la zona de datos, así que cada
// extractor fija un contrato de filas y columnas que debe conservarse
// bit a bit; no inferir un esquema "más inteligente".
package importer

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/comexa/stock-control-api/internal/domain/entity"
)

// Contrato del archivo de stock: dos bandas de filas, cada una con tres
// bloques de columnas (dispositivo, modelo, cantidad) lado a lado.
const (
	stockRowStartTop    = 10 // banda superior: filas [10, 38)
	stockRowEndTop      = 38
	stockRowStartBottom = 39 // banda inferior: filas [39, fin)
)

// stockBlock un bloque columna-triple dentro de una banda.
type stockBlock struct {
	rowStart int
	rowEnd   int // -1 = hasta el final del archivo
	cols     [3]int
	category string
}

var stockBlocks = []stockBlock{
	{stockRowStartTop, stockRowEndTop, [3]int{1, 2, 3}, entity.CategoriaAlarmas},
	{stockRowStartTop, stockRowEndTop, [3]int{5, 6, 7}, entity.CategoriaCCTV},
	{stockRowStartTop, stockRowEndTop, [3]int{9, 10, 11}, entity.CategoriaAcceso},
	{stockRowStartBottom, -1, [3]int{1, 2, 3}, entity.CategoriaMiscelaneos},
	{stockRowStartBottom, -1, [3]int{5, 6, 7}, entity.CategoriaCableado},
	{stockRowStartBottom, -1, [3]int{9, 10, 11}, entity.CategoriaFuentes},
}

// ExtractStock extrae las líneas de stock de una tabla, asignándolas al
// dueño dado. Los duplicados dispositivo+modelo de un mismo archivo se
// emiten como líneas separadas: la fusión ocurre al entrar al libro, no aquí.
func ExtractStock(rows [][]string, owner string) []entity.StockLine {
	var lines []entity.StockLine
	for _, block := range stockBlocks {
		lines = append(lines, extractStockBlock(rows, block, owner)...)
	}
	return lines
}

func extractStockBlock(rows [][]string, block stockBlock, owner string) []entity.StockLine {
	limit := len(rows)
	if block.rowEnd >= 0 && block.rowEnd < limit {
		limit = block.rowEnd
	}

	var lines []entity.StockLine
	for i := block.rowStart; i < limit; i++ {
		row := rows[i]
		if len(row) <= block.cols[2] {
			continue
		}
		device := row[block.cols[0]]
		model := row[block.cols[1]]
		qtyStr := row[block.cols[2]]

		// Equivalente al dropna del script original: celdas vacías, "0" y
		// "nan" en la columna de dispositivo son relleno, no datos.
		if device == "" || device == "0" || strings.EqualFold(device, "nan") {
			continue
		}
		quantity, _ := strconv.Atoi(qtyStr) // no numérico -> 0
		if quantity <= 0 {
			continue
		}
		if model == "" {
			model = "N/A"
		}
		lines = append(lines, entity.StockLine{
			ID:       uuid.New().String(),
			Category: block.category,
			Device:   device,
			Model:    model,
			Quantity: quantity,
			Owner:    owner,
		})
	}
	return lines
}
