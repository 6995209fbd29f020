// Package tabular implementa el separador de texto delimitado sobre el que se
// apoyan todos los extractores de archivos. No usa encoding/csv a propósito:
// los exportes de Excel con los que trabaja el almacén traen comillas sueltas
// y filas irregulares que encoding/csv rechaza, y aquí nunca debe fallar un
// parseo completo por una celda mal citada.
//
// Limitación conocida: no se soportan comillas dobles escapadas (""). Una
// comilla sin cerrar consume el resto de la línea como un solo campo.
package tabular

import "strings"

// ParseLine separa una línea en celdas por comas, respetando comas dentro de
// comillas dobles. Las comillas se eliminan del resultado y cada celda se
// recorta de espacios.
func ParseLine(line string) []string {
	var cells []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			cells = append(cells, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	cells = append(cells, strings.TrimSpace(current.String()))
	return cells
}

// Parse separa el contenido en filas y celdas. Acepta terminadores \n y \r\n.
// Las filas vacías se conservan (una celda vacía): los extractores
// posicionales dependen de que los índices de fila del archivo no se muevan.
func Parse(content string) [][]string {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, ParseLine(line))
	}
	return rows
}
