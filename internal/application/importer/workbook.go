package importer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/comexa/stock-control-api/pkg/tabular"
)

// FileToRows convierte el contenido de un archivo subido en una tabla de
// celdas. Los libros de Excel (.xlsx/.xlsm) se leen con la primera hoja;
// cualquier otro contenido se trata como texto delimitado por comas.
func FileToRows(filename string, data []byte) ([][]string, error) {
	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xlsm") || strings.HasSuffix(lower, ".xls") {
		return workbookFirstSheetRows(data)
	}
	return tabular.Parse(string(data)), nil
}

func workbookFirstSheetRows(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("abrir libro de Excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("el libro no tiene hojas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheets[0], err)
	}
	// Recortar espacios celda a celda, igual que el parser de texto
	for i := range rows {
		for j := range rows[i] {
			rows[i][j] = strings.TrimSpace(rows[i][j])
		}
	}
	return rows, nil
}
