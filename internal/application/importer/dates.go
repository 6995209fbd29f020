package importer

import (
	"fmt"
	"regexp"
	"strconv"
)

var dmyDate = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)

// NormalizeDate convierte fechas DD/MM/YYYY o DD-MM-YYYY a YYYY-MM-DD.
// Las fechas ya en ISO pasan sin cambios; los formatos no reconocidos se
// devuelven tal cual (mejor esfuerzo, no es un fallo duro del importador).
func NormalizeDate(s string) string {
	m := dmyDate.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
