package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizeForMatch prepara un texto para comparación difusa: mayúsculas,
// sin acentos y sin espacios en los extremos. Los reportes escaneados y los
// archivos importados rara vez coinciden en acentuación ("GUTIERREZ" vs
// "GUTIÉRREZ"), así que toda comparación difusa pasa por aquí.
func normalizeForMatch(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}
	return strings.ToUpper(strings.TrimSpace(plain))
}

// containsEitherWay indica si alguno de los dos textos normalizados contiene
// al otro. Cubre tanto "nombre corto en el reporte, nombre completo en el
// plantel" como el caso inverso.
func containsEitherWay(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// matchPersonName cruza un nombre extraído contra uno del plantel, ambos ya
// normalizados. Acepta contención en cualquier dirección y también el caso
// de nombre parcial ("MAURO GUTIERREZ" contra "MAURO ISRAEL GUTIERREZ
// HEREDIA"): todos los tokens significativos del extraído presentes en el
// del plantel.
func matchPersonName(roster, extracted string) bool {
	if containsEitherWay(roster, extracted) {
		return true
	}
	matched := false
	for _, token := range strings.Fields(extracted) {
		if len(token) <= 3 {
			continue
		}
		if !strings.Contains(roster, token) {
			return false
		}
		matched = true
	}
	return matched
}

// matchTokens indica si algún token significativo (más de 3 caracteres) de
// la consulta aparece en el candidato. Es el criterio de cruce entre los
// nombres libres que devuelve el oráculo y los dispositivos del libro.
func matchTokens(query, candidate string) bool {
	candidate = normalizeForMatch(candidate)
	for _, token := range strings.Fields(normalizeForMatch(query)) {
		if len(token) > 3 && strings.Contains(candidate, token) {
			return true
		}
	}
	return false
}
