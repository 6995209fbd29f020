package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeForMatch(t *testing.T) {
	assert.Equal(t, "GUTIERREZ", normalizeForMatch(" Gutiérrez "))
	assert.Equal(t, "MERIDA CENTRO", normalizeForMatch("mérida centro"))
	assert.Equal(t, "", normalizeForMatch("   "))
}

func TestMatchPersonName(t *testing.T) {
	roster := normalizeForMatch("MAURO ISRAEL GUTIÉRREZ HEREDIA")

	assert.True(t, matchPersonName(roster, normalizeForMatch("mauro israel gutierrez heredia")))
	assert.True(t, matchPersonName(roster, normalizeForMatch("MAURO GUTIERREZ"))) // nombre parcial
	assert.True(t, matchPersonName(roster, normalizeForMatch("GUTIÉRREZ HEREDIA")))
	assert.False(t, matchPersonName(roster, normalizeForMatch("PEDRO CANCHE")))
	assert.False(t, matchPersonName(roster, ""))
}

func TestMatchTokens(t *testing.T) {
	assert.True(t, matchTokens("detector de humo marca X", "DETECTOR DE HUMO"))
	assert.True(t, matchTokens("contacto magnetico", "CONTACTO MAGNÉTICO"))
	// los tokens cortos ("de", "dmp") no bastan por sí solos
	assert.False(t, matchTokens("de dmp", "TECLADO DMP"))
	assert.False(t, matchTokens("sirena", "DETECTOR DE HUMO"))
}
