package ownership_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comexa/stock-control-api/internal/domain/ownership"
)

func TestResolve_RedirigeJuniorASupervisor(t *testing.T) {
	r := ownership.NewResolver(nil)

	assert.Equal(t, "JULIO FERNANDO BARROSO CHAN", r.Resolve("MAURO ISRAEL GUTIÉRREZ HEREDIA"))
	assert.Equal(t, "JULIO FERNANDO BARROSO CHAN", r.Resolve("ANGEL FERNANDO MOO MONTEJO"))
	assert.True(t, r.Redirected("ALEX ROBERTO HOIL PUCH"))
}

func TestResolve_NombreSinRedireccionPasaIgual(t *testing.T) {
	r := ownership.NewResolver(nil)

	assert.Equal(t, "EJECUTOR", r.Resolve("EJECUTOR"))
	assert.Equal(t, "JUAN PEREZ", r.Resolve("JUAN PEREZ"))
	assert.False(t, r.Redirected("JUAN PEREZ"))
}

// Resolve(Resolve(x)) == Resolve(x): los supervisores no son claves de la
// tabla, así que la resolución nunca encadena.
func TestResolve_Idempotente(t *testing.T) {
	r := ownership.NewResolver(nil)

	for junior := range ownership.DefaultOverrides {
		efectivo := r.Resolve(junior)
		assert.Equal(t, efectivo, r.Resolve(efectivo), "resolver %q dos veces debe ser estable", junior)
	}
}

func TestResolve_TablaPersonalizada(t *testing.T) {
	r := ownership.NewResolver(map[string]string{"A": "B"})

	assert.Equal(t, "B", r.Resolve("A"))
	// Con tabla propia, las claves por defecto dejan de aplicar
	assert.Equal(t, "MAURO ISRAEL GUTIÉRREZ HEREDIA", r.Resolve("MAURO ISRAEL GUTIÉRREZ HEREDIA"))
}
