package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comexa/stock-control-api/internal/domain/entity"
	"github.com/comexa/stock-control-api/internal/domain/inventory"
)

// Abonos repetidos sobre la misma tupla (owner, device, model, category)
// deben colapsar en una sola línea cuya cantidad es la suma de los abonos.
func TestCredit_FusionaEnUnaSolaLinea(t *testing.T) {
	l := inventory.NewLedger(nil)

	id1 := l.Credit("JULIO FERNANDO BARROSO CHAN", "CÁMARA IP INT.", "QND-6082R", entity.CategoriaCCTV, 3)
	id2 := l.Credit("JULIO FERNANDO BARROSO CHAN", "CÁMARA IP INT.", "QND-6082R", entity.CategoriaCCTV, 2)
	id3 := l.Credit("JULIO FERNANDO BARROSO CHAN", "CÁMARA IP INT.", "QND-6082R", entity.CategoriaCCTV, 5)

	assert.Equal(t, id1, id2)
	assert.Equal(t, id1, id3)

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 10, lines[0].Quantity)
}

// La clave de coincidencia es sensible a mayúsculas: una variación de caso
// crea una línea paralela. Comportamiento heredado, documentado y fijado aquí.
func TestCredit_ClaveSensibleAMayusculas(t *testing.T) {
	l := inventory.NewLedger(nil)

	l.Credit("EJECUTOR", "Cámara IP", "QND-6082R", entity.CategoriaCCTV, 1)
	l.Credit("EJECUTOR", "CÁMARA IP", "QND-6082R", entity.CategoriaCCTV, 1)

	assert.Len(t, l.Lines(), 2)
}

func TestCredit_DistintoDuenoCreaOtraLinea(t *testing.T) {
	l := inventory.NewLedger(nil)

	l.Credit("EJECUTOR", "TECLADO DMP", "7060W", entity.CategoriaAlarmas, 4)
	l.Credit("JULIO FERNANDO BARROSO CHAN", "TECLADO DMP", "7060W", entity.CategoriaAlarmas, 4)

	assert.Len(t, l.Lines(), 2)
}

// Un cargo mayor que la cantidad disponible se recorta: la línea queda en 0
// exacto y el valor devuelto es la cantidad previa, nunca la solicitada.
func TestDebit_NuncaNegativo(t *testing.T) {
	l := inventory.NewLedger(nil)
	id := l.Credit("EJECUTOR", "DETECTOR DE HUMO", "SF119-4(12)", entity.CategoriaAlarmas, 7)

	moved := l.Debit(id, 50)

	assert.Equal(t, 7, moved)
	line := l.FindByID(id)
	require.NotNil(t, line)
	assert.Equal(t, 0, line.Quantity)
}

func TestDebit_Parcial(t *testing.T) {
	l := inventory.NewLedger(nil)
	id := l.Credit("EJECUTOR", "DETECTOR DE HUMO", "SF119-4(12)", entity.CategoriaAlarmas, 10)

	assert.Equal(t, 3, l.Debit(id, 3))
	assert.Equal(t, 7, l.FindByID(id).Quantity)
}

func TestDebit_LineaInexistente(t *testing.T) {
	l := inventory.NewLedger(nil)
	assert.Equal(t, 0, l.Debit("no-existe", 5))
}

// Una línea en 0 no se purga del libro: queda visible en el historial.
func TestDebit_LineaEnCeroPermanece(t *testing.T) {
	l := inventory.NewLedger(nil)
	id := l.Credit("EJECUTOR", "SIRENA", "VARIOS", entity.CategoriaAlarmas, 2)

	l.Debit(id, 2)

	assert.Len(t, l.Lines(), 1)
	assert.Equal(t, 0, l.Lines()[0].Quantity)
}

// Reemplazo masivo por dueño: borra lo previo de ese dueño, inserta lo nuevo
// tal cual, y no toca las líneas de otros dueños.
func TestReplaceForOwner(t *testing.T) {
	l := inventory.NewLedger([]entity.StockLine{
		{ID: "a", Owner: "PEDRO", Device: "SIRENA", Model: "VARIOS", Category: entity.CategoriaAlarmas, Quantity: 1},
		{ID: "b", Owner: "PEDRO", Device: "TECLADO DMP", Model: "7060W", Category: entity.CategoriaAlarmas, Quantity: 2},
		{ID: "c", Owner: "EJECUTOR", Device: "SIRENA", Model: "VARIOS", Category: entity.CategoriaAlarmas, Quantity: 9},
	})

	l.ReplaceForOwner("PEDRO", []entity.StockLine{
		{ID: "d", Owner: "PEDRO", Device: "PATCHCORD", Model: "N/A", Category: entity.CategoriaCCTV, Quantity: 5},
	})

	lines := l.Lines()
	require.Len(t, lines, 2)

	pedro := l.LinesByOwner("PEDRO")
	require.Len(t, pedro, 1)
	assert.Equal(t, "PATCHCORD", pedro[0].Device)

	// El pool EJECUTOR quedó intacto en contenido y cantidad
	ejecutor := l.LinesByOwner("EJECUTOR")
	require.Len(t, ejecutor, 1)
	assert.Equal(t, "c", ejecutor[0].ID)
	assert.Equal(t, 9, ejecutor[0].Quantity)
}

func TestTotalFor(t *testing.T) {
	l := inventory.NewLedger(nil)
	l.Credit("A", "CABLE UTP CAT 6 (ML)", "ML", entity.CategoriaCableado, 100)
	l.Credit("B", "CABLE UTP CAT 6 (ML)", "ML", entity.CategoriaCableado, 50)

	assert.Equal(t, 150, l.TotalFor("CABLE UTP CAT 6 (ML)", "ML"))
}
