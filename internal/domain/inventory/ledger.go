// Package inventory contiene la lógica pura del libro de inventario:
// fusión de líneas, cargos y abonos. No hace I/O; la persistencia y los
// registros de auditoría son responsabilidad de los casos de uso.
package inventory

import (
	"github.com/google/uuid"

	"github.com/comexa/stock-control-api/internal/domain/entity"
)

// Ledger es el libro de inventario en memoria. El orden de las líneas se
// conserva (las importaciones y la UI dependen de un orden estable).
//
// Invariante: a lo sumo una línea por tupla (owner, device, model, category).
// Las líneas que llegan a cantidad 0 permanecen en el libro para visibilidad
// histórica; solo ReplaceForOwner las retira, y únicamente las del dueño
// reemplazado.
type Ledger struct {
	lines []entity.StockLine
}

// NewLedger construye un libro a partir de líneas existentes (puede ser nil).
func NewLedger(lines []entity.StockLine) *Ledger {
	return &Ledger{lines: lines}
}

// Lines devuelve una copia de las líneas del libro.
func (l *Ledger) Lines() []entity.StockLine {
	out := make([]entity.StockLine, len(l.lines))
	copy(out, l.lines)
	return out
}

// FindByID devuelve un puntero a la línea con ese ID, o nil.
func (l *Ledger) FindByID(id string) *entity.StockLine {
	for i := range l.lines {
		if l.lines[i].ID == id {
			return &l.lines[i]
		}
	}
	return nil
}

// Credit abona qty unidades al cubo (owner, device, model, category):
// si ya existe una línea con esa clave exacta se suma a su cantidad, si no
// se crea una línea nueva con ID fresco. Devuelve el ID de la línea afectada.
func (l *Ledger) Credit(owner, device, model, category string, qty int) string {
	for i := range l.lines {
		if l.lines[i].SameBucket(owner, device, model, category) {
			l.lines[i].Quantity += qty
			return l.lines[i].ID
		}
	}
	line := entity.StockLine{
		ID:       uuid.New().String(),
		Category: category,
		Device:   device,
		Model:    model,
		Quantity: qty,
		Owner:    owner,
	}
	l.lines = append(l.lines, line)
	return line.ID
}

// Debit descuenta hasta qty unidades de la línea indicada y devuelve la
// cantidad realmente descontada: min(qty, cantidad actual). La cantidad
// nunca queda negativa. El caller debe usar el valor devuelto (no el
// solicitado) en cualquier registro de auditoría.
func (l *Ledger) Debit(lineID string, qty int) int {
	line := l.FindByID(lineID)
	if line == nil || qty <= 0 {
		return 0
	}
	moved := qty
	if line.Quantity < moved {
		moved = line.Quantity
	}
	line.Quantity -= moved
	return moved
}

// ReplaceForOwner elimina todas las líneas del dueño y añade las nuevas tal
// cual. Es la semántica de la importación masiva: un archivo recién subido
// es autoritativo para ese dueño; las líneas de otros dueños no se tocan.
func (l *Ledger) ReplaceForOwner(owner string, newLines []entity.StockLine) {
	kept := make([]entity.StockLine, 0, len(l.lines)+len(newLines))
	for _, line := range l.lines {
		if line.Owner != owner {
			kept = append(kept, line)
		}
	}
	l.lines = append(kept, newLines...)
}

// LinesByOwner devuelve las líneas del dueño indicado, en orden.
func (l *Ledger) LinesByOwner(owner string) []entity.StockLine {
	var out []entity.StockLine
	for _, line := range l.lines {
		if line.Owner == owner {
			out = append(out, line)
		}
	}
	return out
}

// TotalFor suma la cantidad de un dispositivo/modelo entre todos los dueños.
func (l *Ledger) TotalFor(device, model string) int {
	total := 0
	for _, line := range l.lines {
		if line.Device == device && line.Model == model {
			total += line.Quantity
		}
	}
	return total
}
