package entity

// OwnerEjecutor es el dueño centinela del pool compartido de ejecutores.
// El stock bajo este dueño está disponible para cualquier técnico.
const OwnerEjecutor = "EJECUTOR"

// Categorías de stock según las bandas del formato de archivo del almacén.
const (
	CategoriaAlarmas     = "ALARMAS"
	CategoriaCCTV        = "CCTV"
	CategoriaAcceso      = "CONTROL DE ACCESO"
	CategoriaMiscelaneos = "MISCELANEOS"
	CategoriaCableado    = "CABLEADO & FLEXIBLE"
	CategoriaFuentes     = "FUENTES Y BATERIAS"
)

// StockLine es una línea del libro de inventario: la cantidad de un
// dispositivo/modelo concreto bajo un dueño (técnico o pool EJECUTOR).
//
// La clave de coincidencia del libro es la tupla (Owner, Device, Model,
// Category) con comparación exacta sensible a mayúsculas; una variación de
// mayúsculas entre importaciones crea líneas paralelas. Es una fragilidad
// heredada del formato de origen y se conserva deliberadamente para no
// alterar cómo se fusionan los datos históricos.
type StockLine struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Device   string `json:"device"`
	Model    string `json:"model"` // "N/A" cuando el archivo no trae modelo
	Quantity int    `json:"quantity"`
	Owner    string `json:"owner"`
}

// SameBucket indica si la línea pertenece al mismo cubo de inventario
// (misma clave de coincidencia) que los valores dados.
func (s StockLine) SameBucket(owner, device, model, category string) bool {
	return s.Owner == owner && s.Device == device && s.Model == model && s.Category == category
}
