package entity

// Tipos de técnico.
const (
	TecnicoNomina   = "NOMINA"   // personal de campo en nómina (IDC)
	TecnicoEjecutor = "EJECUTOR" // personal del pool general
)

// Technician es una persona que puede poseer stock y/o registrar
// instalaciones. El nombre normalizado (mayúsculas, sin espacios en los
// extremos) actúa como clave natural en el libro de inventario; el ID opaco
// solo se usa para referencias desde la UI.
type Technician struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}
