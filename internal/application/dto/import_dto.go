package dto

// UploadedFile contenido crudo de un archivo subido por el operador.
type UploadedFile struct {
	Name string
	Data []byte
}

// AddTechnicianRequest alta manual de un técnico.
type AddTechnicianRequest struct {
	Name string `json:"name"`
	Type string `json:"type"` // NOMINA | EJECUTOR
}

// ImportSummary resumen genérico de una importación de archivos.
type ImportSummary struct {
	Files    int      `json:"files"`
	Imported int      `json:"imported"`
	Warnings []string `json:"warnings,omitempty"`
}

// CatalogImportSummary resumen de importación del catálogo de dispositivos.
type CatalogImportSummary struct {
	Clients  []string `json:"clients"`
	Imported int      `json:"imported"`
}
