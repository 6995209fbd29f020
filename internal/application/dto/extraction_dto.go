package dto

// Clasificación gruesa de items que devuelve el oráculo.
const (
	ExtraccionMaterial = "Material o refacción"
	ExtraccionEquipo   = "Equipo instalado"
)

// ExtractedItem un material detectado por el oráculo en el reporte.
type ExtractedItem struct {
	DeviceName   string `json:"device_name"`
	Quantity     int    `json:"quantity"`
	ItemCategory string `json:"item_category"`
}

// ExtractedReport es la respuesta best-effort del oráculo de extracción.
// Todos los campos son opcionales; el oráculo deja vacío lo que no encuentra.
type ExtractedReport struct {
	Sctask           string          `json:"sctask"`
	Reqo             string          `json:"reqo"`
	FolioComexa      string          `json:"folio_comexa"`
	TechnicianName   string          `json:"technician_name"`
	BranchIdentifier string          `json:"branch_identifier"`
	ReportDate       string          `json:"report_date"`
	InstallationDate string          `json:"installation_date"`
	Items            []ExtractedItem `json:"items"`
}

// PrefillItem una línea de stock sugerida para el formulario de instalación.
type PrefillItem struct {
	LineID    string `json:"lineId"`
	Device    string `json:"device"`
	Model     string `json:"model"`
	Quantity  int    `json:"quantity"`
	UsageType string `json:"usageType"`
}

// InstallationPrefill es la sugerencia de pre-llenado construida a partir del
// reporte extraído, con los identificadores ya cruzados contra técnicos,
// sucursales y stock cargados. Nunca se aplica sola: el operador confirma.
type InstallationPrefill struct {
	Sctask           string        `json:"sctask,omitempty"`
	Reqo             string        `json:"reqo,omitempty"`
	FolioComexa      string        `json:"folioComexa,omitempty"`
	ReportDate       string        `json:"reportDate,omitempty"`
	InstallationDate string        `json:"installationDate,omitempty"`
	TechnicianID     string        `json:"technicianId,omitempty"`
	BranchID         string        `json:"branchId,omitempty"`
	BranchSearch     string        `json:"branchSearch,omitempty"`
	Items            []PrefillItem `json:"items"`
}
