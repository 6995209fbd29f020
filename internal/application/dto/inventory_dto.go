package dto

// StockImportResult resumen de una importación masiva de stock.
type StockImportResult struct {
	NominalOwner   string `json:"nominalOwner"`
	EffectiveOwner string `json:"effectiveOwner"`
	Redirected     bool   `json:"redirected"`
	Files          int    `json:"files"`
	LinesImported  int    `json:"linesImported"`
}

// TransferItemRequest una línea a mover en una transferencia.
type TransferItemRequest struct {
	LineID   string `json:"lineId"`
	Quantity int    `json:"quantity"`
}

// TransferRequest transferencia de stock entre dos dueños nominales.
type TransferRequest struct {
	SourceOwner string                `json:"sourceOwner"`
	DestOwner   string                `json:"destOwner"`
	Items       []TransferItemRequest `json:"items"`
}

// TransferResult resumen de la transferencia aplicada.
type TransferResult struct {
	EffectiveDestOwner string `json:"effectiveDestOwner"`
	Redirected         bool   `json:"redirected"`
	ItemsMoved         int    `json:"itemsMoved"`
	ItemsSkipped       int    `json:"itemsSkipped"`
	LogID              string `json:"logId"`
}

// DirectAddRequest alta directa de material (compra/solicitud) para un técnico.
type DirectAddRequest struct {
	TechnicianID string `json:"technicianId"`
	Category     string `json:"category"`
	Device       string `json:"device"`
	Model        string `json:"model"`
	Quantity     int    `json:"quantity"`
}

// DirectAddResult resumen del alta directa.
type DirectAddResult struct {
	TargetOwner string `json:"targetOwner"`
	Redirected  bool   `json:"redirected"`
	LogID       string `json:"logId"`
}

// ConsumeItemRequest una línea de stock a consumir en una instalación.
type ConsumeItemRequest struct {
	LineID    string `json:"lineId"`
	Quantity  int    `json:"quantity"`
	UsageType string `json:"usageType"`
}

// InstallationRequest registro de una instalación que consume stock.
// WarrantyApplied es puntero a propósito: la decisión de garantía debe venir
// explícita (true o false); ausente es error de validación.
type InstallationRequest struct {
	TechnicianID     string               `json:"technicianId"`
	BranchID         string               `json:"branchId"`
	Sctask           string               `json:"sctask"`
	Reqo             string               `json:"reqo"`
	Sbo              string               `json:"sbo"`
	Ticket           string               `json:"ticket"`
	FolioComexa      string               `json:"folioComexa"`
	ReportDate       string               `json:"reportDate"`
	InstallationDate string               `json:"installationDate"`
	WarrantyApplied  *bool                `json:"warrantyApplied"`
	WarrantyReason   string               `json:"warrantyReason"`
	Items            []ConsumeItemRequest `json:"items"`
}

// InstallationResult resumen del registro creado.
type InstallationResult struct {
	LogID     string `json:"logId"`
	ItemsUsed int    `json:"itemsUsed"`
}
