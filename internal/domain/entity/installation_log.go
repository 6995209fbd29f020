package entity

// Tipos de uso de un item en un registro de instalación.
const (
	UsoInstalacion           = "Instalación"
	UsoSuministro            = "Suministro"
	UsoSuministroInstalacion = "Suministro e instalación"
)

// UsedItem es la foto de un item consumido o movido: cadenas copiadas del
// libro en el momento del consumo, nunca referencias a líneas de stock. El
// registro sigue siendo válido aunque la línea de origen se agote o se
// fusione después.
type UsedItem struct {
	Device   string `json:"device"`
	Model    string `json:"model"`
	Quantity int    `json:"quantity"`
	UsageType string `json:"usageType"`
}

// InstallationLog es el registro de auditoría inmutable de un evento que
// consumió o movió stock.
//
// Los identificadores de ticket son excluyentes por cliente: Sctask/Reqo
// para Banamex, Sbo para Santander, Ticket (folio cliente) para Banregio.
// FolioComexa es el folio interno y aplica a todos los clientes.
type InstallationLog struct {
	ID          string `json:"id"`
	Sctask      string `json:"sctask,omitempty"`
	Reqo        string `json:"reqo,omitempty"`
	Sbo         string `json:"sbo,omitempty"`
	Ticket      string `json:"ticket,omitempty"`
	FolioComexa string `json:"folioComexa,omitempty"`

	TechnicianName string `json:"technicianName"`
	ReportDate     string `json:"reportDate"`       // YYYY-MM-DD
	InstallationDate string `json:"installationDate"` // YYYY-MM-DD

	BranchName   string `json:"branchName"`
	BranchSirh   string `json:"branchSirh,omitempty"`
	BranchRegion string `json:"branchRegion,omitempty"`

	WarrantyApplied bool   `json:"warrantyApplied"`
	WarrantyReason  string `json:"warrantyReason"`

	ItemsUsed []UsedItem `json:"itemsUsed"`
}
