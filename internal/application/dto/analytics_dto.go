package dto

// CategoryTotal total de unidades en existencia de una categoría.
type CategoryTotal struct {
	Category string `json:"category"`
	Units    int    `json:"units"`
}

// OwnerTotal total de unidades en existencia de un dueño.
type OwnerTotal struct {
	Owner string `json:"owner"`
	Units int    `json:"units"`
}

// DashboardSummary totales del tablero principal.
type DashboardSummary struct {
	TotalUnits     int             `json:"totalUnits"`
	TotalLines     int             `json:"totalLines"`
	Technicians    int             `json:"technicians"`
	Branches       int             `json:"branches"`
	Installations  int             `json:"installations"`
	ByCategory     []CategoryTotal `json:"byCategory"`
	ByOwner        []OwnerTotal    `json:"byOwner"`
}
