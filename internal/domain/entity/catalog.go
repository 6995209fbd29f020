package entity

// CatalogItem es una entrada del catálogo de dispositivos conocidos de un
// cliente. Solo alimenta el autocompletado del formulario de alta directa;
// no es inventario y no está sujeto a invariantes de cantidad.
type CatalogItem struct {
	Category string `json:"category"`
	Device   string `json:"device"`
	Model    string `json:"model"`
}

// DeviceCatalog agrupa los items de catálogo por cliente.
type DeviceCatalog map[string][]CatalogItem
