package entity

// Clientes atendidos. Los identificadores de ticket de un registro de
// instalación dependen del cliente de la sucursal (ver InstallationLog).
const (
	ClienteBanamex   = "BANAMEX"
	ClienteSantander = "SANTANDER"
	ClienteBanregio  = "BANREGIO"
)

// RegionSinAsignar es el valor por defecto cuando el directorio de
// sucursales no trae región.
const RegionSinAsignar = "SIN REGIÓN"

// Branch es una sucursal atendible. SIRH es el código de sitio y la clave
// de búsqueda principal para el operador.
type Branch struct {
	ID     string `json:"id"`
	Client string `json:"client"`
	Sirh   string `json:"sirh"`
	Type   string `json:"type"`
	Name   string `json:"name"`
	Region string `json:"region"`
}
