package dto

import (
	"encoding/json"

	"github.com/comexa/stock-control-api/internal/domain/entity"
)

// BackupDocument es el respaldo completo: las cinco colecciones más la
// fecha de exportación. Las claves JSON replican las claves del almacén
// para que el documento sea legible junto a los blobs persistidos.
type BackupDocument struct {
	Timestamp   string                   `json:"timestamp"`
	Stock       []entity.StockLine       `json:"comexa_stock"`
	Technicians []entity.Technician      `json:"comexa_techs"`
	Branches    []entity.Branch          `json:"comexa_branches"`
	Logs        []entity.InstallationLog `json:"comexa_logs"`
	Catalog     entity.DeviceCatalog     `json:"comexa_catalog"`
}

// RawBackup es el mismo documento sin tipar, para validar la forma antes de
// deserializar por completo.
type RawBackup struct {
	Stock json.RawMessage `json:"comexa_stock"`
}
