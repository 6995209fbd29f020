package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/comexa/stock-control-api/internal/application/appstate"
	"github.com/comexa/stock-control-api/internal/application/dto"
	"github.com/comexa/stock-control-api/internal/domain"
	"github.com/comexa/stock-control-api/internal/domain/entity"
)

// BackupUseCase exporta y restaura el estado completo de la aplicación.
type BackupUseCase struct {
	state *appstate.AppState
}

// NewBackupUseCase construye el caso de uso.
func NewBackupUseCase(state *appstate.AppState) *BackupUseCase {
	return &BackupUseCase{state: state}
}

// Export serializa las cinco colecciones más la fecha en un solo documento.
func (uc *BackupUseCase) Export() *dto.BackupDocument {
	doc := &dto.BackupDocument{Timestamp: time.Now().Format(time.RFC3339)}
	uc.state.View(func(d appstate.Data) {
		doc.Stock = append([]entity.StockLine{}, d.Stock...)
		doc.Technicians = append([]entity.Technician{}, d.Technicians...)
		doc.Branches = append([]entity.Branch{}, d.Branches...)
		doc.Logs = append([]entity.InstallationLog{}, d.Logs...)
		doc.Catalog = entity.DeviceCatalog{}
		for client, items := range d.Catalog {
			doc.Catalog[client] = append([]entity.CatalogItem{}, items...)
		}
	})
	return doc
}

// Restore sobrescribe las cinco colecciones con el contenido del respaldo.
// La validación de forma ocurre completa antes de tocar el estado: como
// mínimo debe existir un arreglo bajo la clave de stock, si no se aborta con
// ErrRespaldoInvalido y el estado queda como estaba.
func (uc *BackupUseCase) Restore(ctx context.Context, raw []byte) error {
	var shape dto.RawBackup
	if err := json.Unmarshal(raw, &shape); err != nil {
		return fmt.Errorf("respaldo ilegible: %w", domain.ErrRespaldoInvalido)
	}
	var stockShape []json.RawMessage
	if shape.Stock == nil || json.Unmarshal(shape.Stock, &stockShape) != nil {
		return fmt.Errorf("respaldo sin arreglo de stock: %w", domain.ErrRespaldoInvalido)
	}

	var doc dto.BackupDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("respaldo malformado: %w", domain.ErrRespaldoInvalido)
	}

	return uc.state.Update(ctx, func(d *appstate.Data) error {
		d.Stock = doc.Stock
		d.Technicians = doc.Technicians
		d.Branches = doc.Branches
		d.Logs = doc.Logs
		if doc.Catalog != nil {
			d.Catalog = doc.Catalog
		} else {
			d.Catalog = entity.DefaultDeviceCatalog()
		}
		return nil
	})
}

// Reset borra el estado persistido y vuelve al estado de fábrica.
func (uc *BackupUseCase) Reset(ctx context.Context) error {
	return uc.state.Reset(ctx)
}
