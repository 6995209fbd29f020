package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/comexa/stock-control-api/internal/application/appstate"
	"github.com/comexa/stock-control-api/internal/application/dto"
	"github.com/comexa/stock-control-api/internal/application/importer"
	"github.com/comexa/stock-control-api/internal/domain"
	"github.com/comexa/stock-control-api/internal/domain/entity"
)

// ImportUseCase orquesta las importaciones de archivos que no tocan el libro
// de stock: plantel, directorio de sucursales, concentrado histórico y
// catálogo de dispositivos.
type ImportUseCase struct {
	state *appstate.AppState
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(state *appstate.AppState) *ImportUseCase {
	return &ImportUseCase{state: state}
}

// ImportTechnicians importa el plantel desde un archivo. El archivo es
// autoritativo: reemplaza el plantel completo (el último import gana, los
// duplicados no se validan aquí).
func (uc *ImportUseCase) ImportTechnicians(ctx context.Context, file dto.UploadedFile) (*dto.ImportSummary, error) {
	rows, err := importer.FileToRows(file.Name, file.Data)
	if err != nil {
		return nil, fmt.Errorf("archivo %s: %w", file.Name, domain.ErrFormatoArchivo)
	}
	techs := importer.ExtractTechnicians(rows)
	if len(techs) == 0 {
		return nil, fmt.Errorf("archivo %s: %w", file.Name, domain.ErrFormatoArchivo)
	}

	err = uc.state.Update(ctx, func(d *appstate.Data) error {
		d.Technicians = techs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.ImportSummary{Files: 1, Imported: len(techs)}, nil
}

// ImportBranches importa uno o más archivos de directorio de sucursales.
// Los IDs derivados de fila se repiten entre archivos ("branch-3" aparece en
// cada uno), así que al fusionar se reescriben con secuencia de archivo y
// sufijo aleatorio para garantizar unicidad global.
func (uc *ImportUseCase) ImportBranches(ctx context.Context, files []dto.UploadedFile) (*dto.ImportSummary, error) {
	if len(files) == 0 {
		return nil, domain.ErrInvalidInput
	}

	summary := &dto.ImportSummary{Files: len(files)}
	var merged []entity.Branch
	for seq, file := range files {
		rows, err := importer.FileToRows(file.Name, file.Data)
		if err != nil {
			return nil, fmt.Errorf("archivo %s: %w", file.Name, domain.ErrFormatoArchivo)
		}
		branches := importer.ExtractBranches(rows)
		if len(branches) == 0 {
			summary.Warnings = append(summary.Warnings,
				fmt.Sprintf("archivo %s: sin sucursales reconocibles", file.Name))
			continue
		}
		for i := range branches {
			branches[i].ID = fmt.Sprintf("%s-%d-%s", branches[i].ID, seq, uuid.New().String()[:8])
		}
		merged = append(merged, branches...)
	}
	if len(merged) == 0 {
		return nil, domain.ErrFormatoArchivo
	}

	err := uc.state.Update(ctx, func(d *appstate.Data) error {
		d.Branches = merged
		return nil
	})
	if err != nil {
		return nil, err
	}
	summary.Imported = len(merged)
	return summary, nil
}

// ImportHistory importa el concentrado histórico de servicios y lo AÑADE al
// historial existente (el historial es solo-añadir, nunca se reemplaza).
// Los archivos sin las columnas obligatorias se reportan como advertencia
// sin abortar el resto.
func (uc *ImportUseCase) ImportHistory(ctx context.Context, files []dto.UploadedFile) (*dto.ImportSummary, error) {
	if len(files) == 0 {
		return nil, domain.ErrInvalidInput
	}

	summary := &dto.ImportSummary{Files: len(files)}
	var imported []entity.InstallationLog
	for _, file := range files {
		rows, err := importer.FileToRows(file.Name, file.Data)
		if err != nil {
			summary.Warnings = append(summary.Warnings,
				fmt.Sprintf("archivo %s: no se pudo leer", file.Name))
			continue
		}
		logs, err := importer.ExtractHistory(rows)
		if err != nil {
			summary.Warnings = append(summary.Warnings,
				fmt.Sprintf("archivo %s: faltan columnas obligatorias (FOLIO y SUCURSAL)", file.Name))
			continue
		}
		imported = append(imported, logs...)
	}
	if len(imported) == 0 {
		return summary, nil
	}

	err := uc.state.Update(ctx, func(d *appstate.Data) error {
		d.Logs = append(d.Logs, imported...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	summary.Imported = len(imported)
	return summary, nil
}

// ImportCatalog importa el catálogo de dispositivos de un libro de Excel y
// fusiona por cliente: los clientes presentes en el libro reemplazan su
// lista; los ausentes conservan la que tenían.
func (uc *ImportUseCase) ImportCatalog(ctx context.Context, file dto.UploadedFile) (*dto.CatalogImportSummary, error) {
	lower := strings.ToLower(file.Name)
	if !strings.HasSuffix(lower, ".xlsx") && !strings.HasSuffix(lower, ".xlsm") {
		return nil, fmt.Errorf("archivo %s: %w", file.Name, domain.ErrFormatoArchivo)
	}
	catalog, err := importer.ExtractCatalog(file.Data)
	if err != nil {
		return nil, fmt.Errorf("archivo %s: %w", file.Name, domain.ErrFormatoArchivo)
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("archivo %s: %w", file.Name, domain.ErrFormatoArchivo)
	}

	summary := &dto.CatalogImportSummary{}
	err = uc.state.Update(ctx, func(d *appstate.Data) error {
		for client, items := range catalog {
			d.Catalog[client] = items
			summary.Clients = append(summary.Clients, client)
			summary.Imported += len(items)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(summary.Clients)
	return summary, nil
}
