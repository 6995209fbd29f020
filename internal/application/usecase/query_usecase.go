package usecase

import (
	"sort"
	"strings"

	"github.com/comexa/stock-control-api/internal/application/appstate"
	"github.com/comexa/stock-control-api/internal/application/dto"
	"github.com/comexa/stock-control-api/internal/domain/entity"
)

// QueryUseCase consultas de solo lectura: directorio de sucursales,
// historial, catálogo y totales del tablero.
type QueryUseCase struct {
	state *appstate.AppState
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(state *appstate.AppState) *QueryUseCase {
	return &QueryUseCase{state: state}
}

// Branches devuelve el directorio completo, o las sucursales cuyo SIRH o
// nombre contiene la consulta (sin distinguir mayúsculas) si query no es vacía.
func (uc *QueryUseCase) Branches(query string) []entity.Branch {
	query = strings.ToUpper(strings.TrimSpace(query))
	var branches []entity.Branch
	uc.state.View(func(d appstate.Data) {
		for _, b := range d.Branches {
			if query == "" ||
				strings.Contains(strings.ToUpper(b.Sirh), query) ||
				strings.Contains(strings.ToUpper(b.Name), query) {
				branches = append(branches, b)
			}
		}
	})
	return branches
}

// History devuelve el historial completo en orden de registro.
func (uc *QueryUseCase) History() []entity.InstallationLog {
	var logs []entity.InstallationLog
	uc.state.View(func(d appstate.Data) {
		logs = append(logs, d.Logs...)
	})
	return logs
}

// HistoryByID busca un registro por su ID.
func (uc *QueryUseCase) HistoryByID(id string) *entity.InstallationLog {
	var found *entity.InstallationLog
	uc.state.View(func(d appstate.Data) {
		for i := range d.Logs {
			if d.Logs[i].ID == id {
				log := d.Logs[i]
				found = &log
				return
			}
		}
	})
	return found
}

// Catalog devuelve el catálogo de dispositivos, opcionalmente filtrado por cliente.
func (uc *QueryUseCase) Catalog(client string) entity.DeviceCatalog {
	client = strings.ToUpper(strings.TrimSpace(client))
	out := entity.DeviceCatalog{}
	uc.state.View(func(d appstate.Data) {
		for c, items := range d.Catalog {
			if client != "" && c != client {
				continue
			}
			out[c] = append([]entity.CatalogItem{}, items...)
		}
	})
	return out
}

// Dashboard calcula los totales del tablero a partir del estado actual.
func (uc *QueryUseCase) Dashboard() *dto.DashboardSummary {
	summary := &dto.DashboardSummary{}
	uc.state.View(func(d appstate.Data) {
		byCategory := map[string]int{}
		byOwner := map[string]int{}
		for _, line := range d.Stock {
			summary.TotalUnits += line.Quantity
			byCategory[line.Category] += line.Quantity
			byOwner[line.Owner] += line.Quantity
		}
		summary.TotalLines = len(d.Stock)
		summary.Technicians = len(d.Technicians)
		summary.Branches = len(d.Branches)
		summary.Installations = len(d.Logs)

		for category, units := range byCategory {
			summary.ByCategory = append(summary.ByCategory, dto.CategoryTotal{Category: category, Units: units})
		}
		for owner, units := range byOwner {
			summary.ByOwner = append(summary.ByOwner, dto.OwnerTotal{Owner: owner, Units: units})
		}
	})
	sort.Slice(summary.ByCategory, func(i, j int) bool {
		return summary.ByCategory[i].Category < summary.ByCategory[j].Category
	})
	sort.Slice(summary.ByOwner, func(i, j int) bool {
		return summary.ByOwner[i].Owner < summary.ByOwner[j].Owner
	})
	return summary
}
