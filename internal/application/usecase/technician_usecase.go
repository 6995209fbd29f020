// Package usecase contiene los casos de uso que no mutan el libro de stock:
// plantel, directorio de sucursales, historial, catálogo, respaldos y la
// extracción asistida de reportes.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/comexa/stock-control-api/internal/application/appstate"
	"github.com/comexa/stock-control-api/internal/application/dto"
	"github.com/comexa/stock-control-api/internal/domain"
	"github.com/comexa/stock-control-api/internal/domain/entity"
	"github.com/google/uuid"
)

// TechnicianUseCase gestiona el plantel de técnicos.
type TechnicianUseCase struct {
	state *appstate.AppState
}

// NewTechnicianUseCase construye el caso de uso.
func NewTechnicianUseCase(state *appstate.AppState) *TechnicianUseCase {
	return &TechnicianUseCase{state: state}
}

// List devuelve el plantel en orden de importación.
func (uc *TechnicianUseCase) List() []entity.Technician {
	var techs []entity.Technician
	uc.state.View(func(d appstate.Data) {
		techs = append(techs, d.Technicians...)
	})
	return techs
}

// Add da de alta un técnico manualmente. El nombre se normaliza a mayúsculas
// sin espacios en los extremos; los duplicados se rechazan sin distinguir
// mayúsculas (a diferencia de la importación masiva, donde el último archivo
// gana).
func (uc *TechnicianUseCase) Add(ctx context.Context, req dto.AddTechnicianRequest) (*entity.Technician, error) {
	name := strings.ToUpper(strings.TrimSpace(req.Name))
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	techType := strings.ToUpper(strings.TrimSpace(req.Type))
	switch techType {
	case "":
		techType = entity.TecnicoNomina
	case entity.TecnicoNomina, entity.TecnicoEjecutor:
	default:
		return nil, domain.ErrInvalidInput
	}

	tech := entity.Technician{
		ID:   fmt.Sprintf("tech-%s", uuid.New().String()),
		Name: name,
		Type: techType,
	}
	err := uc.state.Update(ctx, func(d *appstate.Data) error {
		for _, existing := range d.Technicians {
			if strings.EqualFold(existing.Name, name) {
				return fmt.Errorf("técnico %s: %w", name, domain.ErrDuplicate)
			}
		}
		d.Technicians = append(d.Technicians, tech)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tech, nil
}
